package provider

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const yahooChartBaseURL = "https://query1.finance.yahoo.com"

// YahooChartProvider fetches daily close series from the Yahoo chart API.
type YahooChartProvider struct {
	fetcher *Fetcher
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewYahooChartProvider creates a chart provider rate-limited to roughly one
// call per second; the chart endpoint 429s aggressively.
func NewYahooChartProvider(fetcher *Fetcher, tracer trace.Tracer) *YahooChartProvider {
	return &YahooChartProvider{
		fetcher: fetcher,
		baseURL: yahooChartBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(4, time.Second),
	}
}

// FetchDailySeries returns the daily closes for a symbol over the given range.
// A chart-level error from the API maps to ErrProviderLogical; a series with
// no non-null closes maps to ErrEmptyResult.
func (p *YahooChartProvider) FetchDailySeries(ctx context.Context, symbol, rangeSpec, interval string) (*ChartSeries, error) {
	_, span := p.tracer.Start(ctx, "yahoo-chart.fetch-daily-series")
	defer span.End()

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("chart rate limit wait: %w", err)
	}

	chartURL := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		p.baseURL, url.PathEscape(symbol), rangeSpec, interval)

	var payload struct {
		Chart struct {
			Result []struct {
				Meta struct {
					Currency  string `json:"currency"`
					LongName  string `json:"longName"`
					ShortName string `json:"shortName"`
				} `json:"meta"`
				Indicators struct {
					Quote []struct {
						Close []*float64 `json:"close"`
					} `json:"quote"`
				} `json:"indicators"`
			} `json:"result"`
			Error *struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		} `json:"chart"`
	}
	if err := p.fetcher.DoJSON(ctx, chartURL, &payload); err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}

	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart %s: %s: %w", symbol, payload.Chart.Error.Description, ErrProviderLogical)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: missing chart structure: %w", symbol, ErrEmptyResult)
	}

	result := payload.Chart.Result[0]
	closes := make([]float64, 0, len(result.Indicators.Quote[0].Close))
	for _, sample := range result.Indicators.Quote[0].Close {
		if sample == nil {
			continue
		}
		closes = append(closes, *sample)
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: no pricing data: %w", symbol, ErrEmptyResult)
	}

	return &ChartSeries{
		Currency:  result.Meta.Currency,
		LongName:  result.Meta.LongName,
		ShortName: result.Meta.ShortName,
		Closes:    closes,
	}, nil
}
