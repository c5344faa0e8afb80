package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

const yahooSearchBaseURL = "https://query2.finance.yahoo.com"

// YahooSearchProvider is the global-market fallback for symbol resolution.
type YahooSearchProvider struct {
	fetcher *Fetcher
	baseURL string
	tracer  trace.Tracer
}

func NewYahooSearchProvider(fetcher *Fetcher, tracer trace.Tracer) *YahooSearchProvider {
	return &YahooSearchProvider{
		fetcher: fetcher,
		baseURL: yahooSearchBaseURL,
		tracer:  tracer,
	}
}

// SearchQuotes returns ranked symbol candidates for a free-text query.
func (p *YahooSearchProvider) SearchQuotes(ctx context.Context, query string) ([]QuoteMatch, error) {
	_, span := p.tracer.Start(ctx, "yahoo-search.search-quotes")
	defer span.End()

	searchURL := fmt.Sprintf("%s/v1/finance/search?q=%s&quotesCount=7&newsCount=0",
		p.baseURL, url.QueryEscape(query))

	var payload struct {
		Quotes []struct {
			Symbol   string `json:"symbol"`
			Exchange string `json:"exchange"`
		} `json:"quotes"`
	}
	if err := p.fetcher.DoJSON(ctx, searchURL, &payload); err != nil {
		return nil, fmt.Errorf("yahoo search %q: %w", query, err)
	}

	if len(payload.Quotes) == 0 {
		return nil, fmt.Errorf("yahoo search %q: %w", query, ErrEmptyResult)
	}

	matches := make([]QuoteMatch, 0, len(payload.Quotes))
	for _, row := range payload.Quotes {
		symbol := strings.TrimSpace(row.Symbol)
		if symbol == "" {
			continue
		}
		matches = append(matches, QuoteMatch{
			Symbol:   symbol,
			Exchange: strings.ToUpper(strings.TrimSpace(row.Exchange)),
		})
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("yahoo search %q: %w", query, ErrEmptyResult)
	}
	return matches, nil
}
