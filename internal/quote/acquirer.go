// Package quote produces a price snapshot for a symbol, live if possible and
// synthetic otherwise.
package quote

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/trace"

	"sentimentai/internal/domain"
	"sentimentai/internal/provider"
)

const (
	historyRange    = "1mo"
	historyInterval = "1d"
	maxHistoryDays  = 30
)

// ChartFetcher fetches a daily close series for a symbol.
type ChartFetcher interface {
	FetchDailySeries(ctx context.Context, symbol, rangeSpec, interval string) (*provider.ChartSeries, error)
}

// Acquirer builds price snapshots. A failed live fetch degrades to a
// deterministic synthetic series instead of surfacing an error, so the
// pipeline downstream always has a history to work with.
type Acquirer struct {
	charts ChartFetcher
	tracer trace.Tracer
}

func NewAcquirer(charts ChartFetcher, tracer trace.Tracer) *Acquirer {
	return &Acquirer{charts: charts, tracer: tracer}
}

// Snapshot returns price data for symbol. fallbackName labels the snapshot
// when the live source carries no display name or when synthetic data is used.
func (a *Acquirer) Snapshot(ctx context.Context, symbol, fallbackName string) *domain.PriceSnapshot {
	ctx, span := a.tracer.Start(ctx, "quote.snapshot")
	defer span.End()

	series, err := a.charts.FetchDailySeries(ctx, symbol, historyRange, historyInterval)
	if err != nil {
		log.Printf("quote: live fetch for %s failed, using synthetic series: %v", symbol, err)
		return syntheticSnapshot(symbol, fallbackName)
	}

	closes := series.Closes
	if len(closes) > maxHistoryDays {
		closes = closes[len(closes)-maxHistoryDays:]
	}

	price := closes[len(closes)-1]
	var change, changePercent float64
	if len(closes) >= 2 {
		prev := closes[len(closes)-2]
		change = price - prev
		if prev != 0 {
			changePercent = change / prev * 100
		}
	}

	currency := series.Currency
	if currency == "" {
		currency = "USD"
	}

	name := series.LongName
	if name == "" {
		name = series.ShortName
	}
	if name == "" {
		name = fallbackName
	}
	if name == "" {
		name = symbol
	}

	return &domain.PriceSnapshot{
		Name:          name,
		Price:         price,
		Change:        change,
		ChangePercent: changePercent,
		Currency:      currency,
		History:       closes,
	}
}
