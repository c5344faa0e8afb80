// Package ticker resolves free-form company queries into Yahoo-style symbols.
package ticker

import (
	"context"
	"log"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"sentimentai/internal/provider"
)

// EquitySearcher finds listed equities for a query on an Indian brokerage index.
type EquitySearcher interface {
	SearchEquities(ctx context.Context, query string) ([]provider.EquityMatch, error)
}

// QuoteSearcher finds quote candidates for a query on a global index.
type QuoteSearcher interface {
	SearchQuotes(ctx context.Context, query string) ([]provider.QuoteMatch, error)
}

// Resolver maps a user query to a tradable symbol. Resolution cascades from
// an India-first source to a global one and finally to a guess constructed
// from the query itself, so Resolve always produces a symbol.
type Resolver struct {
	equities EquitySearcher
	quotes   QuoteSearcher
	tracer   trace.Tracer
}

func NewResolver(equities EquitySearcher, quotes QuoteSearcher, tracer trace.Tracer) *Resolver {
	return &Resolver{equities: equities, quotes: quotes, tracer: tracer}
}

var indianExchanges = map[string]bool{
	"NSE": true,
	"BSE": true,
	"NSI": true,
	"BSI": true,
}

// Resolve returns a symbol for query. Failures in the upstream sources are
// logged and absorbed; the final fallback never fails.
func (r *Resolver) Resolve(ctx context.Context, query string) string {
	ctx, span := r.tracer.Start(ctx, "ticker.resolve")
	defer span.End()

	if symbol, ok := r.fromEquities(ctx, query); ok {
		return symbol
	}
	if symbol, ok := r.fromQuotes(ctx, query); ok {
		return symbol
	}
	return guessSymbol(query)
}

func (r *Resolver) fromEquities(ctx context.Context, query string) (string, bool) {
	matches, err := r.equities.SearchEquities(ctx, query)
	if err != nil {
		log.Printf("ticker: equity search for %q failed: %v", query, err)
		return "", false
	}
	for _, m := range matches {
		if m.EntityType != "Stocks" {
			continue
		}
		if m.NSECode != "" {
			return m.NSECode + ".NS", true
		}
		if m.BSECode != "" {
			return m.BSECode + ".BO", true
		}
	}
	return "", false
}

func (r *Resolver) fromQuotes(ctx context.Context, query string) (string, bool) {
	quotes, err := r.quotes.SearchQuotes(ctx, query)
	if err != nil {
		log.Printf("ticker: quote search for %q failed: %v", query, err)
		return "", false
	}
	if len(quotes) == 0 {
		return "", false
	}

	for _, q := range quotes {
		if indianExchanges[q.Exchange] ||
			strings.HasSuffix(q.Symbol, ".NS") || strings.HasSuffix(q.Symbol, ".BO") {
			return q.Symbol, true
		}
	}

	// No Indian listing among the candidates: take the top quote, assuming
	// an NSE listing when the symbol carries no exchange suffix at all.
	top := quotes[0].Symbol
	if !strings.Contains(top, ".") {
		top += ".NS"
	}
	return top, true
}

func guessSymbol(query string) string {
	compact := strings.Join(strings.Fields(query), "")
	return strings.ToUpper(compact) + ".NS"
}
