package provider

import (
	"context"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/trace"
)

const growwBaseURL = "https://groww.in"

// GrowwProvider queries the Groww search index, the primary source for
// resolving free text to an NSE/BSE scrip.
type GrowwProvider struct {
	fetcher *Fetcher
	baseURL string
	tracer  trace.Tracer
}

func NewGrowwProvider(fetcher *Fetcher, tracer trace.Tracer) *GrowwProvider {
	return &GrowwProvider{
		fetcher: fetcher,
		baseURL: growwBaseURL,
		tracer:  tracer,
	}
}

// SearchEquities returns ranked candidates for a free-text query.
func (p *GrowwProvider) SearchEquities(ctx context.Context, query string) ([]EquityMatch, error) {
	_, span := p.tracer.Start(ctx, "groww.search-equities")
	defer span.End()

	searchURL := fmt.Sprintf("%s/v1/api/search/v3/query/global/st_p_query?page=0&query=%s&size=5&web=true",
		p.baseURL, url.QueryEscape(query))

	var payload struct {
		Data struct {
			Content []struct {
				EntityType   string `json:"entity_type"`
				NSEScripCode string `json:"nse_scrip_code"`
				BSEScripCode string `json:"bse_scrip_code"`
			} `json:"content"`
		} `json:"data"`
	}
	if err := p.fetcher.DoJSON(ctx, searchURL, &payload); err != nil {
		return nil, fmt.Errorf("groww search %q: %w", query, err)
	}

	if len(payload.Data.Content) == 0 {
		return nil, fmt.Errorf("groww search %q: %w", query, ErrEmptyResult)
	}

	matches := make([]EquityMatch, 0, len(payload.Data.Content))
	for _, row := range payload.Data.Content {
		matches = append(matches, EquityMatch{
			EntityType: row.EntityType,
			NSECode:    row.NSEScripCode,
			BSECode:    row.BSEScripCode,
		})
	}
	return matches, nil
}
