package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

const mediastackBaseURL = "http://api.mediastack.com"

// MediaStackProvider is the secondary news index, filtered to regional
// English-language coverage.
type MediaStackProvider struct {
	fetcher  *Fetcher
	baseURL  string
	apiKey   string
	pageSize int
	tracer   trace.Tracer
}

func NewMediaStackProvider(fetcher *Fetcher, apiKey string, pageSize int, tracer trace.Tracer) *MediaStackProvider {
	if pageSize <= 0 {
		pageSize = 15
	}
	return &MediaStackProvider{
		fetcher:  fetcher,
		baseURL:  mediastackBaseURL,
		apiKey:   apiKey,
		pageSize: pageSize,
		tracer:   tracer,
	}
}

func (p *MediaStackProvider) FetchHeadlines(ctx context.Context, query string) ([]Headline, error) {
	_, span := p.tracer.Start(ctx, "mediastack.fetch-headlines")
	defer span.End()

	searchURL := fmt.Sprintf("%s/v1/news?access_key=%s&keywords=%s&countries=in&languages=en&limit=%d",
		p.baseURL, p.apiKey, url.QueryEscape(query), p.pageSize)

	var payload struct {
		Data []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"data"`
	}
	if err := p.fetcher.DoJSON(ctx, searchURL, &payload); err != nil {
		return nil, fmt.Errorf("mediastack %q: %w", query, err)
	}

	headlines := make([]Headline, 0, len(payload.Data))
	for _, row := range payload.Data {
		title := strings.TrimSpace(row.Title)
		if title == "" {
			continue
		}
		headlines = append(headlines, Headline{Title: title, URL: row.URL})
	}
	if len(headlines) == 0 {
		return nil, fmt.Errorf("mediastack %q: %w", query, ErrEmptyResult)
	}
	return headlines, nil
}
