package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

const gnewsBaseURL = "https://gnews.io"

// GNewsProvider searches the GNews index, region-locked to one country so
// company-name queries do not surface international homonyms.
type GNewsProvider struct {
	fetcher  *Fetcher
	baseURL  string
	apiKey   string
	country  string
	language string
	pageSize int
	tracer   trace.Tracer
}

func NewGNewsProvider(fetcher *Fetcher, apiKey string, pageSize int, tracer trace.Tracer) *GNewsProvider {
	if pageSize <= 0 {
		pageSize = 15
	}
	return &GNewsProvider{
		fetcher:  fetcher,
		baseURL:  gnewsBaseURL,
		apiKey:   apiKey,
		country:  "in",
		language: "en",
		pageSize: pageSize,
		tracer:   tracer,
	}
}

func (p *GNewsProvider) FetchHeadlines(ctx context.Context, query string) ([]Headline, error) {
	_, span := p.tracer.Start(ctx, "gnews.fetch-headlines")
	defer span.End()

	searchURL := fmt.Sprintf("%s/api/v4/search?q=%s&lang=%s&country=%s&max=%d&apikey=%s",
		p.baseURL, url.QueryEscape(query), p.language, p.country, p.pageSize, p.apiKey)

	var payload struct {
		Articles []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"articles"`
	}
	if err := p.fetcher.DoJSON(ctx, searchURL, &payload); err != nil {
		return nil, fmt.Errorf("gnews %q: %w", query, err)
	}

	headlines := make([]Headline, 0, len(payload.Articles))
	for _, row := range payload.Articles {
		title := strings.TrimSpace(row.Title)
		if title == "" {
			continue
		}
		headlines = append(headlines, Headline{Title: title, URL: row.URL})
	}
	if len(headlines) == 0 {
		return nil, fmt.Errorf("gnews %q: %w", query, ErrEmptyResult)
	}
	return headlines, nil
}
