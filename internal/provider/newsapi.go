package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

const newsAPIBaseURL = "https://newsapi.org"

// NewsAPIProvider is the global news index, last in line before the macro
// fallback because its results are the least region-aware.
type NewsAPIProvider struct {
	fetcher  *Fetcher
	baseURL  string
	apiKey   string
	pageSize int
	tracer   trace.Tracer
}

func NewNewsAPIProvider(fetcher *Fetcher, apiKey string, pageSize int, tracer trace.Tracer) *NewsAPIProvider {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &NewsAPIProvider{
		fetcher:  fetcher,
		baseURL:  newsAPIBaseURL,
		apiKey:   apiKey,
		pageSize: pageSize,
		tracer:   tracer,
	}
}

func (p *NewsAPIProvider) FetchHeadlines(ctx context.Context, query string) ([]Headline, error) {
	_, span := p.tracer.Start(ctx, "newsapi.fetch-headlines")
	defer span.End()

	searchURL := fmt.Sprintf("%s/v2/everything?q=%s&language=en&sortBy=publishedAt&pageSize=%d&apiKey=%s",
		p.baseURL, url.QueryEscape(query), p.pageSize, p.apiKey)

	var payload struct {
		Status   string `json:"status"`
		Message  string `json:"message"`
		Articles []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"articles"`
	}
	if err := p.fetcher.DoJSON(ctx, searchURL, &payload); err != nil {
		return nil, fmt.Errorf("newsapi %q: %w", query, err)
	}

	if payload.Status == "error" {
		return nil, fmt.Errorf("newsapi %q: %s: %w", query, payload.Message, ErrProviderLogical)
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
		return nil, fmt.Errorf("newsapi %q: %w", query, ErrEmptyResult)
	}
	return headlines, nil
}
