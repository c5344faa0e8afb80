// Package news gathers headlines for a stock through a cascade of sources
// and scores them against the sentiment lexicon.
package news

import (
	"context"
	"log"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"sentimentai/internal/domain"
	"sentimentai/internal/provider"
	"sentimentai/internal/sentiment"
)

// placeholderTitle is the terminal article emitted when every source in the
// cascade comes back empty. It scores neutral by construction.
const placeholderTitle = "Insufficient real-time market data to form a definitive sentiment. Awaiting stream restoration."

// macroQuery swaps company coverage for broad Indian market coverage when
// nothing company-specific can be found.
const macroQuery = "NSE BSE Sensex Nifty"

// HeadlineFetcher fetches headlines for a free-text query.
type HeadlineFetcher interface {
	FetchHeadlines(ctx context.Context, query string) ([]provider.Headline, error)
}

type stage struct {
	name    string
	fetcher HeadlineFetcher
	query   func(companyQuery string) string
}

// Acquirer walks its sources in order and returns the first non-empty batch
// of headlines, scored. It never fails: an exhausted cascade yields a single
// neutral placeholder article.
type Acquirer struct {
	stages []stage
	tracer trace.Tracer
}

// NewAcquirer wires the cascade. gnews is consulted twice: first for the
// company, and again for the broad market when the targeted stages all fail.
func NewAcquirer(gnews, mediastack, newsapi HeadlineFetcher, tracer trace.Tracer) *Acquirer {
	withRegion := func(q string) string { return q + " India" }
	return &Acquirer{
		tracer: tracer,
		stages: []stage{
			{name: "gnews", fetcher: gnews, query: withRegion},
			{name: "mediastack", fetcher: mediastack, query: func(q string) string { return q }},
			{name: "newsapi", fetcher: newsapi, query: func(q string) string { return withRegion(q) + " stock" }},
			{name: "gnews-macro", fetcher: gnews, query: func(string) string { return macroQuery }},
		},
	}
}

// Gather fetches and scores headlines for query.
func (a *Acquirer) Gather(ctx context.Context, query string) *domain.SentimentSummary {
	ctx, span := a.tracer.Start(ctx, "news.gather")
	defer span.End()

	for _, s := range a.stages {
		headlines, err := s.fetcher.FetchHeadlines(ctx, s.query(query))
		if err != nil {
			log.Printf("news: stage %s for %q failed: %v", s.name, query, err)
			continue
		}
		headlines = dropRemoved(headlines)
		if len(headlines) == 0 {
			continue
		}
		return summarize(headlines)
	}

	return &domain.SentimentSummary{
		Neutral: 1,
		AnalyzedData: []domain.NewsArticle{{
			Title:    placeholderTitle,
			Category: domain.CategoryNeutral,
		}},
	}
}

// dropRemoved strips tombstoned articles some aggregators leave in place of
// retracted content.
func dropRemoved(headlines []provider.Headline) []provider.Headline {
	kept := headlines[:0]
	for _, h := range headlines {
		if strings.Contains(h.Title, "[Removed]") {
			continue
		}
		kept = append(kept, h)
	}
	return kept
}

func summarize(headlines []provider.Headline) *domain.SentimentSummary {
	summary := &domain.SentimentSummary{
		AnalyzedData: make([]domain.NewsArticle, 0, len(headlines)),
	}

	var total float64
	for _, h := range headlines {
		res := sentiment.Analyze(h.Title)
		category := domain.CategoryForScore(res.Comparative)
		switch category {
		case domain.CategoryPositive:
			summary.Positive++
		case domain.CategoryNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}
		total += res.Comparative
		summary.AnalyzedData = append(summary.AnalyzedData, domain.NewsArticle{
			Title:    h.Title,
			URL:      h.URL,
			Score:    res.Comparative,
			Category: category,
		})
	}

	summary.AvgScore = total / float64(len(headlines))
	return summary
}
