package news

import (
	"context"
	"fmt"
	"math"
	"testing"

	"go.opentelemetry.io/otel/trace"

	"sentimentai/internal/domain"
	"sentimentai/internal/provider"
)

type stubSource struct {
	headlines []provider.Headline
	err       error
	queries   []string
}

func (s *stubSource) FetchHeadlines(ctx context.Context, query string) ([]provider.Headline, error) {
	s.queries = append(s.queries, query)
	return s.headlines, s.err
}

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

func TestGatherFirstStageWins(t *testing.T) {
	t.Parallel()

	gnews := &stubSource{headlines: []provider.Headline{
		{Title: "Reliance surges on record profit", URL: "https://x/1"},
		{Title: "Company schedules board meeting", URL: "https://x/2"},
	}}
	mediastack := &stubSource{}
	newsapi := &stubSource{}

	a := NewAcquirer(gnews, mediastack, newsapi, testTracer())
	summary := a.Gather(context.Background(), "Reliance")

	if len(gnews.queries) != 1 || gnews.queries[0] != "Reliance India" {
		t.Fatalf("unexpected gnews queries: %v", gnews.queries)
	}
	if len(mediastack.queries) != 0 || len(newsapi.queries) != 0 {
		t.Fatal("expected later stages to be skipped")
	}
	if summary.Positive != 1 || summary.Neutral != 1 || summary.Negative != 0 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.AvgScore <= 0 {
		t.Fatalf("expected positive average, got %v", summary.AvgScore)
	}
}

func TestGatherCascadeOrdering(t *testing.T) {
	t.Parallel()

	gnews := &stubSource{err: fmt.Errorf("quota: %w", provider.ErrEmptyResult)}
	mediastack := &stubSource{err: fmt.Errorf("down: %w", provider.ErrEmptyResult)}
	newsapi := &stubSource{headlines: []provider.Headline{
		{Title: "Sensex falls amid global fears"},
	}}

	a := NewAcquirer(gnews, mediastack, newsapi, testTracer())
	summary := a.Gather(context.Background(), "Obscure Co")

	if len(gnews.queries) != 1 || len(mediastack.queries) != 1 || len(newsapi.queries) != 1 {
		t.Fatalf("unexpected stage calls: gnews=%v mediastack=%v newsapi=%v",
			gnews.queries, mediastack.queries, newsapi.queries)
	}
	if mediastack.queries[0] != "Obscure Co" {
		t.Fatalf("unexpected mediastack query: %s", mediastack.queries[0])
	}
	if newsapi.queries[0] != "Obscure Co India stock" {
		t.Fatalf("unexpected newsapi query: %s", newsapi.queries[0])
	}
	if summary.Negative != 1 {
		t.Fatalf("expected one negative article, got %+v", summary)
	}
}

func TestGatherMacroStageReusesGNews(t *testing.T) {
	t.Parallel()

	calls := 0
	gnews := &flakySource{fn: func(query string) ([]provider.Headline, error) {
		calls++
		if query == macroQuery {
			return []provider.Headline{{Title: "Nifty steady ahead of budget"}}, nil
		}
		return nil, provider.ErrEmptyResult
	}}
	empty := &stubSource{err: provider.ErrEmptyResult}

	a := NewAcquirer(gnews, empty, empty, testTracer())
	summary := a.Gather(context.Background(), "Ghost Ltd")

	if calls != 2 {
		t.Fatalf("expected gnews consulted twice, got %d", calls)
	}
	if len(summary.AnalyzedData) != 1 || summary.AnalyzedData[0].Title != "Nifty steady ahead of budget" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

type flakySource struct {
	fn func(query string) ([]provider.Headline, error)
}

func (f *flakySource) FetchHeadlines(ctx context.Context, query string) ([]provider.Headline, error) {
	return f.fn(query)
}

func TestGatherExhaustedCascadePlaceholder(t *testing.T) {
	t.Parallel()

	down := &stubSource{err: provider.ErrEmptyResult}
	a := NewAcquirer(down, down, down, testTracer())
	summary := a.Gather(context.Background(), "Nothing Inc")

	if summary.AvgScore != 0 {
		t.Fatalf("expected neutral average, got %v", summary.AvgScore)
	}
	if summary.Neutral != 1 || summary.Positive != 0 || summary.Negative != 0 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if len(summary.AnalyzedData) != 1 || summary.AnalyzedData[0].Title != placeholderTitle {
		t.Fatalf("expected placeholder article, got %+v", summary.AnalyzedData)
	}
	if summary.DisplayConfidence() != 50 {
		t.Fatalf("expected floor confidence, got %v", summary.DisplayConfidence())
	}
}

func TestGatherDropsRemovedTitles(t *testing.T) {
	t.Parallel()

	gnews := &stubSource{headlines: []provider.Headline{
		{Title: "[Removed]"},
		{Title: "[Removed]"},
	}}
	mediastack := &stubSource{headlines: []provider.Headline{
		{Title: "Markets rally on strong earnings"},
	}}

	a := NewAcquirer(gnews, mediastack, &stubSource{}, testTracer())
	summary := a.Gather(context.Background(), "Reliance")

	if len(mediastack.queries) != 1 {
		t.Fatal("expected fallthrough to mediastack after tombstones filtered")
	}
	if len(summary.AnalyzedData) != 1 || summary.AnalyzedData[0].Category != domain.CategoryPositive {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestSummarizeAverage(t *testing.T) {
	t.Parallel()

	summary := summarize([]provider.Headline{
		{Title: "strong growth"},   // sum 4 over 2 tokens => 2
		{Title: "board meeting"},   // 0
		{Title: "fraud and chaos"}, // -7 over 3 tokens
	})

	want := (2.0 + 0 + (-7.0 / 3.0)) / 3.0
	if math.Abs(summary.AvgScore-want) > 1e-9 {
		t.Fatalf("expected avg %v, got %v", want, summary.AvgScore)
	}
	if summary.Positive != 1 || summary.Neutral != 1 || summary.Negative != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
}
