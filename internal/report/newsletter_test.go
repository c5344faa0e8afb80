package report

import (
	"strings"
	"testing"

	"sentimentai/internal/domain"
)

func sampleAnalysis(verdict domain.Verdict) *domain.Analysis {
	return &domain.Analysis{
		Query:  "tcs",
		Symbol: "TCS.NS",
		Snapshot: &domain.PriceSnapshot{
			Name:          "Tata Consultancy Services",
			Price:         3521.55,
			Change:        42.1,
			ChangePercent: 1.21,
			Currency:      "INR",
			History:       []float64{3400, 3479.45, 3521.55},
		},
		Summary: &domain.SentimentSummary{
			AvgScore: 0.4,
			Positive: 2,
			AnalyzedData: []domain.NewsArticle{
				{Title: "TCS wins large deal", URL: "https://x/1", Category: domain.CategoryPositive},
				{Title: "IT hiring slows", URL: "https://x/2", Category: domain.CategoryNegative},
				{Title: "Board meets next week", URL: "https://x/3", Category: domain.CategoryNeutral},
				{Title: "Fourth headline", URL: "https://x/4", Category: domain.CategoryNeutral},
			},
		},
		Verdict: domain.VerdictResult{Verdict: verdict, VerdictClass: "verdict-bullish"},
	}
}

func TestRenderNewsletter(t *testing.T) {
	t.Parallel()

	html, err := RenderNewsletter("reader@example.com", sampleAnalysis(domain.VerdictBullish))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"BULLISH",
		"Tata Consultancy Services",
		"₹3521.55",
		"+1.21%",
		"reader@example.com",
		"TCS wins large deal",
		"#16a34a",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected rendered HTML to contain %q", want)
		}
	}
	if strings.Contains(html, "Fourth headline") {
		t.Fatal("expected catalysts capped at three")
	}
}

func TestRenderNewsletterBearishAccent(t *testing.T) {
	t.Parallel()

	analysis := sampleAnalysis(domain.VerdictBearish)
	analysis.Snapshot.Change = -42.1
	analysis.Snapshot.ChangePercent = -1.21

	html, err := RenderNewsletter("reader@example.com", analysis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "BEARISH") || !strings.Contains(html, "#dc2626") {
		t.Fatal("expected bearish accent")
	}
	if !strings.Contains(html, "(-1.21%)") {
		t.Fatal("expected signed negative change")
	}
}

func TestRenderNewsletterNoCatalysts(t *testing.T) {
	t.Parallel()

	analysis := sampleAnalysis(domain.VerdictNeutral)
	analysis.Summary.AnalyzedData = nil

	html, err := RenderNewsletter("reader@example.com", analysis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "No critical breaking news") {
		t.Fatal("expected empty-catalyst fallback copy")
	}
}

func TestFormatPriceUnknownCurrency(t *testing.T) {
	t.Parallel()

	if got := formatPrice(12.5, "JPY"); got != "12.50 JPY" {
		t.Fatalf("unexpected format: %s", got)
	}
}
