package domain

import "testing"

func TestCategoryForScoreBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  SentimentCategory
	}{
		{0.05, CategoryNeutral},
		{0.0500001, CategoryPositive},
		{-0.05, CategoryNeutral},
		{-0.0500001, CategoryNegative},
		{0, CategoryNeutral},
	}
	for _, tc := range tests {
		if got := CategoryForScore(tc.score); got != tc.want {
			t.Fatalf("score %v: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestDisplayConfidence(t *testing.T) {
	s := &SentimentSummary{AvgScore: 0.02}
	if got := s.DisplayConfidence(); got != 60 {
		t.Fatalf("expected 60, got %f", got)
	}

	s = &SentimentSummary{AvgScore: -0.5}
	if got := s.DisplayConfidence(); got != 99 {
		t.Fatalf("expected cap at 99, got %f", got)
	}

	var nilSummary *SentimentSummary
	if got := nilSummary.DisplayConfidence(); got != 50 {
		t.Fatalf("expected nil baseline 50, got %f", got)
	}
}
