package domain

import "time"

// PriceSnapshot is the result of one price-history acquisition. History is
// chronological (oldest first) and capped at 30 closes; Price always equals
// the final history element.
type PriceSnapshot struct {
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Currency      string    `json:"currency"`
	History       []float64 `json:"history"`
}

type SentimentCategory string

const (
	CategoryPositive SentimentCategory = "Positive"
	CategoryNegative SentimentCategory = "Negative"
	CategoryNeutral  SentimentCategory = "Neutral"
)

// CategoryForScore buckets a comparative lexicon score.
func CategoryForScore(score float64) SentimentCategory {
	if score > 0.05 {
		return CategoryPositive
	}
	if score < -0.05 {
		return CategoryNegative
	}
	return CategoryNeutral
}

type NewsArticle struct {
	Title    string            `json:"title"`
	URL      string            `json:"url"`
	Score    float64           `json:"score"`
	Category SentimentCategory `json:"category"`
}

// SentimentSummary aggregates scored articles, most recent first.
// Positive+Negative+Neutral always equals len(AnalyzedData).
type SentimentSummary struct {
	AvgScore     float64       `json:"avg_score"`
	Positive     int           `json:"positive"`
	Negative     int           `json:"negative"`
	Neutral      int           `json:"neutral"`
	AnalyzedData []NewsArticle `json:"analyzed_data"`
}

// DisplayConfidence derives the headline confidence figure shown alongside a
// verdict. It comes from the news average, not the ensemble score, so it can
// disagree with the verdict in direction.
func (s *SentimentSummary) DisplayConfidence() float64 {
	if s == nil {
		return 50
	}
	score := s.AvgScore
	if score < 0 {
		score = -score
	}
	confidence := score*100*5 + 50
	if confidence > 99 {
		confidence = 99
	}
	return confidence
}

type Verdict string

const (
	VerdictBullish Verdict = "BULLISH"
	VerdictBearish Verdict = "BEARISH"
	VerdictNeutral Verdict = "NEUTRAL"
)

type VerdictResult struct {
	Verdict      Verdict `json:"verdict"`
	VerdictClass string  `json:"verdict_class"`
}

// Analysis is the full output of one pipeline run for a single query.
type Analysis struct {
	Query     string            `json:"query"`
	Symbol    string            `json:"symbol"`
	Snapshot  *PriceSnapshot    `json:"snapshot"`
	Summary   *SentimentSummary `json:"summary"`
	Verdict   VerdictResult     `json:"verdict"`
	FetchedAt time.Time         `json:"fetched_at"`
}

type SubscriptionStatus string

const (
	StatusPending   SubscriptionStatus = "pending"
	StatusDelivered SubscriptionStatus = "delivered"
	StatusFailed    SubscriptionStatus = "failed"
)

// Subscription is one newsletter delivery request: a rendered HTML payload
// waiting for the dispatcher to hand it to the email provider.
type Subscription struct {
	ID          int64              `json:"id"`
	Email       string             `json:"email"`
	StockName   string             `json:"stock_name"`
	HTMLPayload string             `json:"-"`
	Status      SubscriptionStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	DeliveredAt *time.Time         `json:"delivered_at,omitempty"`
}
