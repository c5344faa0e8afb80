package verdict

import (
	"sentimentai/internal/sentiment"
)

// SentimentScorer re-reads the gathered headlines with a harsher scale than
// the news feed uses for display: each title's raw lexicon sum over 3,
// clamped, then averaged with recency decay so the freshest headlines
// dominate. Articles arrive newest first.
type SentimentScorer struct{}

func (SentimentScorer) Name() string { return "sentiment" }

func (SentimentScorer) Score(in Input) float64 {
	if len(in.Articles) == 0 {
		return 0
	}

	var weighted, totalWeight float64
	for i, article := range in.Articles {
		res := sentiment.Analyze(article.Title)
		score := clamp(res.Sum / 3)

		weight := 1 - 0.1*float64(i)
		if weight < 0.1 {
			weight = 0.1
		}
		weighted += weight * score
		totalWeight += weight
	}
	return clamp(weighted / totalWeight)
}
