package verdict

import (
	"log"
	"sync"

	"sentimentai/internal/domain"
)

const (
	bullishThreshold = 0.3
	bearishThreshold = -0.3
)

// Input carries everything a scorer may look at for one run.
type Input struct {
	Snapshot *domain.PriceSnapshot
	Articles []domain.NewsArticle
}

// Scorer judges one signal on [-1, 1].
type Scorer interface {
	Name() string
	Score(in Input) float64
}

type weightedScorer struct {
	scorer Scorer
	weight float64
}

// Combiner runs its scorers concurrently and blends their outputs into a
// composite signal. A panicking scorer is contained and forces a NEUTRAL
// call rather than taking the run down.
type Combiner struct {
	scorers []weightedScorer
}

// NewCombiner builds the standard ensemble: trend first, then momentum,
// news and the activity proxy.
func NewCombiner() *Combiner {
	return &Combiner{scorers: []weightedScorer{
		{TechnicalScorer{}, 0.40},
		{MomentumScorer{}, 0.25},
		{SentimentScorer{}, 0.20},
		{VolumeScorer{}, 0.15},
	}}
}

// Combine produces a verdict for in. A nil snapshot short-circuits to
// NEUTRAL without invoking any scorer.
func (c *Combiner) Combine(in Input) domain.VerdictResult {
	if in.Snapshot == nil {
		return verdictFor(0)
	}

	scores := make([]float64, len(c.scorers))
	panicked := false

	var wg sync.WaitGroup
	var mu sync.Mutex
	for i, ws := range c.scorers {
		wg.Add(1)
		go func(i int, ws weightedScorer) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("verdict: scorer %s panicked: %v", ws.scorer.Name(), r)
					mu.Lock()
					panicked = true
					mu.Unlock()
				}
			}()
			scores[i] = ws.scorer.Score(in)
		}(i, ws)
	}
	wg.Wait()

	if panicked {
		return verdictFor(0)
	}

	var composite float64
	for i, ws := range c.scorers {
		composite += ws.weight * scores[i]
	}
	return verdictFor(composite)
}

func verdictFor(composite float64) domain.VerdictResult {
	switch {
	case composite > bullishThreshold:
		return domain.VerdictResult{Verdict: domain.VerdictBullish, VerdictClass: "verdict-bullish"}
	case composite < bearishThreshold:
		return domain.VerdictResult{Verdict: domain.VerdictBearish, VerdictClass: "verdict-bearish"}
	default:
		return domain.VerdictResult{Verdict: domain.VerdictNeutral, VerdictClass: "verdict-neutral"}
	}
}
