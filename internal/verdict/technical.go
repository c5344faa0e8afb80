// Package verdict turns a price snapshot and scored headlines into a
// BULLISH/BEARISH/NEUTRAL call via a weighted scorer ensemble.
package verdict

import "math"

const (
	regressionLR     = 0.2
	regressionEpochs = 30
	minHistoryPoints = 5
)

// TechnicalScorer fits a tiny linear model over the normalized close series
// and scores the one-step-ahead forecast against the last close.
type TechnicalScorer struct{}

func (TechnicalScorer) Name() string { return "technical" }

func (TechnicalScorer) Score(in Input) float64 {
	history := in.Snapshot.History
	if len(history) < minHistoryPoints {
		return 0
	}

	n := len(history)
	lo, hi := history[0], history[0]
	for _, v := range history[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, v := range history {
		xs[i] = float64(i) / float64(n-1)
		ys[i] = (v - lo) / span
	}

	// One weight plus bias, batch gradient descent from zero.
	var w, b float64
	for epoch := 0; epoch < regressionEpochs; epoch++ {
		var gradW, gradB float64
		for i := range xs {
			diff := w*xs[i] + b - ys[i]
			gradW += diff * xs[i]
			gradB += diff
		}
		w -= regressionLR * 2 / float64(n) * gradW
		b -= regressionLR * 2 / float64(n) * gradB
	}

	predicted := w*(1+1/float64(n)) + b
	last := ys[n-1]
	score := math.Tanh(50 * (predicted - last))
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
