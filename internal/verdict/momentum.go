package verdict

import "math"

// MomentumScorer maps the day's percent change onto [-1, 1], saturating
// around a few percent either way.
type MomentumScorer struct{}

func (MomentumScorer) Name() string { return "momentum" }

func (MomentumScorer) Score(in Input) float64 {
	return clamp(math.Tanh(in.Snapshot.ChangePercent / 3))
}

// VolumeScorer is a coarse activity proxy: direction from the sign of the
// day's change, magnitude from how large the move was. Close data carries
// no real volume, so the move's size stands in for it.
type VolumeScorer struct{}

func (VolumeScorer) Name() string { return "volume" }

func (VolumeScorer) Score(in Input) float64 {
	direction := 1.0
	if in.Snapshot.Change < 0 {
		direction = -1.0
	}
	return clamp(direction * math.Tanh(math.Abs(in.Snapshot.ChangePercent)/2))
}
