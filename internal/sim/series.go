package sim

import (
	"fmt"

	"github.com/full2null/fallingsimulator/internal/kinematics"
)

// TimeGrid builds fps·seconds+1 uniformly spaced samples over
// [0, seconds]. The first sample is exactly 0 and the last exactly
// seconds.
func TimeGrid(seconds, fps int) []float64 {
	n := fps*seconds + 1
	ts := make([]float64, n)
	for i := 1; i < n-1; i++ {
		ts[i] = float64(i) / float64(fps)
	}
	ts[n-1] = float64(seconds)
	return ts
}

// Compute validates the inputs and evaluates the selected quantity over
// the full time grid in one pass. The (AirResistance, Mode) pair picks
// one of the four closed-form solutions.
func Compute(params Parameters, cfg Config) (*Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ts := TimeGrid(cfg.Seconds, cfg.FPS)

	var ys []float64
	switch {
	case cfg.AirResistance && cfg.Mode == ModeVelocity:
		ys = kinematics.DragVelocityOver(params.Cd, params.Area, params.Mass, ts)
	case cfg.AirResistance && cfg.Mode == ModeHeight:
		ys = kinematics.DragHeightOver(params.Cd, params.Area, params.Height, params.Mass, ts)
	case cfg.Mode == ModeVelocity:
		ys = kinematics.VelocityOver(ts)
	default:
		ys = kinematics.HeightOver(params.Height, ts)
	}

	s := &Series{Times: ts, Values: ys}
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: computed series contains NaN or Inf", ErrDomain)
	}
	return s, nil
}
