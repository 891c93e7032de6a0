package sim

import (
	"fmt"
	"math"
)

// Mode selects which quantity the simulation plots.
type Mode string

const (
	ModeVelocity Mode = "velocity"
	ModeHeight   Mode = "height"
)

// Parameters holds the physical inputs for one run. Values are copied
// in and never mutated.
type Parameters struct {
	Cd     float64 // drag coefficient, dimensionless
	Area   float64 // cross-sectional area, m²
	Height float64 // initial height, m
	Mass   float64 // kg
}

// Validate reports ErrDomain for parameter sets that make the drag
// math undefined (division by zero in the terminal velocity) or are
// otherwise unphysical.
func (p Parameters) Validate() error {
	switch {
	case math.IsNaN(p.Cd) || math.IsNaN(p.Area) || math.IsNaN(p.Height) || math.IsNaN(p.Mass):
		return fmt.Errorf("%w: NaN parameter", ErrDomain)
	case p.Cd <= 0:
		return fmt.Errorf("%w: drag coefficient must be positive, got %g", ErrDomain, p.Cd)
	case p.Area <= 0:
		return fmt.Errorf("%w: cross-sectional area must be positive, got %g", ErrDomain, p.Area)
	case p.Mass <= 0:
		return fmt.Errorf("%w: mass must be positive, got %g", ErrDomain, p.Mass)
	case p.Height < 0:
		return fmt.Errorf("%w: initial height must be non-negative, got %g", ErrDomain, p.Height)
	}
	return nil
}

// SupportedFPS lists the accepted frame rates.
var SupportedFPS = []int{20, 30, 60}

// Config holds the run settings supplied alongside Parameters.
type Config struct {
	AirResistance bool
	Mode          Mode
	Seconds       int
	FPS           int
}

// Validate reports ErrInvalidConfig for settings outside the supported
// domain. It runs before any computation.
func (c Config) Validate() error {
	if c.Seconds < 1 {
		return fmt.Errorf("%w: duration must be at least 1s, got %d", ErrInvalidConfig, c.Seconds)
	}
	supported := false
	for _, fps := range SupportedFPS {
		if c.FPS == fps {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: fps must be one of %v, got %d", ErrInvalidConfig, SupportedFPS, c.FPS)
	}
	if c.Mode != ModeVelocity && c.Mode != ModeHeight {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	return nil
}

// Quality maps a frame rate to its user-facing label. Unrecognized
// values fall through to "high", matching the selector this tool grew
// out of; Validate rejects them before a run ever sees one.
func Quality(fps int) string {
	switch fps {
	case 20:
		return "low"
	case 30:
		return "medium"
	}
	return "high"
}

// Series is one evaluated run: a uniform time grid and the selected
// quantity at each sample. Produced once per run and then read-only.
type Series struct {
	Times  []float64
	Values []float64
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.Times) }

// IsValid reports whether every value is finite.
func (s *Series) IsValid() bool {
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Result is the output of a completed run.
type Result struct {
	Series    *Series
	VideoPath string
}
