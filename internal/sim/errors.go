package sim

import "errors"

// Domain errors for simulation runs.
var (
	// ErrInvalidConfig indicates a duration or frame rate outside the
	// supported domain. Reported before any computation.
	ErrInvalidConfig = errors.New("sim: invalid configuration")

	// ErrDomain indicates physically invalid parameters (zero drag area,
	// non-positive mass) or a computed series containing NaN/Inf.
	ErrDomain = errors.New("sim: parameters outside physical domain")

	// ErrRender indicates a failure while plotting frames or encoding
	// the video artifact.
	ErrRender = errors.New("sim: render failed")
)

// Phase identifies the pipeline step a failure occurred in. A run moves
// Validating → Computing → Rendering → Encoding → Done; any failure
// aborts the remaining steps.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseComputing
	PhaseRendering
	PhaseEncoding
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseComputing:
		return "computing"
	case PhaseRendering:
		return "rendering"
	case PhaseEncoding:
		return "encoding"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// PipelineError wraps an error with the phase that produced it.
type PipelineError struct {
	Phase   Phase
	Wrapped error
}

func (e *PipelineError) Error() string {
	return e.Phase.String() + ": " + e.Wrapped.Error()
}

func (e *PipelineError) Unwrap() error {
	return e.Wrapped
}
