package sim

import (
	"context"
	"fmt"
	"os"
)

// FrameRenderer draws one animation frame per grid sample into dir and
// returns the printf-style filename pattern the frames were written
// under (e.g. dir/frame_%06d.png).
type FrameRenderer interface {
	RenderFrames(ctx context.Context, s *Series, cfg Config, dir string) (string, error)
}

// Encoder turns a rendered frame sequence into a video file at the
// given frame rate.
type Encoder interface {
	Encode(ctx context.Context, framePattern string, fps int, outPath string) error
}

// Simulator runs the full pipeline for one Parameters/Config pair:
// validate, compute the series, render frames, encode the video.
//
// Each run owns its own grid, series and frame directory. The output
// path is fixed per Simulator and overwritten on every run; callers
// must not run two simulations against the same path concurrently.
type Simulator struct {
	renderer FrameRenderer
	encoder  Encoder
	outPath  string
}

// DefaultVideoPath is the well-known artifact name used when no output
// path is configured.
const DefaultVideoPath = "video.mp4"

func New(renderer FrameRenderer, encoder Encoder, outPath string) *Simulator {
	if outPath == "" {
		outPath = DefaultVideoPath
	}
	return &Simulator{
		renderer: renderer,
		encoder:  encoder,
		outPath:  outPath,
	}
}

// Run executes one simulation. Errors are terminal for the invocation
// and carry the pipeline phase they occurred in; a failed run is
// restarted from scratch with corrected inputs, never resumed.
func (s *Simulator) Run(ctx context.Context, params Parameters, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &PipelineError{Phase: PhaseValidating, Wrapped: err}
	}
	if err := params.Validate(); err != nil {
		return nil, &PipelineError{Phase: PhaseValidating, Wrapped: err}
	}

	series, err := Compute(params, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseComputing, Wrapped: err}
	}

	framesDir, err := os.MkdirTemp("", "fallsim-frames-")
	if err != nil {
		return nil, &PipelineError{Phase: PhaseRendering, Wrapped: fmt.Errorf("%w: %v", ErrRender, err)}
	}
	defer os.RemoveAll(framesDir)

	pattern, err := s.renderer.RenderFrames(ctx, series, cfg, framesDir)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseRendering, Wrapped: fmt.Errorf("%w: %v", ErrRender, err)}
	}

	if err := s.encoder.Encode(ctx, pattern, cfg.FPS, s.outPath); err != nil {
		return nil, &PipelineError{Phase: PhaseEncoding, Wrapped: fmt.Errorf("%w: %v", ErrRender, err)}
	}

	return &Result{Series: series, VideoPath: s.outPath}, nil
}
