// Package encode turns a rendered frame sequence into a video file.
//
// ffmpeg is treated as an opaque external collaborator: it must be on
// PATH, and any ffmpeg failure surfaces as an error to the caller.
package encode

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// FFmpeg encodes PNG frame sequences into H.264 MP4 with the ffmpeg
// binary.
type FFmpeg struct {
	// Binary overrides the executable name, mainly for tests.
	Binary string
}

func NewFFmpeg() *FFmpeg {
	return &FFmpeg{Binary: "ffmpeg"}
}

// Encode runs ffmpeg over the frame pattern and writes the result to
// outPath. The encode goes to a temporary file in the target directory
// and is renamed into place only on success, so a failed run never
// leaves a half-written artifact behind.
func (e *FFmpeg) Encode(ctx context.Context, framePattern string, fps int, outPath string) error {
	if _, err := exec.LookPath(e.Binary); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", e.Binary, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".fallsim-*.mp4")
	if err != nil {
		return fmt.Errorf("cannot create temp output: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	cmd := exec.CommandContext(ctx, e.Binary, e.args(framePattern, fps, tmpPath)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", e.Binary, err, tail(out))
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("cannot move video into place: %w", err)
	}
	return nil
}

func (e *FFmpeg) args(framePattern string, fps int, outPath string) []string {
	return []string{
		"-y",
		"-framerate", fmt.Sprintf("%d", fps),
		"-i", framePattern,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		outPath,
	}
}

// tail keeps error output short enough to embed in an error message.
func tail(out []byte) string {
	const max = 400
	if len(out) > max {
		out = out[len(out)-max:]
	}
	return string(out)
}
