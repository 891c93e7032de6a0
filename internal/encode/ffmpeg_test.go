package encode

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArgs(t *testing.T) {
	e := NewFFmpeg()
	args := e.args("/tmp/frames/frame_%06d.png", 30, "video.mp4")

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"-y",
		"-framerate 30",
		"-i /tmp/frames/frame_%06d.png",
		"-c:v libx264",
		"-pix_fmt yuv420p",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
	if args[len(args)-1] != "video.mp4" {
		t.Errorf("output path must be the final argument, got %q", args[len(args)-1])
	}
}

func TestEncodeMissingBinary(t *testing.T) {
	e := &FFmpeg{Binary: "fallsim-no-such-encoder"}
	err := e.Encode(context.Background(), "frame_%06d.png", 30, filepath.Join(t.TempDir(), "v.mp4"))
	if err == nil {
		t.Fatal("expected error for missing encoder binary")
	}
	if !strings.Contains(err.Error(), "not found on PATH") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEncodeFailureLeavesNoArtifact(t *testing.T) {
	// Use `false` as the encoder: it exists on PATH and always fails,
	// standing in for a broken ffmpeg run.
	if _, err := os.Stat("/bin/false"); err != nil {
		t.Skip("/bin/false not available")
	}

	dir := t.TempDir()
	out := filepath.Join(dir, "video.mp4")

	e := &FFmpeg{Binary: "false"}
	if err := e.Encode(context.Background(), "frame_%06d.png", 30, out); err == nil {
		t.Fatal("expected encode failure")
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("failed encode must not leave an output artifact")
	}
	leftovers, err := filepath.Glob(filepath.Join(dir, ".fallsim-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestTail(t *testing.T) {
	long := strings.Repeat("x", 1000) + "END"
	got := tail([]byte(long))
	if len(got) > 403 {
		t.Errorf("tail returned %d bytes", len(got))
	}
	if !strings.HasSuffix(got, "END") {
		t.Error("tail must keep the end of the output")
	}
}
