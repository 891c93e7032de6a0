package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/full2null/fallingsimulator/internal/config"
	"github.com/full2null/fallingsimulator/internal/sim"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleAirResistance(t *testing.T) {
	m := NewModel(nil, nil)
	m.cursor = fieldAirResistance

	before := m.cfg.AirResistance
	m.formKey(key(" "))
	if m.cfg.AirResistance == before {
		t.Error("space should toggle air resistance")
	}
}

func TestCycleFPSWrapsThroughSupportedSet(t *testing.T) {
	m := NewModel(nil, nil)
	m.cfg.FPS = 20

	seen := []int{}
	for i := 0; i < len(sim.SupportedFPS); i++ {
		m.cycleFPS(1)
		seen = append(seen, m.cfg.FPS)
	}
	if m.cfg.FPS != 20 {
		t.Errorf("cycling through all options should wrap back to 20, got %d", m.cfg.FPS)
	}
	for _, fps := range seen {
		if sim.Quality(fps) == "" {
			t.Errorf("fps %d has no quality label", fps)
		}
	}
}

func TestEditCommit(t *testing.T) {
	m := NewModel(nil, nil)
	m.cursor = fieldMass
	m.editing = true
	m.editBuf = "85"

	m.commitEdit()
	if m.cfg.Mass != 85 {
		t.Errorf("mass = %v, want 85", m.cfg.Mass)
	}
	if m.editing {
		t.Error("commit should leave edit mode")
	}
}

func TestEditRejectsGarbage(t *testing.T) {
	m := NewModel(nil, nil)
	m.cursor = fieldCd
	m.editing = true
	m.editBuf = "1.2.3"

	before := m.cfg.Cd
	m.commitEdit()
	if m.cfg.Cd != before {
		t.Error("unparseable input should leave the value unchanged")
	}
}

func TestDoneAndFailMessages(t *testing.T) {
	m := NewModel(nil, nil)
	m.screen = screenRunning

	m.Update(doneMsg{result: &sim.Result{
		Series:    &sim.Series{Times: []float64{0}, Values: []float64{70}},
		VideoPath: "video.mp4",
	}})
	if m.screen != screenDone {
		t.Fatalf("expected done screen, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "video.mp4") {
		t.Error("done view should show the video path")
	}

	m.screen = screenRunning
	m.Update(failMsg{err: errors.New("boom")})
	if m.screen != screenFailed {
		t.Fatalf("expected failed screen, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("failed view should show the error")
	}
}

func TestFormViewShowsQualityLabel(t *testing.T) {
	m := NewModel(nil, config.DefaultConfig())
	view := m.View()
	if !strings.Contains(view, "medium (30 fps)") {
		t.Errorf("form view should show the quality label, got:\n%s", view)
	}
}
