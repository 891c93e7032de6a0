// Package tui provides the interactive form that drives a simulation
// run: edit the physical parameters, start a run, watch the result.
//
// The form is a thin collaborator around the core: it only assembles a
// Parameters/Config pair, hands it to the simulator, and displays the
// outcome.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/full2null/fallingsimulator/internal/config"
	"github.com/full2null/fallingsimulator/internal/sim"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type screen int

const (
	screenForm screen = iota
	screenRunning
	screenDone
	screenFailed
)

// field indices, in display order
const (
	fieldCd = iota
	fieldArea
	fieldHeight
	fieldMass
	fieldAirResistance
	fieldMode
	fieldSeconds
	fieldFPS
	fieldCount
)

var fieldNames = [fieldCount]string{
	"drag coefficient",
	"area (m²)",
	"height (m)",
	"mass (kg)",
	"air resistance",
	"plot",
	"duration (s)",
	"quality",
}

type doneMsg struct{ result *sim.Result }

type failMsg struct{ err error }

// Model is the bubbletea model for the simulator form.
type Model struct {
	simulator *sim.Simulator

	screen  screen
	cursor  int
	editing bool
	editBuf string

	cfg *config.Config

	result *sim.Result
	runErr error
}

func NewModel(simulator *sim.Simulator, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Model{simulator: simulator, cfg: cfg}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case doneMsg:
		m.screen = screenDone
		m.result = msg.result
		return m, nil
	case failMsg:
		m.screen = screenFailed
		m.runErr = msg.err
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenForm:
		return m.formKey(msg)
	case screenRunning:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	default: // done or failed
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r", "enter":
			m.screen = screenForm
			m.result = nil
			m.runErr = nil
		}
		return m, nil
	}
}

func (m *Model) formKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			m.commitEdit()
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < fieldCount-1 {
			m.cursor++
		}
	case "enter", " ":
		switch m.cursor {
		case fieldAirResistance:
			m.cfg.AirResistance = !m.cfg.AirResistance
		case fieldMode:
			m.cycleMode()
		case fieldFPS:
			m.cycleFPS(1)
		default:
			m.editing = true
			m.editBuf = m.fieldValue(m.cursor)
		}
	case "left", "h":
		if m.cursor == fieldFPS {
			m.cycleFPS(-1)
		}
	case "right", "l":
		if m.cursor == fieldFPS {
			m.cycleFPS(1)
		}
	case "s":
		m.screen = screenRunning
		return m, m.runSimulation()
	}
	return m, nil
}

func (m *Model) commitEdit() {
	defer func() {
		m.editing = false
		m.editBuf = ""
	}()

	val, err := strconv.ParseFloat(m.editBuf, 64)
	if err != nil {
		return
	}
	switch m.cursor {
	case fieldCd:
		m.cfg.Cd = val
	case fieldArea:
		m.cfg.Area = val
	case fieldHeight:
		m.cfg.Height = val
	case fieldMass:
		m.cfg.Mass = val
	case fieldSeconds:
		m.cfg.Seconds = int(val)
	}
}

func (m *Model) cycleMode() {
	if m.cfg.Mode == sim.ModeVelocity {
		m.cfg.Mode = sim.ModeHeight
	} else {
		m.cfg.Mode = sim.ModeVelocity
	}
}

func (m *Model) cycleFPS(dir int) {
	idx := 0
	for i, fps := range sim.SupportedFPS {
		if fps == m.cfg.FPS {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(sim.SupportedFPS)) % len(sim.SupportedFPS)
	m.cfg.FPS = sim.SupportedFPS[idx]
}

func (m *Model) fieldValue(i int) string {
	switch i {
	case fieldCd:
		return strconv.FormatFloat(m.cfg.Cd, 'g', -1, 64)
	case fieldArea:
		return strconv.FormatFloat(m.cfg.Area, 'g', -1, 64)
	case fieldHeight:
		return strconv.FormatFloat(m.cfg.Height, 'g', -1, 64)
	case fieldMass:
		return strconv.FormatFloat(m.cfg.Mass, 'g', -1, 64)
	case fieldAirResistance:
		if m.cfg.AirResistance {
			return "on"
		}
		return "off"
	case fieldMode:
		return string(m.cfg.Mode)
	case fieldSeconds:
		return strconv.Itoa(m.cfg.Seconds)
	case fieldFPS:
		return fmt.Sprintf("%s (%d fps)", sim.Quality(m.cfg.FPS), m.cfg.FPS)
	}
	return ""
}

func (m *Model) runSimulation() tea.Cmd {
	params, cfg := m.cfg.Split()
	simulator := m.simulator
	return func() tea.Msg {
		res, err := simulator.Run(context.Background(), params, cfg)
		if err != nil {
			return failMsg{err: err}
		}
		return doneMsg{result: res}
	}
}

func (m *Model) View() string {
	switch m.screen {
	case screenForm:
		return m.viewForm()
	case screenRunning:
		return m.viewRunning()
	case screenDone:
		return m.viewDone()
	case screenFailed:
		return m.viewFailed()
	}
	return ""
}

func (m *Model) viewForm() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + cyan.Render("f a l l s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i := 0; i < fieldCount; i++ {
		val := m.fieldValue(i)
		if m.editing && i == m.cursor {
			val = m.editBuf + "▋"
		}
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-18s", fieldNames[i])) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-18s", fieldNames[i])) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter edit/toggle   s simulate   q quit") + "\n")
	return b.String()
}

func (m *Model) viewRunning() string {
	var b strings.Builder
	b.WriteString("\n\n      " + cyan.Render("simulating...") + "\n")
	b.WriteString(dim.Render("      computing series, rendering frames, encoding video") + "\n")
	return b.String()
}

func (m *Model) viewDone() string {
	var b strings.Builder
	b.WriteString("\n\n      " + green.Render("simulation complete") + "\n\n")
	if m.result != nil {
		b.WriteString("      " + dim.Render("samples  ") + white.Render(strconv.Itoa(m.result.Series.Len())) + "\n")
		b.WriteString("      " + dim.Render("video    ") + white.Render(m.result.VideoPath) + "\n")
	}
	b.WriteString("\n" + dim.Render("      r back to form   q quit") + "\n")
	return b.String()
}

func (m *Model) viewFailed() string {
	var b strings.Builder
	b.WriteString("\n\n      " + red.Render("simulation failed") + "\n\n")
	if m.runErr != nil {
		b.WriteString("      " + white.Render(m.runErr.Error()) + "\n")
	}
	b.WriteString("\n" + dim.Render("      r correct inputs   q quit") + "\n")
	return b.String()
}
