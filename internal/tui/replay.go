// Package tui replays a recorded rover trace in the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/rover/internal/mission"
	"github.com/san-kum/rover/internal/rover"
	"github.com/san-kum/rover/internal/viz"
)

type tickMsg time.Time

// Model steps through the trace of one rover. Frame n shows the pose after
// the first n steps.
type Model struct {
	bounds   rover.Bounds
	rover    mission.RoverResult
	index    int
	frame    int
	paused   bool
	interval time.Duration
}

func NewReplay(bounds rover.Bounds, rr mission.RoverResult, index, fps int) Model {
	if fps <= 0 {
		fps = 1
	}
	return Model{
		bounds:   bounds,
		rover:    rr,
		index:    index,
		interval: time.Second / time.Duration(fps),
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick(m.interval) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused && !m.Done() {
			m.frame++
		}
		return m, tick(m.interval)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "right", "l":
		m.paused = true
		if !m.Done() {
			m.frame++
		}
	case "left", "h":
		m.paused = true
		if m.frame > 0 {
			m.frame--
		}
	case "home", "g":
		m.frame = 0
	}
	return m, nil
}

func (m Model) Frame() int   { return m.frame }
func (m Model) Paused() bool { return m.paused }
func (m Model) Done() bool   { return m.frame >= len(m.rover.Trace) }

// Pose returns the rover pose at the current frame.
func (m Model) Pose() rover.Pose {
	if m.frame == 0 {
		return m.rover.Start
	}
	return m.rover.Trace[m.frame-1].To
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(viz.RoverStyle(m.index).Render(m.rover.Name))
	sb.WriteString(viz.Title.Render(fmt.Sprintf(" on %s", m.bounds)))
	sb.WriteString("\n\n")

	marker := viz.Marker{Pose: m.Pose(), Trail: m.rover.Trace[:m.frame]}
	sb.WriteString(viz.RenderGrid(m.bounds, []viz.Marker{marker}))
	sb.WriteString("\n\n")

	status := viz.StatusRunning.Render("playing")
	switch {
	case m.Done():
		status = viz.StatusRunning.Render("done")
	case m.paused:
		status = viz.StatusPaused.Render("paused")
	}
	fmt.Fprintf(&sb, "%s  step %d/%d  pose %s\n", status, m.frame, len(m.rover.Trace), m.Pose())

	progress := 1.0
	if n := len(m.rover.Trace); n > 0 {
		progress = float64(m.frame) / float64(n)
	}
	sb.WriteString(viz.ProgressBar(progress, 30))
	sb.WriteString("\n")

	if m.frame > 0 {
		s := m.rover.Trace[m.frame-1]
		line := fmt.Sprintf("%c  %s → %s", s.Command, s.From, s.To)
		if s.Rejected {
			line = viz.Rejected.Render(line + "  (rejected)")
		}
		sb.WriteString(line)
	}
	sb.WriteString("\n")
	sb.WriteString(viz.Separator(40))
	sb.WriteString("\n")
	sb.WriteString(viz.KeyHint.Render("space pause • ←/→ step • g restart • q quit"))
	return sb.String()
}

// Run starts the replay and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
