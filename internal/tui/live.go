// Package tui provides a live terminal view of a running scenario.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robolab/slambot/internal/scenario"
	"github.com/robolab/slambot/internal/trajectory"
	"github.com/robolab/slambot/internal/viz"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// RunnerFactory builds a fresh runner; the live view calls it once at start
// and again on every reset, so a seeded factory replays the same run.
type RunnerFactory func() (*scenario.Runner, error)

// Model steps the scenario runner on a timer and renders the world grid.
type Model struct {
	newRunner RunnerFactory
	runner    *scenario.Runner
	fps       int
	paused    bool
	done      bool
	last      trajectory.Step
	err       error
}

func NewModel(newRunner RunnerFactory, fps int) (Model, error) {
	if fps <= 0 {
		fps = 10
	}
	runner, err := newRunner()
	if err != nil {
		return Model{}, err
	}
	return Model{newRunner: newRunner, runner: runner, fps: fps}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			runner, err := m.newRunner()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.runner = runner
			m.paused = false
			m.done = false
			m.last = trajectory.Step{}
			m.err = nil
		}

	case TickMsg:
		if !m.paused && !m.done && m.err == nil {
			step, err := m.runner.Step()
			if err != nil {
				m.err = err
			} else {
				m.last = step
			}
			if m.runner.StepsDone() >= m.runner.StepsTotal() {
				m.done = true
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	s := titleStyle.Render("slambot live") + "\n"
	s += viz.RenderRobot(m.runner.Robot())
	s += "\n"

	status := "running"
	switch {
	case m.err != nil:
		status = "error: " + m.err.Error()
	case m.done:
		status = "done"
	case m.paused:
		status = "paused"
	}
	s += labelStyle.Render("step ") +
		fmt.Sprintf("%d/%d  ", m.runner.StepsDone(), m.runner.StepsTotal()) +
		labelStyle.Render("sensed ") +
		fmt.Sprintf("%d  ", len(m.last.Measurements)) +
		statusStyle.Render(status) + "\n"
	s += helpStyle.Render("space pause · r reset · q quit") + "\n"

	return s
}

// Run drives the live view until the user quits.
func Run(newRunner RunnerFactory, fps int) error {
	m, err := NewModel(newRunner, fps)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
