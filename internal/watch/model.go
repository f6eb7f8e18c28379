// Package watch is the live-refreshing dashboard loop: run a
// monitoring cycle, render the fleet view, wait, repeat.
package watch

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/nodewatch/internal/engine"
)

// DefaultInterval is the refresh cadence when none is configured.
const DefaultInterval = 5 * time.Second

// Refresher runs one monitoring cycle and exposes the fleet view.
// *engine.Engine satisfies it; tests use a fake.
type Refresher interface {
	RunCycle(ctx context.Context)
	Dashboard() engine.Dashboard
}

// Model is the Bubble Tea model for the watch loop.
type Model struct {
	eng        Refresher
	interval   time.Duration
	dash       engine.Dashboard
	lastUpdate time.Time
	refreshing bool
	width      int
	quitting   bool
	err        error
}

// tickMsg signals that the next refresh is due.
type tickMsg time.Time

// refreshedMsg carries the fleet view from a completed cycle.
type refreshedMsg struct {
	dash engine.Dashboard
	at   time.Time
}

// NewModel creates a watch model refreshing every interval.
func NewModel(eng Refresher, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{
		eng:      eng,
		interval: interval,
		width:    80,
	}
}

// Init starts the first refresh immediately.
func (m Model) Init() tea.Cmd {
	return m.refresh()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if !m.refreshing {
				m.refreshing = true
				return m, m.refresh()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		if !m.refreshing {
			m.refreshing = true
			return m, m.refresh()
		}

	case refreshedMsg:
		m.refreshing = false
		m.dash = msg.dash
		m.lastUpdate = msg.at
		return m, m.tick()

	case error:
		m.err = msg
		return m, m.tick()
	}

	return m, nil
}

// refresh runs one cycle off the UI goroutine.
func (m Model) refresh() tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		eng.RunCycle(context.Background())
		return refreshedMsg{dash: eng.Dashboard(), at: time.Now()}
	}
}

// tick schedules the next refresh.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the watch loop and blocks until the user quits.
func Run(eng Refresher, interval time.Duration) error {
	p := tea.NewProgram(NewModel(eng, interval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch loop: %w", err)
	}
	return nil
}
