package watch

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/nodewatch/internal/alert"
	"github.com/rileyhilliard/nodewatch/internal/engine"
	"github.com/rileyhilliard/nodewatch/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRefresher counts cycles and returns a canned dashboard.
type fakeRefresher struct {
	cycles int
	dash   engine.Dashboard
}

func (f *fakeRefresher) RunCycle(context.Context) { f.cycles++ }

func (f *fakeRefresher) Dashboard() engine.Dashboard { return f.dash }

func sampleDashboard() engine.Dashboard {
	check := health.Check{NodeID: "web-1", Status: health.StatusHealthy}
	return engine.Dashboard{
		TotalNodes:     2,
		HealthyNodes:   1,
		CriticalAlerts: 1,
		ActiveAlerts: []alert.Alert{
			alert.New("db-1", alert.TypeServiceDown, alert.SeverityCritical, "Node db-1 is unreachable"),
		},
		Nodes: []engine.NodeSummary{
			{NodeID: "db-1"},
			{NodeID: "web-1", Check: &check},
		},
	}
}

func TestModel_InitRunsFirstCycle(t *testing.T) {
	f := &fakeRefresher{dash: sampleDashboard()}
	m := NewModel(f, time.Second)

	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	refreshed, ok := msg.(refreshedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, f.cycles)
	assert.Equal(t, 2, refreshed.dash.TotalNodes)
}

func TestModel_RefreshedSchedulesNextTick(t *testing.T) {
	m := NewModel(&fakeRefresher{}, time.Second)
	m.refreshing = true

	updated, cmd := m.Update(refreshedMsg{dash: sampleDashboard(), at: time.Now()})
	model := updated.(Model)

	assert.False(t, model.refreshing)
	assert.Equal(t, 2, model.dash.TotalNodes)
	assert.NotNil(t, cmd)
}

func TestModel_TickStartsRefresh(t *testing.T) {
	f := &fakeRefresher{dash: sampleDashboard()}
	m := NewModel(f, time.Second)

	updated, cmd := m.Update(tickMsg(time.Now()))
	model := updated.(Model)

	assert.True(t, model.refreshing)
	require.NotNil(t, cmd)

	msg := cmd()
	_, ok := msg.(refreshedMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, f.cycles)
}

func TestModel_TickWhileRefreshingIsIgnored(t *testing.T) {
	f := &fakeRefresher{}
	m := NewModel(f, time.Second)
	m.refreshing = true

	_, cmd := m.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.Zero(t, f.cycles)
}

func TestModel_QuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}
	for _, key := range keys {
		m := NewModel(&fakeRefresher{}, time.Second)
		updated, cmd := m.Update(key)
		model := updated.(Model)
		assert.True(t, model.quitting, key.String())
		assert.NotNil(t, cmd, key.String())
	}
}

func TestView_RendersFleet(t *testing.T) {
	m := NewModel(&fakeRefresher{}, time.Second)
	m.dash = sampleDashboard()
	m.lastUpdate = time.Now()

	out := m.View()
	assert.Contains(t, out, "nodewatch")
	assert.Contains(t, out, "1/2 healthy")
	assert.Contains(t, out, "web-1")
	assert.Contains(t, out, "db-1")
	assert.Contains(t, out, "Active alerts")
	assert.Contains(t, out, "Node db-1 is unreachable")
}

func TestView_FirstCycle(t *testing.T) {
	m := NewModel(&fakeRefresher{}, time.Second)
	assert.Contains(t, m.View(), "first cycle")
}

func TestView_QuittingIsEmpty(t *testing.T) {
	m := NewModel(&fakeRefresher{}, time.Second)
	m.quitting = true
	assert.Empty(t, m.View())
}
