package alert

import (
	"context"
	"fmt"
	"testing"

	"github.com/rileyhilliard/nodewatch/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	name string
	err  error
	sent []Alert
}

func (f *fakeNotifier) Name() string { return f.name }

func (f *fakeNotifier) Send(ctx context.Context, a Alert) error {
	f.sent = append(f.sent, a)
	return f.err
}

func TestManager_Raise(t *testing.T) {
	store := NewStore()
	console := &fakeNotifier{name: "console"}
	webhook := &fakeNotifier{name: "webhook"}
	m := NewManager(store, []Notifier{console, webhook}, false)

	a := New("web-1", TypeHighCPU, SeverityCritical, "Critical CPU usage: 92.0%")
	raised := m.Raise(context.Background(), a)

	assert.True(t, raised)

	stored, ok := store.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, a, stored)

	require.Len(t, console.sent, 1)
	require.Len(t, webhook.sent, 1)
	assert.Equal(t, a.ID, console.sent[0].ID)
}

func TestManager_SuppressesSimilarAlerts(t *testing.T) {
	store := NewStore()
	console := &fakeNotifier{name: "console"}
	m := NewManager(store, []Notifier{console}, false)

	first := New("web-1", TypeHighCPU, SeverityCritical, "Critical CPU usage: 92.0%")
	second := New("web-1", TypeHighCPU, SeverityWarning, "High CPU usage: 89.0%")

	assert.True(t, m.Raise(context.Background(), first))
	assert.False(t, m.Raise(context.Background(), second))

	assert.Len(t, store.All(), 1)
	assert.Len(t, console.sent, 1)
}

func TestManager_RaisesAgainAfterResolve(t *testing.T) {
	store := NewStore()
	m := NewManager(store, nil, false)

	first := New("web-1", TypeHighCPU, SeverityCritical, "x")
	require.True(t, m.Raise(context.Background(), first))
	require.NoError(t, store.Resolve(first.ID))

	second := New("web-1", TypeHighCPU, SeverityCritical, "y")
	assert.True(t, m.Raise(context.Background(), second))
	assert.Len(t, store.All(), 2)
}

func TestManager_DifferentTypesBothRaise(t *testing.T) {
	store := NewStore()
	m := NewManager(store, nil, false)

	assert.True(t, m.Raise(context.Background(), New("web-1", TypeHighCPU, SeverityWarning, "x")))
	assert.True(t, m.Raise(context.Background(), New("web-1", TypeHighMemory, SeverityWarning, "y")))
	assert.Len(t, store.All(), 2)
}

func TestManager_FailedChannelDoesNotBlockOthers(t *testing.T) {
	store := NewStore()
	broken := &fakeNotifier{name: "webhook", err: fmt.Errorf("connection refused")}
	working := &fakeNotifier{name: "console"}
	m := NewManager(store, []Notifier{broken, working}, false)
	buf := logger.NewBufferLogger()
	m.log = buf

	a := New("web-1", TypeServiceDown, SeverityCritical, "Node web-1 is unreachable")
	assert.True(t, m.Raise(context.Background(), a))

	// Both channels were attempted and the alert is stored regardless
	assert.Len(t, broken.sent, 1)
	assert.Len(t, working.sent, 1)
	_, ok := store.Get(a.ID)
	assert.True(t, ok)
	assert.True(t, buf.HasLevel("error"))
}

func TestManager_AutoRemediation(t *testing.T) {
	store := NewStore()
	m := NewManager(store, nil, true)
	buf := logger.NewBufferLogger()
	m.log = buf

	m.Raise(context.Background(), New("web-1", TypeServiceDown, SeverityCritical, "Node web-1 is unreachable"))

	require.True(t, buf.HasLevel("info"))
	assert.Contains(t, buf.Messages[len(buf.Messages)-1].Message, "auto-remediation triggered for web-1")
}

func TestManager_NoRemediationWhenDisabled(t *testing.T) {
	store := NewStore()
	m := NewManager(store, nil, false)
	buf := logger.NewBufferLogger()
	m.log = buf

	m.Raise(context.Background(), New("web-1", TypeServiceDown, SeverityCritical, "Node web-1 is unreachable"))

	assert.False(t, buf.HasLevel("info"))
}

func TestManager_NoRemediationForOtherTypes(t *testing.T) {
	store := NewStore()
	m := NewManager(store, nil, true)
	buf := logger.NewBufferLogger()
	m.log = buf

	m.Raise(context.Background(), New("web-1", TypeHighCPU, SeverityCritical, "Critical CPU usage: 95.0%"))

	assert.False(t, buf.HasLevel("info"))
}

func TestManager_RaiseAll(t *testing.T) {
	store := NewStore()
	m := NewManager(store, nil, false)

	alerts := []Alert{
		New("web-1", TypeHighCPU, SeverityCritical, "a"),
		New("web-1", TypeHighCPU, SeverityCritical, "duplicate of a"),
		New("web-2", TypeHighMemory, SeverityWarning, "b"),
	}

	raised := m.RaiseAll(context.Background(), alerts)
	assert.Equal(t, 2, raised)
	assert.Len(t, store.All(), 2)
}
