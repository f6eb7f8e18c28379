package alert

import (
	"context"

	"github.com/rileyhilliard/nodewatch/internal/logger"
	"github.com/rileyhilliard/nodewatch/internal/telemetry"
)

// Notifier delivers an alert through one channel.
type Notifier interface {
	Name() string
	Send(ctx context.Context, a Alert) error
}

// Manager deduplicates, records, and delivers alerts.
type Manager struct {
	store       *Store
	notifiers   []Notifier
	autoRestart bool
	log         logger.Logger
}

// NewManager wires a manager to its store and delivery channels.
// When autoRestart is set, service-down alerts also trigger remediation.
func NewManager(store *Store, notifiers []Notifier, autoRestart bool) *Manager {
	return &Manager{
		store:       store,
		notifiers:   notifiers,
		autoRestart: autoRestart,
		log:         logger.NewEnvLogger("[alert]"),
	}
}

// Raise records and delivers an alert unless a similar one is already
// active for the node. A failed channel never blocks the others, and the
// alert is kept either way. Reports whether the alert was raised.
func (m *Manager) Raise(ctx context.Context, a Alert) bool {
	if m.store.HasSimilar(a.NodeID, a.Type) {
		return false
	}

	m.store.Add(a)
	telemetry.AlertsTotal.WithLabelValues(string(a.Severity)).Inc()

	for _, n := range m.notifiers {
		if err := n.Send(ctx, a); err != nil {
			m.log.Error("failed to deliver alert via %s: %v", n.Name(), err)
			telemetry.DeliveriesTotal.WithLabelValues(n.Name(), "error").Inc()
			continue
		}
		telemetry.DeliveriesTotal.WithLabelValues(n.Name(), "ok").Inc()
	}

	if m.autoRestart && a.Type == TypeServiceDown {
		m.log.Info("auto-remediation triggered for %s", a.NodeID)
	}

	return true
}

// RaiseAll raises each alert in turn and reports how many went out.
func (m *Manager) RaiseAll(ctx context.Context, alerts []Alert) int {
	raised := 0
	for _, a := range alerts {
		if m.Raise(ctx, a) {
			raised++
		}
	}
	return raised
}

// Store returns the manager's backing store.
func (m *Manager) Store() *Store {
	return m.store
}
