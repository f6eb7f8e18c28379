package engine

import (
	"sort"

	"github.com/rileyhilliard/nodewatch/internal/alert"
	"github.com/rileyhilliard/nodewatch/internal/health"
	"github.com/rileyhilliard/nodewatch/internal/metrics"
)

// Dashboard is the aggregate fleet view, computed on read.
type Dashboard struct {
	TotalNodes     int           `json:"total_nodes"`
	HealthyNodes   int           `json:"healthy_nodes"`
	CriticalAlerts int           `json:"critical_alerts"`
	WarningAlerts  int           `json:"warning_alerts"`
	ActiveAlerts   []alert.Alert `json:"active_alerts"`
	Nodes          []NodeSummary `json:"nodes"`
}

// NodeSummary is one node's line on the dashboard.
type NodeSummary struct {
	NodeID   string            `json:"node_id"`
	Check    *health.Check     `json:"check,omitempty"`
	Snapshot *metrics.Snapshot `json:"snapshot,omitempty"`
}

// NodeStatus is the per-node detail view.
type NodeStatus struct {
	NodeID   string            `json:"node_id"`
	Check    *health.Check     `json:"check,omitempty"`
	Snapshot *metrics.Snapshot `json:"snapshot,omitempty"`
	Alerts   []alert.Alert     `json:"alerts"`
}

// Dashboard derives the fleet view from current state: the node set is
// the union of both history tables, a node counts as healthy when its
// latest check says so, and alert counts cover unresolved alerts only.
func (e *Engine) Dashboard() Dashboard {
	e.mu.Lock()
	defer e.mu.Unlock()

	nodeSet := make(map[string]struct{})
	for _, id := range e.healthHistory.Nodes() {
		nodeSet[id] = struct{}{}
	}
	for _, id := range e.metricsHistory.Nodes() {
		nodeSet[id] = struct{}{}
	}

	nodeIDs := make([]string, 0, len(nodeSet))
	for id := range nodeSet {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Strings(nodeIDs)

	d := Dashboard{
		TotalNodes:   len(nodeIDs),
		ActiveAlerts: e.Alerts().Active(),
		Nodes:        make([]NodeSummary, 0, len(nodeIDs)),
	}

	for _, id := range nodeIDs {
		summary := NodeSummary{NodeID: id}
		if check, ok := e.healthHistory.Latest(id); ok {
			summary.Check = &check
			if check.Status == health.StatusHealthy {
				d.HealthyNodes++
			}
		}
		if snap, ok := e.metricsHistory.Latest(id); ok {
			summary.Snapshot = &snap
		}
		d.Nodes = append(d.Nodes, summary)
	}

	for _, a := range d.ActiveAlerts {
		switch a.Severity {
		case alert.SeverityCritical:
			d.CriticalAlerts++
		case alert.SeverityWarning:
			d.WarningAlerts++
		}
	}

	return d
}

// Status derives the detail view for one node: its latest check,
// latest snapshot, and unresolved alerts.
func (e *Engine) Status(nodeID string) NodeStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	status := NodeStatus{
		NodeID: nodeID,
		Alerts: e.Alerts().ForNode(nodeID),
	}
	if check, ok := e.healthHistory.Latest(nodeID); ok {
		status.Check = &check
	}
	if snap, ok := e.metricsHistory.Latest(nodeID); ok {
		status.Snapshot = &snap
	}
	return status
}

// HealthHistory returns a node's recorded health checks, oldest first.
func (e *Engine) HealthHistory(nodeID string) []health.Check {
	return e.healthHistory.ForNode(nodeID)
}

// MetricsHistory returns a node's recorded snapshots, oldest first.
func (e *Engine) MetricsHistory(nodeID string) []metrics.Snapshot {
	return e.metricsHistory.ForNode(nodeID)
}
