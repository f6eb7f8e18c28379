package alert

import (
	"fmt"

	"github.com/rileyhilliard/nodewatch/internal/config"
	"github.com/rileyhilliard/nodewatch/internal/health"
	"github.com/rileyhilliard/nodewatch/internal/metrics"
)

// Evaluator turns health checks and resource snapshots into the alerts
// they warrant. It only proposes alerts, deduplication happens when they
// are raised.
type Evaluator struct {
	thresholds config.Thresholds
}

// NewEvaluator creates an evaluator using the given resource thresholds.
func NewEvaluator(thresholds config.Thresholds) *Evaluator {
	return &Evaluator{thresholds: thresholds}
}

// FromHealth returns the alerts warranted by a health check. Only fully
// unhealthy nodes alert, a probe that never ran counts as passed.
func (e *Evaluator) FromHealth(check health.Check) []Alert {
	if check.Status != health.StatusUnhealthy {
		return nil
	}

	var alerts []Alert

	if passed, ok := check.Checks["ssh"]; ok && !passed {
		alerts = append(alerts, New(check.NodeID, TypeSSHUnreachable, SeverityCritical,
			fmt.Sprintf("SSH unreachable on %s", check.NodeID)).WithMetadata(check))
	}

	if passed, ok := check.Checks["ping"]; ok && !passed {
		alerts = append(alerts, New(check.NodeID, TypeServiceDown, SeverityCritical,
			fmt.Sprintf("Node %s is unreachable", check.NodeID)).WithMetadata(check))
	}

	return alerts
}

// FromSnapshot returns the alerts warranted by a resource snapshot,
// comparing each resource against its thresholds.
func (e *Evaluator) FromSnapshot(snap metrics.Snapshot) []Alert {
	var alerts []Alert

	if a := resourceAlert(snap.NodeID, TypeHighCPU, "CPU", snap.CPUPercent, e.thresholds.CPU); a != nil {
		alerts = append(alerts, a.WithMetadata(snap))
	}
	if a := resourceAlert(snap.NodeID, TypeHighMemory, "memory", snap.MemoryPercent, e.thresholds.Memory); a != nil {
		alerts = append(alerts, a.WithMetadata(snap))
	}
	if a := resourceAlert(snap.NodeID, TypeLowDisk, "disk", snap.DiskPercent, e.thresholds.Disk); a != nil {
		alerts = append(alerts, a.WithMetadata(snap))
	}

	return alerts
}

// resourceAlert classifies one resource reading. Critical wins over
// warning when both thresholds are crossed.
func resourceAlert(nodeID string, alertType Type, label string, value float64, t config.Threshold) *Alert {
	switch {
	case value >= t.Critical:
		a := New(nodeID, alertType, SeverityCritical, fmt.Sprintf("Critical %s usage: %.1f%%", label, value))
		return &a
	case value >= t.Warning:
		a := New(nodeID, alertType, SeverityWarning, fmt.Sprintf("High %s usage: %.1f%%", label, value))
		return &a
	default:
		return nil
	}
}
