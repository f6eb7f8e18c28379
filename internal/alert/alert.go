// Package alert defines the alerts the monitoring engine raises and the
// bookkeeping around them.
package alert

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Severity ranks how urgent an alert is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Type identifies what condition raised an alert.
type Type string

const (
	TypeHighCPU        Type = "high_cpu"
	TypeHighMemory     Type = "high_memory"
	TypeLowDisk        Type = "low_disk"
	TypeServiceDown    Type = "service_down"
	TypeSSHUnreachable Type = "ssh_unreachable"
	TypeHTTPError      Type = "http_error"
	TypeCostThreshold  Type = "cost_threshold"
)

// Alert is a raised condition on a node. Metadata carries the health
// check or resource snapshot that triggered it, as raw JSON.
type Alert struct {
	ID           string          `json:"id"`
	NodeID       string          `json:"node_id"`
	Type         Type            `json:"alert_type"`
	Severity     Severity        `json:"severity"`
	Message      string          `json:"message"`
	Timestamp    time.Time       `json:"timestamp"`
	Acknowledged bool            `json:"acknowledged"`
	Resolved     bool            `json:"resolved"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
}

// New creates an alert with a fresh ID and UTC timestamp.
func New(nodeID string, alertType Type, severity Severity, message string) Alert {
	return Alert{
		ID:        uuid.NewString(),
		NodeID:    nodeID,
		Type:      alertType,
		Severity:  severity,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// WithMetadata attaches the raising context. Values that won't marshal
// are dropped rather than blocking the alert.
func (a Alert) WithMetadata(v interface{}) Alert {
	data, err := json.Marshal(v)
	if err != nil {
		return a
	}
	a.Metadata = data
	return a
}
