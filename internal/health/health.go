// Package health classifies node condition from reachability probes.
package health

import "time"

// Status classifies a node's overall condition.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
	StatusUnknown   Status = "unknown"
)

// Check is the outcome of probing one node once. Checks holds pass/fail
// per probe name, ResponseTimes the elapsed milliseconds for every probe
// that ran, whether it passed or not.
type Check struct {
	NodeID        string             `json:"node_id"`
	Timestamp     time.Time          `json:"timestamp"`
	Status        Status             `json:"status"`
	Checks        map[string]bool    `json:"checks"`
	ResponseTimes map[string]float64 `json:"response_times"`
	ErrorMessages []string           `json:"error_messages"`
}

// determineStatus rolls individual probe outcomes into one status.
// No probes at all means we know nothing about the node.
func determineStatus(checks map[string]bool) Status {
	if len(checks) == 0 {
		return StatusUnknown
	}

	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}

	switch {
	case passed == len(checks):
		return StatusHealthy
	case passed > 0:
		return StatusDegraded
	default:
		return StatusUnhealthy
	}
}
