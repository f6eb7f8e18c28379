// Package metrics samples resource usage from fleet nodes over SSH.
package metrics

import "time"

// Snapshot is one resource usage sample from a node. Load figures are
// the 1, 5, and 15 minute averages. Network rates are not sampled yet
// and stay zero.
type Snapshot struct {
	NodeID         string     `json:"node_id"`
	Timestamp      time.Time  `json:"timestamp"`
	CPUPercent     float64    `json:"cpu_percent"`
	MemoryPercent  float64    `json:"memory_percent"`
	DiskPercent    float64    `json:"disk_percent"`
	NetworkInMbps  float64    `json:"network_in_mbps"`
	NetworkOutMbps float64    `json:"network_out_mbps"`
	LoadAverage    [3]float64 `json:"load_average"`
}
