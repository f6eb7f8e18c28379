package engine

import (
	"context"
	"testing"

	"github.com/rileyhilliard/nodewatch/internal/health"
	"github.com/rileyhilliard/nodewatch/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_Empty(t *testing.T) {
	cfg := testConfig(t)
	e := newTestEngine(t, cfg, nil, nil)

	d := e.Dashboard()
	assert.Zero(t, d.TotalNodes)
	assert.Zero(t, d.HealthyNodes)
	assert.Empty(t, d.ActiveAlerts)
	assert.Empty(t, d.Nodes)
}

func TestDashboard_Aggregation(t *testing.T) {
	cfg := testConfig(t, "web-1", "db-1", "cache-1")
	checker := &fakeChecker{checks: map[string]health.Check{
		"db-1": unhealthyCheck("db-1"),
	}}
	collector := &fakeCollector{snapshots: map[string]*metrics.Snapshot{
		"web-1":   {NodeID: "web-1", CPUPercent: 40},
		"db-1":    {NodeID: "db-1", CPUPercent: 80}, // above warning 75
		"cache-1": {NodeID: "cache-1", CPUPercent: 10},
	}}
	e := NewWithComponents(cfg, checker, collector, nil)

	ctx := context.Background()
	for _, id := range e.NodeIDs() {
		_, err := e.CheckNode(ctx, id)
		require.NoError(t, err)
		_, err = e.CollectNode(ctx, id)
		require.NoError(t, err)
	}

	d := e.Dashboard()

	assert.Equal(t, 3, d.TotalNodes)
	assert.Equal(t, 2, d.HealthyNodes)

	// db-1: ssh_unreachable + service_down critical, high_cpu warning.
	assert.Equal(t, 2, d.CriticalAlerts)
	assert.Equal(t, 1, d.WarningAlerts)
	assert.Len(t, d.ActiveAlerts, 3)

	require.Len(t, d.Nodes, 3)
	assert.Equal(t, "cache-1", d.Nodes[0].NodeID)
	require.NotNil(t, d.Nodes[0].Check)
	require.NotNil(t, d.Nodes[0].Snapshot)
	assert.Equal(t, health.StatusHealthy, d.Nodes[0].Check.Status)
}

func TestDashboard_UnionOfHistoryTables(t *testing.T) {
	cfg := testConfig(t, "checked-only", "sampled-only")
	collector := &fakeCollector{}
	e := NewWithComponents(cfg, &fakeChecker{}, collector, nil)

	ctx := context.Background()
	_, err := e.CheckNode(ctx, "checked-only")
	require.NoError(t, err)
	_, err = e.CollectNode(ctx, "sampled-only")
	require.NoError(t, err)

	d := e.Dashboard()
	assert.Equal(t, 2, d.TotalNodes)

	// A node with only metrics history has no health verdict and does
	// not count as healthy.
	assert.Equal(t, 1, d.HealthyNodes)
}

func TestStatus_PerNodeDetail(t *testing.T) {
	cfg := testConfig(t, "web-1")
	checker := &fakeChecker{checks: map[string]health.Check{"web-1": unhealthyCheck("web-1")}}
	e := NewWithComponents(cfg, checker, &fakeCollector{}, nil)

	ctx := context.Background()
	_, err := e.CheckNode(ctx, "web-1")
	require.NoError(t, err)
	_, err = e.CollectNode(ctx, "web-1")
	require.NoError(t, err)

	s := e.Status("web-1")
	require.NotNil(t, s.Check)
	require.NotNil(t, s.Snapshot)
	assert.Equal(t, health.StatusUnhealthy, s.Check.Status)
	assert.Len(t, s.Alerts, 2)
}

func TestStatus_UnknownNodeIsEmpty(t *testing.T) {
	cfg := testConfig(t)
	e := newTestEngine(t, cfg, nil, nil)

	s := e.Status("ghost")
	assert.Nil(t, s.Check)
	assert.Nil(t, s.Snapshot)
	assert.Empty(t, s.Alerts)
}
