// Package engine is the monitoring orchestrator. It drives health
// checks and metrics collection for the configured fleet, feeds the
// results through threshold evaluation and alerting, and owns the
// persisted history tables.
package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rileyhilliard/nodewatch/internal/alert"
	"github.com/rileyhilliard/nodewatch/internal/config"
	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/rileyhilliard/nodewatch/internal/health"
	"github.com/rileyhilliard/nodewatch/internal/history"
	"github.com/rileyhilliard/nodewatch/internal/logger"
	"github.com/rileyhilliard/nodewatch/internal/metrics"
	"github.com/rileyhilliard/nodewatch/internal/notify"
	"github.com/rileyhilliard/nodewatch/internal/probe"
	"github.com/rileyhilliard/nodewatch/internal/telemetry"
)

// HealthChecker probes one node and classifies what it finds.
type HealthChecker interface {
	Check(ctx context.Context, nodeID string, node config.Node) health.Check
}

// Collector samples resource usage from one node.
type Collector interface {
	Collect(ctx context.Context, nodeID string, node config.Node) (*metrics.Snapshot, error)
}

// Engine ties the checker, collector, evaluator, alerting, and history
// together. Mutations of the shared tables serialize on an internal
// mutex; the probing itself runs outside it so nodes can be worked
// concurrently.
type Engine struct {
	mu sync.Mutex

	cfg       *config.Config
	checker   HealthChecker
	collector Collector
	evaluator *alert.Evaluator
	manager   *alert.Manager

	healthHistory  *history.Store[health.Check]
	metricsHistory *history.Store[metrics.Snapshot]

	log logger.Logger
}

// New builds an engine with the production components: system probes,
// pooled SSH collection, and the delivery channels the config enables.
func New(cfg *config.Config) *Engine {
	checker := health.NewChecker(probe.NewSystemExecutor(), cfg.Monitoring)
	collector := metrics.NewCollector(metrics.NewPool(cfg.Monitoring.SSHTimeout))
	return NewWithComponents(cfg, checker, collector, notify.FromConfig(cfg.Alerts))
}

// NewWithComponents builds an engine from explicit components, for
// tests and embedders that bring their own probes or channels.
func NewWithComponents(cfg *config.Config, checker HealthChecker, collector Collector, notifiers []alert.Notifier) *Engine {
	return &Engine{
		cfg:            cfg,
		checker:        checker,
		collector:      collector,
		evaluator:      alert.NewEvaluator(cfg.Monitoring.Thresholds),
		manager:        alert.NewManager(alert.NewStore(), notifiers, cfg.Monitoring.AutoRestartServices),
		healthHistory:  history.NewStore[health.Check](cfg.Monitoring.History.HealthMax),
		metricsHistory: history.NewStore[metrics.Snapshot](cfg.Monitoring.History.MetricsMax),
		log:            logger.NewEnvLogger("[engine]"),
	}
}

// Config returns the engine's configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Alerts returns the engine's alert store for direct reads and
// acknowledge/resolve operations.
func (e *Engine) Alerts() *alert.Store {
	return e.manager.Store()
}

// CheckNode health-checks one configured node, records the result, and
// raises whatever alerts it warrants. Probe failures are findings, not
// errors; the only error is an unknown node.
func (e *Engine) CheckNode(ctx context.Context, nodeID string) (health.Check, error) {
	node, err := e.node(nodeID)
	if err != nil {
		return health.Check{}, err
	}

	check := e.checker.Check(ctx, nodeID, node)

	telemetry.ChecksTotal.WithLabelValues(string(check.Status)).Inc()
	for name, passed := range check.Checks {
		outcome := "ok"
		if !passed {
			outcome = "fail"
		}
		telemetry.ProbesTotal.WithLabelValues(name, outcome).Inc()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.healthHistory.Append(nodeID, check)
	e.manager.RaiseAll(ctx, e.evaluator.FromHealth(check))

	return check, nil
}

// CollectNode samples resource usage from one configured node.
// Collection is best-effort: any failure is logged and reported as a
// nil snapshot, never as an error. The only error is an unknown node.
func (e *Engine) CollectNode(ctx context.Context, nodeID string) (*metrics.Snapshot, error) {
	node, err := e.node(nodeID)
	if err != nil {
		return nil, err
	}

	snap, err := e.collector.Collect(ctx, nodeID, node)
	if err != nil {
		e.log.Debug("metrics collection for %s skipped: %v", nodeID, err)
		telemetry.SamplesTotal.WithLabelValues("fail").Inc()
		return nil, nil
	}
	telemetry.SamplesTotal.WithLabelValues("ok").Inc()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.metricsHistory.Append(nodeID, *snap)
	e.manager.RaiseAll(ctx, e.evaluator.FromSnapshot(*snap))

	return snap, nil
}

// RunCycle checks and samples every configured node. Nodes are worked
// concurrently; one node's failure never stops the rest.
func (e *Engine) RunCycle(ctx context.Context) {
	nodeIDs := e.NodeIDs()

	var wg sync.WaitGroup
	for _, nodeID := range nodeIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := e.CheckNode(ctx, id); err != nil {
				e.log.Error("health check for %s: %v", id, err)
			}
			if _, err := e.CollectNode(ctx, id); err != nil {
				e.log.Error("metrics collection for %s: %v", id, err)
			}
		}(nodeID)
	}
	wg.Wait()

	telemetry.CyclesTotal.Inc()
	e.log.Debug("cycle complete across %d nodes", len(nodeIDs))
}

// NodeIDs returns the configured node IDs in stable order.
func (e *Engine) NodeIDs() []string {
	ids := make([]string, 0, len(e.cfg.Nodes))
	for id := range e.cfg.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// node looks up one configured node.
func (e *Engine) node(nodeID string) (config.Node, error) {
	node, ok := e.cfg.Nodes[nodeID]
	if !ok {
		return config.Node{}, errors.New(errors.ErrNotFound,
			fmt.Sprintf("Node '%s' is not configured", nodeID),
			"List configured nodes with: nodewatch config show")
	}
	return node, nil
}
