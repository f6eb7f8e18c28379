package metrics

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/nodewatch/internal/config"
	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/rileyhilliard/nodewatch/internal/logger"
	"github.com/rileyhilliard/nodewatch/pkg/sshutil"
)

// resourceCommand samples CPU, memory, disk, and load in one round trip.
// Each sub-command prints exactly one line, uptime last for the load
// averages.
const resourceCommand = `top -bn1 | grep 'Cpu(s)' | awk '{print $2}' && free | grep Mem | awk '{print ($3/$2) * 100}' && df -h / | tail -1 | awk '{print $5}' && uptime`

// Collector samples resource usage from nodes over pooled SSH connections.
type Collector struct {
	pool *Pool
	log  logger.Logger
}

// NewCollector creates a collector that connects through the given pool.
func NewCollector(pool *Pool) *Collector {
	return &Collector{
		pool: pool,
		log:  logger.NewEnvLogger("[metrics]"),
	}
}

// Pool exposes the underlying connection pool so callers can close it.
func (c *Collector) Pool() *Pool {
	return c.pool
}

// Collect samples resource usage from a single node.
func (c *Collector) Collect(ctx context.Context, nodeID string, node config.Node) (*Snapshot, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	target := dialTarget(node)
	if target == "" {
		return nil, errors.New(errors.ErrMetrics,
			fmt.Sprintf("Node %s has no SSH target or IP address", nodeID),
			"Add an 'ssh' or 'ip' entry for the node in .nodewatch.yaml")
	}

	c.log.Debug("collecting metrics from %s via %s", nodeID, target)

	client, err := c.pool.Get(target)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			fmt.Sprintf("Cannot connect to node %s", nodeID),
			"Check the node is reachable: nodewatch check "+nodeID)
	}

	stdout, stderr, exitCode, err := c.execWithTimeout(ctx, target, client)
	if err != nil {
		if err == context.DeadlineExceeded || err == context.Canceled {
			return nil, errors.WrapWithCode(err, errors.ErrMetrics,
				fmt.Sprintf("Timed out sampling node %s after %s", nodeID, c.pool.Timeout()),
				"The node may be hung or overloaded, the next cycle will re-dial")
		}
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			fmt.Sprintf("Failed to sample node %s", nodeID),
			"The connection may have dropped, the next cycle will reconnect")
	}
	if exitCode != 0 {
		detail := strings.TrimSpace(string(stderr))
		if detail == "" {
			detail = fmt.Sprintf("exit code %d", exitCode)
		}
		return nil, errors.New(errors.ErrMetrics,
			fmt.Sprintf("Resource command failed on node %s: %s", nodeID, detail),
			"Check the node has top, free, df, and uptime installed")
	}

	return parseSnapshot(nodeID, string(stdout))
}

type execResult struct {
	stdout   []byte
	stderr   []byte
	exitCode int
	err      error
}

// execWithTimeout runs the resource command bounded by the pool's SSH
// timeout and the caller's context. session.Run has no deadline of its
// own, so a hung remote command would otherwise stall the whole cycle.
// On timeout the pooled connection is closed to unblock the session.
func (c *Collector) execWithTimeout(ctx context.Context, target string, client sshutil.SSHClient) ([]byte, []byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.pool.Timeout())
	defer cancel()

	done := make(chan execResult, 1)
	go func() {
		stdout, stderr, exitCode, err := client.Exec(resourceCommand)
		done <- execResult{stdout, stderr, exitCode, err}
	}()

	select {
	case res := <-done:
		return res.stdout, res.stderr, res.exitCode, res.err
	case <-ctx.Done():
		c.pool.CloseOne(target)
		return nil, nil, -1, ctx.Err()
	}
}

// dialTarget picks the SSH destination for a node, preferring the
// explicit ssh entry over the bare IP.
func dialTarget(node config.Node) string {
	if node.SSH != "" {
		return node.SSH
	}
	return node.IP
}

// parseSnapshot turns the four output lines into a Snapshot.
func parseSnapshot(nodeID, output string) (*Snapshot, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 4 {
		return nil, errors.New(errors.ErrMetrics,
			fmt.Sprintf("Unexpected resource output from node %s (%d of 4 lines)", nodeID, len(lines)),
			"Check the node has top, free, df, and uptime installed")
	}

	cpu, err := strconv.ParseFloat(strings.TrimRight(strings.TrimSpace(lines[0]), "%"), 64)
	if err != nil {
		return nil, parseError(nodeID, "cpu", lines[0])
	}

	mem, err := strconv.ParseFloat(strings.TrimSpace(lines[1]), 64)
	if err != nil {
		return nil, parseError(nodeID, "memory", lines[1])
	}

	disk, err := strconv.ParseFloat(strings.TrimRight(strings.TrimSpace(lines[2]), "%"), 64)
	if err != nil {
		return nil, parseError(nodeID, "disk", lines[2])
	}

	load, err := parseLoadAverage(lines[3])
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			fmt.Sprintf("Cannot parse load average from node %s", nodeID),
			"Check the node's uptime output format")
	}

	return &Snapshot{
		NodeID:        nodeID,
		Timestamp:     time.Now().UTC(),
		CPUPercent:    cpu,
		MemoryPercent: mem,
		DiskPercent:   disk,
		LoadAverage:   load,
	}, nil
}

// parseLoadAverage pulls the three load figures out of uptime output.
func parseLoadAverage(line string) ([3]float64, error) {
	var load [3]float64

	parts := strings.Split(line, "load average:")
	if len(parts) != 2 {
		return load, fmt.Errorf("no load average in %q", strings.TrimSpace(line))
	}

	fields := strings.Split(parts[1], ",")
	if len(fields) < 3 {
		return load, fmt.Errorf("want 3 load figures, got %d", len(fields))
	}

	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return load, fmt.Errorf("bad load figure %q", strings.TrimSpace(fields[i]))
		}
		load[i] = v
	}

	return load, nil
}

func parseError(nodeID, what, raw string) error {
	return errors.New(errors.ErrMetrics,
		fmt.Sprintf("Cannot parse %s usage from node %s: %q", what, nodeID, strings.TrimSpace(raw)),
		"The node's output format may differ, check top, free, and df manually")
}
