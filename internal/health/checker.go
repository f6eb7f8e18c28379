package health

import (
	"context"
	"net"
	"time"

	"github.com/rileyhilliard/nodewatch/internal/config"
	"github.com/rileyhilliard/nodewatch/internal/logger"
	"github.com/rileyhilliard/nodewatch/internal/probe"
)

// Checker probes nodes and classifies what it finds.
type Checker struct {
	exec        probe.Executor
	pingTimeout time.Duration
	sshTimeout  time.Duration
	httpTimeout time.Duration
	log         logger.Logger
}

// NewChecker builds a Checker that probes with exec using the timeouts
// from cfg.
func NewChecker(exec probe.Executor, cfg config.MonitoringConfig) *Checker {
	return &Checker{
		exec:        exec,
		pingTimeout: cfg.PingTimeout,
		sshTimeout:  cfg.SSHTimeout,
		httpTimeout: cfg.HTTPTimeout,
		log:         logger.NewEnvLogger("[health]"),
	}
}

// Check runs every applicable probe against the node: ping, SSH port,
// and HTTP when the node serves web traffic. A node without an IP
// address cannot be probed and comes back unknown.
func (c *Checker) Check(ctx context.Context, nodeID string, node config.Node) Check {
	check := Check{
		NodeID:        nodeID,
		Timestamp:     time.Now().UTC(),
		Status:        StatusUnknown,
		Checks:        make(map[string]bool),
		ResponseTimes: make(map[string]float64),
		ErrorMessages: []string{},
	}

	if node.IP == "" {
		check.ErrorMessages = append(check.ErrorMessages, "No IP address available")
		return check
	}

	c.log.Debug("checking node %s (%s)", nodeID, node.IP)

	ping := c.exec.Ping(ctx, node.IP, c.pingTimeout)
	check.Checks["ping"] = ping.Success
	check.ResponseTimes["ping"] = float64(ping.Elapsed.Milliseconds())
	if !ping.Success {
		check.ErrorMessages = append(check.ErrorMessages, pingFailure(ping))
	}

	ssh := c.exec.TCPPort(ctx, net.JoinHostPort(node.IP, "22"), c.sshTimeout)
	check.Checks["ssh"] = ssh.Success
	check.ResponseTimes["ssh"] = float64(ssh.Elapsed.Milliseconds())
	if !ssh.Success {
		check.ErrorMessages = append(check.ErrorMessages, sshFailure(ssh))
	}

	if node.HasWebserver {
		web := c.exec.HTTPGet(ctx, "http://"+node.IP, c.httpTimeout)
		check.Checks["http"] = web.Success
		check.ResponseTimes["http"] = float64(web.Elapsed.Milliseconds())
		if !web.Success {
			check.ErrorMessages = append(check.ErrorMessages, httpFailure(web))
		}
	}

	check.Status = determineStatus(check.Checks)
	c.log.Debug("node %s is %s", nodeID, check.Status)

	return check
}

func pingFailure(r probe.Result) string {
	switch r.Reason {
	case probe.FailTimeout:
		return "Ping timeout"
	case probe.FailExit:
		return "Ping failed: " + r.Detail
	default:
		return "Ping error: " + r.Detail
	}
}

func sshFailure(r probe.Result) string {
	switch r.Reason {
	case probe.FailTimeout:
		return "SSH check timeout"
	case probe.FailUnreachable:
		return "SSH port unreachable"
	default:
		return "SSH check error: " + r.Detail
	}
}

func httpFailure(r probe.Result) string {
	switch r.Reason {
	case probe.FailStatus:
		return "HTTP returned " + r.Detail
	default:
		return "HTTP check error: " + r.Detail
	}
}
