// Package probe runs low-level reachability checks against fleet nodes.
// Each probe reports an outcome as a value rather than an error so callers
// can turn failures into health findings without string matching.
package probe

import (
	"context"
	"time"
)

// FailReason categorizes why a probe failed.
type FailReason int

const (
	FailNone FailReason = iota
	FailTimeout
	FailExit
	FailUnreachable
	FailStatus
	FailError
)

// String returns a human-readable description of the failure reason.
func (r FailReason) String() string {
	switch r {
	case FailNone:
		return "none"
	case FailTimeout:
		return "timed out"
	case FailExit:
		return "command failed"
	case FailUnreachable:
		return "unreachable"
	case FailStatus:
		return "bad status"
	case FailError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single probe.
// Detail carries reason-specific context: stderr output for FailExit,
// the status code for FailStatus, the error text for FailError.
type Result struct {
	Success bool
	Reason  FailReason
	Detail  string
	Elapsed time.Duration
}

// Executor runs the individual probes a health check is built from.
type Executor interface {
	// Ping sends a single ICMP echo to the host.
	Ping(ctx context.Context, host string, timeout time.Duration) Result

	// TCPPort tests whether a TCP connection to address can be opened.
	TCPPort(ctx context.Context, address string, timeout time.Duration) Result

	// HTTPGet fetches the URL and reports whether the server answered
	// with anything below a 5xx status.
	HTTPGet(ctx context.Context, url string, timeout time.Duration) Result
}
