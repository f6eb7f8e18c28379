package probe

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"os/exec"
	"strconv"
	"time"
)

// grace is the cushion added to the outer deadline so the probe's own
// timeout mechanism fires first and produces the more specific failure.
const grace = time.Second

// SystemExecutor runs probes using the system ping binary and the
// host network stack.
type SystemExecutor struct {
	// pingPath overrides the ping binary, for tests.
	pingPath string
}

// NewSystemExecutor returns an executor backed by the real network.
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{pingPath: "ping"}
}

// Ping sends a single ICMP echo via the ping binary. The binary's own
// -W deadline normally fires before the outer context does.
func (e *SystemExecutor) Ping(ctx context.Context, host string, timeout time.Duration) Result {
	start := time.Now()

	cctx, cancel := context.WithTimeout(ctx, timeout+grace)
	defer cancel()

	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}

	cmd := exec.CommandContext(cctx, e.pingPath, "-c", "1", "-W", strconv.Itoa(secs), host)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	elapsed := time.Since(start)

	// A context kill surfaces as "signal: killed", so check the
	// deadline before inspecting the exit error.
	if cctx.Err() != nil {
		return Result{Reason: FailTimeout, Elapsed: elapsed}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Reason: FailExit, Detail: truncate(stderr.String(), 100), Elapsed: elapsed}
		}
		return Result{Reason: FailError, Detail: err.Error(), Elapsed: elapsed}
	}

	return Result{Success: true, Elapsed: elapsed}
}

// TCPPort tests whether a TCP connection to address can be opened.
func (e *SystemExecutor) TCPPort(ctx context.Context, address string, timeout time.Duration) Result {
	start := time.Now()

	cctx, cancel := context.WithTimeout(ctx, timeout+grace)
	defer cancel()

	if cctx.Err() != nil {
		return Result{Reason: FailTimeout, Elapsed: time.Since(start)}
	}

	type dialResult struct {
		conn net.Conn
		err  error
	}

	ch := make(chan dialResult, 1)
	go func() {
		conn, err := net.DialTimeout("tcp", address, timeout)
		ch <- dialResult{conn, err}
	}()

	select {
	case <-cctx.Done():
		// Late connections still get closed.
		go func() {
			if r := <-ch; r.conn != nil {
				r.conn.Close()
			}
		}()
		return Result{Reason: FailTimeout, Elapsed: time.Since(start)}
	case r := <-ch:
		elapsed := time.Since(start)
		if r.err != nil {
			return Result{Reason: FailUnreachable, Detail: r.err.Error(), Elapsed: elapsed}
		}
		r.conn.Close()
		return Result{Success: true, Elapsed: elapsed}
	}
}

// HTTPGet fetches the URL. Any answer below a 5xx status counts as
// success since the point is "is something serving", not "is it happy".
func (e *SystemExecutor) HTTPGet(ctx context.Context, url string, timeout time.Duration) Result {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{Reason: FailError, Detail: err.Error(), Elapsed: time.Since(start)}
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return Result{Reason: FailError, Detail: err.Error(), Elapsed: elapsed}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return Result{Reason: FailStatus, Detail: strconv.Itoa(resp.StatusCode), Elapsed: elapsed}
	}

	return Result{Success: true, Elapsed: elapsed}
}

// truncate limits s to at most n characters.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
