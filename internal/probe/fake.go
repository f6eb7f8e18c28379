package probe

import (
	"context"
	"sync"
	"time"
)

// FakeExecutor is a scripted Executor for tests. Results are looked up
// by target and fall back to success when nothing is scripted.
type FakeExecutor struct {
	mu    sync.Mutex
	ping  map[string]Result
	tcp   map[string]Result
	http  map[string]Result
	calls []string
}

// NewFakeExecutor creates a FakeExecutor with no scripted failures.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{
		ping: make(map[string]Result),
		tcp:  make(map[string]Result),
		http: make(map[string]Result),
	}
}

// ScriptPing sets the result returned for pings of host.
func (f *FakeExecutor) ScriptPing(host string, r Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ping[host] = r
}

// ScriptTCP sets the result returned for TCP probes of address.
func (f *FakeExecutor) ScriptTCP(address string, r Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tcp[address] = r
}

// ScriptHTTP sets the result returned for HTTP probes of url.
func (f *FakeExecutor) ScriptHTTP(url string, r Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.http[url] = r
}

func (f *FakeExecutor) Ping(ctx context.Context, host string, timeout time.Duration) Result {
	return f.lookup(f.ping, "ping", host)
}

func (f *FakeExecutor) TCPPort(ctx context.Context, address string, timeout time.Duration) Result {
	return f.lookup(f.tcp, "tcp", address)
}

func (f *FakeExecutor) HTTPGet(ctx context.Context, url string, timeout time.Duration) Result {
	return f.lookup(f.http, "http", url)
}

// Calls returns the probes run so far, in order, as "<kind> <target>".
func (f *FakeExecutor) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeExecutor) lookup(scripted map[string]Result, kind, target string) Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, kind+" "+target)
	if r, ok := scripted[target]; ok {
		return r
	}
	return Result{Success: true, Elapsed: 10 * time.Millisecond}
}
