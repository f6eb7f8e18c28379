package metrics

import (
	"sync"
	"time"

	"github.com/rileyhilliard/nodewatch/pkg/sshutil"
)

// DialFunc opens an SSH connection to a target. Tests swap this out to
// collect from mock clients.
type DialFunc func(target string, timeout time.Duration) (sshutil.SSHClient, error)

// Pool keeps SSH connections alive between collection cycles so each
// sample doesn't pay the handshake cost again.
type Pool struct {
	mu          sync.Mutex
	connections map[string]*poolEntry
	timeout     time.Duration
	dial        DialFunc
}

// poolEntry holds a connection and its metadata.
type poolEntry struct {
	client   sshutil.SSHClient
	lastUsed time.Time
}

// NewPool creates a new SSH connection pool.
func NewPool(timeout time.Duration) *Pool {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Pool{
		connections: make(map[string]*poolEntry),
		timeout:     timeout,
		dial: func(target string, timeout time.Duration) (sshutil.SSHClient, error) {
			return sshutil.Dial(target, timeout)
		},
	}
}

// Timeout returns the SSH timeout the pool dials and samples with.
func (p *Pool) Timeout() time.Duration {
	return p.timeout
}

// SetDialFunc replaces the dialer used for new connections.
func (p *Pool) SetDialFunc(dial DialFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dial = dial
}

// Get retrieves an existing connection for the given target, or creates a
// new one. If the connection is stale or broken, it will be replaced with
// a fresh connection.
func (p *Pool) Get(target string) (sshutil.SSHClient, error) {
	p.mu.Lock()
	entry, exists := p.connections[target]
	dial := p.dial
	p.mu.Unlock()

	if exists && entry.client != nil {
		// Test if connection is still alive by opening a session
		if isAlive(entry.client) {
			p.mu.Lock()
			entry.lastUsed = time.Now()
			p.mu.Unlock()
			return entry.client, nil
		}
		// Connection is dead, close and remove it
		p.remove(target)
	}

	client, err := dial(target, p.timeout)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.connections[target] = &poolEntry{
		client:   client,
		lastUsed: time.Now(),
	}
	p.mu.Unlock()

	return client, nil
}

// Close closes all connections in the pool and clears it.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for target, entry := range p.connections {
		if entry.client != nil {
			_ = entry.client.Close()
		}
		delete(p.connections, target)
	}
}

// CloseOne closes and removes a specific connection from the pool.
func (p *Pool) CloseOne(target string) {
	p.remove(target)
}

// Size returns the number of connections in the pool.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.connections)
}

// remove closes and removes a connection from the pool.
func (p *Pool) remove(target string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if entry, ok := p.connections[target]; ok {
		if entry.client != nil {
			_ = entry.client.Close()
		}
		delete(p.connections, target)
	}
}

// isAlive checks if a connection is still usable.
func isAlive(client sshutil.SSHClient) bool {
	session, err := client.NewSession()
	if err != nil {
		return false
	}
	_ = session.Close()
	return true
}
