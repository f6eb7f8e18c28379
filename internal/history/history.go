// Package history keeps bounded per-node time series of monitoring
// records. One generic store backs both the health check and the
// resource snapshot tables.
package history

import "sync"

// Store holds an ordered series of records per node, capped at max
// entries. Appending past the cap drops the oldest records first.
// All methods are safe for concurrent use.
type Store[T any] struct {
	mu      sync.RWMutex
	max     int
	records map[string][]T
}

// NewStore creates a store that keeps at most max records per node.
func NewStore[T any](max int) *Store[T] {
	if max <= 0 {
		max = 1
	}
	return &Store[T]{
		max:     max,
		records: make(map[string][]T),
	}
}

// Max returns the per-node retention cap.
func (s *Store[T]) Max() int {
	return s.max
}

// Append adds a record to the node's series, trimming the oldest
// entries when the series overflows the cap.
func (s *Store[T]) Append(nodeID string, record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[nodeID] = trim(append(s.records[nodeID], record), s.max)
}

// ForNode returns the node's records in append order, oldest first.
func (s *Store[T]) ForNode(nodeID string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series := s.records[nodeID]
	out := make([]T, len(series))
	copy(out, series)
	return out
}

// Latest returns the node's most recent record.
func (s *Store[T]) Latest(nodeID string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series := s.records[nodeID]
	if len(series) == 0 {
		var zero T
		return zero, false
	}
	return series[len(series)-1], true
}

// Nodes returns the IDs of every node with at least one record.
func (s *Store[T]) Nodes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.records))
	for nodeID := range s.records {
		out = append(out, nodeID)
	}
	return out
}

// Len returns the number of records held for a node.
func (s *Store[T]) Len(nodeID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[nodeID])
}

// AsMap returns a copy of every series keyed by node ID, for
// persistence.
func (s *Store[T]) AsMap() map[string][]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]T, len(s.records))
	for nodeID, series := range s.records {
		cp := make([]T, len(series))
		copy(cp, series)
		out[nodeID] = cp
	}
	return out
}

// LoadMap replaces the store contents with persisted state. Series
// longer than the cap are trimmed to their most recent entries, so the
// retention invariant holds no matter what was written to disk.
func (s *Store[T]) LoadMap(records map[string][]T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string][]T, len(records))
	for nodeID, series := range records {
		cp := make([]T, len(series))
		copy(cp, series)
		s.records[nodeID] = trim(cp, s.max)
	}
}

// trim drops the oldest entries until the series fits the cap.
func trim[T any](series []T, max int) []T {
	if len(series) <= max {
		return series
	}
	return series[len(series)-max:]
}
