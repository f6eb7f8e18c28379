package alert

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rileyhilliard/nodewatch/internal/errors"
)

// Store holds alerts in memory, indexed by ID. All methods are safe for
// concurrent use. Listings come back oldest first so output is stable.
type Store struct {
	mu     sync.RWMutex
	alerts map[string]Alert
}

// NewStore creates an empty alert store.
func NewStore() *Store {
	return &Store{alerts: make(map[string]Alert)}
}

// Add records an alert, replacing any existing alert with the same ID.
func (s *Store) Add(a Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts[a.ID] = a
}

// Get looks up an alert by ID.
func (s *Store) Get(id string) (Alert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.alerts[id]
	return a, ok
}

// Acknowledge marks an alert as seen by an operator.
func (s *Store) Acknowledge(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.alerts[id]
	if !ok {
		return notFound(id)
	}
	a.Acknowledged = true
	s.alerts[id] = a
	return nil
}

// Resolve marks an alert as no longer active. A resolved alert stops
// suppressing new alerts of the same type for its node.
func (s *Store) Resolve(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.alerts[id]
	if !ok {
		return notFound(id)
	}
	a.Resolved = true
	s.alerts[id] = a
	return nil
}

// Active returns all unresolved alerts.
func (s *Store) Active() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Alert
	for _, a := range s.alerts {
		if !a.Resolved {
			out = append(out, a)
		}
	}
	sortAlerts(out)
	return out
}

// ForNode returns the unresolved alerts for one node.
func (s *Store) ForNode(nodeID string) []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Alert
	for _, a := range s.alerts {
		if a.NodeID == nodeID && !a.Resolved {
			out = append(out, a)
		}
	}
	sortAlerts(out)
	return out
}

// HasSimilar reports whether an unresolved alert of the given type is
// already active for the node.
func (s *Store) HasSimilar(nodeID string, alertType Type) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.alerts {
		if a.NodeID == nodeID && a.Type == alertType && !a.Resolved {
			return true
		}
	}
	return false
}

// All returns every alert, resolved or not.
func (s *Store) All() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		out = append(out, a)
	}
	sortAlerts(out)
	return out
}

// LoadMap replaces the store contents, for restoring persisted state.
func (s *Store) LoadMap(alerts map[string]Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = make(map[string]Alert, len(alerts))
	for id, a := range alerts {
		s.alerts[id] = a
	}
}

// AsMap returns a copy of the store contents keyed by alert ID.
func (s *Store) AsMap() map[string]Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Alert, len(s.alerts))
	for id, a := range s.alerts {
		out[id] = a
	}
	return out
}

func sortAlerts(alerts []Alert) {
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Timestamp.Equal(alerts[j].Timestamp) {
			return alerts[i].ID < alerts[j].ID
		}
		return alerts[i].Timestamp.Before(alerts[j].Timestamp)
	})
}

func notFound(id string) error {
	return errors.New(errors.ErrNotFound,
		fmt.Sprintf("No alert with ID %s", id),
		"List active alerts with: nodewatch alerts")
}
