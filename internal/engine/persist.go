package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/nodewatch/internal/alert"
	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/rileyhilliard/nodewatch/internal/health"
	"github.com/rileyhilliard/nodewatch/internal/metrics"
)

// Persisted state files, one JSON object each, living in the
// configured state directory.
const (
	healthHistoryFile  = "health_history.json"
	metricsHistoryFile = "metrics_history.json"
	activeAlertsFile   = "active_alerts.json"
)

// SaveState writes the three persisted tables to the state directory
// as a unit. The history stores never hold more than their cap, so
// what lands on disk is already trimmed. Persistence failures are the
// one class of error that must reach the caller.
func (e *Engine) SaveState() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	stateDir := e.cfg.StateDir
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrStorage,
			"Cannot create state directory "+stateDir,
			"Check the path and permissions, or change state_dir in .nodewatch.yaml")
	}

	if err := writeJSON(filepath.Join(stateDir, healthHistoryFile), e.healthHistory.AsMap()); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(stateDir, metricsHistoryFile), e.metricsHistory.AsMap()); err != nil {
		return err
	}
	return writeJSON(filepath.Join(stateDir, activeAlertsFile), e.Alerts().AsMap())
}

// LoadState restores the persisted tables from the state directory.
// Missing files mean a fresh start and load as empty state; series
// longer than the retention cap are trimmed to their most recent
// entries on the way in.
func (e *Engine) LoadState() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	stateDir := e.cfg.StateDir

	var healthState map[string][]health.Check
	if err := readJSON(filepath.Join(stateDir, healthHistoryFile), &healthState); err != nil {
		return err
	}
	if healthState != nil {
		e.healthHistory.LoadMap(healthState)
	}

	var metricsState map[string][]metrics.Snapshot
	if err := readJSON(filepath.Join(stateDir, metricsHistoryFile), &metricsState); err != nil {
		return err
	}
	if metricsState != nil {
		e.metricsHistory.LoadMap(metricsState)
	}

	var alertState map[string]alert.Alert
	if err := readJSON(filepath.Join(stateDir, activeAlertsFile), &alertState); err != nil {
		return err
	}
	if alertState != nil {
		e.Alerts().LoadMap(alertState)
	}

	return nil
}

// writeJSON persists one table, pretty-printed for hand inspection.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrStorage,
			"Cannot serialize state for "+filepath.Base(path),
			"This is a bug, please report it")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrStorage,
			"Cannot write "+path,
			"Check disk space and permissions on the state directory")
	}
	return nil
}

// readJSON loads one table. A missing file leaves v untouched.
func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrStorage,
			"Cannot read "+path,
			"Check permissions on the state directory")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.ErrStorage,
			fmt.Sprintf("State file %s is not valid JSON", path),
			"Move the file aside to start with fresh state")
	}
	return nil
}
