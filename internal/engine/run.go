package engine

import (
	"context"
	"time"
)

// Run is the interval scheduler: one cycle immediately, then one every
// check_interval, each followed by a state save. It returns when ctx
// is canceled or when monitoring is disabled in config.
func (e *Engine) Run(ctx context.Context) error {
	if !e.cfg.Monitoring.Enabled {
		e.log.Info("monitoring is disabled in config, nothing to do")
		return nil
	}

	interval := e.cfg.Monitoring.CheckInterval
	if interval <= 0 {
		interval = 60 * time.Second
	}

	e.log.Info("monitoring %d nodes every %s", len(e.cfg.Nodes), interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		e.RunCycle(ctx)
		if err := e.SaveState(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
