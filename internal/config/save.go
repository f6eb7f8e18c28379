package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/nodewatch/internal/errors"
	"gopkg.in/yaml.v3"
)

// persistedConfig mirrors Config for writing. Durations go out as
// strings ("60s") so a reload parses them the same way a hand-written
// file would.
type persistedConfig struct {
	Version    int                 `yaml:"version"`
	StateDir   string              `yaml:"state_dir"`
	Monitoring persistedMonitoring `yaml:"monitoring"`
	Alerts     AlertsConfig        `yaml:"alerts"`
	Telemetry  TelemetryConfig     `yaml:"telemetry"`
	Nodes      map[string]Node     `yaml:"nodes"`
}

type persistedMonitoring struct {
	Enabled             bool          `yaml:"enabled"`
	CheckInterval       string        `yaml:"check_interval"`
	PingTimeout         string        `yaml:"ping_timeout"`
	SSHTimeout          string        `yaml:"ssh_timeout"`
	HTTPTimeout         string        `yaml:"http_timeout"`
	History             HistoryConfig `yaml:"history"`
	Thresholds          Thresholds    `yaml:"thresholds"`
	AutoRestartServices bool          `yaml:"auto_restart_services"`
	AutoRebootNodes     bool          `yaml:"auto_reboot_nodes"`
}

// Save writes the full config to path as YAML. The parent directory is
// created when missing.
func Save(cfg *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot create config directory "+dir,
				"Check the path and permissions")
		}
	}

	out := persistedConfig{
		Version:  cfg.Version,
		StateDir: cfg.StateDir,
		Monitoring: persistedMonitoring{
			Enabled:             cfg.Monitoring.Enabled,
			CheckInterval:       cfg.Monitoring.CheckInterval.String(),
			PingTimeout:         cfg.Monitoring.PingTimeout.String(),
			SSHTimeout:          cfg.Monitoring.SSHTimeout.String(),
			HTTPTimeout:         cfg.Monitoring.HTTPTimeout.String(),
			History:             cfg.Monitoring.History,
			Thresholds:          cfg.Monitoring.Thresholds,
			AutoRestartServices: cfg.Monitoring.AutoRestartServices,
			AutoRebootNodes:     cfg.Monitoring.AutoRebootNodes,
		},
		Alerts:    cfg.Alerts,
		Telemetry: cfg.Telemetry,
		Nodes:     cfg.Nodes,
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(out); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot serialize config",
			"This is a bug, please report it")
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot write config file "+path,
			"Check permissions on the directory")
	}
	return nil
}
