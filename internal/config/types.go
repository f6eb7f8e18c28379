package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .nodewatch.yaml configuration file.
type Config struct {
	Version    int              `yaml:"version" mapstructure:"version"`
	StateDir   string           `yaml:"state_dir" mapstructure:"state_dir"`
	Monitoring MonitoringConfig `yaml:"monitoring" mapstructure:"monitoring"`
	Alerts     AlertsConfig     `yaml:"alerts" mapstructure:"alerts"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" mapstructure:"telemetry"`
	Nodes      map[string]Node  `yaml:"nodes" mapstructure:"nodes"`
}

// Node defines a monitored host and how to reach it.
type Node struct {
	// IP is the address probed for reachability (ping, SSH port, HTTP).
	IP string `yaml:"ip" mapstructure:"ip"`

	// SSH is the dial string for metrics collection.
	// Can be: hostname, user@hostname, host:port, or SSH config alias.
	SSH string `yaml:"ssh" mapstructure:"ssh"`

	// HasWebserver enables the HTTP probe against http://<ip>.
	HasWebserver bool `yaml:"has_webserver" mapstructure:"has_webserver"`
}

// MonitoringConfig controls check cadence, probe timeouts, and thresholds.
type MonitoringConfig struct {
	// Enabled toggles the monitoring loop on/off. Single-shot commands
	// still work when disabled.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// CheckInterval is the daemon cycle cadence.
	CheckInterval time.Duration `yaml:"check_interval" mapstructure:"check_interval"`

	// Per-probe timeouts. Each probe also gets one second of grace on top
	// before it is abandoned.
	PingTimeout time.Duration `yaml:"ping_timeout" mapstructure:"ping_timeout"`
	SSHTimeout  time.Duration `yaml:"ssh_timeout" mapstructure:"ssh_timeout"`
	HTTPTimeout time.Duration `yaml:"http_timeout" mapstructure:"http_timeout"`

	// History caps how many records are kept per node.
	History HistoryConfig `yaml:"history" mapstructure:"history"`

	// Thresholds trigger warning/critical alerts per resource.
	Thresholds Thresholds `yaml:"thresholds" mapstructure:"thresholds"`

	// Auto-remediation flags. Currently only logged when they would fire.
	AutoRestartServices bool `yaml:"auto_restart_services" mapstructure:"auto_restart_services"`
	AutoRebootNodes     bool `yaml:"auto_reboot_nodes" mapstructure:"auto_reboot_nodes"`
}

// HistoryConfig caps the per-node history collections.
type HistoryConfig struct {
	// HealthMax is the health check retention cap (288 ≈ 24h at 5 min cadence).
	HealthMax int `yaml:"health_max" mapstructure:"health_max"`

	// MetricsMax is the metrics retention cap (1440 ≈ 24h at 1 min cadence).
	MetricsMax int `yaml:"metrics_max" mapstructure:"metrics_max"`
}

// Thresholds holds the warning/critical pairs for each resource.
type Thresholds struct {
	CPU    Threshold `yaml:"cpu" mapstructure:"cpu"`
	Memory Threshold `yaml:"memory" mapstructure:"memory"`
	Disk   Threshold `yaml:"disk" mapstructure:"disk"`
}

// Threshold is a warning/critical percentage pair.
type Threshold struct {
	Warning  float64 `yaml:"warning" mapstructure:"warning"`
	Critical float64 `yaml:"critical" mapstructure:"critical"`
}

// AlertsConfig holds delivery channel endpoints.
// A channel is enabled by having a non-empty endpoint; console is always on.
type AlertsConfig struct {
	// WebhookURL receives the alert's own JSON via POST.
	WebhookURL string `yaml:"webhook_url" mapstructure:"webhook_url"`

	// ChatWebhookURL receives a Slack-compatible attachment payload.
	ChatWebhookURL string `yaml:"chat_webhook_url" mapstructure:"chat_webhook_url"`

	// Email is the recipient for the email channel (declared, not yet sent).
	Email string `yaml:"email" mapstructure:"email"`
}

// TelemetryConfig controls the optional self-instrumentation endpoint.
type TelemetryConfig struct {
	// Listen is the address for the /metrics listener in daemon mode
	// (e.g., ":9090"). Empty disables the listener.
	Listen string `yaml:"listen" mapstructure:"listen"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		StateDir: "~/.nodewatch",
		Monitoring: MonitoringConfig{
			Enabled:       true,
			CheckInterval: 60 * time.Second,
			PingTimeout:   5 * time.Second,
			SSHTimeout:    10 * time.Second,
			HTTPTimeout:   10 * time.Second,
			History: HistoryConfig{
				HealthMax:  288,
				MetricsMax: 1440,
			},
			Thresholds: Thresholds{
				CPU:    Threshold{Warning: 75, Critical: 90},
				Memory: Threshold{Warning: 80, Critical: 95},
				Disk:   Threshold{Warning: 85, Critical: 95},
			},
			AutoRestartServices: false,
			AutoRebootNodes:     false,
		},
		Nodes: make(map[string]Node),
	}
}
