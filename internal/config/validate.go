package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/nodewatch/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but nodewatch only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest nodewatch: https://github.com/rileyhilliard/nodewatch/releases")
	}

	// Validate each node
	for name, node := range cfg.Nodes {
		if err := validateNode(name, node); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'nodes' section in your .nodewatch.yaml.")
		}
	}

	// Validate monitoring config
	if err := validateMonitoring(cfg.Monitoring); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'monitoring' section in your .nodewatch.yaml.")
	}

	// Validate alerts config
	if err := validateAlerts(cfg.Alerts); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'alerts' section in your .nodewatch.yaml.")
	}

	return nil
}

// validateNode checks a single node configuration.
func validateNode(name string, node Node) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("a node has an empty name - every node needs one")
	}

	if node.IP == "" && node.SSH == "" {
		return fmt.Errorf("node '%s' needs an 'ip' or an 'ssh' target - there's nothing to monitor otherwise", name)
	}

	if node.SSH != "" && strings.TrimSpace(node.SSH) == "" {
		return fmt.Errorf("node '%s' has a blank ssh entry - remove it or fill it in", name)
	}

	return nil
}

// validateMonitoring checks the monitoring section.
func validateMonitoring(mon MonitoringConfig) error {
	if mon.CheckInterval <= 0 {
		return fmt.Errorf("monitoring.check_interval needs to be positive - try something like '60s' or '5m'")
	}
	if mon.PingTimeout <= 0 {
		return fmt.Errorf("monitoring.ping_timeout needs to be positive - try something like '5s'")
	}
	if mon.SSHTimeout <= 0 {
		return fmt.Errorf("monitoring.ssh_timeout needs to be positive - try something like '10s'")
	}
	if mon.HTTPTimeout <= 0 {
		return fmt.Errorf("monitoring.http_timeout needs to be positive - try something like '10s'")
	}

	if mon.History.HealthMax <= 0 {
		return fmt.Errorf("monitoring.history.health_max needs to be positive (got %d)", mon.History.HealthMax)
	}
	if mon.History.MetricsMax <= 0 {
		return fmt.Errorf("monitoring.history.metrics_max needs to be positive (got %d)", mon.History.MetricsMax)
	}

	if err := validateThreshold("cpu", mon.Thresholds.CPU); err != nil {
		return err
	}
	if err := validateThreshold("memory", mon.Thresholds.Memory); err != nil {
		return err
	}
	if err := validateThreshold("disk", mon.Thresholds.Disk); err != nil {
		return err
	}

	return nil
}

// validateThreshold checks a threshold pair for a single resource.
func validateThreshold(name string, thresh Threshold) error {
	if thresh.Warning <= 0 || thresh.Warning > 100 {
		return fmt.Errorf("monitoring.thresholds.%s.warning needs to be 0-100 (got %.1f)", name, thresh.Warning)
	}
	if thresh.Critical <= 0 || thresh.Critical > 100 {
		return fmt.Errorf("monitoring.thresholds.%s.critical needs to be 0-100 (got %.1f)", name, thresh.Critical)
	}
	if thresh.Warning > thresh.Critical {
		return fmt.Errorf("monitoring.thresholds.%s.warning (%.1f%%) is higher than critical (%.1f%%) - should be the other way around", name, thresh.Warning, thresh.Critical)
	}
	return nil
}

// validateAlerts checks the alerts section.
func validateAlerts(alerts AlertsConfig) error {
	if alerts.WebhookURL != "" && !isHTTPURL(alerts.WebhookURL) {
		return fmt.Errorf("alerts.webhook_url '%s' doesn't look like an http(s) URL", alerts.WebhookURL)
	}
	if alerts.ChatWebhookURL != "" && !isHTTPURL(alerts.ChatWebhookURL) {
		return fmt.Errorf("alerts.chat_webhook_url '%s' doesn't look like an http(s) URL", alerts.ChatWebhookURL)
	}
	if alerts.Email != "" && !strings.Contains(alerts.Email, "@") {
		return fmt.Errorf("alerts.email '%s' doesn't look like an email address", alerts.Email)
	}
	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
