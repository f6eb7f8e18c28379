// Package notify delivers alerts through the configured channels.
package notify

import (
	"github.com/rileyhilliard/nodewatch/internal/alert"
	"github.com/rileyhilliard/nodewatch/internal/config"
)

// FromConfig builds the delivery channels the config enables. Console is
// always on, the rest follow their config entries.
func FromConfig(cfg config.AlertsConfig) []alert.Notifier {
	notifiers := []alert.Notifier{NewConsole()}

	if cfg.WebhookURL != "" {
		notifiers = append(notifiers, NewWebhook(cfg.WebhookURL))
	}
	if cfg.ChatWebhookURL != "" {
		notifiers = append(notifiers, NewChat(cfg.ChatWebhookURL))
	}
	if cfg.Email != "" {
		notifiers = append(notifiers, NewEmail(cfg.Email))
	}

	return notifiers
}
