package notify

import (
	"context"

	"github.com/rileyhilliard/nodewatch/internal/alert"
	"github.com/rileyhilliard/nodewatch/internal/logger"
)

// Email is a declared delivery channel that does not send yet. It logs
// what would go out so the recipient config can be verified end to end.
type Email struct {
	recipient string
	log       logger.Logger
}

// NewEmail creates the email channel for the given recipient.
func NewEmail(recipient string) *Email {
	return &Email{
		recipient: recipient,
		log:       logger.NewEnvLogger("[notify]"),
	}
}

// Name implements alert.Notifier.
func (e *Email) Name() string { return "email" }

// Send implements alert.Notifier.
func (e *Email) Send(_ context.Context, a alert.Alert) error {
	e.log.Info("would email %s: [%s] %s", e.recipient, a.Severity, a.Message)
	return nil
}
