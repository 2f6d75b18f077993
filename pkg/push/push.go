// Package push delivers completion notifications to users whose browser is
// no longer connected. Everything here is best-effort: a failed or missing
// notifier never affects the turn that triggered it.
package push

import (
	"context"
	"log/slog"
)

// Sender delivers one notification to an external push provider.
type Sender interface {
	Send(ctx context.Context, userID, title, body string) error
}

// Notifier wraps a Sender with nil-safety and error swallowing.
type Notifier struct {
	sender Sender
	logger *slog.Logger
}

// NewNotifier creates a Notifier. A nil sender disables push entirely.
func NewNotifier(sender Sender, logger *slog.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		logger: logger.With("component", "push"),
	}
}

// Notify sends a notification, swallowing every failure.
func (n *Notifier) Notify(ctx context.Context, userID, title, body string) {
	if n == nil || n.sender == nil {
		return
	}
	if err := n.sender.Send(ctx, userID, title, body); err != nil {
		n.logger.Warn("Push notification failed", "user_id", userID, "error", err)
	}
}
