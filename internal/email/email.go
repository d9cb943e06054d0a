package email

import (
	"context"
	"log/slog"

	"github.com/aswini27ms/folio/internal/domain"
)

// --- LogSender (default) ---

// LogSender prints contact messages to the log instead of sending them.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender writing to logger, or to the default
// logger when logger is nil.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

// Send logs the contact message as a single structured record.
func (s *LogSender) Send(ctx context.Context, msg domain.ContactMessage) error {
	s.logger.InfoContext(ctx, "Contact form submitted",
		"id", msg.ID,
		"name", msg.Name,
		"email", msg.Email,
		"message", msg.Message,
		"received_at", msg.ReceivedAt,
	)
	return nil
}

// --- DiscardSender ---

// DiscardSender accepts every message and does nothing with it.
type DiscardSender struct{}

// Send implements domain.ContactSender.
func (DiscardSender) Send(context.Context, domain.ContactMessage) error { return nil }
