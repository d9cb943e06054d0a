package email

import (
	"fmt"
	"log/slog"

	"github.com/aswini27ms/folio/internal/config"
	"github.com/aswini27ms/folio/internal/domain"
)

// NewContactSender creates and returns a contact sender based on the
// configuration. The log sender writes to logger.
func NewContactSender(cfg config.Provider, logger *slog.Logger) (domain.ContactSender, error) {
	switch cfg.GetContactSender() {
	case "", "log":
		return NewLogSender(logger), nil
	case "discard":
		return DiscardSender{}, nil
	default:
		return nil, fmt.Errorf("unknown contact sender: %s", cfg.GetContactSender())
	}
}
