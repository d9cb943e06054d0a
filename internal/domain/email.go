package domain

import "context"

// ContactSender defines where accepted contact messages are delivered. This
// allows for different implementations (console logging, discarding in tests).
type ContactSender interface {
	Send(ctx context.Context, msg ContactMessage) error
}
