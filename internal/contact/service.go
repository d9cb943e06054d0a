package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/pubsub"
	"github.com/google/uuid"
)

// Submitted is published for every accepted contact message.
var Submitted = pubsub.NewEvent[domain.ContactMessage]("contact.submitted")

// Service accepts contact form submissions.
type Service struct {
	publisher pubsub.Publisher
	now       func() time.Time
	newID     func() string
}

// NewService creates a Service publishing accepted messages on publisher.
func NewService(publisher pubsub.Publisher) *Service {
	return &Service{
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Submit validates the form. Invalid input yields field errors and nothing is
// published. Valid input is stamped with an ID and time and published.
func (s *Service) Submit(ctx context.Context, form Form) (domain.ContactMessage, FieldErrors, error) {
	form = form.Normalize()
	if fieldErrors := Validate(form); fieldErrors != nil {
		return domain.ContactMessage{}, fieldErrors, nil
	}

	msg := domain.ContactMessage{
		ID:         s.newID(),
		Name:       form.Name,
		Email:      form.Email,
		Message:    form.Message,
		ReceivedAt: s.now().UTC(),
	}

	if err := pubsub.Publish(ctx, s.publisher, Submitted, msg, map[string]string{"contact_id": msg.ID}); err != nil {
		return domain.ContactMessage{}, nil, fmt.Errorf("failed to publish contact message: %w", err)
	}

	return msg, nil, nil
}
