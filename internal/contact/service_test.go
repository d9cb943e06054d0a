package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func newTestService(pub pubsub.Publisher) *Service {
	s := NewService(pub)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "msg-1" }
	return s
}

func TestService_Submit_Valid(t *testing.T) {
	pub := &recordingPublisher{}
	s := newTestService(pub)

	msg, fieldErrors, err := s.Submit(context.Background(), Form{
		Name:    " Ada ",
		Email:   "ada@example.com",
		Message: "I would like to talk about a project.",
	})
	require.NoError(t, err)
	assert.Nil(t, fieldErrors)

	assert.Equal(t, "msg-1", msg.ID)
	assert.Equal(t, "Ada", msg.Name)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), msg.ReceivedAt)

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, Submitted.Name(), pub.msgs[0].Topic)
	assert.Equal(t, "msg-1", pub.msgs[0].Metadata["contact_id"])

	decoded, err := Submitted.Decode(pub.msgs[0])
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestService_Submit_InvalidPublishesNothing(t *testing.T) {
	pub := &recordingPublisher{}
	s := newTestService(pub)

	msg, fieldErrors, err := s.Submit(context.Background(), Form{Email: "nope"})
	require.NoError(t, err)
	assert.Equal(t, domain.ContactMessage{}, msg)
	assert.Equal(t, "Invalid email", fieldErrors["email"])
	assert.Empty(t, pub.msgs)
}

func TestService_Submit_CountsTrimmedMessage(t *testing.T) {
	pub := &recordingPublisher{}
	s := newTestService(pub)

	// Padding does not count toward the ten character minimum.
	_, fieldErrors, err := s.Submit(context.Background(), Form{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "123456789 ",
	})
	require.NoError(t, err)
	assert.Equal(t, FieldErrors{"message": "Message must be at least 10 characters"}, fieldErrors)
	assert.Empty(t, pub.msgs)

	msg, fieldErrors, err := s.Submit(context.Background(), Form{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "  1234567890  ",
	})
	require.NoError(t, err)
	assert.Nil(t, fieldErrors)
	assert.Equal(t, "1234567890", msg.Message)
}

func TestService_Submit_PublishError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("bus closed")}
	s := newTestService(pub)

	_, fieldErrors, err := s.Submit(context.Background(), Form{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Long enough message",
	})
	require.Error(t, err)
	assert.Nil(t, fieldErrors)
	assert.Contains(t, err.Error(), "bus closed")
}

func TestService_Submit_GeneratesIDs(t *testing.T) {
	s := NewService(&recordingPublisher{})
	form := Form{Name: "Ada", Email: "ada@example.com", Message: "Long enough message"}

	a, _, err := s.Submit(context.Background(), form)
	require.NoError(t, err)
	b, _, err := s.Submit(context.Background(), form)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
