// Package inbox receives contact form submissions and hands accepted
// messages to the configured sender through the message bus.
package inbox

import (
	"context"
	"log/slog"

	"github.com/aswini27ms/folio/internal/contact"
	"github.com/aswini27ms/folio/internal/middleware"
	"github.com/aswini27ms/folio/internal/module"
	"github.com/aswini27ms/folio/internal/registry"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/labstack/echo/v4"
)

// SubmissionsPerMinute is the per-IP allowance on POST /contact.
const SubmissionsPerMinute = 10

// InboxModule implements module.Module for the contact form.
type InboxModule struct {
	module.BaseModule
	service    *contact.Service
	subscriber *contact.Subscriber
	renderer   rendering.Renderer
	cancel     context.CancelFunc
}

// Dependencies holds the services the InboxModule requires.
type Dependencies struct {
	Service    *contact.Service
	Subscriber *contact.Subscriber
	Renderer   rendering.Renderer
}

// New creates the inbox module.
func New(deps Dependencies) *InboxModule {
	return &InboxModule{
		service:    deps.Service,
		subscriber: deps.Subscriber,
		renderer:   deps.Renderer,
	}
}

// Name returns the module name.
func (m *InboxModule) Name() string {
	return "inbox"
}

// Boot starts delivering accepted messages and mounts POST /contact.
func (m *InboxModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	builder, err := registry.Require(reg, registry.PageBuilderKey)
	if err != nil {
		return err
	}

	if m.subscriber != nil {
		subCtx, cancel := context.WithCancel(context.Background())
		if err := m.subscriber.Start(subCtx); err != nil {
			cancel()
			return err
		}
		m.cancel = cancel
	}

	handler := NewHandler(m.service, builder, m.renderer)

	g.POST("/contact", handler.ContactPost, middleware.RateLimiter(SubmissionsPerMinute))

	slog.Info("Booted inbox module", "rate_per_minute", SubmissionsPerMinute)
	return nil
}

// Shutdown stops the delivery subscription.
func (m *InboxModule) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
