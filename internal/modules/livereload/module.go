// Package livereload pushes a reload signal to open browsers whenever the
// portfolio content changes. It is meant for editing content locally.
package livereload

import (
	"context"
	"log/slog"
	"time"

	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/hub"
	"github.com/aswini27ms/folio/internal/module"
	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/registry"
	"github.com/labstack/echo/v4"
)

// ReloadMessage is sent to every browser after a content change.
const ReloadMessage = "reload"

const broadcastTimeout = time.Second

// LiveReloadModule implements module.Module for the live reload socket.
type LiveReloadModule struct {
	module.BaseModule
	hub    *hub.Hub
	cancel context.CancelFunc
}

// New creates the live reload module.
func New() *LiveReloadModule {
	return &LiveReloadModule{}
}

// Name returns the module name.
func (m *LiveReloadModule) Name() string {
	return "livereload"
}

// Register creates the hub when live reload is enabled.
func (m *LiveReloadModule) Register(reg *registry.Registry) error {
	if !reg.Config().GetLiveReload() {
		return nil
	}
	m.hub = hub.NewHub()
	registry.Set(reg, registry.LiveHubKey, m.hub)
	return nil
}

// Boot runs the hub, subscribes it to content changes and mounts the socket.
func (m *LiveReloadModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.hub == nil {
		slog.Debug("Live reload disabled")
		return nil
	}

	store, err := registry.Require(reg, registry.ContentStoreKey)
	if err != nil {
		return err
	}

	hubCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	go m.hub.Run(hubCtx)

	store.OnChange(func(*content.Portfolio) {
		bctx, cancel := context.WithTimeout(hubCtx, broadcastTimeout)
		defer cancel()
		if err := m.hub.Broadcast(bctx, []byte(ReloadMessage)); err != nil {
			slog.Warn("Failed to broadcast live reload", "error", err)
		}
	})

	g.GET(page.LiveReloadURL, NewHandler(m.hub).ServeWS)

	slog.Info("Booted livereload module", "path", page.LiveReloadURL)
	return nil
}

// Shutdown stops the hub, which closes every open socket.
func (m *LiveReloadModule) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
