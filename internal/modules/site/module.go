// Package site serves the portfolio page, the résumé download and the health
// check, and keeps the content fresh when a content file is configured.
package site

import (
	"context"
	"log/slog"

	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/module"
	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/registry"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/aswini27ms/folio/internal/scrollspy"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
)

// SiteModule implements module.Module for the page itself.
type SiteModule struct {
	module.BaseModule
	store    *content.Store
	tracker  *scrollspy.Tracker
	builder  *page.Builder
	renderer rendering.Renderer
	fs       afero.Fs
	watcher  *content.Watcher
}

// Dependencies holds the services the SiteModule requires.
type Dependencies struct {
	Store    *content.Store
	Tracker  *scrollspy.Tracker
	Builder  *page.Builder
	Renderer rendering.Renderer
	// Fs is where the résumé is read from.
	Fs afero.Fs
}

// New creates the site module.
func New(deps Dependencies) *SiteModule {
	return &SiteModule{
		store:    deps.Store,
		tracker:  deps.Tracker,
		builder:  deps.Builder,
		renderer: deps.Renderer,
		fs:       deps.Fs,
	}
}

// Name returns the module name.
func (m *SiteModule) Name() string {
	return "site"
}

// Register publishes the content services other modules render from.
func (m *SiteModule) Register(reg *registry.Registry) error {
	registry.Set(reg, registry.ContentStoreKey, m.store)
	registry.Set(reg, registry.TrackerKey, m.tracker)
	registry.Set(reg, registry.PageBuilderKey, m.builder)
	return nil
}

// Boot mounts the page routes and starts watching the content file.
func (m *SiteModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()

	if m.store.Path() != "" {
		w, err := content.NewWatcher(m.store, 0)
		if err != nil {
			// The site still serves the loaded content without hot reload.
			slog.Warn("Content watcher unavailable", "path", m.store.Path(), "error", err)
		} else {
			m.watcher = w
			go w.Run(ctx)
		}
	}

	handler := NewHandler(m.builder, m.renderer, m.fs, cfg.GetResumePath(), cfg.GetResumeFilename())

	g.GET("/", handler.HomeGet)
	g.GET(page.ResumePath, handler.ResumeGet)
	g.GET("/health", handler.HealthGet)

	slog.Info("Booted site module", "content_path", m.store.Path(), "resume", cfg.GetResumePath() != "")
	return nil
}

// Shutdown stops the content watcher.
func (m *SiteModule) Shutdown(ctx context.Context) error {
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}
