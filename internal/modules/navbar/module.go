// Package navbar serves the htmx endpoints that keep the navigation bar in
// step with the visitor's scroll position and mobile menu.
package navbar

import (
	"context"
	"log/slog"

	"github.com/aswini27ms/folio/internal/module"
	"github.com/aswini27ms/folio/internal/registry"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/labstack/echo/v4"
)

// NavbarModule implements module.Module for the navigation endpoints.
type NavbarModule struct {
	module.BaseModule
	renderer rendering.Renderer
}

// Dependencies holds the services the NavbarModule requires.
type Dependencies struct {
	Renderer rendering.Renderer
}

// New creates the navbar module.
func New(deps Dependencies) *NavbarModule {
	return &NavbarModule{renderer: deps.Renderer}
}

// Name returns the module name.
func (m *NavbarModule) Name() string {
	return "navbar"
}

// Boot mounts the /nav routes. The page builder comes from the site module.
func (m *NavbarModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	builder, err := registry.Require(reg, registry.PageBuilderKey)
	if err != nil {
		return err
	}
	handler := NewHandler(builder, m.renderer)

	nav := g.Group("/nav")
	nav.POST("/spy", handler.SpyPost)
	nav.POST("/menu", handler.MenuPost)
	nav.POST("/select", handler.SelectPost)

	slog.Info("Booted navbar module")
	return nil
}
