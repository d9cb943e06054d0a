// Package theme switches the visitor between the dark and light themes.
package theme

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aswini27ms/folio/internal/module"
	"github.com/aswini27ms/folio/internal/registry"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/aswini27ms/folio/internal/view"
	"github.com/aswini27ms/folio/web/src/templates/partials"
	"github.com/labstack/echo/v4"
	hxhttp "maragu.dev/gomponents-htmx/http"
)

// ChangedEvent is the client event fired after a switch. Its detail is the
// new theme.
const ChangedEvent = "theme-changed"

// ThemeModule implements module.Module for the theme toggle.
type ThemeModule struct {
	module.BaseModule
	renderer rendering.Renderer
}

// New creates the theme module.
func New(renderer rendering.Renderer) *ThemeModule {
	return &ThemeModule{renderer: renderer}
}

// Name returns the module name.
func (m *ThemeModule) Name() string {
	return "theme"
}

// Boot mounts POST /theme.
func (m *ThemeModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	g.POST("/theme", m.togglePost)
	slog.Info("Booted theme module")
	return nil
}

func (m *ThemeModule) togglePost(c echo.Context) error {
	next := view.NextTheme(view.Theme(c))
	view.SetTheme(c, next)

	if !hxhttp.IsRequest(c.Request().Header) {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	trigger, err := json.Marshal(map[string]string{ChangedEvent: next})
	if err != nil {
		return err
	}
	hxhttp.SetTrigger(c.Response().Header(), string(trigger))

	return m.renderer.RenderPage(c, http.StatusOK, partials.ThemeToggle(next, false))
}
