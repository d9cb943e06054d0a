// Package server assembles the Echo instance, its middleware and the
// application modules.
package server

import (
	"net/http"

	"github.com/aswini27ms/folio/internal/config"
	"github.com/aswini27ms/folio/internal/middleware"
	"github.com/aswini27ms/folio/internal/module"
	"github.com/aswini27ms/folio/internal/registry"
	"github.com/aswini27ms/folio/web"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     config.Provider
	reg     *registry.Registry
	modules []module.Module
}

// New creates a new Server with the shared middleware and static assets in
// place. Modules are added with InitModules.
func New(cfg config.Provider) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", web.Static())

	setupErrorHandling(e)

	return &Server{
		E:   e,
		Cfg: cfg,
		reg: registry.New(cfg),
	}
}

// Registry returns the service registry shared by the modules.
func (s *Server) Registry() *registry.Registry {
	return s.reg
}
