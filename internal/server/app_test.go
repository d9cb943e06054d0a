package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aswini27ms/folio/internal/app"
	"github.com/aswini27ms/folio/internal/config"
	"github.com/aswini27ms/folio/internal/module"
	"github.com/aswini27ms/folio/internal/pubsub"
	"github.com/aswini27ms/folio/internal/registry"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv:        config.EnvDevelopment,
		SessionSecret: "test-secret-test-secret-test-sec",
		ContactSender: "discard",
	}
	container := app.NewContainer(cfg, nil, app.Options{
		Fs:      afero.NewMemMapFs(),
		Tracing: &pubsub.TracingConfig{},
		Seed:    1,
	})
	t.Cleanup(container.Close)

	modules, err := app.NewModules(container)
	require.NoError(t, err)

	s := New(cfg)
	require.NoError(t, s.InitModules(context.Background(), modules))
	t.Cleanup(func() { s.shutdownModules(context.Background()) })
	return s
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		target   string
		form     url.Values
		htmx     bool
		wantCode int
		wantBody string
	}{
		{name: "home", method: http.MethodGet, target: "/", wantCode: http.StatusOK, wantBody: `id="hero"`},
		{name: "health", method: http.MethodGet, target: "/health", wantCode: http.StatusOK, wantBody: "OK"},
		{name: "stylesheet", method: http.MethodGet, target: "/static/css/site.css", wantCode: http.StatusOK},
		{name: "script", method: http.MethodGet, target: "/static/js/site.js", wantCode: http.StatusOK, wantBody: "scroll"},
		{name: "resume not configured", method: http.MethodGet, target: "/resume", wantCode: http.StatusNotFound},
		{name: "nav spy", method: http.MethodPost, target: "/nav/spy", form: url.Values{"scroll_y": {"0"}}, htmx: true, wantCode: http.StatusOK, wantBody: `id="site-nav"`},
		{name: "nav menu", method: http.MethodPost, target: "/nav/menu", form: url.Values{"open": {"false"}}, htmx: true, wantCode: http.StatusOK, wantBody: "nav-open"},
		{name: "nav select", method: http.MethodPost, target: "/nav/select", form: url.Values{"section": {"skills"}}, htmx: true, wantCode: http.StatusOK, wantBody: `data-active="skills"`},
		{name: "theme", method: http.MethodPost, target: "/theme", htmx: true, wantCode: http.StatusOK, wantBody: `id="theme-toggle"`},
		{name: "contact invalid", method: http.MethodPost, target: "/contact", form: url.Values{"name": {"Ada"}}, htmx: true, wantCode: http.StatusUnprocessableEntity, wantBody: "Email is required"},
		{name: "live reload disabled", method: http.MethodGet, target: "/ws/live", wantCode: http.StatusNotFound},
		{name: "unknown", method: http.MethodGet, target: "/admin", wantCode: http.StatusNotFound, wantBody: "Back to home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.form.Encode()))
			if tt.form != nil {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			if tt.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestServer_Shutdown(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.Shutdown(context.Background()))
}

type namedModule struct {
	module.BaseModule
	name   string
	booted bool
}

func (m *namedModule) Name() string { return m.name }

func (m *namedModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	m.booted = true
	return nil
}

func TestInitModules_RejectsDuplicateNames(t *testing.T) {
	first := &namedModule{name: "site"}
	second := &namedModule{name: "site"}

	s := New(&config.Config{AppEnv: config.EnvDevelopment, SessionSecret: "test-secret"})
	err := s.InitModules(context.Background(), []module.Module{first, second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate module "site"`)
	assert.False(t, first.booted)
}

func TestInitModules_MissingServiceFailsBoot(t *testing.T) {
	cfg := &config.Config{
		AppEnv:        config.EnvDevelopment,
		SessionSecret: "test-secret-test-secret-test-sec",
		ContactSender: "discard",
	}
	container := app.NewContainer(cfg, nil, app.Options{
		Fs:      afero.NewMemMapFs(),
		Tracing: &pubsub.TracingConfig{},
		Seed:    1,
	})
	t.Cleanup(container.Close)

	modules, err := app.NewModules(container)
	require.NoError(t, err)

	// Without the site module nothing registers the page builder.
	s := New(cfg)
	err = s.InitModules(context.Background(), modules[1:])
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrServiceMissing)
	assert.Contains(t, err.Error(), "navbar")
}
