// Package module defines the lifecycle of folio's feature modules.
//
// The server runs Register on every module, then Boot on every module, and
// on exit Shutdown in reverse boot order. Site registers the shared page
// services in Register, so navbar, inbox and livereload can look them up
// when they boot.
package module

import (
	"context"
	"fmt"

	"github.com/aswini27ms/folio/internal/registry"
	"github.com/labstack/echo/v4"
)

// Module is a feature mounted on the site.
type Module interface {
	// Name identifies the module in logs. It must be unique.
	Name() string

	// Register publishes the module's services to the registry.
	Register(reg *registry.Registry) error

	// Boot mounts routes and starts background work. Every module has
	// registered by the time Boot runs.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown stops what Boot started.
	Shutdown(ctx context.Context) error
}

// BaseModule gives no-op phases to embed.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }

// Names returns the module names in order.
func Names(mods []Module) []string {
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name())
	}
	return names
}

// Validate rejects a module list with an empty or repeated name.
func Validate(mods []Module) error {
	seen := make(map[string]bool, len(mods))
	for i, m := range mods {
		name := m.Name()
		if name == "" {
			return fmt.Errorf("module %d has no name", i)
		}
		if seen[name] {
			return fmt.Errorf("duplicate module %q", name)
		}
		seen[name] = true
	}
	return nil
}
