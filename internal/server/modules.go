package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aswini27ms/folio/internal/module"
)

// InitModules registers every module, then boots them in order on the root
// group. Registration completes for all modules before any boots, so a
// module may read services another module registered.
func (s *Server) InitModules(ctx context.Context, modules []module.Module) error {
	if err := module.Validate(modules); err != nil {
		return err
	}

	for _, m := range modules {
		if err := m.Register(s.reg); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}

	root := s.E.Group("")
	for _, m := range modules {
		if err := m.Boot(ctx, root, s.reg); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		s.modules = append(s.modules, m)
	}

	slog.Info("Modules initialised", "modules", module.Names(s.modules), "services", s.reg.Keys())
	return nil
}

// shutdownModules stops the booted modules in reverse order.
func (s *Server) shutdownModules(ctx context.Context) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
	s.modules = nil
}
