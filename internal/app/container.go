// Package app wires the application's services and modules together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aswini27ms/folio/internal/config"
	"github.com/aswini27ms/folio/internal/contact"
	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/email"
	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/pubsub"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/aswini27ms/folio/internal/scrollspy"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Container holds the wired services. Close releases what they hold open.
type Container struct {
	Injector do.Injector
	closers  []func()
}

// Options tweaks the container for callers other than the server.
type Options struct {
	// Fs is where content and the résumé are read from. Defaults to the OS.
	Fs afero.Fs
	// Tracing overrides the bus tracing configuration from the environment.
	Tracing *pubsub.TracingConfig
	// Seed fixes the page's decorative layout (see page.Options).
	Seed uint64
}

// NewContainer registers every service provider. Services are built lazily
// on first use.
func NewContainer(cfg config.Provider, logger *slog.Logger, opts Options) *Container {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{Injector: do.New()}
	i := c.Injector

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)
	do.ProvideValue(i, opts.Fs)

	do.Provide(i, func(i do.Injector) (*content.Store, error) {
		path := cfg.GetContentPath()
		if path == "" {
			return content.NewStore(content.Default()), nil
		}
		store, err := content.NewFileStore(do.MustInvoke[afero.Fs](i), path)
		if err != nil {
			return nil, fmt.Errorf("failed to load content: %w", err)
		}
		return store, nil
	})

	do.Provide(i, func(i do.Injector) (*scrollspy.Tracker, error) {
		return scrollspy.New(), nil
	})

	do.Provide(i, func(i do.Injector) (*page.Builder, error) {
		store, err := do.Invoke[*content.Store](i)
		if err != nil {
			return nil, err
		}
		return page.NewBuilder(store, do.MustInvoke[*scrollspy.Tracker](i), page.Options{
			ResumeAvailable: cfg.GetResumePath() != "",
			ResumeFilename:  cfg.GetResumeFilename(),
			LiveReload:      cfg.GetLiveReload(),
			Seed:            opts.Seed,
		}), nil
	})

	do.Provide(i, func(i do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		var tracing pubsub.TracingConfig
		if opts.Tracing != nil {
			tracing = *opts.Tracing
		} else {
			var err error
			if tracing, err = pubsub.TracingConfigFromEnv(os.Getenv); err != nil {
				return nil, err
			}
		}
		tracer, shutdownTracing, err := pubsub.SetupOTel(context.Background(), tracing)
		if err != nil {
			return nil, fmt.Errorf("failed to set up bus tracing: %w", err)
		}
		bus := pubsub.NewWatermillBridgeWithTracer(tracer)
		c.closers = append(c.closers, func() {
			if err := bus.Close(); err != nil {
				slog.Error("Failed to close message bus", "error", err)
			}
			shutdownTracing()
		})
		return bus, nil
	})

	do.Provide(i, func(i do.Injector) (domain.ContactSender, error) {
		return email.NewContactSender(cfg, do.MustInvoke[*slog.Logger](i))
	})

	do.Provide(i, func(i do.Injector) (*contact.Service, error) {
		bus, err := do.Invoke[*pubsub.WatermillBridge](i)
		if err != nil {
			return nil, err
		}
		return contact.NewService(bus), nil
	})

	do.Provide(i, func(i do.Injector) (*contact.Subscriber, error) {
		bus, err := do.Invoke[*pubsub.WatermillBridge](i)
		if err != nil {
			return nil, err
		}
		sender, err := do.Invoke[domain.ContactSender](i)
		if err != nil {
			return nil, err
		}
		return contact.NewSubscriber(bus, sender), nil
	})

	return c
}

// Close releases the message bus and the tracer, in reverse order of
// creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
