package app

import (
	"github.com/aswini27ms/folio/internal/contact"
	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/module"
	"github.com/aswini27ms/folio/internal/modules/inbox"
	"github.com/aswini27ms/folio/internal/modules/livereload"
	"github.com/aswini27ms/folio/internal/modules/navbar"
	"github.com/aswini27ms/folio/internal/modules/site"
	"github.com/aswini27ms/folio/internal/modules/theme"
	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/aswini27ms/folio/internal/scrollspy"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled. The
// site module comes first because the others read its registry entries.
func NewModules(c *Container) ([]module.Module, error) {
	i := c.Injector

	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return nil, err
	}
	builder, err := do.Invoke[*page.Builder](i)
	if err != nil {
		return nil, err
	}
	service, err := do.Invoke[*contact.Service](i)
	if err != nil {
		return nil, err
	}
	subscriber, err := do.Invoke[*contact.Subscriber](i)
	if err != nil {
		return nil, err
	}
	renderer := do.MustInvoke[rendering.Renderer](i)

	return []module.Module{
		site.New(site.Dependencies{
			Store:    store,
			Tracker:  do.MustInvoke[*scrollspy.Tracker](i),
			Builder:  builder,
			Renderer: renderer,
			Fs:       do.MustInvoke[afero.Fs](i),
		}),
		navbar.New(navbar.Dependencies{Renderer: renderer}),
		inbox.New(inbox.Dependencies{
			Service:    service,
			Subscriber: subscriber,
			Renderer:   renderer,
		}),
		theme.New(renderer),
		livereload.New(),
	}, nil
}
