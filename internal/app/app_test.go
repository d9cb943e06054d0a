package app

import (
	"testing"

	"github.com/aswini27ms/folio/internal/config"
	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/email"
	"github.com/aswini27ms/folio/internal/module"
	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/pubsub"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T, cfg *config.Config, fs afero.Fs) *Container {
	t.Helper()
	c := NewContainer(cfg, nil, Options{
		Fs:      fs,
		Tracing: &pubsub.TracingConfig{Enabled: false},
		Seed:    1,
	})
	t.Cleanup(c.Close)
	return c
}

func TestNewContainer_EmbeddedContent(t *testing.T) {
	c := newTestContainer(t, &config.Config{}, afero.NewMemMapFs())

	store := do.MustInvoke[*content.Store](c.Injector)
	assert.Empty(t, store.Path())
	assert.Equal(t, content.Default().Personal.Name, store.Current().Personal.Name)

	builder := do.MustInvoke[*page.Builder](c.Injector)
	assert.Same(t, store, builder.Store())

	sender := do.MustInvoke[domain.ContactSender](c.Injector)
	assert.IsType(t, &email.LogSender{}, sender)
}

func TestNewContainer_ContentFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/content/portfolio.json", content.DefaultJSON(), 0o644))

	c := newTestContainer(t, &config.Config{ContentPath: "/content/portfolio.json"}, fs)

	store, err := do.Invoke[*content.Store](c.Injector)
	require.NoError(t, err)
	assert.Equal(t, "/content/portfolio.json", store.Path())
}

func TestNewContainer_MissingContentFile(t *testing.T) {
	c := newTestContainer(t, &config.Config{ContentPath: "/nope.json"}, afero.NewMemMapFs())

	_, err := do.Invoke[*content.Store](c.Injector)
	require.Error(t, err)

	_, err = NewModules(c)
	require.Error(t, err)
}

func TestNewContainer_UnknownSender(t *testing.T) {
	c := newTestContainer(t, &config.Config{ContactSender: "carrier-pigeon"}, afero.NewMemMapFs())

	_, err := NewModules(c)
	require.Error(t, err)
}

func TestNewModules(t *testing.T) {
	c := newTestContainer(t, &config.Config{}, afero.NewMemMapFs())

	modules, err := NewModules(c)
	require.NoError(t, err)

	assert.Equal(t, []string{"site", "navbar", "inbox", "theme", "livereload"}, module.Names(modules))
	assert.NoError(t, module.Validate(modules))
}
