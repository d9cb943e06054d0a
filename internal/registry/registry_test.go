package registry

import (
	"testing"

	"github.com/aswini27ms/folio/internal/config"
	"github.com/aswini27ms/folio/internal/scrollspy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	cfg := &config.Config{AppEnv: "test"}
	reg := New(cfg)
	assert.Same(t, cfg, reg.Config())
	assert.Empty(t, reg.Keys())

	_, ok := Get(reg, TrackerKey)
	assert.False(t, ok)

	tr := scrollspy.New()
	Set(reg, TrackerKey, tr)

	got, ok := Get(reg, TrackerKey)
	assert.True(t, ok)
	assert.Same(t, tr, got)

	// A key of another type sharing the name does not match.
	_, ok = Get(reg, Key[string]("scrollspy.tracker"))
	assert.False(t, ok)
}

func TestRequire(t *testing.T) {
	reg := New(&config.Config{})

	_, err := Require(reg, PageBuilderKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceMissing)
	assert.Contains(t, err.Error(), "page.builder")

	tr := scrollspy.New()
	Set(reg, TrackerKey, tr)

	got, err := Require(reg, TrackerKey)
	require.NoError(t, err)
	assert.Same(t, tr, got)

	_, err = Require(reg, Key[int]("scrollspy.tracker"))
	assert.ErrorIs(t, err, ErrServiceMissing)
}

func TestKeys(t *testing.T) {
	reg := New(&config.Config{})
	Set(reg, TrackerKey, scrollspy.New())
	Set(reg, Key[string]("a.first"), "x")

	assert.Equal(t, []string{"a.first", "scrollspy.tracker"}, reg.Keys())
}
