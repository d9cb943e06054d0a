package export

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/aswini27ms/folio/internal/scrollspy"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(resume bool) *page.Builder {
	return page.NewBuilder(content.NewStore(content.Default()), scrollspy.New(), page.Options{
		ResumeAvailable: resume,
		ResumeFilename:  "Ada_Resume.pdf",
		Seed:            7,
	})
}

func TestExport(t *testing.T) {
	dst := afero.NewMemMapFs()
	src := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(src, "/docs/cv.pdf", []byte("%PDF"), 0o644))

	assets := fstest.MapFS{
		"css/site.css": {Data: []byte("body{}")},
		"js/site.js":   {Data: []byte("// js")},
	}

	res, err := Export(context.Background(), dst, newBuilder(true), rendering.NewUniversalRenderer(), Options{
		OutDir:     "/out",
		Assets:     assets,
		ResumeFs:   src,
		ResumePath: "/docs/cv.pdf",
		Theme:      "light",
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"index.html", "static/css/site.css", "static/js/site.js", "Ada_Resume.pdf"}, res.Files)

	html, err := afero.ReadFile(dst, "/out/index.html")
	require.NoError(t, err)
	body := string(html)
	assert.Contains(t, body, `data-static="true"`)
	assert.Contains(t, body, `class="light"`)
	assert.Contains(t, body, `action="mailto:`)
	assert.Contains(t, body, `href="/Ada_Resume.pdf"`)
	assert.NotContains(t, body, "hx-post")

	css, err := afero.ReadFile(dst, "/out/static/css/site.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(css))

	ok, err := afero.Exists(dst, "/out/Ada_Resume.pdf")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExport_MissingResume(t *testing.T) {
	_, err := Export(context.Background(), afero.NewMemMapFs(), newBuilder(true), rendering.NewUniversalRenderer(), Options{
		OutDir:     "/out",
		ResumeFs:   afero.NewMemMapFs(),
		ResumePath: "/docs/cv.pdf",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume")
}

func TestExport_PageOnly(t *testing.T) {
	dst := afero.NewMemMapFs()
	res, err := Export(context.Background(), dst, newBuilder(false), rendering.NewUniversalRenderer(), Options{OutDir: "site"})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html"}, res.Files)

	html, err := afero.ReadFile(dst, "site/index.html")
	require.NoError(t, err)
	assert.NotContains(t, string(html), "View Resume")
}
