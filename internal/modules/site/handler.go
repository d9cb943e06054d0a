package site

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/aswini27ms/folio/internal/view"
	"github.com/aswini27ms/folio/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Handler serves the site routes.
type Handler struct {
	builder        *page.Builder
	renderer       rendering.Renderer
	fs             afero.Fs
	resumePath     string
	resumeFilename string
}

// NewHandler creates a Handler. An empty resumePath disables the download.
func NewHandler(builder *page.Builder, renderer rendering.Renderer, fs afero.Fs, resumePath, resumeFilename string) *Handler {
	if resumeFilename == "" && resumePath != "" {
		resumeFilename = filepath.Base(resumePath)
	}
	return &Handler{
		builder:        builder,
		renderer:       renderer,
		fs:             fs,
		resumePath:     resumePath,
		resumeFilename: resumeFilename,
	}
}

// HomeGet renders the full portfolio page. ?section= picks the initially
// highlighted navigation item.
func (h *Handler) HomeGet(c echo.Context) error {
	props := h.builder.Home(page.Request{
		Section: c.QueryParam("section"),
		Theme:   view.Theme(c),
		Flash:   view.GetFlashData(c),
	})
	return h.renderer.RenderPage(c, http.StatusOK, pages.Home(props))
}

// ResumeGet serves the configured résumé as an attachment.
func (h *Handler) ResumeGet(c echo.Context) error {
	if h.resumePath == "" {
		return echo.NewHTTPError(http.StatusNotFound, "Resume not available")
	}

	data, err := afero.ReadFile(h.fs, h.resumePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound, "Resume not available")
		}
		return errors.Wrapf(err, "failed to read resume: %s", h.resumePath)
	}

	contentType := mime.TypeByExtension(filepath.Ext(h.resumeFilename))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": h.resumeFilename}))
	return c.Blob(http.StatusOK, contentType, data)
}

// HealthGet reports that the server is up.
func (h *Handler) HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
