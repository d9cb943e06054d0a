package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/middleware"
	"github.com/aswini27ms/folio/internal/view"
	"github.com/aswini27ms/folio/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	hxhttp "maragu.dev/gomponents-htmx/http"
)

// setupErrorHandling installs the central error handler. Errors that are not
// an echo.HTTPError are unexpected: they are logged with a stack trace and
// answered with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := middleware.FromContext(c.Request().Context())
		code := http.StatusInternalServerError
		message := ""

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code = he.Code
			if he.Internal != nil {
				logger.Debug("HTTP error", "code", code, "internal", he.Internal)
			}
			message = fmt.Sprint(he.Message)
		case errors.Is(err, domain.ErrNotFound):
			code = http.StatusNotFound
		default:
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if code >= http.StatusInternalServerError {
			// Internal details never reach the visitor.
			message = http.StatusText(code)
		}

		if err := respondError(c, code, message); err != nil {
			logger.Error("Failed to write error response", "error", err)
		}
	}
}

func respondError(c echo.Context, code int, message string) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(code)
	}
	if message == "" {
		message = http.StatusText(code)
	}
	if hxhttp.IsRequest(c.Request().Header) {
		return c.String(code, message)
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return pages.ErrorPage(code, message, view.Theme(c)).Render(c.Response())
}
