package pages

import (
	"net/http"
	"strconv"

	"github.com/aswini27ms/folio/internal/view"
	"github.com/aswini27ms/folio/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorPage renders a minimal page for an HTTP error.
func ErrorPage(status int, message, theme string) g.Node {
	if message == "" {
		message = http.StatusText(status)
	}
	return layouts.Document(
		layouts.DocumentProps{Title: http.StatusText(status), Theme: view.NormalizeTheme(theme)},
		Main(Class("error-page"),
			Div(Class("container"),
				H1(Class("error-status"), g.Text(strconv.Itoa(status))),
				P(Class("error-message"), g.Text(message)),
				A(Class("button button-primary"), Href("/"), g.Text("Back to home")),
			),
		),
	)
}
