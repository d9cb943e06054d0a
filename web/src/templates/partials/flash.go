package partials

import (
	"github.com/aswini27ms/folio/internal/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Flash renders session flash messages left by a redirect.
func Flash(data view.FlashData) g.Node {
	if data.Empty() {
		return nil
	}
	return Div(
		Class("flash-messages"),
		g.Map(data.Success, func(msg string) g.Node {
			return Div(Class("flash flash-success"), Role("status"), g.Text(msg))
		}),
		g.Map(data.Error, func(msg string) g.Node {
			return Div(Class("flash flash-error"), Role("alert"), g.Text(msg))
		}),
	)
}
