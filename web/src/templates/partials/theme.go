package partials

import (
	"github.com/aswini27ms/folio/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ThemeToggleID is the element POST /theme swaps.
const ThemeToggleID = "theme-toggle"

// ThemeToggle renders the button switching between dark and light. It shows
// the theme a click switches to.
func ThemeToggle(theme string, static bool) g.Node {
	next := view.NextTheme(theme)
	glyph := "☀️"
	if next == view.ThemeDark {
		glyph = "🌙"
	}
	return Button(
		ID(ThemeToggleID),
		Type("button"),
		Class("theme-toggle"),
		Aria("label", "Switch to "+next+" theme"),
		Data("theme", view.NormalizeTheme(theme)),
		g.If(!static, g.Group{
			hx.Post("/theme"),
			hx.Swap("outerHTML"),
		}),
		g.Text(glyph),
	)
}
