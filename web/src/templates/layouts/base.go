// Package layouts holds the document shell every page renders into.
package layouts

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HTMXSrc is the htmx build the pages load.
const HTMXSrc = "https://unpkg.com/htmx.org@2.0.4"

// HTMXConfig lets htmx swap 422 responses so validation errors render in
// place. Other error codes are not swapped.
const HTMXConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// DocumentProps configures the document shell.
type DocumentProps struct {
	Title       string
	Owner       string
	Description string
	// Theme is the class on <html>, "dark" or "light".
	Theme string
	// LiveReloadURL, when set, makes the script reconnect to it and reload
	// the page on content changes.
	LiveReloadURL string
	// Static marks an exported page served without the application server.
	Static bool
}

// Document wraps body in the HTML document.
func Document(p DocumentProps, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Class(p.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(CalculateTitle(p.Title, p.Owner))),
				g.If(p.Description != "", Meta(Name("description"), Content(p.Description))),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				g.If(!p.Static, g.Group{
					Meta(Name("htmx-config"), Content(HTMXConfig)),
					Script(Src(HTMXSrc), Defer()),
				}),
				Script(Src("/static/js/site.js"), Defer()),
			),
			Body(
				Class("site"),
				g.If(p.Static, Data("static", "true")),
				g.If(p.LiveReloadURL != "", Data("live-reload", p.LiveReloadURL)),
				g.Group(body),
			),
		),
	)
}
