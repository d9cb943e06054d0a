package pages

import (
	"strconv"

	"github.com/aswini27ms/folio/internal/domain"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SiteFooter renders the credits line and copyright for year.
func SiteFooter(p domain.PersonalInfo, year int) g.Node {
	return Footer(
		Class("site-footer"),
		Div(Class("container"),
			Div(Class("footer-made"),
				Span(g.Text("Made with")),
				Span(Class("footer-heart"), Aria("hidden", "true"), g.Text(" ❤ ")),
				Span(g.Text("and")),
				Span(Aria("hidden", "true"), g.Text(" </> ")),
				Span(g.Text("by "+p.FirstName())),
				Span(Aria("hidden", "true"), g.Text(" ☕")),
			),
			Div(Class("footer-copyright"),
				g.Text("© "+strconv.Itoa(year)+" "+p.Name+". All rights reserved."),
			),
			Div(Class("footer-stack"), g.Text("Built with Go, Echo, gomponents and htmx")),
		),
	)
}
