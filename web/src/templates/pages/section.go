// Package pages composes the portfolio sections into full documents.
package pages

import (
	"strconv"

	"github.com/aswini27ms/folio/internal/motion"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// section wraps a page section with its heading and reveal-on-scroll hooks.
func section(id, class, title string, children ...g.Node) g.Node {
	return Section(
		ID(id),
		Class("section "+class),
		revealAttrs(motion.SectionReveal),
		Div(Class("container"),
			g.If(title != "", Div(Class("section-header reveal"),
				H2(Class("section-title"), g.Text(title)),
				Div(Class("section-rule")),
			)),
			g.Group(children),
		),
	)
}

func revealAttrs(r motion.Reveal) g.Node {
	return g.Group{
		Data("reveal", ""),
		Data("reveal-once", strconv.FormatBool(r.Once)),
		Data("reveal-margin", r.Margin),
	}
}

// delay sets the --delay custom property used by entrance animations.
func delay(d string) g.Node {
	return Style("--delay: " + d)
}
