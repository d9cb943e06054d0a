package pages

import (
	"strconv"

	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/motion"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero renders the landing banner. The whole name is always in the markup;
// the typewriter only staggers when each letter becomes visible.
func Hero(p domain.PersonalInfo, resumeURL string, floaters []motion.Floater) g.Node {
	letters := motion.Typewriter(p.Name, motion.TypewriterStep)
	return Section(
		ID("hero"),
		Class("section hero"),
		Div(Class("hero-backdrop"), Aria("hidden", "true"),
			Div(Class("hero-ring")),
			Div(Class("hero-diamond")),
			g.Map(floaters, floater),
		),
		Div(Class("container hero-inner"),
			H1(
				Class("hero-name"),
				Aria("label", p.Name),
				Style("--typing: "+motion.CSS(motion.TypewriterDuration(p.Name, motion.TypewriterStep))),
				g.Map(letters, func(l motion.Letter) g.Node {
					char := l.Char
					if char == " " {
						char = "\u00a0"
					}
					return Span(Class("hero-letter"), Aria("hidden", "true"), delay(motion.CSS(l.Delay)), g.Text(char))
				}),
				Span(Class("hero-cursor"), Aria("hidden", "true")),
			),
			H2(Class("hero-role"), g.Text(p.Role)),
			P(Class("hero-bio"), g.Text(p.Bio)),
			Div(Class("hero-actions"),
				g.If(resumeURL != "", A(
					Class("button button-primary"),
					Href(resumeURL),
					g.Attr("download"),
					Span(Aria("hidden", "true"), g.Text("⬇ ")),
					g.Text("View Resume"),
				)),
				A(
					Class("button button-outline"),
					Href("#contact"),
					Span(Aria("hidden", "true"), g.Text("✉ ")),
					g.Text("Contact Me"),
					Span(Aria("hidden", "true"), g.Text(" →")),
				),
			),
		),
	)
}

func floater(f motion.Floater) g.Node {
	return Span(
		Class("floater "+f.Color),
		Style(
			"left: "+strconv.FormatFloat(f.X, 'f', 2, 64)+"%"+
				"; top: "+strconv.FormatFloat(f.Y, 'f', 2, 64)+"%"+
				"; --delay: "+motion.CSS(f.Delay),
		),
		g.Text(f.Glyph),
	)
}
