package pages

import (
	"strconv"
	"time"

	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/motion"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// About renders the biography, highlights, achievements, certifications and
// ventures.
func About(p *content.Portfolio) g.Node {
	return section("about", "about", "About Me",
		Div(Class("about-grid"),
			Div(Class("about-text reveal"),
				g.If(p.Personal.Location != "", Div(Class("about-location"),
					Span(Aria("hidden", "true"), g.Text("📍 ")),
					Span(g.Text(p.Personal.Location)),
				)),
				P(Class("about-bio"), g.Text(p.Personal.Bio)),
				g.If(len(p.Highlights) > 0, Div(Class("about-highlights"),
					H3(g.Text("Career Highlights")),
					Ul(g.Group(highlights(p.Highlights))),
				)),
				Div(Class("about-stats"),
					stat(strconv.Itoa(len(p.Projects))+"+", "Projects Completed"),
					stat(strconv.Itoa(len(p.Achievements))+"+", "Achievements"),
				),
			),
		),
		g.If(len(p.Achievements) > 0, Div(Class("about-block reveal"),
			H3(g.Text("Achievements")),
			Div(Class("card-grid"), g.Map(p.Achievements, achievement)),
		)),
		g.If(len(p.Certifications) > 0, Div(Class("about-block reveal"),
			H3(g.Text("Certifications")),
			Ul(Class("cert-list"), g.Map(p.Certifications, func(cert string) g.Node {
				return Li(Class("cert"), g.Text(cert))
			})),
		)),
		g.If(len(p.Startups) > 0, Div(Class("about-block reveal"),
			H3(g.Text("Ventures")),
			Div(Class("card-grid"), g.Map(p.Startups, startup)),
		)),
	)
}

func highlights(items []string) []g.Node {
	nodes := make([]g.Node, len(items))
	for i, h := range items {
		nodes[i] = Li(
			Class("highlight reveal"),
			delay(motion.CSS(motion.Stagger(600*time.Millisecond, motion.HighlightStep, i))),
			Span(Class("highlight-dot"), Aria("hidden", "true")),
			P(g.Text(h)),
		)
	}
	return nodes
}

func stat(value, label string) g.Node {
	return Div(Class("stat"),
		Div(Class("stat-value"), g.Text(value)),
		Div(Class("stat-label"), g.Text(label)),
	)
}

func achievement(a domain.Achievement) g.Node {
	return Div(Class("card achievement"),
		Div(Class("card-head"),
			H4(g.Text(a.Title)),
			g.If(a.Year != "", Span(Class("badge"), g.Text(a.Year))),
		),
		P(g.Text(a.Description)),
	)
}

func startup(s domain.Startup) g.Node {
	return Div(Class("card startup"),
		H4(g.Text(s.Name)),
		Div(Class("card-subtitle"), g.Text(s.Role)),
		g.If(s.Description != "", P(g.Text(s.Description))),
		g.If(len(s.TechStack) > 0, Div(Class("tags"), g.Map(s.TechStack, techTag))),
		g.If(len(s.Achievements) > 0, Ul(Class("bullets"), g.Map(s.Achievements, func(a string) g.Node {
			return Li(g.Text(a))
		}))),
	)
}
