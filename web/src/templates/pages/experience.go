package pages

import (
	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/motion"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Experience renders the timeline. Bullets keep their authored order.
func Experience(entries []domain.Experience) g.Node {
	items := make([]g.Node, len(entries))
	for i, e := range entries {
		items[i] = timelineEntry(e, i)
	}
	return section("experience", "experience", "Experience",
		Ol(Class("timeline"), g.Group(items)),
	)
}

func timelineEntry(e domain.Experience, i int) g.Node {
	bullets := make([]g.Node, len(e.Description))
	for j, d := range e.Description {
		bullets[j] = Li(Class("reveal"), delay(motion.CSS(motion.ExperienceBullet(i, j))), g.Text(d))
	}
	return Li(
		ID("experience-"+e.ID),
		Class("timeline-entry reveal"),
		delay(motion.CSS(motion.Stagger(0, motion.ExperienceStep, i))),
		Span(Class("timeline-dot"), Aria("hidden", "true")),
		Div(Class("card timeline-card"),
			H3(Class("timeline-role"), g.Text(e.Role)),
			Div(Class("timeline-company"), g.Text(e.Company)),
			Div(Class("timeline-meta"),
				Span(g.Text(e.Duration)),
				g.If(e.Location != "", Span(Class("timeline-location"), g.Text("📍 "+e.Location))),
			),
			Ul(Class("bullets"), g.Group(bullets)),
		),
	)
}
