package pages

import (
	"strings"

	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/motion"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var techIcons = map[string]string{
	"React":      "⚛️",
	"Node":       "🟩",
	"Flutter":    "💙",
	"Python":     "🐍",
	"JavaScript": "🟨",
	"TypeScript": "🔷",
	"Tailwind":   "🌊",
	"Firebase":   "🔥",
	"Docker":     "🐳",
}

// TechIcon returns the glyph shown next to a technology tag. A tag with a
// suffix such as "Node.js" or "React.js" falls back to its base name.
func TechIcon(tech string) string {
	if icon, ok := techIcons[tech]; ok {
		return icon
	}
	if base, _, found := strings.Cut(tech, "."); found {
		if icon, ok := techIcons[base]; ok {
			return icon
		}
	}
	return "💻"
}

// Projects renders the project cards.
func Projects(projects []domain.Project) g.Node {
	cards := make([]g.Node, len(projects))
	for i, p := range projects {
		cards[i] = projectCard(p, i)
	}
	return section("projects", "projects alt", "Projects",
		Div(Class("project-grid"), g.Group(cards)),
	)
}

func projectCard(p domain.Project, i int) g.Node {
	link := p.PrimaryLink()
	return Article(
		ID("project-"+p.ID),
		Class("card project-card reveal"),
		delay(motion.CSS(motion.Stagger(0, motion.ProjectStep, i))),
		g.If(p.Image != "", Img(Class("project-image"), Src(p.Image), Alt(p.Title), g.Attr("loading", "lazy"))),
		H3(Class("project-title"),
			A(Href(link), g.If(link != "#", g.Group{Target("_blank"), Rel("noopener noreferrer")}), g.Text(p.Title)),
		),
		P(Class("project-description"), g.Text(p.Description)),
		Div(Class("tags"), g.Map(p.TechStack, techTag)),
		Div(Class("project-links"),
			g.If(p.GitHubLink != "", A(Class("button button-small"), Href(p.GitHubLink), Target("_blank"), Rel("noopener noreferrer"), g.Text("GitHub"))),
			g.If(p.DemoLink != "", A(Class("button button-small button-primary"), Href(p.DemoLink), Target("_blank"), Rel("noopener noreferrer"), g.Text("Live Demo"))),
		),
	)
}

func techTag(tech string) g.Node {
	return Span(Class("tag"),
		Span(Aria("hidden", "true"), g.Text(TechIcon(tech))),
		g.Text(" "+tech),
	)
}
