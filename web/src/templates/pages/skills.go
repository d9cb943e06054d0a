package pages

import (
	"strconv"
	"strings"

	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/motion"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var categoryGradients = map[string]string{
	"Programming": "gradient-blue",
	"Frontend":    "gradient-green",
	"Backend":     "gradient-purple",
	"Database":    "gradient-red",
	"Tools":       "gradient-yellow",
	"Cloud":       "gradient-indigo",
	"Big Data":    "gradient-pink",
	"Analytics":   "gradient-teal",
}

// CategoryGradient returns the progress bar gradient class for a skill
// category. Unknown categories are gray.
func CategoryGradient(category string) string {
	if cls, ok := categoryGradients[category]; ok {
		return cls
	}
	return "gradient-gray"
}

// Skills renders one card per category with a progress bar per skill.
func Skills(groups []content.SkillGroup) g.Node {
	cards := make([]g.Node, len(groups))
	for i, group := range groups {
		side := "reveal-left"
		if i%2 == 1 {
			side = "reveal-right"
		}
		cards[i] = skillCard(group, side)
	}
	return section("skills", "skills alt", "Skills & Technologies",
		Div(Class("skills-grid"), g.Group(cards)),
	)
}

func skillCard(group content.SkillGroup, side string) g.Node {
	gradient := CategoryGradient(group.Category)
	bars := make([]g.Node, len(group.Skills))
	for i, s := range group.Skills {
		bars[i] = skillBar(s, gradient, i)
	}
	return Div(
		Class("card skill-card reveal "+side),
		Data("category", strings.ToLower(group.Category)),
		H3(Class("skill-category "+gradient), g.Text(group.Category)),
		Div(Class("skill-bars"), g.Group(bars)),
	)
}

func skillBar(s domain.Skill, gradient string, i int) g.Node {
	level := strconv.Itoa(s.Level)
	return Div(Class("skill"),
		Div(Class("skill-head"),
			Span(Class("skill-name"), g.Text(s.Name)),
			Span(Class("skill-level"), g.Text(level+"%")),
		),
		Div(
			Class("skill-track"),
			Role("progressbar"),
			Aria("valuenow", level),
			Aria("valuemin", "0"),
			Aria("valuemax", "100"),
			Aria("label", s.Name),
			Div(
				Class("skill-fill "+gradient),
				Style("--level: "+level+"%; --delay: "+motion.CSS(motion.Stagger(0, motion.SkillStep, i))),
			),
		),
	)
}
