package pages

import (
	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/motion"
	"github.com/aswini27ms/folio/web/src/templates/partials"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SocialLink is one way of reaching the owner listed beside the form.
type SocialLink struct {
	Name     string
	Glyph    string
	Value    string
	Href     string
	External bool
}

// SocialLinks lists the owner's contact channels, skipping empty ones.
func SocialLinks(p domain.PersonalInfo) []SocialLink {
	var links []SocialLink
	if p.Email != "" {
		links = append(links, SocialLink{Name: "Email", Glyph: "✉️", Value: p.Email, Href: "mailto:" + p.Email})
	}
	if p.Phone != "" {
		links = append(links, SocialLink{Name: "Phone", Glyph: "📞", Value: p.Phone, Href: "tel:" + p.Phone})
	}
	if p.GitHub != "" {
		links = append(links, SocialLink{Name: "GitHub", Glyph: "🐙", Value: p.GitHubURL(), Href: p.GitHubURL(), External: true})
	}
	if p.LinkedIn != "" {
		links = append(links, SocialLink{Name: "LinkedIn", Glyph: "💼", Value: p.LinkedInURL(), Href: p.LinkedInURL(), External: true})
	}
	return links
}

// Contact renders the contact section: social links and the form.
func Contact(p domain.PersonalInfo, form partials.ContactFormProps) g.Node {
	links := SocialLinks(p)
	nodes := make([]g.Node, len(links))
	for i, l := range links {
		nodes[i] = socialLink(l, i)
	}
	return section("contact", "contact alt", "Contact",
		Div(Class("contact-grid"),
			Div(Class("contact-info reveal reveal-left"),
				H3(g.Text("Get in Touch")),
				P(Class("contact-blurb"), g.Text("I'm always open to discussing new opportunities, collaborating on interesting projects, or just having a chat about technology and innovation.")),
				Div(Class("social-links"), g.Group(nodes)),
				g.If(p.Location != "", Div(Class("contact-location"),
					Span(Aria("hidden", "true"), g.Text("📍 ")),
					g.Text(p.Location),
				)),
			),
			Div(Class("card contact-card reveal reveal-right"),
				partials.ContactForm(form),
			),
		),
	)
}

func socialLink(l SocialLink, i int) g.Node {
	return A(
		Class("social-link reveal"),
		Href(l.Href),
		delay(motion.CSS(motion.Stagger(motion.ContactLinkBase, motion.ContactLinkStep, i))),
		g.If(l.External, g.Group{Target("_blank"), Rel("noopener noreferrer")}),
		Span(Class("social-icon"), Aria("hidden", "true"), g.Text(l.Glyph)),
		Div(
			Div(Class("social-name"), g.Text(l.Name)),
			Div(Class("social-value"), g.Text(l.Value)),
		),
	)
}
