package pages

import (
	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/motion"
	"github.com/aswini27ms/folio/internal/navigation"
	"github.com/aswini27ms/folio/internal/view"
	"github.com/aswini27ms/folio/web/src/templates/layouts"
	"github.com/aswini27ms/folio/web/src/templates/partials"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomeProps is everything the single portfolio page needs.
type HomeProps struct {
	Portfolio *content.Portfolio
	Nav       navigation.State
	Theme     string
	Flash     view.FlashData
	Form      partials.ContactFormProps
	Year      int
	// ResumeURL is empty when no résumé is configured.
	ResumeURL     string
	Particles     []motion.Particle
	Floaters      []motion.Floater
	Static        bool
	LiveReloadURL string
}

// Home renders the full portfolio page.
func Home(p HomeProps) g.Node {
	personal := p.Portfolio.Personal

	form := p.Form
	form.Static = p.Static
	if form.Email == "" {
		form.Email = personal.Email
	}

	return layouts.Document(
		layouts.DocumentProps{
			Owner:         personal.Name,
			Description:   personal.Role + ". " + personal.Bio,
			Theme:         view.NormalizeTheme(p.Theme),
			LiveReloadURL: p.LiveReloadURL,
			Static:        p.Static,
		},
		partials.SiteHeader(partials.NavProps{
			State:  p.Nav,
			Brand:  personal.Name,
			Theme:  p.Theme,
			Static: p.Static,
		}, p.Particles),
		Main(
			ID("main"),
			partials.Flash(p.Flash),
			Hero(personal, p.ResumeURL, p.Floaters),
			About(p.Portfolio),
			Skills(p.Portfolio.SkillGroups()),
			Experience(p.Portfolio.Experience),
			Projects(p.Portfolio.Projects),
			Contact(personal, form),
		),
		SiteFooter(personal, p.Year),
		view.AdaptTemplToGomponent(partials.ToastContainer()),
	)
}
