// Package page assembles the view model for the portfolio page from the
// current content and the visitor's request state.
package page

import (
	"path"
	"time"

	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/motion"
	"github.com/aswini27ms/folio/internal/navigation"
	"github.com/aswini27ms/folio/internal/scrollspy"
	"github.com/aswini27ms/folio/internal/view"
	"github.com/aswini27ms/folio/web/src/templates/pages"
	"github.com/aswini27ms/folio/web/src/templates/partials"
)

// Paths the page links to.
const (
	ResumePath    = "/resume"
	LiveReloadURL = "/ws/live"
)

// Options configures a Builder.
type Options struct {
	// ResumeAvailable shows the résumé download button.
	ResumeAvailable bool
	// ResumeFilename names the résumé in a static export. Defaults to
	// resume.pdf.
	ResumeFilename string
	// LiveReload makes the page reconnect to the live reload endpoint.
	LiveReload bool
	// Now defaults to time.Now.
	Now func() time.Time
	// Seed, when non-zero, fixes the decorative layout. Otherwise every
	// render is seeded from the clock.
	Seed uint64
}

// Builder produces page props for requests.
type Builder struct {
	store   *content.Store
	tracker *scrollspy.Tracker
	opts    Options
}

// NewBuilder creates a Builder.
func NewBuilder(store *content.Store, tracker *scrollspy.Tracker, opts Options) *Builder {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Builder{store: store, tracker: tracker, opts: opts}
}

// Store returns the content store the builder reads from.
func (b *Builder) Store() *content.Store {
	return b.store
}

// Tracker returns the section tracker.
func (b *Builder) Tracker() *scrollspy.Tracker {
	return b.tracker
}

// ResumeFile is the file name the résumé is exported under.
func (b *Builder) ResumeFile() string {
	if b.opts.ResumeFilename == "" {
		return "resume.pdf"
	}
	return path.Base(b.opts.ResumeFilename)
}

// Request is the per-visitor state that shapes the page.
type Request struct {
	// Section is an optional section to highlight initially.
	Section string
	Theme   string
	Flash   view.FlashData
	Form    partials.ContactFormProps
	// Static renders for hosting without the server.
	Static bool
}

// Home returns the props for the full page.
func (b *Builder) Home(r Request) pages.HomeProps {
	now := b.opts.Now()

	seed := b.opts.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	rng := motion.NewRand(seed)

	state := navigation.Initial(b.tracker)
	if r.Section != "" {
		state.Select(b.tracker, r.Section)
	}

	props := pages.HomeProps{
		Portfolio: b.store.Current(),
		Nav:       state,
		Theme:     view.NormalizeTheme(r.Theme),
		Flash:     r.Flash,
		Form:      r.Form,
		Year:      now.Year(),
		Particles: motion.Particles(rng, motion.ParticleCount),
		Floaters:  motion.FloatingElements(rng),
		Static:    r.Static,
	}
	if b.opts.ResumeAvailable {
		props.ResumeURL = ResumePath
		if r.Static {
			props.ResumeURL = "/" + b.ResumeFile()
		}
	}
	if b.opts.LiveReload && !r.Static {
		props.LiveReloadURL = LiveReloadURL
	}
	return props
}

// Nav returns the props for the navigation fragment.
func (b *Builder) Nav(state navigation.State, theme string) partials.NavProps {
	return partials.NavProps{
		State: state,
		Brand: b.store.Current().Personal.Name,
		Theme: view.NormalizeTheme(theme),
	}
}
