package partials

import (
	"strconv"

	"github.com/aswini27ms/folio/internal/motion"
	"github.com/aswini27ms/folio/internal/navigation"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// NavID is the element the navigation endpoints swap.
const NavID = "site-nav"

// NavProps configures the navigation bar.
type NavProps struct {
	State navigation.State
	// Brand is the owner's name shown on the left.
	Brand string
	Theme string
	// Static pages have no server to ask, so the script computes the active
	// item itself.
	Static bool
}

// SiteHeader is the fixed page header: the particle backdrop stays put while the
// navigation inside it is swapped.
func SiteHeader(p NavProps, particles []motion.Particle) g.Node {
	return Header(
		Class("site-header"),
		Particles(particles),
		NavBar(p),
	)
}

// NavBar renders the navigation bar for the given state.
func NavBar(p NavProps) g.Node {
	s := p.State
	return Nav(
		ID(NavID),
		c.Classes{
			"nav":          true,
			"nav-scrolled": s.Scrolled,
			"nav-open":     s.MenuOpen,
		},
		Data("active", s.Active),
		Div(Class("nav-inner"),
			A(Class("nav-brand"), Href("#hero"), g.Text(p.Brand)),
			Ul(Class("nav-links"),
				g.Map(navigation.Items, func(item navigation.Item) g.Node {
					return navLink(item, s.IsActive(item.Section))
				}),
			),
			Div(Class("nav-actions"),
				ThemeToggle(p.Theme, p.Static),
				menuButton(s, p.Static),
			),
		),
		mobileMenu(s, p.Static),
	)
}

func navLink(item navigation.Item, active bool) g.Node {
	i := indexOf(item)
	return Li(
		Class("nav-item"),
		Style("--delay: "+motion.CSS(motion.Stagger(0, motion.NavItemStep, i))),
		A(
			c.Classes{"nav-link": true, "active": active},
			Href(item.Href()),
			g.If(active, Aria("current", "location")),
			Span(Class("nav-emoji"), Aria("hidden", "true"), g.Text(item.Emoji)),
			Span(g.Text(item.Name)),
		),
	)
}

func menuButton(s navigation.State, static bool) g.Node {
	label := "Open menu"
	glyph := "☰"
	if s.MenuOpen {
		label = "Close menu"
		glyph = "✕"
	}
	return Button(
		Type("button"),
		Class("nav-menu-button"),
		Aria("label", label),
		Aria("expanded", strconv.FormatBool(s.MenuOpen)),
		g.If(!static, g.Group{
			hx.Post("/nav/menu"),
			hx.Target("#" + NavID),
			hx.Swap("outerHTML"),
			vals(map[string]string{
				"open":     strconv.FormatBool(s.MenuOpen),
				"active":   s.Active,
				"scrolled": strconv.FormatBool(s.Scrolled),
			}),
		}),
		g.If(static, Data("menu-toggle", "")),
		g.Text(glyph),
	)
}

// mobileMenu is always rendered; the nav-open class decides whether it shows.
func mobileMenu(s navigation.State, static bool) g.Node {
	return Div(
		Class("nav-mobile"),
		Div(Class("nav-mobile-title"), g.Text("Navigation")),
		Ul(
			g.Map(navigation.Items, func(item navigation.Item) g.Node {
				active := s.IsActive(item.Section)
				return Li(
					Class("nav-item"),
					Style("--delay: "+motion.CSS(motion.Stagger(0, motion.NavItemStep, indexOf(item)))),
					A(
						c.Classes{"nav-mobile-link": true, "active": active},
						Href(item.Href()),
						g.If(!static, g.Group{
							hx.Post("/nav/select"),
							hx.Target("#" + NavID),
							hx.Swap("outerHTML show:#" + item.Section + ":top"),
							vals(map[string]string{
								"section":  item.Section,
								"scrolled": strconv.FormatBool(s.Scrolled),
							}),
						}),
						Span(Class("nav-emoji"), Aria("hidden", "true"), g.Text(item.Emoji)),
						Span(g.Text(item.Name)),
					),
				)
			}),
		),
	)
}

func indexOf(item navigation.Item) int {
	for i, it := range navigation.Items {
		if it.Section == item.Section {
			return i
		}
	}
	return 0
}

// Particles renders the drifting dots behind the navigation bar.
func Particles(particles []motion.Particle) g.Node {
	return Div(
		Class("particles"),
		Aria("hidden", "true"),
		g.Map(particles, func(p motion.Particle) g.Node {
			return Span(
				Class("particle"),
				Style(
					"left: "+formatPct(p.X)+
						"; top: "+formatPct(p.Y)+
						"; width: "+formatPx(p.Size)+
						"; height: "+formatPx(p.Size)+
						"; --duration: "+motion.CSS(p.Duration)+
						"; --delay: "+motion.CSS(p.Delay),
				),
			)
		}),
	)
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "px"
}
