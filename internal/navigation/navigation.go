// Package navigation holds the view state of the site's navigation bar.
package navigation

import "github.com/aswini27ms/folio/internal/scrollspy"

// Item is one navigation entry pointing at a page section.
type Item struct {
	Name    string
	Section string
	Emoji   string
}

// Href is the in-page anchor for the item.
func (i Item) Href() string {
	return "#" + i.Section
}

// Items are the navigation entries in display order.
var Items = []Item{
	{Name: "Home", Section: scrollspy.Hero, Emoji: "🏠"},
	{Name: "About", Section: scrollspy.About, Emoji: "👤"},
	{Name: "Skills", Section: scrollspy.Skills, Emoji: "💻"},
	{Name: "Experience", Section: scrollspy.Experience, Emoji: "💼"},
	{Name: "Projects", Section: scrollspy.Projects, Emoji: "📂"},
	{Name: "Contact", Section: scrollspy.Contact, Emoji: "✉️"},
}

// State is the ephemeral navigation view state. The zero value is not
// useful; start from Initial.
type State struct {
	Active   string
	MenuOpen bool
	Scrolled bool
}

// Initial returns the state of a freshly loaded page.
func Initial(tr *scrollspy.Tracker) State {
	s := State{}
	if len(tr.Sections) > 0 {
		s.Active = tr.Sections[0]
	}
	return s
}

// FromScroll derives the state for a reported scroll position. The mobile
// menu keeps whatever state the client had.
func FromScroll(tr *scrollspy.Tracker, scrollY float64, tops map[string]float64, menuOpen bool) State {
	return State{
		Active:   tr.Active(tops),
		MenuOpen: menuOpen,
		Scrolled: tr.Scrolled(scrollY),
	}
}

// Toggle opens or closes the mobile menu.
func (s *State) Toggle() {
	s.MenuOpen = !s.MenuOpen
}

// Close closes the mobile menu.
func (s *State) Close() {
	s.MenuOpen = false
}

// Select handles a click on a navigation item: the item becomes active if it
// names a known section, and the mobile menu closes either way.
func (s *State) Select(tr *scrollspy.Tracker, section string) {
	if tr.Known(section) {
		s.Active = section
	}
	s.MenuOpen = false
}

// IsActive reports whether section is the highlighted one.
func (s State) IsActive(section string) bool {
	return s.Active == section
}
