// Package scrollspy decides which page section the navigation highlights for
// a given scroll position.
package scrollspy

// Section IDs in document order.
const (
	Hero       = "hero"
	About      = "about"
	Skills     = "skills"
	Experience = "experience"
	Projects   = "projects"
	Contact    = "contact"
)

// DefaultSections is the page's section order.
var DefaultSections = []string{Hero, About, Skills, Experience, Projects, Contact}

const (
	// DefaultThreshold is how far below the viewport top (in CSS pixels) a
	// section's top edge may sit and still count as scrolled past. It leaves
	// room for the fixed navigation bar.
	DefaultThreshold = 100
	// DefaultScrolledAfter is the scroll offset past which the navigation
	// switches to its solid style.
	DefaultScrolledAfter = 50
)

// Tracker holds the section order and offsets used for detection.
type Tracker struct {
	Sections      []string
	Threshold     float64
	ScrolledAfter float64
}

// New returns a tracker for the default page layout.
func New() *Tracker {
	return &Tracker{
		Sections:      DefaultSections,
		Threshold:     DefaultThreshold,
		ScrolledAfter: DefaultScrolledAfter,
	}
}

// Active returns the section to highlight. tops maps section IDs to the
// distance of each section's top edge from the viewport top; sections absent
// from tops are skipped.
//
// Sections are walked in document order and the last one whose top is at or
// above the threshold wins, which is the section nearest the viewport top
// among those already scrolled past. With nothing scrolled past the first
// section is active.
func (t *Tracker) Active(tops map[string]float64) string {
	if len(t.Sections) == 0 {
		return ""
	}
	current := t.Sections[0]
	for _, id := range t.Sections {
		top, ok := tops[id]
		if !ok {
			continue
		}
		if top <= t.Threshold {
			current = id
		}
	}
	return current
}

// Scrolled reports whether the page has moved far enough for the solid
// navigation style.
func (t *Tracker) Scrolled(scrollY float64) bool {
	return scrollY > t.ScrolledAfter
}

// Known reports whether id is one of the tracked sections.
func (t *Tracker) Known(id string) bool {
	for _, s := range t.Sections {
		if s == id {
			return true
		}
	}
	return false
}
