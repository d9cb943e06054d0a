// Package motion computes the animation timings the page declares: staggered
// entrance delays, the hero typewriter, and the decorative particle fields.
// Values are rendered into inline CSS custom properties and consumed by the
// site stylesheet and script.
package motion

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// Entrance timings used across the page.
const (
	NavItemStep      = 100 * time.Millisecond
	LetterStep       = 100 * time.Millisecond
	TypewriterStep   = 150 * time.Millisecond
	ContactLinkBase  = 400 * time.Millisecond
	ContactLinkStep  = 100 * time.Millisecond
	SkillStep        = 100 * time.Millisecond
	ProjectStep      = 100 * time.Millisecond
	HighlightStep    = 100 * time.Millisecond
	ExperienceStep   = 200 * time.Millisecond
	ParticleCount    = 8
	particleDelayGap = 2 * time.Second
)

// Stagger returns the delay of the i-th item in a sequence.
func Stagger(base, step time.Duration, i int) time.Duration {
	return base + time.Duration(i)*step
}

// ExperienceBullet returns the delay of bullet j on timeline entry i. Entries
// arrive 0.2s apart and their bullets follow at 0.1s steps after a 0.5s pause.
func ExperienceBullet(i, j int) time.Duration {
	return time.Duration(i)*ExperienceStep + time.Duration(j)*100*time.Millisecond + 500*time.Millisecond
}

// CSS formats d as a CSS time value in seconds.
func CSS(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

// Letter is one character of a typewriter sequence.
type Letter struct {
	Char  string
	Delay time.Duration
}

// Typewriter splits text into letters that appear one after another, step
// apart. Spaces take a step like any other character.
func Typewriter(text string, step time.Duration) []Letter {
	letters := make([]Letter, 0, len(text))
	i := 0
	for _, r := range text {
		letters = append(letters, Letter{Char: string(r), Delay: time.Duration(i) * step})
		i++
	}
	return letters
}

// TypewriterDuration is how long the whole text takes to appear.
func TypewriterDuration(text string, step time.Duration) time.Duration {
	n := 0
	for range text {
		n++
	}
	return time.Duration(n) * step
}

// Particle is one floating dot in the navigation backdrop. X and Y are
// percentages of the viewport; Size is in pixels.
type Particle struct {
	ID       int
	X        float64
	Y        float64
	Size     float64
	Duration time.Duration
	Delay    time.Duration
}

// Particles generates n particles. Each drifts for 10-30s and starts 2s after
// the previous one.
func Particles(rng *rand.Rand, n int) []Particle {
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			ID:       i,
			X:        rng.Float64() * 100,
			Y:        rng.Float64() * 100,
			Size:     rng.Float64()*4 + 1,
			Duration: time.Duration((rng.Float64()*20 + 10) * float64(time.Second)),
			Delay:    time.Duration(i) * particleDelayGap,
		}
	}
	return particles
}

// Floater is a decorative glyph drifting across the hero banner.
type Floater struct {
	Glyph string
	Color string
	X     float64
	Y     float64
	Delay time.Duration
}

var floaterGlyphs = []struct{ glyph, color string }{
	{"</>", "text-cyan-400"},
	{"🗄", "text-purple-500"},
	{"📱", "text-green-400"},
	{"🌐", "text-blue-400"},
	{"⚙", "text-yellow-400"},
	{"⚡", "text-pink-400"},
}

// FloatingElements places the six hero glyphs at random positions, each
// starting 0.5s after the previous one.
func FloatingElements(rng *rand.Rand) []Floater {
	floaters := make([]Floater, len(floaterGlyphs))
	for i, g := range floaterGlyphs {
		floaters[i] = Floater{
			Glyph: g.glyph,
			Color: g.color,
			X:     rng.Float64() * 100,
			Y:     rng.Float64() * 100,
			Delay: time.Duration(i) * 500 * time.Millisecond,
		}
	}
	return floaters
}

// Reveal configures how a section animates into view.
type Reveal struct {
	Once   bool
	Margin string
}

// SectionReveal fades sections in once, when they are 100px inside the
// viewport.
var SectionReveal = Reveal{Once: true, Margin: "-100px"}

// NewRand returns a random source for decorative layouts. Pass a fixed seed
// for reproducible output.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
