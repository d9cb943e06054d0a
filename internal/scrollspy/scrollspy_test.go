package scrollspy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Active(t *testing.T) {
	tr := New()

	tests := []struct {
		name string
		tops map[string]float64
		want string
	}{
		{
			name: "top of page",
			tops: map[string]float64{Hero: 0, About: 900, Skills: 1800, Experience: 2700, Projects: 3600, Contact: 4500},
			want: Hero,
		},
		{
			name: "nothing reported",
			tops: map[string]float64{},
			want: Hero,
		},
		{
			name: "hero scrolled out, about just under the nav",
			tops: map[string]float64{Hero: -850, About: 50, Skills: 950},
			want: About,
		},
		{
			name: "section top exactly at threshold counts",
			tops: map[string]float64{Hero: -1000, About: -100, Skills: 100},
			want: Skills,
		},
		{
			name: "section top just below threshold does not count",
			tops: map[string]float64{Hero: -1000, About: -100, Skills: 100.5},
			want: About,
		},
		{
			name: "bottom of page",
			tops: map[string]float64{Hero: -4500, About: -3600, Skills: -2700, Experience: -1800, Projects: -900, Contact: 0},
			want: Contact,
		},
		{
			name: "missing sections are skipped",
			tops: map[string]float64{Hero: -2000, Projects: -10},
			want: Projects,
		},
		{
			name: "unknown ids are ignored",
			tops: map[string]float64{"footer": -10, Hero: 0},
			want: Hero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Active(tt.tops))
		})
	}
}

// The highlighted item is the scrolled-past section whose top is nearest the
// viewport top, for any monotonic layout and scroll offset.
func TestTracker_Active_NearestScrolledPast(t *testing.T) {
	tr := New()
	heights := []float64{700, 1100, 900, 1300, 1600, 800}

	for scroll := 0.0; scroll < 6400; scroll += 37 {
		tops := make(map[string]float64)
		offset := 0.0
		for i, id := range DefaultSections {
			tops[id] = offset - scroll
			offset += heights[i]
		}

		want := DefaultSections[0]
		best := 0.0
		found := false
		for _, id := range DefaultSections {
			top := tops[id]
			if top <= tr.Threshold && (!found || top > best) {
				want, best, found = id, top, true
			}
		}

		assert.Equal(t, want, tr.Active(tops), "scroll=%v", scroll)
	}
}

func TestTracker_Scrolled(t *testing.T) {
	tr := New()
	assert.False(t, tr.Scrolled(0))
	assert.False(t, tr.Scrolled(50))
	assert.True(t, tr.Scrolled(50.1))
	assert.True(t, tr.Scrolled(800))
}

func TestTracker_Known(t *testing.T) {
	tr := New()
	assert.True(t, tr.Known(Contact))
	assert.False(t, tr.Known("footer"))
	assert.False(t, tr.Known(""))
}

func TestTracker_EmptySections(t *testing.T) {
	tr := &Tracker{}
	assert.Equal(t, "", tr.Active(map[string]float64{Hero: 0}))
}
