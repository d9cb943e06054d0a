// Package preview renders the portfolio for a terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/aswini27ms/folio/internal/content"
	"github.com/aswini27ms/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Terminal colors.
const (
	ColorAccent    = "86"  // titles
	ColorHighlight = "205" // section headers, borders
	ColorMuted     = "241" // secondary text
	ColorText      = "252"
)

// Styles used by Render.
var Styles = struct {
	Title   lipgloss.Style
	Role    lipgloss.Style
	Section lipgloss.Style
	Box     lipgloss.Style
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Bar     lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Role: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorText)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		MarginTop(1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Bar: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}

const barWidth = 20

// Render returns a styled summary of p.
func Render(p *content.Portfolio) string {
	var blocks []string

	header := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(p.Personal.Name),
		Styles.Role.Render(p.Personal.Role),
		Styles.Muted.Render(contactLine(p.Personal)),
	)
	blocks = append(blocks, Styles.Box.Render(header))

	blocks = append(blocks, Styles.Section.Render("Skills"))
	for _, group := range p.SkillGroups() {
		blocks = append(blocks, Styles.Normal.Render(group.Category))
		for _, s := range group.Skills {
			blocks = append(blocks, fmt.Sprintf("  %-24s %s %3d%%", s.Name, Styles.Bar.Render(bar(s.Level)), s.Level))
		}
	}

	blocks = append(blocks, Styles.Section.Render("Experience"))
	for _, e := range p.Experience {
		blocks = append(blocks,
			Styles.Normal.Render(e.Role+" · "+e.Company),
			Styles.Muted.Render("  "+e.Duration),
		)
	}

	blocks = append(blocks, Styles.Section.Render("Projects"))
	for _, pr := range p.Projects {
		blocks = append(blocks,
			Styles.Normal.Render(pr.Title),
			Styles.Muted.Render("  "+strings.Join(pr.TechStack, ", ")),
		)
	}

	if len(p.Achievements) > 0 {
		blocks = append(blocks, Styles.Section.Render("Achievements"))
		for _, a := range p.Achievements {
			line := a.Title
			if a.Year != "" {
				line += " (" + a.Year + ")"
			}
			blocks = append(blocks, Styles.Normal.Render(line))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"
}

func contactLine(p domain.PersonalInfo) string {
	parts := []string{p.Email}
	if p.Location != "" {
		parts = append(parts, p.Location)
	}
	return strings.Join(parts, " · ")
}

// bar draws level (0-100) as a fixed-width gauge.
func bar(level int) string {
	level = max(0, min(100, level))
	filled := level * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
