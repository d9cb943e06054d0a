// Package content loads, validates and serves the portfolio data that every
// page section renders.
package content

import (
	"strings"

	"github.com/aswini27ms/folio/internal/domain"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Portfolio is the complete set of records the site renders. It is treated
// as immutable once loaded; a reload swaps in a new value.
type Portfolio struct {
	Personal       domain.PersonalInfo  `json:"personal"`
	Highlights     []string             `json:"highlights" validate:"dive,required"`
	Skills         []domain.Skill       `json:"skills" validate:"dive"`
	Experience     []domain.Experience  `json:"experience" validate:"dive"`
	Projects       []domain.Project     `json:"projects" validate:"dive"`
	Startups       []domain.Startup     `json:"startups" validate:"dive"`
	Achievements   []domain.Achievement `json:"achievements" validate:"dive"`
	Certifications []string             `json:"certifications" validate:"dive,required"`
}

// SkillGroup is one category of the skills section.
type SkillGroup struct {
	Category string
	Skills   []domain.Skill
}

// SkillGroups groups skills by category. Categories appear in the order they
// are first seen and skills keep their authored order within a category.
func (p *Portfolio) SkillGroups() []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)
	for _, s := range p.Skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// Validate checks struct tags and the cross-record rules the tags cannot
// express.
func (p *Portfolio) Validate() (err error) {
	err = validate.Struct(p)
	if err != nil {
		err = errors.WithMessage(domain.ErrInvalidContent, err.Error())
		return err
	}

	seen := make(map[string]bool, len(p.Experience))
	for _, e := range p.Experience {
		if seen[e.ID] {
			err = errors.Wrapf(domain.ErrInvalidContent, "duplicate experience id %q", e.ID)
			return err
		}
		seen[e.ID] = true
	}

	seen = make(map[string]bool, len(p.Projects))
	for _, pr := range p.Projects {
		if seen[pr.ID] {
			err = errors.Wrapf(domain.ErrInvalidContent, "duplicate project id %q", pr.ID)
			return err
		}
		seen[pr.ID] = true
	}

	return err
}

var titleCaser = cases.Title(language.English)

// normalize tidies authored values that only differ in presentation.
func (p *Portfolio) normalize() {
	for i, s := range p.Skills {
		category := strings.TrimSpace(s.Category)
		if category == strings.ToLower(category) {
			category = titleCaser.String(category)
		}
		p.Skills[i].Category = category
	}
}
