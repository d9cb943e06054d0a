package content

import (
	"testing"

	"github.com/aswini27ms/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, "ASWINI M S", p.Personal.Name)
	assert.Equal(t, "ASWINI", p.Personal.FirstName())
	assert.Equal(t, "https://github.com/aswini27ms", p.Personal.GitHubURL())
	assert.Len(t, p.Skills, 20)
	assert.Len(t, p.Experience, 2)
	assert.Len(t, p.Projects, 6)
	assert.NotEmpty(t, p.Highlights)
	assert.NotEmpty(t, p.Achievements)
	assert.NotEmpty(t, p.Certifications)
}

func TestSkillGroups(t *testing.T) {
	p := &Portfolio{Skills: []domain.Skill{
		{Name: "Go", Level: 90, Category: "Programming"},
		{Name: "React", Level: 80, Category: "Frontend"},
		{Name: "Rust", Level: 60, Category: "Programming"},
		{Name: "Docker", Level: 70, Category: "Tools"},
	}}

	groups := p.SkillGroups()

	require.Len(t, groups, 3)
	assert.Equal(t, "Programming", groups[0].Category)
	assert.Equal(t, "Frontend", groups[1].Category)
	assert.Equal(t, "Tools", groups[2].Category)
	require.Len(t, groups[0].Skills, 2)
	assert.Equal(t, "Go", groups[0].Skills[0].Name)
	assert.Equal(t, "Rust", groups[0].Skills[1].Name)
}

func TestSkillGroups_DefaultOrder(t *testing.T) {
	var categories []string
	for _, g := range Default().SkillGroups() {
		categories = append(categories, g.Category)
	}
	assert.Equal(t, []string{
		"Programming", "Frontend", "Backend", "Database", "Tools", "Cloud", "Big Data", "Analytics",
	}, categories)
}

func validPortfolio() *Portfolio {
	return &Portfolio{
		Personal: domain.PersonalInfo{
			Name:  "Test User",
			Role:  "Engineer",
			Email: "test@example.com",
			Bio:   "Builds things.",
		},
		Skills: []domain.Skill{{Name: "Go", Level: 90, Category: "Programming"}},
		Experience: []domain.Experience{
			{ID: "1", Role: "Dev", Company: "Acme", Duration: "2024", Description: []string{"Shipped"}},
		},
		Projects: []domain.Project{
			{ID: "1", Title: "One", Description: "First", TechStack: []string{"Go"}},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Portfolio)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(p *Portfolio) {},
		},
		{
			name:    "missing name",
			mutate:  func(p *Portfolio) { p.Personal.Name = "" },
			wantErr: "Name",
		},
		{
			name:    "bad email",
			mutate:  func(p *Portfolio) { p.Personal.Email = "not-an-email" },
			wantErr: "Email",
		},
		{
			name:    "skill level above 100",
			mutate:  func(p *Portfolio) { p.Skills[0].Level = 101 },
			wantErr: "Level",
		},
		{
			name:    "skill level below 0",
			mutate:  func(p *Portfolio) { p.Skills[0].Level = -1 },
			wantErr: "Level",
		},
		{
			name:    "empty description bullet",
			mutate:  func(p *Portfolio) { p.Experience[0].Description = []string{""} },
			wantErr: "Description",
		},
		{
			name:    "invalid demo link",
			mutate:  func(p *Portfolio) { p.Projects[0].DemoLink = "not a url" },
			wantErr: "DemoLink",
		},
		{
			name: "duplicate experience id",
			mutate: func(p *Portfolio) {
				p.Experience = append(p.Experience, p.Experience[0])
			},
			wantErr: `duplicate experience id "1"`,
		},
		{
			name: "duplicate project id",
			mutate: func(p *Portfolio) {
				p.Projects = append(p.Projects, p.Projects[0])
			},
			wantErr: `duplicate project id "1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPortfolio()
			tt.mutate(p)

			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidContent)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProjectPrimaryLink(t *testing.T) {
	assert.Equal(t, "https://demo", domain.Project{DemoLink: "https://demo", GitHubLink: "https://gh"}.PrimaryLink())
	assert.Equal(t, "https://gh", domain.Project{GitHubLink: "https://gh"}.PrimaryLink())
	assert.Equal(t, "#", domain.Project{}.PrimaryLink())
}
