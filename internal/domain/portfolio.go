package domain

import "strings"

// PersonalInfo is the site owner's single profile record.
type PersonalInfo struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin" validate:"omitempty,url"`
	GitHub   string `json:"github"`
	Bio      string `json:"bio" validate:"required"`
	Location string `json:"location"`
}

// GitHubURL returns the GitHub profile as an absolute https URL. Content files
// commonly write it without a scheme.
func (p PersonalInfo) GitHubURL() string {
	return withScheme(p.GitHub)
}

// LinkedInURL returns the LinkedIn profile as an absolute https URL.
func (p PersonalInfo) LinkedInURL() string {
	return withScheme(p.LinkedIn)
}

// FirstName returns the first whitespace-separated token of the name.
func (p PersonalInfo) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func withScheme(link string) string {
	if link == "" || strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return "https://" + link
}

// Skill sizes a progress bar; Level is a percentage.
type Skill struct {
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level" validate:"min=0,max=100"`
	Category string `json:"category" validate:"required"`
}

// Experience is one entry on the experience timeline.
type Experience struct {
	ID          string   `json:"id" validate:"required"`
	Role        string   `json:"role" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Duration    string   `json:"duration" validate:"required"`
	Location    string   `json:"location,omitempty"`
	Description []string `json:"description" validate:"dive,required"`
}

// Project is a portfolio project card.
type Project struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	TechStack   []string `json:"techStack" validate:"dive,required"`
	GitHubLink  string   `json:"githubLink,omitempty" validate:"omitempty,url"`
	DemoLink    string   `json:"demoLink,omitempty" validate:"omitempty,url"`
	Image       string   `json:"image,omitempty"`
}

// PrimaryLink is where the project card points: the live demo when there is
// one, otherwise the repository, otherwise nowhere.
func (p Project) PrimaryLink() string {
	switch {
	case p.DemoLink != "":
		return p.DemoLink
	case p.GitHubLink != "":
		return p.GitHubLink
	default:
		return "#"
	}
}

// Achievement is an award or milestone.
type Achievement struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Year        string `json:"year,omitempty"`
}

// Startup is a venture the owner founded or co-founded.
type Startup struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Role         string   `json:"role" validate:"required"`
	Description  string   `json:"description"`
	TechStack    []string `json:"techStack"`
	Achievements []string `json:"achievements"`
}
