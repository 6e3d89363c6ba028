// Package content holds the literal data rendered by the portfolio pages.
package content

// Certification is a professional certification shown on /certifications.
type Certification struct {
	ID              int
	Title           string
	Issuer          string
	Date            string
	Description     string
	VerificationURL string // optional
	ImageURL        string
}

// ProcessStep is one numbered step of a project's process section.
type ProcessStep struct {
	Title       string
	Description string
}

// Project is the record rendered by the project detail page.
type Project struct {
	Slug        string
	Title       string
	Description string
	Client      string
	Duration    string
	Role        string
	Tags        []string
	Overview    string
	Challenge   string
	Process     []ProcessStep
	Outcome     string
}

// ProjectSummary is a card on the project listing page.
type ProjectSummary struct {
	Slug        string
	Title       string
	Description string
	Tags        []string
}

// Skill is a named technology with a proficiency percentage.
type Skill struct {
	Name  string
	Level int
}

// SkillCategory groups skills under a titled card.
type SkillCategory struct {
	Title  string
	Icon   string
	Skills []Skill
}

type Experience struct {
	Title   string
	Company string
	Period  string
	Bullets []string
}

type Education struct {
	Degree      string
	Institution string
	Status      string
}

// Service is a short capability card in the work section.
type Service struct {
	Title       string
	Description string
}

// Profile is the author's biographical and contact information.
type Profile struct {
	Name            string
	Headline        string
	Summary         string
	About           string // markdown
	Email           string
	Phone           string
	PhoneDisplay    string
	Location        string
	GitHubURL       string
	LinkedInURL     string
	PortfolioURL    string
	PhotoURL        string
	ResumePath      string
	Experience      []Experience
	Education       []Education
	TechnicalSkills string
	Specialties     string
	Services        []Service
}
