package content

// Icon names match the inline SVG symbols defined in templates/icons.html.
const (
	IconServer    = "server"
	IconDatabase  = "database"
	IconGlobe     = "globe"
	IconTerminal  = "terminal"
	IconCode      = "code"
	IconGitBranch = "git-branch"
)

// SkillCategories returns the six skill cards shown on /skills.
func SkillCategories() []SkillCategory {
	return []SkillCategory{
		{
			Title: "Backend Development",
			Icon:  IconServer,
			Skills: []Skill{
				{Name: "Node.js", Level: 90},
				{Name: "Express.js", Level: 85},
				{Name: "NestJS", Level: 90},
				{Name: "API REST", Level: 90},
				{Name: "Python", Level: 70},
			},
		},
		{
			Title: "Database Management",
			Icon:  IconDatabase,
			Skills: []Skill{
				{Name: "MySQL", Level: 85},
				{Name: "PostgreSQL", Level: 70},
				{Name: "MongoDB", Level: 85},
				{Name: "SQL Server", Level: 80},
				{Name: "Database Design", Level: 80},
			},
		},
		{
			Title: "Frontend Development",
			Icon:  IconGlobe,
			Skills: []Skill{
				{Name: "React.js", Level: 75},
				{Name: "HTML5", Level: 85},
				{Name: "CSS3", Level: 80},
				{Name: "JavaScript (ES6+)", Level: 90},
			},
		},
		{
			Title: "DevOps & Tools",
			Icon:  IconTerminal,
			Skills: []Skill{
				{Name: "Docker", Level: 65},
				{Name: "Git", Level: 85},
				{Name: "SCRUM", Level: 80},
				{Name: "Postman", Level: 90},
				{Name: "Swagger", Level: 85},
			},
		},
		{
			Title: "Testing",
			Icon:  IconCode,
			Skills: []Skill{
				{Name: "Jest", Level: 50},
				{Name: "React Testing Library", Level: 65},
				{Name: "API Testing", Level: 70},
			},
		},
		{
			Title: "Version Control",
			Icon:  IconGitBranch,
			Skills: []Skill{
				{Name: "Git", Level: 85},
				{Name: "GitHub", Level: 80},
				{Name: "GitLab", Level: 75},
			},
		},
	}
}
