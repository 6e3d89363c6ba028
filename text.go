package main

var (
	CertificationsIntro = `Professional certifications and educational achievements that demonstrate my expertise
	and continuous learning.`

	SkillsIntro = `A comprehensive overview of my technical skills and proficiency levels in various technologies.`

	ProjectsIntro = `A collection of my work across various industries and design challenges.`

	WorkIntro = `Check out my portfolio on Vercel to see my latest projects and designs.`

	PortfolioBlurb = `Explore my backend projects, which include microservices, REST APIs, WebSockets, and design
	patterns. Additionally, I have also worked on React projects, where I have implemented interactive and
	optimized interfaces, efficiently integrating with my backend solutions.`
)
