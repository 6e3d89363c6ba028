package content

const aboutMarkdown = `I'm a **Backend Developer** with 1+ years of experience building robust architectures using
Node.js, Express.js, and Nest.js. I have strong knowledge in databases (MySQL, PostgreSQL, MongoDB)
and I'm passionate about implementing scalable solutions that exceed technical expectations.`

// DefaultProfile returns the author's profile.
func DefaultProfile() Profile {
	return Profile{
		Name:         "Steven Bossio",
		Headline:     "Backend Developer",
		Summary:      "Backend developer with 1+ years of experience in Node.js, Express.js, and Nest.js. Passionate about building scalable solutions that exceed technical expectations.",
		About:        aboutMarkdown,
		Email:        "bossiolealbl@gmail.com",
		Phone:        "+573205696581",
		PhoneDisplay: "+57 320 569 6581",
		Location:     "Cartagena, Colombia",
		GitHubURL:    "https://github.com/StxvenDev",
		LinkedInURL:  "https://www.linkedin.com/in/steven-bossio",
		PortfolioURL: "https://vercel.com/stxvendev",
		PhotoURL:     "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/PHOTO-2024-12-11-19-43-31.jpg-aJKERcjesyRnQwOMH90yFexjIgFsJq.jpeg",
		ResumePath:   "/resume.pdf",
		Experience: []Experience{
			{
				Title:   "Backend Developer",
				Company: "SYSNET SAS",
				Period:  "Jan 2024 - Present",
				Bullets: []string{
					"Built enterprise applications with Node.js, NestJS and React",
					"Collaborated with multidisciplinary teams",
					"Worked with SQL Server, MongoDB and Docker",
				},
			},
			{
				Title:   "Backend Developer",
				Company: "INMOBI",
				Period:  "Apr 2023 - Dec 2023",
				Bullets: []string{
					"Designed and developed REST APIs with Express.js",
					"Optimized SQL queries in MySQL",
					"Implemented JWT authentication module",
				},
			},
		},
		Education: []Education{
			{Degree: "Systems Engineering (8th Semester)", Institution: "Unicolombo", Status: "Expected: 2026"},
			{Degree: "Technology in Information Systems Development", Institution: "Unicolombo", Status: "Completed: Aug 2024"},
		},
		TechnicalSkills: "Node.js, Express.js, NestJS, React.js, MySQL, PostgreSQL, MongoDB, Docker",
		Specialties:     "API Development, Database Optimization, Authentication Systems, Full-Stack Development",
		Services: []Service{
			{
				Title:       "Backend Development",
				Description: "Building robust APIs and server-side applications with Node.js, Express.js, and NestJS.",
			},
			{
				Title:       "Database Management",
				Description: "Designing and optimizing databases using MySQL, PostgreSQL, MongoDB, and SQL Server.",
			},
			{
				Title:       "Full-Stack Development",
				Description: "Creating complete applications with React.js frontend and Node.js backend, containerized with Docker.",
			},
		},
	}
}
