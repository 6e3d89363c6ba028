package content

// ProjectSummaries returns the cards on the project listing page.
func ProjectSummaries() []ProjectSummary {
	return []ProjectSummary{
		{
			Slug:        "api-development",
			Title:       "REST API Development",
			Description: "Designed and implemented RESTful APIs with Express.js for a property management system.",
			Tags:        []string{"Node.js", "Express.js", "MySQL"},
		},
		{
			Slug:        "authentication-system",
			Title:       "Authentication System",
			Description: "Implemented a secure JWT authentication module that enhanced system security.",
			Tags:        []string{"JWT", "Node.js", "Security"},
		},
		{
			Slug:        "enterprise-application",
			Title:       "Enterprise Application",
			Description: "Built a scalable enterprise application using NestJS with modular architecture.",
			Tags:        []string{"NestJS", "TypeScript", "MongoDB"},
		},
		{
			Slug:        "database-optimization",
			Title:       "Database Optimization",
			Description: "Optimized database queries and normalized data structure to improve application performance.",
			Tags:        []string{"SQL", "MySQL", "Performance"},
		},
		{
			Slug:        "docker-deployment",
			Title:       "Docker Deployment",
			Description: "Containerized applications using Docker for consistent deployment across environments.",
			Tags:        []string{"Docker", "DevOps", "CI/CD"},
		},
		{
			Slug:        "full-stack-app",
			Title:       "Full-Stack Application",
			Description: "Developed a complete application with React frontend and Node.js backend for business management.",
			Tags:        []string{"React", "Node.js", "PostgreSQL"},
		},
	}
}

// ProjectBySlug returns the project detail record. Only one case study has
// been written up so far, so every slug resolves to it.
func ProjectBySlug(slug string) Project {
	_ = slug
	return Project{
		Slug:        "api-development",
		Title:       "REST API Development",
		Description: "Designed and implemented RESTful APIs with Express.js for a property management system.",
		Client:      "INMOBI",
		Duration:    "3 months",
		Role:        "Backend Developer",
		Tags:        []string{"Node.js", "Express.js", "MySQL"},
		Overview:    "The client needed a robust API system for their property management platform. I was tasked with designing and implementing RESTful APIs that would handle property listings, user management, and booking functionalities.",
		Challenge:   "The existing system had performance issues with database queries and lacked proper authentication. The challenge was to create a secure, efficient API structure while maintaining compatibility with the existing frontend.",
		Process: []ProcessStep{
			{
				Title:       "Requirements Analysis",
				Description: "I analyzed the business requirements and existing system to identify pain points and opportunities for improvement.",
			},
			{
				Title:       "API Design",
				Description: "I designed a RESTful API structure following best practices for resource naming and HTTP methods.",
			},
			{
				Title:       "Database Optimization",
				Description: "I normalized the database schema and optimized SQL queries to improve performance.",
			},
			{
				Title:       "Authentication Implementation",
				Description: "I implemented a JWT-based authentication system to secure the API endpoints and manage user sessions.",
			},
			{
				Title:       "Testing & Documentation",
				Description: "I wrote comprehensive tests and documented the API using Swagger for easy integration.",
			},
		},
		Outcome: "The new API system reduced query response times by 40% and eliminated security vulnerabilities. The client reported improved user experience and a significant reduction in server load.",
	}
}
