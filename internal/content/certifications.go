package content

// Certifications returns the certifications in display order.
func Certifications() []Certification {
	return []Certification{
		{
			ID:              1,
			Title:           "Fundamentals of Data Analysis",
			Issuer:          "Google",
			Date:            "August 2023",
			Description:     "Completed Google's course on data analysis fundamentals, covering key concepts and tools for analyzing and interpreting data.",
			VerificationURL: "https://coursera.org/verify/7JE7PQU45V52",
			ImageURL:        "https://res.cloudinary.com/db7o301hd/image/upload/v1742527509/Google_cert_page-0001_jeoouu.jpg",
		},
		{
			ID:          2,
			Title:       "Intensive Software Development",
			Issuer:      "Universidad Tecnológica de Bolívar",
			Date:        "October 2022",
			Description: "Completed an intensive software development program covering advanced Java, professional SQL, and agile methodologies.",
			ImageURL:    "https://res.cloudinary.com/db7o301hd/image/upload/v1742527493/Desarrollo_Software_cert_page-0001_lvwsqz.jpg",
		},
		{
			ID:          3,
			Title:       "Aptis English Certification",
			Issuer:      "British Council",
			Date:        "May 2024",
			Description: "Achieved certification in English language proficiency, demonstrating competency in reading, writing, listening, and speaking.",
			ImageURL:    "https://res.cloudinary.com/db7o301hd/image/upload/v1742527493/Aptis_page-0001_xxzr3o.jpg",
		},
	}
}
