package portfolio

// Default returns the built-in dataset the store falls back to when no
// snapshot has been persisted yet (or the persisted one is unreadable).
func Default() (data Data) {
	data = Data{
		PersonalInfo: PersonalInfo{
			FullName:     "Huu Tai Le",
			Title:        "Senior Full-Stack Software Engineer",
			Tagline:      "Building scalable web applications with modern technologies",
			Summary:      "Passionate full-stack developer with 8+ years of experience in creating robust, scalable web applications. Specialized in React, Node.js, Java, and cloud technologies. I love solving complex problems and building products that make a difference.",
			Email:        "huutai.le@example.com",
			Phone:        "+1-555-0123",
			Location:     "San Francisco, CA",
			LinkedinURL:  "https://linkedin.com/in/huutaile",
			GithubURL:    "https://github.com/huutaile",
			WebsiteURL:   "https://huutaile.com",
			ResumeURL:    "/resume.pdf",
			Availability: "Open to new opportunities",
		},
		Experiences:    defaultExperiences(),
		Education:      defaultEducation(),
		Skills:         defaultSkills(),
		Projects:       defaultProjects(),
		Certifications: defaultCertifications(),
		Testimonials:   defaultTestimonials(),
		Settings: Settings{
			Theme:               "light",
			ShowEmail:           true,
			ShowPhone:           true,
			AllowDownloadResume: true,
			MaintenanceMode:     false,
		},
	}
	return data
}

func defaultExperiences() (experiences []Experience) {
	experiences = []Experience{
		{
			ID:            1,
			CompanyName:   "Tech Innovations Inc.",
			PositionTitle: "Senior Full-Stack Engineer",
			StartDate:     "2022-01-15",
			EndDate:       nil,
			IsCurrent:     true,
			Location:      "San Francisco, CA",
			Description:   "Lead development of scalable web applications serving 100K+ users. Architect and implement full-stack solutions using React, Node.js, and cloud technologies.",
			Achievements: []string{
				"Increased system performance by 40% through optimization and caching strategies",
				"Led team of 5 developers on major product redesign, improving user engagement by 60%",
				"Implemented CI/CD pipeline reducing deployment time from 2 hours to 15 minutes",
				"Mentored 3 junior developers, helping them advance to mid-level positions",
			},
			Technologies: []string{"React", "Node.js", "TypeScript", "PostgreSQL", "Docker", "AWS", "GraphQL"},
		},
		{
			ID:            2,
			CompanyName:   "Digital Solutions LLC",
			PositionTitle: "Full-Stack Developer",
			StartDate:     "2020-06-01",
			EndDate:       strPtr("2021-12-31"),
			IsCurrent:     false,
			Location:      "Remote",
			Description:   "Developed and maintained web applications for various clients. Collaborated with designers and product managers to deliver user-friendly solutions.",
			Achievements: []string{
				"Delivered 15+ client projects on time and within budget",
				"Reduced bug reports by 30% through improved testing practices and code reviews",
				"Built responsive web applications with 99.9% uptime",
				"Implemented automated testing reducing QA time by 50%",
			},
			Technologies: []string{"JavaScript", "React", "Node.js", "MongoDB", "Express.js", "Jest"},
		},
		{
			ID:            3,
			CompanyName:   "StartupXYZ",
			PositionTitle: "Frontend Developer",
			StartDate:     "2023-03-01",
			EndDate:       strPtr("2020-05-31"),
			IsCurrent:     false,
			Location:      "San Francisco, CA",
			Description:   "Built modern, responsive web interfaces for a fast-growing fintech startup. Worked closely with UX designers to create intuitive user experiences.",
			Achievements: []string{
				"Developed the company's main dashboard used by 10K+ daily active users",
				"Improved page load times by 50% through code splitting and optimization",
				"Created reusable component library adopted across 5 different products",
				"Collaborated with backend team to design RESTful APIs",
			},
			Technologies: []string{"React", "Redux", "JavaScript", "SASS", "Webpack", "REST APIs"},
		},
	}
	return experiences
}

func defaultEducation() (education []Education) {
	education = []Education{
		{
			ID:              1,
			InstitutionName: "University of California, Berkeley",
			DegreeType:      "Bachelor of Science",
			FieldOfStudy:    "Computer Science",
			StartDate:       "2016-08-01",
			EndDate:         "2020-05-15",
			GPA:             "3.8",
			Location:        "Berkeley, CA",
			Description:     "Focused on software engineering, algorithms, and data structures. Participated in hackathons and coding competitions. Member of Computer Science Honor Society.",
			Coursework:      []string{"Data Structures", "Algorithms", "Database Systems", "Software Engineering", "Computer Networks", "Machine Learning"},
		},
	}
	return education
}

func defaultSkills() (skills []Skill) {
	skills = []Skill{
		// Frontend
		{ID: 1, SkillName: "React", ProficiencyLevel: ProficiencyExpert, Category: "Frontend", YearsExperience: 6},
		{ID: 2, SkillName: "Next.js", ProficiencyLevel: ProficiencyAdvanced, Category: "Frontend", YearsExperience: 3},
		{ID: 3, SkillName: "Vue.js", ProficiencyLevel: ProficiencyIntermediate, Category: "Frontend", YearsExperience: 2},
		{ID: 4, SkillName: "TypeScript", ProficiencyLevel: ProficiencyAdvanced, Category: "Frontend", YearsExperience: 4},
		{ID: 5, SkillName: "JavaScript", ProficiencyLevel: ProficiencyExpert, Category: "Frontend", YearsExperience: 8},
		{ID: 6, SkillName: "HTML/CSS", ProficiencyLevel: ProficiencyExpert, Category: "Frontend", YearsExperience: 8},
		{ID: 7, SkillName: "Tailwind CSS", ProficiencyLevel: ProficiencyAdvanced, Category: "Frontend", YearsExperience: 3},

		// Backend
		{ID: 8, SkillName: "Node.js", ProficiencyLevel: ProficiencyExpert, Category: "Backend", YearsExperience: 6},
		{ID: 9, SkillName: "Express.js", ProficiencyLevel: ProficiencyExpert, Category: "Backend", YearsExperience: 6},
		{ID: 10, SkillName: "Java", ProficiencyLevel: ProficiencyAdvanced, Category: "Backend", YearsExperience: 5},
		{ID: 11, SkillName: "Spring Boot", ProficiencyLevel: ProficiencyAdvanced, Category: "Backend", YearsExperience: 4},
		{ID: 12, SkillName: "Python", ProficiencyLevel: ProficiencyIntermediate, Category: "Backend", YearsExperience: 3},

		// Database
		{ID: 13, SkillName: "PostgreSQL", ProficiencyLevel: ProficiencyAdvanced, Category: "Database", YearsExperience: 5},
		{ID: 14, SkillName: "MongoDB", ProficiencyLevel: ProficiencyAdvanced, Category: "Database", YearsExperience: 4},
		{ID: 15, SkillName: "Redis", ProficiencyLevel: ProficiencyIntermediate, Category: "Database", YearsExperience: 3},

		// DevOps & Cloud
		{ID: 16, SkillName: "Docker", ProficiencyLevel: ProficiencyAdvanced, Category: "DevOps", YearsExperience: 4},
		{ID: 17, SkillName: "AWS", ProficiencyLevel: ProficiencyAdvanced, Category: "Cloud", YearsExperience: 4},
		{ID: 18, SkillName: "Kubernetes", ProficiencyLevel: ProficiencyIntermediate, Category: "DevOps", YearsExperience: 2},
		{ID: 19, SkillName: "CI/CD", ProficiencyLevel: ProficiencyAdvanced, Category: "DevOps", YearsExperience: 4},

		// Tools
		{ID: 20, SkillName: "Git", ProficiencyLevel: ProficiencyExpert, Category: "Tools", YearsExperience: 8},
		{ID: 21, SkillName: "VS Code", ProficiencyLevel: ProficiencyExpert, Category: "Tools", YearsExperience: 6},
		{ID: 22, SkillName: "Figma", ProficiencyLevel: ProficiencyIntermediate, Category: "Tools", YearsExperience: 3},
	}
	return skills
}

func defaultProjects() (projects []Project) {
	projects = []Project{
		{
			ID:              1,
			ProjectName:     "Dynamic Portfolio Website",
			Description:     "A full-stack portfolio website with admin authentication and real-time editing capabilities. Built with modern technologies and deployed on cloud infrastructure.",
			LongDescription: "This project showcases my full-stack development skills by creating a comprehensive portfolio website. Features include admin authentication, real-time content editing, responsive design, and cloud deployment. The backend provides RESTful APIs for content management, while the frontend offers an intuitive user experience.",
			Technologies:    []string{"React", "Node.js", "Express", "PostgreSQL", "JWT", "Tailwind CSS", "Docker", "AWS"},
			ProjectURL:      "https://huutaile-portfolio.vercel.app",
			GithubURL:       "https://github.com/huutaile/portfolio-website",
			StartDate:       "2025-08-01",
			EndDate:         nil,
			IsOngoing:       true,
			Status:          StatusInDevelopment,
			Featured:        true,
			Images:          []string{"/project1-1.jpg", "/project1-2.jpg"},
			Challenges:      "Implementing real-time editing while maintaining data consistency and security.",
			Learnings:       "Gained deeper understanding of JWT authentication and state management patterns.",
		},
		{
			ID:              2,
			ProjectName:     "E-commerce Platform",
			Description:     "A scalable e-commerce platform with microservices architecture, supporting multiple vendors and payment gateways.",
			LongDescription: "Built a comprehensive e-commerce solution from the ground up, featuring vendor management, product catalog, shopping cart, payment processing, and order management. Implemented microservices architecture for scalability and maintainability.",
			Technologies:    []string{"React", "Node.js", "MongoDB", "Redis", "Stripe API", "Docker", "Kubernetes"},
			ProjectURL:      "https://ecommerce-demo.huutaile.com",
			GithubURL:       "https://github.com/huutaile/ecommerce-platform",
			StartDate:       "2024-03-01",
			EndDate:         strPtr("2024-11-30"),
			IsOngoing:       false,
			Status:          StatusCompleted,
			Featured:        true,
			Images:          []string{"/project2-1.jpg", "/project2-2.jpg"},
			Challenges:      "Handling high traffic loads and ensuring payment security across multiple vendors.",
			Learnings:       "Mastered microservices architecture and payment gateway integration.",
		},
		{
			ID:              3,
			ProjectName:     "Task Management App",
			Description:     "A collaborative task management application with real-time updates, team collaboration features, and advanced project tracking.",
			LongDescription: "Developed a comprehensive task management solution for teams, featuring real-time collaboration, project tracking, time logging, and reporting. Includes drag-and-drop interface, notifications, and integration with popular tools.",
			Technologies:    []string{"React", "TypeScript", "Node.js", "Socket.io", "PostgreSQL", "Material-UI"},
			ProjectURL:      "https://taskmanager.huutaile.com",
			GithubURL:       "https://github.com/huutaile/task-manager",
			StartDate:       "2023-09-01",
			EndDate:         strPtr("2024-01-15"),
			IsOngoing:       false,
			Status:          StatusCompleted,
			Featured:        false,
			Images:          []string{"/project3-1.jpg"},
			Challenges:      "Implementing real-time collaboration features with conflict resolution.",
			Learnings:       "Gained expertise in WebSocket implementation and real-time data synchronization.",
		},
	}
	return projects
}

func defaultCertifications() (certifications []Certification) {
	certifications = []Certification{
		{
			ID:            1,
			Name:          "AWS Certified Solutions Architect",
			Issuer:        "Amazon Web Services",
			IssueDate:     "2023-06-15",
			ExpiryDate:    strPtr("2026-06-15"),
			CredentialID:  "AWS-SAA-123456",
			CredentialURL: "https://aws.amazon.com/verification",
		},
		{
			ID:            2,
			Name:          "React Developer Certification",
			Issuer:        "Meta",
			IssueDate:     "2022-11-20",
			ExpiryDate:    nil,
			CredentialID:  "META-REACT-789012",
			CredentialURL: "https://coursera.org/verify/meta-react",
		},
	}
	return certifications
}

func defaultTestimonials() (testimonials []Testimonial) {
	testimonials = []Testimonial{
		{
			ID:       1,
			Name:     "Sarah Johnson",
			Position: "Product Manager",
			Company:  "Tech Innovations Inc.",
			Content:  "Huu Tai is an exceptional developer who consistently delivers high-quality solutions. His ability to understand complex requirements and translate them into elegant code is remarkable.",
			Avatar:   "/testimonial1.jpg",
			Rating:   5,
		},
		{
			ID:       2,
			Name:     "Michael Chen",
			Position: "CTO",
			Company:  "Digital Solutions LLC",
			Content:  "Working with Huu Tai was a pleasure. He's not just a skilled developer but also a great team player who mentors others and drives technical excellence.",
			Avatar:   "/testimonial2.jpg",
			Rating:   5,
		},
	}
	return testimonials
}

func strPtr(s string) (p *string) {
	p = &s
	return p
}
