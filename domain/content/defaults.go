package content

// Defaults returns the built-in site copy. Each call builds a fresh value so
// callers may modify the result freely.
func Defaults() Record {
	return Record{
		Header: Header{
			Logo: Logo{
				Text: "CodeCamp",
				Href: "/",
			},
			Menu: []Link{
				{Label: "Program", Href: "/#program"},
				{Label: "FAQ", Href: "/faq"},
				{Label: "Contact", Href: "/contact"},
			},
			Button: Link{Label: "Enroll Now", Href: "/enroll"},
		},
		Hero: Hero{
			Badge:    "Next cohort starting soon",
			Title:    "Become a job-ready software engineer",
			Subtitle: "A hands-on, mentor-led bootcamp that takes you from fundamentals to shipping production web applications.",
			CTA:      Link{Label: "View upcoming cycles", Href: "/enroll"},
		},
		ProgramOverview: ProgramOverview{
			Title:             "Program Overview",
			Subtitle:          "Twelve weeks of structured learning, real projects and career support.",
			WhatYouLearnTitle: "What you'll learn",
			WhatYouLearn: []string{
				"Modern JavaScript and TypeScript",
				"Building APIs and working with databases",
				"Frontend development with React",
				"Testing, Git workflows and deployment",
			},
			BenefitsTitle: "Why join",
			Benefits: []string{
				"Small cohorts with direct mentor feedback",
				"Live sessions plus recorded lessons",
				"Portfolio projects reviewed by working engineers",
			},
			OutcomesTitle: "By the end you will",
			Outcomes: []string{
				"Ship a full-stack application to production",
				"Be comfortable in technical interviews",
				"Have a portfolio ready for job applications",
			},
			Testimonials: []Testimonial{
				{
					Name:  "Alex R.",
					Role:  "Junior Developer",
					Quote: "The projects were the closest thing to a real job I could have asked for.",
				},
				{
					Name:  "Priya S.",
					Role:  "Frontend Engineer",
					Quote: "Mentor reviews every week kept me accountable and improving.",
				},
			},
			Instructor: Instructor{
				Name:  "Lead Instructor",
				Title: "Senior Software Engineer",
				Bio:   "Over a decade of experience building and scaling web products, and years of mentoring new engineers.",
			},
			CourseDetails: CourseDetails{
				Duration: "12 weeks",
				Format:   "Online, live and self-paced",
				Schedule: "3 live sessions per week",
				Level:    "Beginner to intermediate",
				Language: "English",
			},
			Cycles: []BootcampCycle{
				{
					ID:          "spring",
					Title:       "Spring Cycle",
					Recommended: true,
					Price:       "$1,200",
					PriceLabel:  "One-time payment",
					StartDate:   "March 2",
					EndDate:     "May 22",
					Duration:    "12 weeks",
				},
				{
					ID:         "summer",
					Title:      "Summer Cycle",
					Price:      "$1,200",
					PriceLabel: "One-time payment",
					StartDate:  "June 8",
					EndDate:    "August 28",
					Duration:   "12 weeks",
				},
			},
		},
		FAQ: FAQ{
			Title:       "Frequently Asked Questions",
			Description: "Everything you need to know before enrolling.",
			Items: []FAQItem{
				{
					Question: "Do I need prior programming experience?",
					Answer:   "No. The first weeks cover fundamentals, though some self-study beforehand helps.",
				},
				{
					Question: "How much time should I plan per week?",
					Answer:   "Expect around 15 to 20 hours including live sessions and project work.",
				},
				{
					Question: "Is there a refund policy?",
					Answer:   "Yes. You can request a full refund within the first week of the cycle.",
				},
				{
					Question: "Will I get a certificate?",
					Answer:   "Students who complete the final project receive a certificate of completion.",
				},
			},
			InitialOpenCount: 1,
		},
		Footer: Footer{
			Description: "Practical software engineering training for career changers and early-career developers.",
			LegalLinks: []Link{
				{Label: "Privacy Policy", Href: "/privacy"},
				{Label: "Terms of Service", Href: "/terms"},
			},
			Contact: FooterContact{
				Email: "hello@example.com",
			},
			BottomBar: BottomBar{
				Copyright: "© CodeCamp. All rights reserved.",
			},
			SocialLinks: []SocialLink{
				{Platform: "linkedin", Href: "https://www.linkedin.com/"},
				{Platform: "instagram", Href: "https://www.instagram.com/"},
			},
		},
		EmailTemplates: EmailTemplates{
			EnrollmentCustomer: CustomerTemplate{
				SubjectPrefix:  "Enrollment confirmed:",
				Heading:        "Welcome to the bootcamp!",
				Intro:          "Thank you for your payment. Your seat is reserved and we can't wait to start.",
				DetailsTitle:   "Payment details",
				NextStepsTitle: "What happens next",
				NextSteps: []string{
					"You will receive onboarding instructions one week before the cycle starts.",
					"Join the student community using the invite in the onboarding email.",
					"Complete the pre-course setup guide before the first session.",
				},
				Closing:   "If you have any questions, just reply to this email.",
				Signature: "The CodeCamp Team",
			},
			EnrollmentAdmin: AdminTemplate{
				SubjectPrefix: "New enrollment:",
				Heading:       "New bootcamp enrollment",
				Intro:         "A payment has been completed.",
			},
			ContactAdmin: AdminTemplate{
				SubjectPrefix: "New contact message:",
				Heading:       "New contact form submission",
				Intro:         "Someone sent a message through the website.",
			},
			ContactConfirmation: ConfirmationTemplate{
				Subject:   "We received your message",
				Heading:   "Thanks for reaching out!",
				Body:      "We have received your message and will get back to you within two business days.",
				Closing:   "In the meantime, feel free to browse the FAQ on our website.",
				Signature: "The CodeCamp Team",
			},
		},
	}
}
