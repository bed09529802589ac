package content

// Resolve merges an override onto the default table and returns a fully
// populated record. A nil override yields the defaults.
//
// Sections merge field by field and nested objects one level deeper. A
// non-empty override string wins; list fields are taken wholesale when the
// override list is non-empty. Resolve has no side effects and never shares
// slices with its input.
func Resolve(o *Override) Record {
	d := Defaults()
	if o == nil {
		return d
	}

	r := Record{
		Header:          mergeHeader(o.Header, d.Header),
		Hero:            mergeHero(o.Hero, d.Hero),
		ProgramOverview: mergeProgramOverview(o.ProgramOverview, d.ProgramOverview),
		FAQ:             mergeFAQ(o.FAQ, d.FAQ),
		Footer:          mergeFooter(o.Footer, d.Footer),
		EmailTemplates:  mergeEmailTemplates(o.EmailTemplates, d.EmailTemplates),
	}
	return r
}

func pick(o, d string) string {
	if o != "" {
		return o
	}
	return d
}

func pickList[T any](o, d []T) []T {
	src := d
	if len(o) > 0 {
		src = o
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func mergeLink(o, d Link) Link {
	return Link{
		Label: pick(o.Label, d.Label),
		Href:  pick(o.Href, d.Href),
	}
}

func mergeHeader(o *Header, d Header) Header {
	if o == nil {
		return d
	}
	return Header{
		Logo: Logo{
			Text:     pick(o.Logo.Text, d.Logo.Text),
			ImageURL: pick(o.Logo.ImageURL, d.Logo.ImageURL),
			Href:     pick(o.Logo.Href, d.Logo.Href),
		},
		Menu:   pickList(o.Menu, d.Menu),
		Button: mergeLink(o.Button, d.Button),
	}
}

func mergeHero(o *Hero, d Hero) Hero {
	if o == nil {
		return d
	}
	return Hero{
		Badge:           pick(o.Badge, d.Badge),
		Title:           pick(o.Title, d.Title),
		Subtitle:        pick(o.Subtitle, d.Subtitle),
		CTA:             mergeLink(o.CTA, d.CTA),
		BackgroundImage: pick(o.BackgroundImage, d.BackgroundImage),
		BackgroundVideo: pick(o.BackgroundVideo, d.BackgroundVideo),
	}
}

func mergeProgramOverview(o *ProgramOverview, d ProgramOverview) ProgramOverview {
	if o == nil {
		return d
	}
	return ProgramOverview{
		Title:             pick(o.Title, d.Title),
		Subtitle:          pick(o.Subtitle, d.Subtitle),
		WhatYouLearnTitle: pick(o.WhatYouLearnTitle, d.WhatYouLearnTitle),
		WhatYouLearn:      pickList(o.WhatYouLearn, d.WhatYouLearn),
		BenefitsTitle:     pick(o.BenefitsTitle, d.BenefitsTitle),
		Benefits:          pickList(o.Benefits, d.Benefits),
		OutcomesTitle:     pick(o.OutcomesTitle, d.OutcomesTitle),
		Outcomes:          pickList(o.Outcomes, d.Outcomes),
		Testimonials:      pickList(o.Testimonials, d.Testimonials),
		Instructor: Instructor{
			Name:     pick(o.Instructor.Name, d.Instructor.Name),
			Title:    pick(o.Instructor.Title, d.Instructor.Title),
			Bio:      pick(o.Instructor.Bio, d.Instructor.Bio),
			PhotoURL: pick(o.Instructor.PhotoURL, d.Instructor.PhotoURL),
		},
		CourseDetails: CourseDetails{
			Duration: pick(o.CourseDetails.Duration, d.CourseDetails.Duration),
			Format:   pick(o.CourseDetails.Format, d.CourseDetails.Format),
			Schedule: pick(o.CourseDetails.Schedule, d.CourseDetails.Schedule),
			Level:    pick(o.CourseDetails.Level, d.CourseDetails.Level),
			Language: pick(o.CourseDetails.Language, d.CourseDetails.Language),
		},
		Cycles: pickList(o.Cycles, d.Cycles),
	}
}

func mergeFAQ(o *FAQOverride, d FAQ) FAQ {
	if o == nil {
		return d
	}

	f := FAQ{
		Title:       pick(o.Title, d.Title),
		Description: pick(o.Description, d.Description),
		Items:       d.Items,
	}
	if len(o.Items) > 0 {
		f.Items = make([]FAQItem, len(o.Items))
		for i, item := range o.Items {
			f.Items[i] = FAQItem{Question: item.Question, Answer: item.Answer}
		}
	}

	open := d.InitialOpenCount
	if o.InitialOpenCount != nil {
		open = *o.InitialOpenCount
	}
	f.InitialOpenCount = clamp(open, 0, len(f.Items))
	return f
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func mergeFooter(o *Footer, d Footer) Footer {
	if o == nil {
		return d
	}
	return Footer{
		Description: pick(o.Description, d.Description),
		LegalLinks:  pickList(o.LegalLinks, d.LegalLinks),
		Contact: FooterContact{
			Email:   pick(o.Contact.Email, d.Contact.Email),
			Phone:   pick(o.Contact.Phone, d.Contact.Phone),
			Address: pick(o.Contact.Address, d.Contact.Address),
		},
		BottomBar: BottomBar{
			Copyright: pick(o.BottomBar.Copyright, d.BottomBar.Copyright),
			Tagline:   pick(o.BottomBar.Tagline, d.BottomBar.Tagline),
		},
		SocialLinks: pickList(o.SocialLinks, d.SocialLinks),
	}
}

func mergeAdminTemplate(o, d AdminTemplate) AdminTemplate {
	return AdminTemplate{
		SubjectPrefix: pick(o.SubjectPrefix, d.SubjectPrefix),
		Heading:       pick(o.Heading, d.Heading),
		Intro:         pick(o.Intro, d.Intro),
	}
}

func mergeEmailTemplates(o *EmailTemplates, d EmailTemplates) EmailTemplates {
	if o == nil {
		return d
	}
	c, dc := o.EnrollmentCustomer, d.EnrollmentCustomer
	cc, dcc := o.ContactConfirmation, d.ContactConfirmation

	return EmailTemplates{
		EnrollmentCustomer: CustomerTemplate{
			SubjectPrefix:  pick(c.SubjectPrefix, dc.SubjectPrefix),
			Heading:        pick(c.Heading, dc.Heading),
			Intro:          pick(c.Intro, dc.Intro),
			DetailsTitle:   pick(c.DetailsTitle, dc.DetailsTitle),
			NextStepsTitle: pick(c.NextStepsTitle, dc.NextStepsTitle),
			NextSteps:      pickList(c.NextSteps, dc.NextSteps),
			Closing:        pick(c.Closing, dc.Closing),
			Signature:      pick(c.Signature, dc.Signature),
		},
		EnrollmentAdmin: mergeAdminTemplate(o.EnrollmentAdmin, d.EnrollmentAdmin),
		ContactAdmin:    mergeAdminTemplate(o.ContactAdmin, d.ContactAdmin),
		ContactConfirmation: ConfirmationTemplate{
			Subject:   pick(cc.Subject, dcc.Subject),
			Heading:   pick(cc.Heading, dcc.Heading),
			Body:      pick(cc.Body, dcc.Body),
			Closing:   pick(cc.Closing, dcc.Closing),
			Signature: pick(cc.Signature, dcc.Signature),
		},
	}
}
