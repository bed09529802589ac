package content

// Record is the fully resolved site copy. Every field is populated; see
// Resolve.
type Record struct {
	Header          Header          `json:"header"`
	Hero            Hero            `json:"hero"`
	ProgramOverview ProgramOverview `json:"programOverview"`
	FAQ             FAQ             `json:"faq"`
	Footer          Footer          `json:"footer"`
	EmailTemplates  EmailTemplates  `json:"emailTemplates"`
}

// Override is a partial Record as saved by the admin editor. A nil section
// is absent. Inside a section an empty string or an empty list means "no
// opinion" and the default is used.
type Override struct {
	Header          *Header          `json:"header,omitempty"`
	Hero            *Hero            `json:"hero,omitempty"`
	ProgramOverview *ProgramOverview `json:"programOverview,omitempty"`
	FAQ             *FAQOverride     `json:"faq,omitempty"`
	Footer          *Footer          `json:"footer,omitempty"`
	EmailTemplates  *EmailTemplates  `json:"emailTemplates,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Logo struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
	Href     string `json:"href"`
}

type Header struct {
	Logo   Logo   `json:"logo"`
	Menu   []Link `json:"menu"`
	Button Link   `json:"button"`
}

// Hero is the landing section. At most one of BackgroundImage and
// BackgroundVideo is expected to be set; the admin editor clears the other
// after an upload.
type Hero struct {
	Badge           string `json:"badge"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	CTA             Link   `json:"cta"`
	BackgroundImage string `json:"backgroundImage"`
	BackgroundVideo string `json:"backgroundVideo"`
}

type Testimonial struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatarUrl"`
}

type Instructor struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photoUrl"`
}

type CourseDetails struct {
	Duration string `json:"duration"`
	Format   string `json:"format"`
	Schedule string `json:"schedule"`
	Level    string `json:"level"`
	Language string `json:"language"`
}

// BootcampCycle is one enrollment period offered on the payment page.
type BootcampCycle struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Recommended bool   `json:"recommended"`
	Price       string `json:"price"`
	PriceLabel  string `json:"priceLabel"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Duration    string `json:"duration"`
}

type ProgramOverview struct {
	Title             string          `json:"title"`
	Subtitle          string          `json:"subtitle"`
	WhatYouLearnTitle string          `json:"whatYouLearnTitle"`
	WhatYouLearn      []string        `json:"whatYouLearn"`
	BenefitsTitle     string          `json:"benefitsTitle"`
	Benefits          []string        `json:"benefits"`
	OutcomesTitle     string          `json:"outcomesTitle"`
	Outcomes          []string        `json:"outcomes"`
	Testimonials      []Testimonial   `json:"testimonials"`
	Instructor        Instructor      `json:"instructor"`
	CourseDetails     CourseDetails   `json:"courseDetails"`
	Cycles            []BootcampCycle `json:"cycles"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQ struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Items            []FAQItem `json:"items"`
	InitialOpenCount int       `json:"initialOpenCount"`
}

// FAQOverride differs from FAQ only in that the open count is optional,
// since zero is a meaningful value.
type FAQOverride struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Items            []FAQItem `json:"items"`
	InitialOpenCount *int      `json:"initialOpenCount,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	Href     string `json:"href"`
}

type FooterContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type BottomBar struct {
	Copyright string `json:"copyright"`
	Tagline   string `json:"tagline"`
}

type Footer struct {
	Description string        `json:"description"`
	LegalLinks  []Link        `json:"legalLinks"`
	Contact     FooterContact `json:"contact"`
	BottomBar   BottomBar     `json:"bottomBar"`
	SocialLinks []SocialLink  `json:"socialLinks"`
}

// CustomerTemplate holds the fragments of the enrollment receipt sent to the
// student. Fragments may contain basic HTML.
type CustomerTemplate struct {
	SubjectPrefix  string   `json:"subjectPrefix"`
	Heading        string   `json:"heading"`
	Intro          string   `json:"intro"`
	DetailsTitle   string   `json:"detailsTitle"`
	NextStepsTitle string   `json:"nextStepsTitle"`
	NextSteps      []string `json:"nextSteps"`
	Closing        string   `json:"closing"`
	Signature      string   `json:"signature"`
}

// AdminTemplate holds the fragments of internal notification emails.
type AdminTemplate struct {
	SubjectPrefix string `json:"subjectPrefix"`
	Heading       string `json:"heading"`
	Intro         string `json:"intro"`
}

// ConfirmationTemplate is the auto-reply sent after a contact submission.
type ConfirmationTemplate struct {
	Subject   string `json:"subject"`
	Heading   string `json:"heading"`
	Body      string `json:"body"`
	Closing   string `json:"closing"`
	Signature string `json:"signature"`
}

type EmailTemplates struct {
	EnrollmentCustomer  CustomerTemplate     `json:"enrollmentCustomer"`
	EnrollmentAdmin     AdminTemplate        `json:"enrollmentAdmin"`
	ContactAdmin        AdminTemplate        `json:"contactAdmin"`
	ContactConfirmation ConfirmationTemplate `json:"contactConfirmation"`
}

// FindCycle returns the cycle with the given id.
func (r Record) FindCycle(id string) (BootcampCycle, bool) {
	for _, c := range r.ProgramOverview.Cycles {
		if c.ID == id {
			return c, true
		}
	}
	return BootcampCycle{}, false
}

// RecommendedCycle returns the first cycle flagged recommended, else the
// first cycle.
func (r Record) RecommendedCycle() (BootcampCycle, bool) {
	cycles := r.ProgramOverview.Cycles
	for _, c := range cycles {
		if c.Recommended {
			return c, true
		}
	}
	if len(cycles) > 0 {
		return cycles[0], true
	}
	return BootcampCycle{}, false
}
