package content

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseOverride decodes a stored or submitted record into an Override.
// It never fails: input that is not a JSON object yields nil, and each field
// is decoded on its own so a field of the wrong type is treated as absent.
func ParseOverride(data []byte) *Override {
	root, ok := parseObject(data)
	if !ok {
		return nil
	}

	o := &Override{}
	if obj, ok := root.object("header"); ok {
		h := parseHeader(obj)
		o.Header = &h
	}
	if obj, ok := root.object("hero"); ok {
		h := parseHero(obj)
		o.Hero = &h
	}
	if obj, ok := root.object("programOverview"); ok {
		p := parseProgramOverview(obj)
		o.ProgramOverview = &p
	}
	if obj, ok := root.object("faq"); ok {
		f := parseFAQ(obj)
		o.FAQ = &f
	}
	if obj, ok := root.object("footer"); ok {
		f := parseFooter(obj)
		o.Footer = &f
	}
	if obj, ok := root.object("emailTemplates"); ok {
		t := parseEmailTemplates(obj)
		o.EmailTemplates = &t
	}
	return o
}

// object is one level of a JSON object with its values left undecoded.
type object map[string]json.RawMessage

func parseObject(data []byte) (object, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, false
	}
	var o object
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, false
	}
	return o, true
}

func (o object) object(key string) (object, bool) {
	raw, ok := o[key]
	if !ok {
		return nil, false
	}
	return parseObject(raw)
}

// objectOrEmpty returns the nested object or an empty one, so a malformed
// nested value degrades to "no opinion".
func (o object) objectOrEmpty(key string) object {
	obj, ok := o.object(key)
	if !ok {
		return object{}
	}
	return obj
}

// str accepts strings and numbers; anything else reads as "".
func (o object) str(key string) string {
	return rawString(o[key])
}

func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func (o object) boolean(key string) bool {
	raw, ok := o[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	return strings.EqualFold(rawString(raw), "true")
}

// integer accepts a JSON number or a numeric string, truncated toward zero.
func (o object) integer(key string) *int {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	s := strings.TrimSpace(rawString(raw))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	switch {
	case f > math.MaxInt32:
		f = math.MaxInt32
	case f < math.MinInt32:
		f = math.MinInt32
	}
	n := int(f)
	return &n
}

func (o object) array(key string) []json.RawMessage {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// strings keeps the string (or numeric) elements of an array.
func (o object) strings(key string) []string {
	var out []string
	for _, raw := range o.array(key) {
		if s := rawString(raw); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// objects returns every array element as an object; non-object elements
// become empty objects so that the element count is preserved.
func (o object) objects(key string) []object {
	items := o.array(key)
	if len(items) == 0 {
		return nil
	}
	out := make([]object, 0, len(items))
	for _, raw := range items {
		obj, ok := parseObject(raw)
		if !ok {
			obj = object{}
		}
		out = append(out, obj)
	}
	return out
}

func parseLink(o object) Link {
	return Link{Label: o.str("label"), Href: o.str("href")}
}

func parseLinks(o object, key string) []Link {
	var out []Link
	for _, item := range o.objects(key) {
		out = append(out, parseLink(item))
	}
	return out
}

func parseHeader(o object) Header {
	logo := o.objectOrEmpty("logo")
	return Header{
		Logo: Logo{
			Text:     logo.str("text"),
			ImageURL: logo.str("imageUrl"),
			Href:     logo.str("href"),
		},
		Menu:   parseLinks(o, "menu"),
		Button: parseLink(o.objectOrEmpty("button")),
	}
}

func parseHero(o object) Hero {
	return Hero{
		Badge:           o.str("badge"),
		Title:           o.str("title"),
		Subtitle:        o.str("subtitle"),
		CTA:             parseLink(o.objectOrEmpty("cta")),
		BackgroundImage: o.str("backgroundImage"),
		BackgroundVideo: o.str("backgroundVideo"),
	}
}

func parseProgramOverview(o object) ProgramOverview {
	p := ProgramOverview{
		Title:             o.str("title"),
		Subtitle:          o.str("subtitle"),
		WhatYouLearnTitle: o.str("whatYouLearnTitle"),
		WhatYouLearn:      o.strings("whatYouLearn"),
		BenefitsTitle:     o.str("benefitsTitle"),
		Benefits:          o.strings("benefits"),
		OutcomesTitle:     o.str("outcomesTitle"),
		Outcomes:          o.strings("outcomes"),
	}

	for _, t := range o.objects("testimonials") {
		p.Testimonials = append(p.Testimonials, Testimonial{
			Name:      t.str("name"),
			Role:      t.str("role"),
			Quote:     t.str("quote"),
			AvatarURL: t.str("avatarUrl"),
		})
	}

	in := o.objectOrEmpty("instructor")
	p.Instructor = Instructor{
		Name:     in.str("name"),
		Title:    in.str("title"),
		Bio:      in.str("bio"),
		PhotoURL: in.str("photoUrl"),
	}

	cd := o.objectOrEmpty("courseDetails")
	p.CourseDetails = CourseDetails{
		Duration: cd.str("duration"),
		Format:   cd.str("format"),
		Schedule: cd.str("schedule"),
		Level:    cd.str("level"),
		Language: cd.str("language"),
	}

	for _, c := range o.objects("cycles") {
		p.Cycles = append(p.Cycles, BootcampCycle{
			ID:          c.str("id"),
			Title:       c.str("title"),
			Recommended: c.boolean("recommended"),
			Price:       c.str("price"),
			PriceLabel:  c.str("priceLabel"),
			StartDate:   c.str("startDate"),
			EndDate:     c.str("endDate"),
			Duration:    c.str("duration"),
		})
	}
	return p
}

func parseFAQ(o object) FAQOverride {
	f := FAQOverride{
		Title:            o.str("title"),
		Description:      o.str("description"),
		InitialOpenCount: o.integer("initialOpenCount"),
	}
	for _, item := range o.objects("items") {
		f.Items = append(f.Items, FAQItem{
			Question: item.str("question"),
			Answer:   item.str("answer"),
		})
	}
	return f
}

func parseFooter(o object) Footer {
	contact := o.objectOrEmpty("contact")
	bottom := o.objectOrEmpty("bottomBar")

	f := Footer{
		Description: o.str("description"),
		LegalLinks:  parseLinks(o, "legalLinks"),
		Contact: FooterContact{
			Email:   contact.str("email"),
			Phone:   contact.str("phone"),
			Address: contact.str("address"),
		},
		BottomBar: BottomBar{
			Copyright: bottom.str("copyright"),
			Tagline:   bottom.str("tagline"),
		},
	}
	for _, s := range o.objects("socialLinks") {
		f.SocialLinks = append(f.SocialLinks, SocialLink{
			Platform: s.str("platform"),
			Href:     s.str("href"),
		})
	}
	return f
}

func parseAdminTemplate(o object) AdminTemplate {
	return AdminTemplate{
		SubjectPrefix: o.str("subjectPrefix"),
		Heading:       o.str("heading"),
		Intro:         o.str("intro"),
	}
}

func parseEmailTemplates(o object) EmailTemplates {
	customer := o.objectOrEmpty("enrollmentCustomer")
	confirmation := o.objectOrEmpty("contactConfirmation")

	return EmailTemplates{
		EnrollmentCustomer: CustomerTemplate{
			SubjectPrefix:  customer.str("subjectPrefix"),
			Heading:        customer.str("heading"),
			Intro:          customer.str("intro"),
			DetailsTitle:   customer.str("detailsTitle"),
			NextStepsTitle: customer.str("nextStepsTitle"),
			NextSteps:      customer.strings("nextSteps"),
			Closing:        customer.str("closing"),
			Signature:      customer.str("signature"),
		},
		EnrollmentAdmin: parseAdminTemplate(o.objectOrEmpty("enrollmentAdmin")),
		ContactAdmin:    parseAdminTemplate(o.objectOrEmpty("contactAdmin")),
		ContactConfirmation: ConfirmationTemplate{
			Subject:   confirmation.str("subject"),
			Heading:   confirmation.str("heading"),
			Body:      confirmation.str("body"),
			Closing:   confirmation.str("closing"),
			Signature: confirmation.str("signature"),
		},
	}
}
