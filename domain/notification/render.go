// Package notification renders the transactional emails sent after an
// enrollment payment and after a contact form submission.
package notification

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/Triaksa-Space/bootcamp-site/pkg/payments"
)

//go:embed templates
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.New("").
			Funcs(texttemplate.FuncMap{"inc": func(i int) int { return i + 1 }}).
			ParseFS(templateFS, "templates/*.txt"))
)

// Email is one rendered message without addressing.
type Email struct {
	Subject string
	HTML    string
	Text    string
}

// Site identifies the sender in links and fallbacks.
type Site struct {
	Name string
	URL  string
}

// Enrollment holds the two emails sent after a successful payment.
type Enrollment struct {
	Customer Email
	Admin    Email
}

// ContactSubmission is a validated contact form.
type ContactSubmission struct {
	FullName    string
	Email       string
	PhoneNumber string
	Subject     string
	Description string
}

// Contact holds the admin notification and the visitor's confirmation.
type Contact struct {
	Admin        Email
	Confirmation Email
}

const paidAtLayout = "January 2, 2006 15:04 MST"

type enrollmentHTML struct {
	Heading, Intro, DetailsTitle, NextStepsTitle, Closing, Signature htmltemplate.HTML
	NextSteps                                                       []htmltemplate.HTML

	CustomerName, CustomerEmail, BootcampName string
	Amount, PaidAt, Card, Reference          string
	ReceiptURL, PaymentIntentID, SessionID   string
	SiteName, SiteURL                        string
}

type enrollmentText struct {
	Heading, Intro, DetailsTitle, NextStepsTitle, Closing, Signature string
	NextSteps                                                       []string

	CustomerName, BootcampName, Amount, PaidAt, Card, Reference, ReceiptURL string
}

// RenderEnrollment builds the customer receipt and the admin notification
// for a completed payment.
func RenderEnrollment(tpl content.EmailTemplates, f payments.Fulfillment, site Site) (Enrollment, error) {
	ct := tpl.EnrollmentCustomer
	at := tpl.EnrollmentAdmin

	name := strings.TrimSpace(f.CustomerName)
	greeting := name
	if greeting == "" {
		greeting = "there"
	}
	bootcamp := strings.TrimSpace(f.BootcampName)
	if bootcamp == "" {
		bootcamp = "Bootcamp Enrollment"
	}
	paidAt := f.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}
	amount := FormatMoney(f.Amount, f.Currency)
	paid := paidAt.UTC().Format(paidAtLayout)
	card := ""
	if f.CardLast4 != "" {
		card = strings.TrimSpace(f.CardBrand + " ending in " + f.CardLast4)
	}
	reference := f.SessionID
	if reference == "" {
		reference = f.PaymentIntentID
	}

	var out Enrollment
	var err error

	out.Customer.Subject = headerSafe(PlainText(ct.SubjectPrefix) + " " + bootcamp)
	out.Customer.HTML, err = renderHTML("enrollment_customer.html", enrollmentHTML{
		Heading:        Fragment(ct.Heading),
		Intro:          Fragment(ct.Intro),
		DetailsTitle:   Fragment(ct.DetailsTitle),
		NextStepsTitle: Fragment(ct.NextStepsTitle),
		NextSteps:      Fragments(ct.NextSteps),
		Closing:        Fragment(ct.Closing),
		Signature:      Fragment(ct.Signature),
		CustomerName:   greeting,
		BootcampName:   bootcamp,
		Amount:         amount,
		PaidAt:         paid,
		Card:           card,
		Reference:      reference,
		ReceiptURL:     f.ReceiptURL,
		SiteName:       site.Name,
		SiteURL:        site.URL,
	})
	if err != nil {
		return Enrollment{}, err
	}

	steps := make([]string, 0, len(ct.NextSteps))
	for _, s := range ct.NextSteps {
		steps = append(steps, PlainText(s))
	}
	out.Customer.Text, err = renderText("enrollment_customer.txt", enrollmentText{
		Heading:        PlainText(ct.Heading),
		Intro:          PlainText(ct.Intro),
		DetailsTitle:   PlainText(ct.DetailsTitle),
		NextStepsTitle: PlainText(ct.NextStepsTitle),
		NextSteps:      steps,
		Closing:        PlainText(ct.Closing),
		Signature:      PlainText(ct.Signature),
		CustomerName:   greeting,
		BootcampName:   bootcamp,
		Amount:         amount,
		PaidAt:         paid,
		Card:           card,
		Reference:      reference,
		ReceiptURL:     f.ReceiptURL,
	})
	if err != nil {
		return Enrollment{}, err
	}

	who := name
	if who == "" {
		who = f.CustomerEmail
	}
	out.Admin.Subject = headerSafe(PlainText(at.SubjectPrefix) + " " + who + " - " + bootcamp)
	out.Admin.HTML, err = renderHTML("enrollment_admin.html", enrollmentHTML{
		Heading:         Fragment(at.Heading),
		Intro:           Fragment(at.Intro),
		CustomerName:    name,
		CustomerEmail:   f.CustomerEmail,
		BootcampName:    bootcamp,
		Amount:          amount,
		PaidAt:          paid,
		Card:            card,
		ReceiptURL:      f.ReceiptURL,
		PaymentIntentID: f.PaymentIntentID,
		SessionID:       f.SessionID,
	})
	if err != nil {
		return Enrollment{}, err
	}
	return out, nil
}

type contactHTML struct {
	Heading, Intro, Body, Closing, Signature htmltemplate.HTML
	ContactSubmission
}

// RenderContact builds the admin notification and the confirmation sent
// back to the visitor.
func RenderContact(tpl content.EmailTemplates, s ContactSubmission) (Contact, error) {
	at := tpl.ContactAdmin
	ct := tpl.ContactConfirmation

	var out Contact
	var err error

	out.Admin.Subject = headerSafe(PlainText(at.SubjectPrefix) + " " + s.Subject)
	out.Admin.HTML, err = renderHTML("contact_admin.html", contactHTML{
		Heading:           Fragment(at.Heading),
		Intro:             Fragment(at.Intro),
		ContactSubmission: s,
	})
	if err != nil {
		return Contact{}, err
	}

	out.Confirmation.Subject = headerSafe(PlainText(ct.Subject))
	out.Confirmation.HTML, err = renderHTML("contact_confirmation.html", contactHTML{
		Heading:           Fragment(ct.Heading),
		Body:              Fragment(ct.Body),
		Closing:           Fragment(ct.Closing),
		Signature:         Fragment(ct.Signature),
		ContactSubmission: s,
	})
	if err != nil {
		return Contact{}, err
	}
	out.Confirmation.Text = strings.Join([]string{
		PlainText(ct.Heading),
		"Hi " + s.FullName + ",",
		PlainText(ct.Body),
		PlainText(ct.Closing),
		PlainText(ct.Signature),
	}, "\n\n")
	return out, nil
}

func renderHTML(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderText(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
