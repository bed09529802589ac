package contact

import (
	"strings"

	"github.com/Triaksa-Space/bootcamp-site/domain/notification"
	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/utils"
)

const (
	maxFieldLen       = 200
	maxDescriptionLen = 5000
)

// SubmitRequest is the body of POST /api/contact.
type SubmitRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// SubmitResponse reports both sends. A failed confirmation email does not
// fail the submission.
type SubmitResponse struct {
	Success        bool   `json:"success"`
	AdminEmailID   string `json:"adminEmailId"`
	UserEmailID    string `json:"userEmailId"`
	UserEmailSent  bool   `json:"userEmailSent"`
	UserEmailError string `json:"userEmailError,omitempty"`
}

// Validate trims the request and returns it as a submission.
func (r SubmitRequest) Validate() (notification.ContactSubmission, error) {
	s := notification.ContactSubmission{
		FullName:    strings.TrimSpace(r.FullName),
		Email:       strings.TrimSpace(r.Email),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		Subject:     strings.TrimSpace(r.Subject),
		Description: strings.TrimSpace(r.Description),
	}

	var missing []string
	if s.FullName == "" {
		missing = append(missing, "fullName")
	}
	if s.Email == "" {
		missing = append(missing, "email")
	}
	if s.Subject == "" {
		missing = append(missing, "subject")
	}
	if s.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return s, apperrors.NewValidation(apperrors.ErrCodeMissingField, "Missing required fields").
			WithDetail(strings.Join(missing, ", "))
	}

	if !utils.IsValidEmail(s.Email) {
		return s, apperrors.NewValidation(apperrors.ErrCodeInvalidEmail, "Invalid email address")
	}
	if len(s.FullName) > maxFieldLen || len(s.Subject) > maxFieldLen || len(s.PhoneNumber) > maxFieldLen {
		return s, apperrors.NewValidation(apperrors.ErrCodeInvalidInput, "Field is too long")
	}
	if len(s.Description) > maxDescriptionLen {
		return s, apperrors.NewValidation(apperrors.ErrCodeInvalidInput, "Message is too long")
	}
	return s, nil
}
