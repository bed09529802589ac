package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// emailSender is the slice of the Resend client used here.
type emailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type ResendMailer struct {
	emails emailSender
}

func NewResendMailer(apiKey string) *ResendMailer {
	client := resend.NewClient(apiKey)
	return &ResendMailer{emails: client.Emails}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var params resend.SendEmailRequest
	params.From = msg.From
	params.To = msg.To
	params.Subject = msg.Subject
	params.Html = msg.HTML
	params.Text = msg.Text
	params.ReplyTo = msg.ReplyTo

	sent, err := m.emails.Send(&params)
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}
