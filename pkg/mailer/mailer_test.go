package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResend struct {
	got *resend.SendEmailRequest
	err error
}

func (f *fakeResend) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "re_123"}, nil
}

func TestResendMailer_Send(t *testing.T) {
	fake := &fakeResend{}
	m := &ResendMailer{emails: fake}

	id, err := m.Send(context.Background(), Message{
		From:    "Camp <hello@camp.dev>",
		To:      []string{"a@b.co"},
		ReplyTo: "c@d.co",
		Subject: "Hi",
		HTML:    "<p>Hi</p>",
		Text:    "Hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "re_123", id)
	assert.Equal(t, []string{"a@b.co"}, fake.got.To)
	assert.Equal(t, "c@d.co", fake.got.ReplyTo)
	assert.Equal(t, "Hi", fake.got.Text)
}

func TestResendMailer_Errors(t *testing.T) {
	m := &ResendMailer{emails: &fakeResend{err: errors.New("rate limited")}}

	_, err := m.Send(context.Background(), Message{To: []string{"a@b.co"}})
	assert.ErrorContains(t, err, "rate limited")

	_, err = m.Send(context.Background(), Message{})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

type fakeSES struct {
	raw []byte
}

func (f *fakeSES) SendRawEmail(ctx context.Context, in *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error) {
	f.raw = in.RawMessage.Data
	return &ses.SendRawEmailOutput{MessageId: aws.String("ses-1")}, nil
}

func TestSESMailer_BuildsMIME(t *testing.T) {
	fake := &fakeSES{}
	m := &SESMailer{client: fake}

	id, err := m.Send(context.Background(), Message{
		From:    "Camp <hello@camp.dev>",
		To:      []string{"student@example.com"},
		Subject: "Welcome",
		HTML:    "<p>Welcome</p>",
		Text:    "Welcome",
	})
	require.NoError(t, err)
	assert.Equal(t, "ses-1", id)

	raw := string(fake.raw)
	assert.True(t, strings.Contains(raw, "Subject: Welcome"))
	assert.True(t, strings.Contains(raw, "student@example.com"))
	assert.True(t, strings.Contains(raw, "multipart/alternative"))
}

func TestBuildMIME_InvalidFrom(t *testing.T) {
	_, err := buildMIME(Message{From: "not an address", To: []string{"a@b.co"}})
	assert.Error(t, err)
}
