package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/jhillyerd/enmime"
)

type rawSender interface {
	SendRawEmail(ctx context.Context, in *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

// SESMailer builds a MIME message with enmime and sends it raw through SES.
type SESMailer struct {
	client rawSender
}

func NewSESMailer(ctx context.Context, region, accessKey, secretKey string) (*SESMailer, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &SESMailer{client: ses.NewFromConfig(cfg)}, nil
}

func (m *SESMailer) Send(ctx context.Context, msg Message) (string, error) {
	raw, err := buildMIME(msg)
	if err != nil {
		return "", err
	}

	out, err := m.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		RawMessage: &types.RawMessage{Data: raw},
	})
	if err != nil {
		return "", fmt.Errorf("ses: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}

func buildMIME(msg Message) ([]byte, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}

	from, err := mail.ParseAddress(msg.From)
	if err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", msg.From, err)
	}

	b := enmime.Builder().
		From(from.Name, from.Address).
		Subject(msg.Subject).
		HTML([]byte(msg.HTML))
	if msg.Text != "" {
		b = b.Text([]byte(msg.Text))
	}
	for _, to := range msg.To {
		addr, err := mail.ParseAddress(to)
		if err != nil {
			return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
		}
		b = b.To(addr.Name, addr.Address)
	}
	if msg.ReplyTo != "" {
		addr, err := mail.ParseAddress(msg.ReplyTo)
		if err != nil {
			return nil, fmt.Errorf("invalid reply-to %q: %w", msg.ReplyTo, err)
		}
		b = b.ReplyTo(addr.Name, addr.Address)
	}

	part, err := b.Build()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := part.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
