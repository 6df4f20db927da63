package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSink delivers notifications to a fixed mailbox via SendGrid.
type EmailSink struct {
	client *sendgrid.Client
	from   string
	to     string
}

func NewEmailSink(apiKey, from, to string) *EmailSink {
	return &EmailSink{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (s *EmailSink) Send(ctx context.Context, text string) error {
	from := mail.NewEmail("Library Service", s.from)
	recipient := mail.NewEmail("", s.to)
	message := mail.NewSingleEmail(from, "Library Service notification", recipient, text, text)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
