package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jhoicas/ecommerce-api/pkg/config"
)

// SendGridMailer envía con la API v3 de SendGrid.
type SendGridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

// NewSendGridMailer construye el mailer.
func NewSendGridMailer(cfg config.MailConfig) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:   sgmail.NewEmail(cfg.FromName, cfg.From),
	}
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail("", to), "", htmlBody)
	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status %d", resp.StatusCode)
	}
	return nil
}
