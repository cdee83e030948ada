package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/ecommerce-api/pkg/config"
)

// SMTPMailer envía por SMTP con gomail (puerto 465 usa SSL implícito).
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewSMTPMailer construye el mailer.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

func (m *SMTPMailer) message(to, subject, htmlBody string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return msg
}

// Send abre una conexión por envío. gomail no acepta contexto; se respeta una cancelación previa.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(m.message(to, subject, htmlBody)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
