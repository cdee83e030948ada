// Package mail adaptadores de ports.Mailer: SMTP (gomail), SendGrid y log.
package mail

import (
	"fmt"

	"github.com/jhoicas/ecommerce-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-api/pkg/config"
	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

// New devuelve el Mailer según MAIL_PROVIDER.
func New(cfg config.MailConfig, log *logger.Logger) (ports.Mailer, error) {
	switch cfg.Provider {
	case config.MailProviderSMTP:
		if cfg.SMTPHost == "" || cfg.From == "" {
			return nil, fmt.Errorf("mail smtp: SMTP_HOST y MAIL_FROM son obligatorios")
		}
		return NewSMTPMailer(cfg), nil
	case config.MailProviderSendGrid:
		if cfg.SendGridAPIKey == "" || cfg.From == "" {
			return nil, fmt.Errorf("mail sendgrid: SENDGRID_API_KEY y MAIL_FROM son obligatorios")
		}
		return NewSendGridMailer(cfg), nil
	case config.MailProviderLog, "":
		return NewLogMailer(log), nil
	default:
		return nil, fmt.Errorf("mail: proveedor desconocido %q", cfg.Provider)
	}
}
