package mail

import (
	"context"

	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

// LogMailer no envía nada: registra destinatario y cuerpo (desarrollo).
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el mailer de desarrollo.
func NewLogMailer(log *logger.Logger) *LogMailer {
	if log == nil {
		log = logger.Nop()
	}
	return &LogMailer{log: log.Component("mail")}
}

func (m *LogMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	m.log.Info().Str("to", to).Str("subject", subject).Str("body", htmlBody).Msg("correo no enviado (MAIL_PROVIDER=log)")
	return nil
}
