package ports

import "context"

// Mailer puerto de salida para el envío de correos (SMTP, SendGrid, log).
type Mailer interface {
	// Send envía un correo HTML. Un error se propaga al cliente como fallo interno.
	Send(ctx context.Context, to, subject, htmlBody string) error
}
