package entity

import "time"

// UserToken token de un solo uso para restablecer la contraseña.
type UserToken struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si el token ya no puede usarse en el instante now.
func (t *UserToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}
