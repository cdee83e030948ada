package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole indica si el rol es uno de los soportados.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User representa una cuenta de la tienda (cliente o administrador).
type User struct {
	ID           string
	FullName     string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // user, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
