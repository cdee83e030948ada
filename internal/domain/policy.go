package domain

import "github.com/jhoicas/ecommerce-api/internal/domain/entity"

// Principal identifica a quien invoca una operación (extraído del JWT).
type Principal struct {
	UserID string
	Role   string
}

// IsAdmin indica si el principal tiene rol admin.
func (p Principal) IsAdmin() bool { return p.Role == entity.RoleAdmin }

// Rule regla de autorización sobre un recurso con dueño.
type Rule int

const (
	// RuleOwner solo el dueño del recurso (un admin ajeno tampoco puede).
	RuleOwner Rule = iota
	// RuleOwnerOrAdmin el dueño o cualquier admin.
	RuleOwnerOrAdmin
	// RuleAdmin solo admins, sin importar el dueño.
	RuleAdmin
)

// Authorize aplica la regla sobre el recurso cuyo dueño es ownerID.
// Devuelve ErrForbidden si el principal no cumple la regla.
func Authorize(caller Principal, ownerID string, rule Rule) error {
	isOwner := caller.UserID != "" && caller.UserID == ownerID
	switch rule {
	case RuleOwner:
		if isOwner {
			return nil
		}
	case RuleOwnerOrAdmin:
		if isOwner || caller.IsAdmin() {
			return nil
		}
	case RuleAdmin:
		if caller.IsAdmin() {
			return nil
		}
	}
	return ErrForbidden
}
