package dto

import "time"

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateUserRequest campos opcionales; Role solo lo aplica un admin.
type UpdateUserRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UserEnvelope respuesta con un usuario.
type UserEnvelope struct {
	Message string       `json:"message"`
	Data    UserResponse `json:"data"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Message string         `json:"message"`
	Data    []UserResponse `json:"data"`
	PageMeta
}
