package dto

// RegisterRequest entrada para registro. Role es opcional (default "user").
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// RegisteredUser datos públicos del usuario recién creado.
type RegisteredUser struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// RegisterResponse respuesta 201 de registro.
type RegisterResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    RegisteredUser `json:"data"`
}

// LoginRequest credenciales.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT.
type LoginResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	UserToken string `json:"userToken"`
}

// ForgotPasswordRequest solicita el envío del token de recuperación.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest consume el token y fija la nueva contraseña.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// Profile datos visibles del usuario autenticado.
type Profile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ProfileResponse envoltorio de GET /auth/profile.
type ProfileResponse struct {
	User Profile `json:"user"`
}
