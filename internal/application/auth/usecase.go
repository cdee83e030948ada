package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-api/pkg/jwt"
	"github.com/jhoicas/ecommerce-api/pkg/logger"
	"github.com/jhoicas/ecommerce-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Config políticas del caso de uso de auth.
type Config struct {
	JWT              JWTConfig
	AllowAdminSignup bool
	ResetTokenTTL    time.Duration
	ResetURLBase     string
}

// AuthUseCase registro, login, perfil y recuperación de contraseña.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.UserTokenRepository
	mailer    ports.Mailer
	cfg       Config
	log       *logger.Logger
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokenRepo repository.UserTokenRepository,
	mailer ports.Mailer,
	cfg Config,
	log *logger.Logger,
) *AuthUseCase {
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = time.Hour
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		cfg:       cfg,
		log:       log.Component("auth"),
		now:       time.Now,
	}
}

// RegisterUser crea un usuario. Devuelve ErrEmailAlreadyExists si el email ya existe
// y ErrForbidden si pide rol admin sin que la política lo permita.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.RegisteredUser, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" || strings.TrimSpace(in.FullName) == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if role == entity.RoleAdmin && !uc.cfg.AllowAdminSignup {
		return nil, domain.ErrForbidden
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// El índice único resuelve la carrera entre dos registros simultáneos.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("usuario registrado")
	return &dto.RegisteredUser{FullName: user.FullName, Email: user.Email, Role: user.Role}, nil
}

// Login verifica email/password y genera el JWT. Email desconocido o password incorrecto
// devuelven ErrUnauthorized sin distinguir el caso.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUnauthorized
	}
	if !password.Matches(user.PasswordHash, in.Password) {
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.cfg.JWT.Secret, user.ID, user.Email, user.Role, uc.cfg.JWT.Issuer, uc.cfg.JWT.ExpMinutes)
}

// ForgotPassword genera un token de un solo uso y lo envía por correo.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	now := uc.now()
	token := &entity.UserToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     uuid.New().String(),
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.ResetTokenTTL),
	}
	if err := uc.tokenRepo.Create(ctx, token); err != nil {
		return err
	}

	resetLink := uc.cfg.ResetURLBase + token.Token
	body := fmt.Sprintf("Click the link to reset your password: %s<br>The token is: %s", resetLink, token.Token)
	if err := uc.mailer.Send(ctx, user.Email, "Forgot Password", body); err != nil {
		uc.log.Error().Err(err).Str("user_id", user.ID).Msg("envío de correo de recuperación")
		if delErr := uc.tokenRepo.DeleteByToken(ctx, token.Token); delErr != nil {
			uc.log.Warn().Err(delErr).Msg("no se pudo borrar el token huérfano")
		}
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

// ResetPassword consume el token y fija la nueva contraseña.
// Token desconocido o expirado: ErrInvalidToken. Usuario inexistente: ErrUserNotFound.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if in.Token == "" || in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	token, err := uc.tokenRepo.GetByToken(ctx, in.Token)
	if err != nil {
		return err
	}
	if token == nil {
		return domain.ErrInvalidToken
	}
	if token.Expired(uc.now()) {
		if err := uc.tokenRepo.DeleteByToken(ctx, token.Token); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo borrar el token expirado")
		}
		return domain.ErrInvalidToken
	}

	user, err := uc.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}
	return uc.tokenRepo.DeleteByToken(ctx, token.Token)
}

// Profile devuelve nombre y email del usuario del token.
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*dto.Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.Profile{FullName: user.FullName, Email: user.Email}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
