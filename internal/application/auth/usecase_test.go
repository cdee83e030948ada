package auth_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/memory"
	"github.com/jhoicas/ecommerce-api/pkg/jwt"
)

const secret = "test-secret"

type captureMailer struct {
	to, subject, body string
	err               error
}

func (m *captureMailer) Send(_ context.Context, to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return m.err
}

var tokenInBody = regexp.MustCompile(`The token is: ([0-9a-f-]{36})`)

func (m *captureMailer) token(t *testing.T) string {
	t.Helper()
	match := tokenInBody.FindStringSubmatch(m.body)
	require.Len(t, match, 2, "el correo debe incluir el token")
	return match[1]
}

func newAuth(t *testing.T, cfg auth.Config) (*auth.AuthUseCase, *captureMailer, *memory.UserTokenRepo) {
	t.Helper()
	s := memory.NewStore()
	mailer := &captureMailer{}
	tokens := memory.NewUserTokenRepository(s)
	if cfg.JWT.Secret == "" {
		cfg.JWT = auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}
	}
	if cfg.ResetURLBase == "" {
		cfg.ResetURLBase = "http://localhost:7001/reset-password/"
	}
	return auth.NewAuthUseCase(memory.NewUserRepository(s), tokens, mailer, cfg, nil), mailer, tokens
}

func register(t *testing.T, uc *auth.AuthUseCase, email string) {
	t.Helper()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{FullName: "Ana", Email: email, Password: "secret1"})
	require.NoError(t, err)
}

func TestRegisterUser(t *testing.T) {
	uc, _, _ := newAuth(t, auth.Config{})
	ctx := context.Background()

	out, err := uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "Ana", Email: " Ana@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, entity.RoleUser, out.Role, "rol por defecto")

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "Otra", Email: "ana@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "Root", Email: "root@example.com", Password: "x", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "Raro", Email: "raro@example.com", Password: "x", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_AdminPermitido(t *testing.T) {
	uc, _, _ := newAuth(t, auth.Config{AllowAdminSignup: true})
	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{FullName: "Root", Email: "root@example.com", Password: "x", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestLogin(t *testing.T) {
	uc, _, _ := newAuth(t, auth.Config{})
	ctx := context.Background()
	register(t, uc, "ana@example.com")

	token, err := uc.Login(ctx, dto.LoginRequest{Email: "ANA@example.com", Password: "secret1"})
	require.NoError(t, err)
	claims, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.NotEmpty(t, claims.UserID)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestForgotAndResetPassword(t *testing.T) {
	uc, mailer, _ := newAuth(t, auth.Config{})
	ctx := context.Background()
	register(t, uc, "ana@example.com")

	assert.ErrorIs(t, uc.ForgotPassword(ctx, "nadie@example.com"), domain.ErrUserNotFound)

	require.NoError(t, uc.ForgotPassword(ctx, "ana@example.com"))
	assert.Equal(t, "ana@example.com", mailer.to)
	assert.Equal(t, "Forgot Password", mailer.subject)
	tok := mailer.token(t)
	assert.Contains(t, mailer.body, "http://localhost:7001/reset-password/"+tok)

	require.NoError(t, uc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: tok, NewPassword: "nueva123"}))

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "nueva123"})
	assert.NoError(t, err)

	err = uc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: tok, NewPassword: "otra123"})
	assert.ErrorIs(t, err, domain.ErrInvalidToken, "el token es de un solo uso")
}

func TestResetPassword_TokenExpirado(t *testing.T) {
	uc, mailer, tokens := newAuth(t, auth.Config{ResetTokenTTL: time.Nanosecond})
	ctx := context.Background()
	register(t, uc, "ana@example.com")
	require.NoError(t, uc.ForgotPassword(ctx, "ana@example.com"))
	tok := mailer.token(t)
	time.Sleep(time.Millisecond)

	err := uc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: tok, NewPassword: "nueva123"})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	stored, err := tokens.GetByToken(ctx, tok)
	require.NoError(t, err)
	assert.Nil(t, stored, "el token expirado se elimina")
}

func TestForgotPassword_FalloDeCorreo(t *testing.T) {
	uc, mailer, _ := newAuth(t, auth.Config{})
	ctx := context.Background()
	register(t, uc, "ana@example.com")
	mailer.err = errors.New("smtp down")

	err := uc.ForgotPassword(ctx, "ana@example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}

func TestProfile(t *testing.T) {
	uc, _, _ := newAuth(t, auth.Config{})
	ctx := context.Background()
	register(t, uc, "ana@example.com")
	token, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	claims, err := jwt.Parse(secret, token)
	require.NoError(t, err)

	p, err := uc.Profile(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.FullName)

	_, err = uc.Profile(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
