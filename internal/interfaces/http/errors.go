package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

// fail escribe el cuerpo de error estándar.
func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Status: dto.StatusFailed, Code: code, Message: message})
}

// errorStatus traduce un error de dominio a status HTTP y código.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return fiber.StatusBadRequest, "INVALID_TOKEN"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest, "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, "DUPLICATE"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// respondError responde con el error de dominio traducido.
// Los 500 no exponen el detalle; quedan en el log del ErrorHandler.
func respondError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		return err
	}
	return fail(c, status, code, err.Error())
}

// ErrorHandler envuelve los errores no manejados (incluido *fiber.Error) en el cuerpo estándar.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	l := log.Component("http")
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fail(c, fe.Code, statusCode(fe.Code), fe.Message)
		}
		status, code := errorStatus(err)
		if status != fiber.StatusInternalServerError {
			return fail(c, status, code, err.Error())
		}
		l.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no manejado")
		return fail(c, status, code, "error interno del servidor")
	}
}

// NotFound responde 404 a las rutas no registradas.
func NotFound(c *fiber.Ctx) error {
	return fail(c, fiber.StatusNotFound, "NOT_FOUND", "ruta no encontrada: "+c.Method()+" "+c.Path())
}

// statusCode deriva el código del texto estándar del status (404 → NOT_FOUND).
func statusCode(status int) string {
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	msg := utils.StatusMessage(status)
	if msg == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(msg, " ", "_"))
}
