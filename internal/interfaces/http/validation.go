package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores nombran el campo como llega en el JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// parseBody decodifica el JSON del cuerpo en out y aplica las reglas `validate`.
// Ambos fallos se devuelven como ErrInvalidInput.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: cuerpo inválido", domain.ErrInvalidInput)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " es requerido"
	case "email":
		return fe.Field() + " debe ser un email válido"
	case "min":
		return fmt.Sprintf("%s debe ser al menos %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s debe ser como máximo %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s no cumple la regla %s", fe.Field(), fe.Tag())
	}
}
