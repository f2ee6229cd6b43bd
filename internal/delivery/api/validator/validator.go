// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"agenda/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *playground.Validate
}

// New returns an echo.Validator checking `validate` struct tags.
func New() echo.Validator {
	return &requestValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate reports every failed field as "<field>: <rule>", joined by "; ".
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "invalid request")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fe playground.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "email":
		return field + ": must be a valid email address"
	case "min":
		return field + ": must have at least " + fe.Param() + " item(s)"
	case "datetime":
		return field + ": must match " + fe.Param()
	default:
		return field + ": failed " + fe.Tag()
	}
}
