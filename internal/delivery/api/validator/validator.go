// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator that reports field errors by their json name.
func New() *echoValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &echoValidator{validate: validate}
}

func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fieldErr.Field(), fieldErr.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fieldErr.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid uuid", fieldErr.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fieldErr.Field(), fieldErr.Tag())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}
