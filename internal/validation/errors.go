package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	twistederrors "github.com/twistedcolors/storefront/pkg/errors"
)

// Struct validates s with the shared instance and normalises the first
// failure into a ValidationError.
func Struct(s any) error {
	return ConvertError(Instance().Struct(s))
}

// ConvertError normalizes validator errors into storefront validation errors.
func ConvertError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := FieldName(ve)
		return twistederrors.NewValidationError(field, describe(ve), err)
	}

	return twistederrors.NewValidationError("", err.Error(), err)
}

// FieldName renders the failing field path without the root struct name,
// e.g. "products[2].price" or "email".
func FieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "image_ref":
		return "must be an http(s) URL or a site path"
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
