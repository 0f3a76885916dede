// Package validation holds the shared struct validator used by the catalog,
// configuration and contact form packages.
package validation

import (
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Instance returns the process-wide validator, configured on first use.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"yaml", "json"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return strings.ToLower(field.Name)
		})

		_ = v.RegisterValidation("image_ref", func(fl validator.FieldLevel) bool {
			return isImageRef(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// isImageRef accepts absolute http(s) URLs and site-relative paths.
func isImageRef(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}
	if strings.ContainsAny(ref, " \x00") {
		return false
	}
	if strings.HasPrefix(ref, "/") {
		return !strings.Contains(ref, "/../")
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}
