// Package contact models the contact form. Submitting it only validates the
// fields locally and acknowledges; nothing leaves the process.
package contact

import (
	"fmt"
	"strings"
	"time"

	"github.com/twistedcolors/storefront/internal/validation"
	twistederrors "github.com/twistedcolors/storefront/pkg/errors"
)

// DefaultAckDuration is how long the acknowledgement stays on screen.
const DefaultAckDuration = 3 * time.Second

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the inputs in focus order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldMessage}
}

// ParseField converts user input into a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldName, FieldEmail, FieldMessage:
		return f, nil
	default:
		return "", twistederrors.NewValidationError("field", fmt.Sprintf("unknown contact field %q", s), nil)
	}
}

// Form holds the three free-text inputs.
type Form struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,max=2000"`
}

// Set returns a copy of the form with field updated.
func (f Form) Set(field Field, value string) (Form, error) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	default:
		return f, twistederrors.NewValidationError("field", fmt.Sprintf("unknown contact field %q", string(field)), nil)
	}
	return f, nil
}

// Get returns the current value of field.
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	default:
		return ""
	}
}

// Validate checks presence and email syntax. Surrounding whitespace does not
// count as content.
func (f Form) Validate() error {
	trimmed := Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
	return validation.Struct(trimmed)
}

// Reset returns an empty form.
func (f Form) Reset() Form {
	return Form{}
}

// IsEmpty reports whether every field is blank.
func (f Form) IsEmpty() bool {
	return strings.TrimSpace(f.Name) == "" &&
		strings.TrimSpace(f.Email) == "" &&
		strings.TrimSpace(f.Message) == ""
}
