// Package contact validates contact form submissions and hands accepted
// messages to the configured sender over the message bus.
package contact

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form is the contact form as posted by the browser.
type Form struct {
	Name    string `form:"name" json:"name" validate:"required"`
	Email   string `form:"email" json:"email" validate:"required,email"`
	Message string `form:"message" json:"message" validate:"required,min=10"`
}

// Normalize trims surrounding whitespace from every field.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// messages are the inline error texts, keyed by field then validator tag.
var messages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
	},
	"email": {
		"required": "Email is required",
		"email":    "Invalid email",
	},
	"message": {
		"required": "Message is required",
		"min":      "Message must be at least 10 characters",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their form name so errors line up with the inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
	return v
}

// Validate checks a normalized form. It returns nil when the form is valid.
func Validate(f Form) FieldErrors {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}

	fieldErrors := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if fieldErrors.Has(fe.Field()) {
			continue
		}
		msg, ok := messages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		fieldErrors[fe.Field()] = msg
	}
	return fieldErrors
}
