package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := Form{Name: "Ada", Email: "ada@example.com", Message: "Hello, this is long enough"}

	tests := []struct {
		name string
		form Form
		want FieldErrors
	}{
		{name: "valid", form: valid, want: nil},
		{
			name: "all empty",
			form: Form{},
			want: FieldErrors{
				"name":    "Name is required",
				"email":   "Email is required",
				"message": "Message is required",
			},
		},
		{
			name: "bad email",
			form: Form{Name: "Ada", Email: "not-an-email", Message: valid.Message},
			want: FieldErrors{"email": "Invalid email"},
		},
		{
			name: "short message",
			form: Form{Name: "Ada", Email: "ada@example.com", Message: "too short"},
			want: FieldErrors{"message": "Message must be at least 10 characters"},
		},
		{
			name: "message of exactly ten characters",
			form: Form{Name: "Ada", Email: "ada@example.com", Message: strings.Repeat("a", 10)},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.form))
		})
	}
}

func TestForm_Normalize(t *testing.T) {
	f := Form{Name: "  Ada ", Email: " ada@example.com\n", Message: "\tHello there friend  "}.Normalize()

	assert.Equal(t, "Ada", f.Name)
	assert.Equal(t, "ada@example.com", f.Email)
	assert.Equal(t, "Hello there friend", f.Message)

	// Whitespace only is treated as missing.
	errs := Validate(Form{Name: "   "}.Normalize())
	assert.Equal(t, "Name is required", errs["name"])
}
