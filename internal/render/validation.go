package render

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrors converts a gin binding failure into the field-keyed map
// the forms expect.
func BindingErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Invalid request body."
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "The " + field + " field is required."
		case "email":
			out[field] = "The " + field + " must be a valid email address."
		default:
			out[field] = "The " + field + " field is invalid."
		}
	}
	return out
}
