package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskassign/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("form"); name != "" {
			return name
		}
		return strings.ToLower(field.Name)
	})
	return v
}

// fieldErrors converts validator output into per-field messages. A nil or
// unrelated error yields an empty set.
func fieldErrors(err error) *model.ValidationErrors {
	var errs model.ValidationErrors
	if err == nil {
		return &errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.AddRecord(err.Error())
		return &errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), fieldMessage(fe))
	}
	return &errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	default:
		return "Enter a valid value."
	}
}
