package validator

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// notblank: the string has at least one non-space character.
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// isodate: an empty string or a YYYY-MM-DD calendar date.
	_ = Validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}

		_, err := time.Parse(time.DateOnly, s)

		return err == nil
	})
}

// Struct validates v and returns a single readable error naming the first
// failing field.
func Struct(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return &Error{Field: errs[0].Field(), Tag: errs[0].Tag()}
	}

	return err
}

type Error struct {
	Field string
	Tag   string
}

func (e *Error) Error() string {
	return "invalid field " + e.Field + ": failed " + e.Tag
}
