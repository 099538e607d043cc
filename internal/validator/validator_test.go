package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hestiadash/hestia/internal/validator"
)

type sample struct {
	Name string `validate:"required,notblank"`
	Date string `validate:"isodate"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     sample
		wantField string
	}{
		{name: "Valid", input: sample{Name: "rent", Date: "2024-02-29"}},
		{name: "ValidNoDate", input: sample{Name: "rent"}},
		{name: "Blank", input: sample{Name: "   "}, wantField: "Name"},
		{name: "Missing", input: sample{}, wantField: "Name"},
		{name: "BadDate", input: sample{Name: "x", Date: "2023-02-29"}, wantField: "Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Struct(tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *validator.Error
			if assert.True(t, errors.As(err, &verr)) {
				assert.Equal(t, tt.wantField, verr.Field)
			}
		})
	}
}
