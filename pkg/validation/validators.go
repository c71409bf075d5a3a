package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// New builds the validator instance used across the application: custom
// validators registered, field names reported by their json tag so issue
// paths match the wire format.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("max_current_year", MaxCurrentYear)
}

// MaxCurrentYear validates that an integer year field does not exceed the
// current year. The lower bound is a plain min tag; the upper bound is
// dynamic, which the DB cannot enforce.
func MaxCurrentYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	if year == 0 {
		return true // optional, pair with required when the field is mandatory
	}
	return year <= int64(time.Now().Year())
}
