package utils

import (
	"rips-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("rips_date", validateRipsDate)
	validate.RegisterValidation("rips_version", validateRipsVersion)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateVar checks a single value against a validator tag expression such
// as "required,rips_date" or "oneof=CC CE TI".
func ValidateVar(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

func validateRipsDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return IsRipsDate(value)
}

func validateRipsVersion(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RipsVersionLegacy || value == constvars.RipsVersionCurrent
}
