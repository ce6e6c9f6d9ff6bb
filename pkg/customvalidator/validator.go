package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations wires the project-specific rules into the
// given validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("asset_code", isAssetCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("username_format", isUsername); err != nil {
		return err
	}
	return nil
}

// Asset codes look like SOF-001, HW-1024: an upper-case prefix, a dash
// and a numeric tail.
var assetCodeRe = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,9}-\d{1,6}$`)

func isAssetCode(fl validator.FieldLevel) bool {
	return assetCodeRe.MatchString(fl.Field().String())
}

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,64}$`)

func isUsername(fl validator.FieldLevel) bool {
	return usernameRe.MatchString(fl.Field().String())
}
