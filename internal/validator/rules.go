package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Philippine mobile numbers: local 09XXXXXXXXX or international +639XXXXXXXXX.
var phMobileRe = regexp.MustCompile(`^(09\d{9}|\+639\d{9})$`)

func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("ph_mobile", validatePHMobile)
}

func validatePHMobile(fl validator.FieldLevel) bool {
	return phMobileRe.MatchString(fl.Field().String())
}
