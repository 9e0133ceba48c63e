package validation

import (
	"go-caduae-backend/internal/domain"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Permissive local@domain.tld shape. Deliberately not RFC 5322: the
	// website forms were built against this exact pattern, so it must not
	// be tightened or loosened.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("form_email", FormEmail)
	_ = v.RegisterValidation("product_code", ProductCode)
}

// FormEmail validates that a string is shaped like local@domain.tld
func FormEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// ProductCode validates that a string names one of the quotable product lines
func ProductCode(fl validator.FieldLevel) bool {
	return domain.ValidProduct(fl.Field().String())
}
