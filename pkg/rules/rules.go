// Package rules holds the character-set and shape predicates shared by every
// customer-facing form in the storefront, plus their registration as
// go-playground validator tags. The predicates are permissive on empty input;
// presence is always a separate "required" check so that "missing" and
// "malformed" produce different messages.
package rules

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	englishOnlyRegex = regexp.MustCompile(`^[a-zA-Z ]*$`)
	emailShapeRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneCharsRegex  = regexp.MustCompile(`^[0-9+\-() ]*$`)
)

// IsEnglishOnly reports whether s contains only ASCII letters and spaces.
// The empty string passes.
func IsEnglishOnly(s string) bool {
	return englishOnlyRegex.MatchString(s)
}

// IsValidEmail checks local@domain.tld shape: no whitespace, exactly the
// anchored pattern, at least one dot after the last @. It does not attempt
// full RFC 5322 parsing; the storefront never did.
func IsValidEmail(s string) bool {
	return emailShapeRegex.MatchString(s)
}

// IsValidPhone reports whether s contains only digits and the separators
// + - ( ) and space. The empty string passes.
func IsValidPhone(s string) bool {
	return phoneCharsRegex.MatchString(s)
}

// Register installs the predicates as the tags english_only, email_shape and
// phone_chars on the given validator instance.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("english_only", func(fl validator.FieldLevel) bool {
		return IsEnglishOnly(fl.Field().String())
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("phone_chars", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
}
