// Package validator checks inquiry submissions and translates failures into
// the per-field messages the inquiry form shows.
package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"tourvis/pkg/logger"
	"tourvis/pkg/model"
	"tourvis/pkg/rules"
)

var messages = map[string]struct {
	key   string
	byTag map[string]string
}{
	"Author":      {"author", map[string]string{"required": "Author is required"}},
	"Password":    {"password", map[string]string{"required": "Password is required"}},
	"Name":        {"name", map[string]string{"required": "Name is required"}},
	"Email":       {"email", map[string]string{"required": "Email is required", "email_shape": "Please enter a valid email address"}},
	"Phone":       {"phone", map[string]string{"phone_chars": "Please enter a valid phone number"}},
	"InquiryType": {"inquiryType", map[string]string{"required": "Inquiry type is required", "oneof": "Inquiry type is required"}},
	"Subject":     {"subject", map[string]string{"required": "Subject is required"}},
	"Message":     {"message", map[string]string{"required": "Message is required"}},
}

type InquiryValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewInquiryValidator(log *logger.Logger) *InquiryValidator {
	v := validator.New()

	if err := rules.Register(v); err != nil {
		log.Fatal("Failed to register form validation rules",
			"error", err,
		)
	}

	return &InquiryValidator{
		validate: v,
		logger:   log,
	}
}

// Errors returns the field-keyed messages for an inquiry, empty when it is
// acceptable.
func (v *InquiryValidator) Errors(inquiry *model.InquiryRecord) map[string]string {
	result := map[string]string{}

	err := v.validate.Struct(inquiry)
	if err == nil {
		return result
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		v.logger.Error("Inquiry validation failed unexpectedly", "error", err)
		result["subject"] = "Subject is required"
		return result
	}

	for _, fieldErr := range validationErrs {
		entry, ok := messages[fieldErr.StructField()]
		if !ok {
			continue
		}
		if message, ok := entry.byTag[fieldErr.Tag()]; ok {
			result[entry.key] = message
		}
	}

	return result
}
