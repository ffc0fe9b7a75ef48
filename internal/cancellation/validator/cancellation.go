// Package validator checks cancellation requests, including the bank detail
// fields that only apply when the refund goes to a bank account.
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
	"Name":          {"name", map[string]string{"required": "Name is required"}},
	"Email":         {"email", map[string]string{"required": "Email is required", "email_shape": "Please enter a valid email address"}},
	"Phone":         {"phone", map[string]string{"phone_chars": "Please enter a valid phone number"}},
	"Reason":        {"reason", map[string]string{"required": "Cancellation reason is required", "oneof": "Cancellation reason is required"}},
	"RefundMethod":  {"refundMethod", map[string]string{"required": "Refund method is required", "oneof": "Refund method is required"}},
	"BankName":      {"bankName", map[string]string{"required_if": "Bank name is required"}},
	"AccountNumber": {"accountNumber", map[string]string{"required_if": "Account number is required"}},
	"AccountHolder": {"accountHolder", map[string]string{"required_if": "Account holder name is required"}},
}

type CancellationValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewCancellationValidator(log *logger.Logger) *CancellationValidator {
	v := validator.New()

	if err := rules.Register(v); err != nil {
		log.Fatal("Failed to register form validation rules",
			"error", err,
		)
	}

	return &CancellationValidator{
		validate: v,
		logger:   log,
	}
}

func (v *CancellationValidator) Errors(req *model.CancellationRequest) map[string]string {
	result := map[string]string{}

	err := v.validate.Struct(req)
	if err == nil {
		return result
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		v.logger.Error("Cancellation validation failed unexpectedly", "error", err)
		result["reason"] = "Cancellation reason is required"
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
