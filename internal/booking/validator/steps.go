// Package validator turns go-playground validation failures on the wizard
// step forms into the field-keyed messages the storefront shows next to each
// input. Keys for the activity step carry an "activity" prefix so contact and
// activity errors never collide in one map.
package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"tourvis/pkg/logger"
	"tourvis/pkg/model"
	"tourvis/pkg/rules"
)

// ErrorMap holds per-field messages keyed the way the storefront renders
// them: firstName, activityFirstName, expiryDate and so on.
type ErrorMap map[string]string

type StepValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewStepValidator(log *logger.Logger) *StepValidator {
	v := validator.New()

	if err := rules.Register(v); err != nil {
		log.Fatal("Failed to register form validation rules",
			"error", err,
		)
	}

	log.Info("Booking step validator initialized successfully")

	return &StepValidator{
		validate: v,
		logger:   log,
	}
}

// identityMessages maps struct field and tag to the message shown for the
// contact and activity steps. Both steps collect the same identity block.
var identityMessages = map[string]map[string]string{
	"FirstName": {
		"required":     "First name is required",
		"english_only": "Please enter English characters only",
	},
	"LastName": {
		"required":     "Last name is required",
		"english_only": "Please enter English characters only",
	},
	"Email": {
		"required":    "Email is required",
		"email_shape": "Please enter a valid email address",
	},
	"Phone": {
		"required":    "Phone number is required",
		"phone_chars": "Please enter a valid phone number",
	},
}

// paymentMessages maps struct field to error key and message for the payment
// step. required and required_if read the same to the customer, and the
// method select collapses every failure into one prompt.
var paymentMessages = map[string]struct {
	key     string
	message string
}{
	"PaymentMethod":  {"paymentMethod", "Please select a payment method"},
	"CardNumber":     {"cardNumber", "Card number is required"},
	"ExpiryMonth":    {"expiryDate", "Expiry month is required"},
	"ExpiryYear":     {"expiryDate", "Expiry year is required"},
	"CVV":            {"cvv", "CVV is required"},
	"CardholderName": {"cardholderName", "Cardholder name is required"},
	"ZipCode":        {"zipCode", "ZIP code is required"},
}

// ContactErrors validates the contact step and returns the full error map
// for it. An empty map means the step may advance.
func (v *StepValidator) ContactErrors(contact model.ContactInfo) ErrorMap {
	return v.identityErrors(contact, "")
}

// ActivityErrors validates the activity step. A step marked same-as-traveler
// holds a snapshot of already-validated contact data and is skipped.
func (v *StepValidator) ActivityErrors(activity model.ActivityInfo) ErrorMap {
	if activity.SameAsTraveler {
		return ErrorMap{}
	}
	return v.identityErrors(activity, "activity")
}

// PaymentErrors validates the payment step before submission.
func (v *StepValidator) PaymentErrors(payment model.PaymentInfo) ErrorMap {
	result := ErrorMap{}

	err := v.validate.Struct(payment)
	if err == nil {
		return result
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		v.logger.Error("Payment step validation failed unexpectedly", "error", err)
		result["paymentMethod"] = "Please select a payment method"
		return result
	}

	for _, fieldErr := range validationErrs {
		entry, ok := paymentMessages[fieldErr.StructField()]
		if !ok {
			continue
		}
		result[entry.key] = entry.message
	}

	return result
}

func (v *StepValidator) identityErrors(form any, keyPrefix string) ErrorMap {
	result := ErrorMap{}

	err := v.validate.Struct(form)
	if err == nil {
		return result
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		v.logger.Error("Identity step validation failed unexpectedly", "error", err)
		result[fieldKey("FirstName", keyPrefix)] = "First name is required"
		return result
	}

	for _, fieldErr := range validationErrs {
		messages, ok := identityMessages[fieldErr.StructField()]
		if !ok {
			continue
		}
		message, ok := messages[fieldErr.Tag()]
		if !ok {
			continue
		}
		result[fieldKey(fieldErr.StructField(), keyPrefix)] = message
	}

	return result
}

// fieldKey lower-camels a struct field name and applies the step prefix:
// FirstName becomes firstName bare, activityFirstName with the prefix.
func fieldKey(structField, prefix string) string {
	if prefix != "" {
		return prefix + structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
