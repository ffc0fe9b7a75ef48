// Package wizard implements the three-step booking flow as a plain state
// machine: contact, then activity, then payment. Steps only advance when the
// current step validates; jumping backward to an already-visited step is
// always allowed and keeps the later data intact.
package wizard

import (
	"strings"

	"tourvis/internal/booking/validator"
	"tourvis/pkg/model"
	"tourvis/pkg/rules"
)

type Step string

const (
	StepContact  Step = "contact"
	StepActivity Step = "activity"
	StepPayment  Step = "payment"
)

// DefaultCountryCode is the dialing code both identity steps start from.
const DefaultCountryCode = "+82"

// defaultCardCountry preselects the billing country on the payment step.
const defaultCardCountry = "KR"

var stepOrder = map[Step]int{
	StepContact:  0,
	StepActivity: 1,
	StepPayment:  2,
}

type Wizard struct {
	step     Step
	furthest Step
	contact  model.ContactInfo
	activity model.ActivityInfo
	payment  model.PaymentInfo
	errors   validator.ErrorMap
	rules    *validator.StepValidator
}

func New(rules *validator.StepValidator) *Wizard {
	return &Wizard{
		step:     StepContact,
		furthest: StepContact,
		contact:  model.ContactInfo{CountryCode: DefaultCountryCode},
		activity: model.ActivityInfo{CountryCode: DefaultCountryCode},
		payment:  model.PaymentInfo{Country: defaultCardCountry},
		errors:   validator.ErrorMap{},
		rules:    rules,
	}
}

func (w *Wizard) Step() Step                   { return w.step }
func (w *Wizard) Contact() model.ContactInfo   { return w.contact }
func (w *Wizard) Activity() model.ActivityInfo { return w.activity }
func (w *Wizard) Payment() model.PaymentInfo   { return w.payment }

// Errors returns a copy of the current validation messages so callers cannot
// mutate wizard state through the map.
func (w *Wizard) Errors() validator.ErrorMap {
	out := make(validator.ErrorMap, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

// SetContactField applies one edit to the contact step. Character-set rules
// are enforced at entry time: an edit that violates them is rejected and the
// field keeps its previous value. Email shape is only checked on advance.
// Accepted edits clear any message already shown for that field.
func (w *Wizard) SetContactField(field, value string) bool {
	switch field {
	case "firstName":
		if !rules.IsEnglishOnly(value) {
			return false
		}
		w.contact.FirstName = value
	case "lastName":
		if !rules.IsEnglishOnly(value) {
			return false
		}
		w.contact.LastName = value
	case "email":
		w.contact.Email = value
	case "phone":
		if !rules.IsValidPhone(value) {
			return false
		}
		w.contact.Phone = value
	case "countryCode":
		w.contact.CountryCode = value
	default:
		return false
	}

	delete(w.errors, field)
	return true
}

// SetActivityField applies one edit to the activity step. Names are stored
// uppercased, matching the printed participant list handed to tour staff.
// Editing any identity field drops the same-as-traveler link so a stale
// snapshot can never ride along to submission.
func (w *Wizard) SetActivityField(field, value string) bool {
	switch field {
	case "firstName":
		value = strings.ToUpper(value)
		if !rules.IsEnglishOnly(value) {
			return false
		}
		w.activity.FirstName = value
		w.activity.SameAsTraveler = false
	case "lastName":
		value = strings.ToUpper(value)
		if !rules.IsEnglishOnly(value) {
			return false
		}
		w.activity.LastName = value
		w.activity.SameAsTraveler = false
	case "email":
		w.activity.Email = value
		w.activity.SameAsTraveler = false
	case "phone":
		if !rules.IsValidPhone(value) {
			return false
		}
		w.activity.Phone = value
		w.activity.SameAsTraveler = false
	case "countryCode":
		w.activity.CountryCode = value
		w.activity.SameAsTraveler = false
	case "specialRequests":
		w.activity.SpecialRequests = value
		return true
	default:
		return false
	}

	delete(w.errors, activityKey(field))
	return true
}

// SetPaymentField applies one edit to the payment step. The expiry month and
// year share the single error key their combined input renders under.
func (w *Wizard) SetPaymentField(field, value string) bool {
	errKey := field

	switch field {
	case "paymentMethod":
		w.payment.PaymentMethod = value
	case "cardNumber":
		w.payment.CardNumber = value
	case "expiryMonth":
		w.payment.ExpiryMonth = value
		errKey = "expiryDate"
	case "expiryYear":
		w.payment.ExpiryYear = value
		errKey = "expiryDate"
	case "cvv":
		w.payment.CVV = value
	case "cardholderName":
		w.payment.CardholderName = value
	case "country":
		w.payment.Country = value
	case "zipCode":
		w.payment.ZipCode = value
	default:
		return false
	}

	delete(w.errors, errKey)
	return true
}

// SetSameAsTraveler toggles the activity step's link to the contact step.
// Checking copies a snapshot of the contact identity; later contact edits do
// not flow through. Unchecking clears the identity fields and resets the
// dialing code to the default.
func (w *Wizard) SetSameAsTraveler(checked bool) {
	w.activity.SameAsTraveler = checked

	if checked {
		w.activity.FirstName = w.contact.FirstName
		w.activity.LastName = w.contact.LastName
		w.activity.Email = w.contact.Email
		w.activity.Phone = w.contact.Phone
		w.activity.CountryCode = w.contact.CountryCode

		for _, field := range []string{"firstName", "lastName", "email", "phone"} {
			delete(w.errors, activityKey(field))
		}
		return
	}

	w.activity.FirstName = ""
	w.activity.LastName = ""
	w.activity.Email = ""
	w.activity.Phone = ""
	w.activity.CountryCode = DefaultCountryCode
}

// Next validates the current step and advances on success. The error map is
// replaced wholesale with the step's result either way. Advancing past the
// payment step is not a thing; submission is a separate call.
func (w *Wizard) Next() bool {
	switch w.step {
	case StepContact:
		w.errors = w.rules.ContactErrors(w.contact)
		if len(w.errors) > 0 {
			return false
		}
		w.advance(StepActivity)
	case StepActivity:
		w.errors = w.rules.ActivityErrors(w.activity)
		if len(w.errors) > 0 {
			return false
		}
		w.advance(StepPayment)
	default:
		return false
	}
	return true
}

// Edit jumps back to a previously reached step without revalidating
// anything. Data entered on later steps stays put.
func (w *Wizard) Edit(step Step) bool {
	target, ok := stepOrder[step]
	if !ok || target > stepOrder[w.furthest] {
		return false
	}
	w.step = step
	return true
}

// ReadyToSubmit validates the payment step and reports whether the flow may
// build a booking. It is only meaningful on the payment step.
func (w *Wizard) ReadyToSubmit() bool {
	if w.step != StepPayment {
		return false
	}
	w.errors = w.rules.PaymentErrors(w.payment)
	return len(w.errors) == 0
}

func (w *Wizard) advance(next Step) {
	w.step = next
	if stepOrder[next] > stepOrder[w.furthest] {
		w.furthest = next
	}
}

func activityKey(field string) string {
	return "activity" + strings.ToUpper(field[:1]) + field[1:]
}
