package model

// ContactInfo is the traveler identity collected on the first wizard step.
type ContactInfo struct {
	FirstName   string `json:"firstName" validate:"required,english_only"`
	LastName    string `json:"lastName" validate:"required,english_only"`
	Email       string `json:"email" validate:"required,email_shape"`
	Phone       string `json:"phone" validate:"required,phone_chars"`
	CountryCode string `json:"countryCode"`
}

// ActivityInfo is the on-site participant identity collected on the second
// wizard step. When SameAsTraveler is set the identity fields hold a snapshot
// of the contact step and validation of this step is skipped entirely.
type ActivityInfo struct {
	FirstName       string `json:"firstName" validate:"required,english_only"`
	LastName        string `json:"lastName" validate:"required,english_only"`
	Email           string `json:"email" validate:"required,email_shape"`
	Phone           string `json:"phone" validate:"required,phone_chars"`
	CountryCode     string `json:"countryCode"`
	SameAsTraveler  bool   `json:"sameAsTraveler"`
	SpecialRequests string `json:"specialRequests"`
}

// PaymentInfo is the third wizard step. The card fields are only required
// when the card method is selected. ExpiryMonth is declared before ExpiryYear
// on purpose: both report under the single error key "expiryDate" and the
// year message wins when both are missing.
type PaymentInfo struct {
	PaymentMethod  string `json:"paymentMethod" validate:"required,oneof=card apple"`
	CardNumber     string `json:"cardNumber" validate:"required_if=PaymentMethod card"`
	ExpiryMonth    string `json:"expiryMonth" validate:"required_if=PaymentMethod card"`
	ExpiryYear     string `json:"expiryYear" validate:"required_if=PaymentMethod card"`
	CVV            string `json:"cvv" validate:"required_if=PaymentMethod card"`
	CardholderName string `json:"cardholderName" validate:"required_if=PaymentMethod card"`
	Country        string `json:"country"`
	ZipCode        string `json:"zipCode" validate:"required_if=PaymentMethod card"`
}
