package model

// CancellationRequest is a standalone request flow: accepting one never
// mutates the booking record it references.
type CancellationRequest struct {
	BookingReference string `json:"bookingReference"`
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email_shape"`
	Phone            string `json:"phone" validate:"omitempty,phone_chars"`
	Reason           string `json:"reason" validate:"required,oneof=personal schedule weather health emergency other"`
	Details          string `json:"details"`
	RefundMethod     string `json:"refundMethod" validate:"required,oneof=original bank"`
	BankName         string `json:"bankName" validate:"required_if=RefundMethod bank"`
	AccountNumber    string `json:"accountNumber" validate:"required_if=RefundMethod bank"`
	AccountHolder    string `json:"accountHolder" validate:"required_if=RefundMethod bank"`
	SubmittedAt      string `json:"submittedAt"`
}
