package model

// InquiryRecord is one support inquiry. Records are grouped into an ordered
// list at key inquiry_{author}_{password}; the composite key doubles as the
// lookup credential.
type InquiryRecord struct {
	ID          string            `json:"id"`
	Author      string            `json:"author" validate:"required"`
	Password    string            `json:"password" validate:"required"`
	Name        string            `json:"name" validate:"required"`
	Email       string            `json:"email" validate:"required,email_shape"`
	Phone       string            `json:"phone" validate:"omitempty,phone_chars"`
	InquiryType string            `json:"inquiryType" validate:"required,oneof=general booking cancellation complaint suggestion technical other"`
	Subject     string            `json:"subject" validate:"required"`
	Message     string            `json:"message" validate:"required"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"createdAt"`
	Responses   []InquiryResponse `json:"responses"`
}

type InquiryResponse struct {
	Message     string `json:"message"`
	Responder   string `json:"responder"`
	RespondedAt string `json:"respondedAt"`
}
