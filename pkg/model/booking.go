package model

// StatusConfirmed is the only status a booking record is ever written with.
const StatusConfirmed = "confirmed"

// CustomerInfo is the identity block frozen into a booking record at
// submission time. Emergency contact fields are collected nowhere in the
// booking flow and stay empty; that gap is part of the record contract.
type CustomerInfo struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Country          string `json:"country"`
	SpecialRequests  string `json:"specialRequests"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
}

// BookingRecord is the persisted shape at key booking_{bookingReference}.
// Field names match the storefront's stored-record contract. A record is
// created once, always with status "confirmed", and never mutated by the
// booking flow afterwards.
type BookingRecord struct {
	BookingReference string       `json:"bookingReference"`
	Tour             string       `json:"tour"`
	Date             string       `json:"date"`
	Time             string       `json:"time"`
	Quantity         int          `json:"quantity"`
	Price            int          `json:"price"`
	TotalAmount      int          `json:"totalAmount"`
	CustomerInfo     CustomerInfo `json:"customerInfo"`
	Status           string       `json:"status"`
	BookingDate      string       `json:"bookingDate"`
}

// TourContext is the entry-parameter bundle threaded into a booking flow
// from the host page's navigation parameters. It is owned by the entry
// point, not by the wizard.
type TourContext struct {
	Tour     string `json:"tour"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

func (tc TourContext) TotalAmount() int {
	return tc.Price * tc.Quantity
}
