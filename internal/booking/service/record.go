package service

import (
	"strconv"
	"time"

	"tourvis/pkg/model"
)

const referencePrefix = "TV"

// NewReference derives a booking reference from the submission instant:
// "TV" plus the last eight digits of the epoch milliseconds. Uniqueness is
// best effort and the scheme is kept for compatibility with references
// already handed to customers.
func NewReference(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return referencePrefix + ms
}

// BuildRecord freezes the wizard's data into the persisted booking shape.
// Identity falls back field by field from the activity step to the contact
// step, so a same-as-traveler snapshot and hand-typed participant data read
// the same way downstream.
func BuildRecord(contact model.ContactInfo, activity model.ActivityInfo, tour model.TourContext, now time.Time) *model.BookingRecord {
	return &model.BookingRecord{
		BookingReference: NewReference(now),
		Tour:             tour.Tour,
		Date:             tour.Date,
		Time:             tour.Time,
		Quantity:         tour.Quantity,
		Price:            tour.Price,
		TotalAmount:      tour.TotalAmount(),
		CustomerInfo: model.CustomerInfo{
			FirstName:       fallback(activity.FirstName, contact.FirstName),
			LastName:        fallback(activity.LastName, contact.LastName),
			Email:           fallback(activity.Email, contact.Email),
			Phone:           fallback(activity.Phone, contact.Phone),
			Country:         "Indonesia",
			SpecialRequests: activity.SpecialRequests,
		},
		Status:      model.StatusConfirmed,
		BookingDate: now.UTC().Format(time.RFC3339),
	}
}

func fallback(primary, secondary string) string {
	if primary != "" {
		return primary
	}
	return secondary
}
