package service

import (
	"regexp"
	"testing"
	"time"

	"tourvis/pkg/model"
)

func TestNewReference(t *testing.T) {
	now := time.UnixMilli(1736899200123)

	ref := NewReference(now)
	if !regexp.MustCompile(`^TV[0-9]{8}$`).MatchString(ref) {
		t.Errorf("reference %q does not match TV + 8 digits", ref)
	}

	other := NewReference(now.Add(1 * time.Millisecond))
	if ref == other {
		t.Errorf("references one millisecond apart should differ, both %q", ref)
	}
}

func TestBuildRecord(t *testing.T) {
	now := time.Date(2025, 1, 14, 10, 30, 0, 0, time.UTC)
	tour := model.TourContext{
		Tour:     "surfing-at-sundak-beach-experience",
		Date:     "2025-01-15",
		Time:     "09:00 AM",
		Quantity: 2,
		Price:    250,
	}
	contact := model.ContactInfo{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Phone:       "010-1234-5678",
		CountryCode: "+82",
	}

	t.Run("activity identity wins field by field", func(t *testing.T) {
		activity := model.ActivityInfo{
			FirstName:       "SUE",
			LastName:        "",
			Email:           "sue@example.com",
			Phone:           "",
			SpecialRequests: "vegetarian lunch",
		}

		record := BuildRecord(contact, activity, tour, now)

		if record.CustomerInfo.FirstName != "SUE" {
			t.Errorf("first name = %q, want SUE", record.CustomerInfo.FirstName)
		}
		if record.CustomerInfo.LastName != "Doe" {
			t.Errorf("last name = %q, want contact fallback Doe", record.CustomerInfo.LastName)
		}
		if record.CustomerInfo.Email != "sue@example.com" {
			t.Errorf("email = %q", record.CustomerInfo.Email)
		}
		if record.CustomerInfo.Phone != "010-1234-5678" {
			t.Errorf("phone = %q, want contact fallback", record.CustomerInfo.Phone)
		}
		if record.CustomerInfo.SpecialRequests != "vegetarian lunch" {
			t.Errorf("special requests = %q", record.CustomerInfo.SpecialRequests)
		}
	})

	t.Run("record shape", func(t *testing.T) {
		record := BuildRecord(contact, model.ActivityInfo{}, tour, now)

		if record.TotalAmount != 500 {
			t.Errorf("total amount = %d, want 500", record.TotalAmount)
		}
		if record.Status != model.StatusConfirmed {
			t.Errorf("status = %q, want confirmed", record.Status)
		}
		if record.CustomerInfo.Country != "Indonesia" {
			t.Errorf("country = %q, want the fixed record value", record.CustomerInfo.Country)
		}
		if record.CustomerInfo.EmergencyContact != "" || record.CustomerInfo.EmergencyPhone != "" {
			t.Error("emergency fields are never collected and must stay empty")
		}
		if record.BookingDate != "2025-01-14T10:30:00Z" {
			t.Errorf("booking date = %q", record.BookingDate)
		}
		if record.Tour != tour.Tour || record.Date != tour.Date || record.Time != tour.Time {
			t.Errorf("tour context not carried over: %+v", record)
		}
	})
}
