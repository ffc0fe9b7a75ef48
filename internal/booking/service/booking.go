// Package service finalizes booking flows: it turns a completed wizard into
// a persisted booking record and answers reference lookups.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tourvis/internal/booking/wizard"
	apperrors "tourvis/pkg/errors"
	"tourvis/pkg/events"
	"tourvis/pkg/kvstore"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

type BookingService interface {
	Complete(ctx context.Context, w *wizard.Wizard, tour model.TourContext) (*model.BookingRecord, error)
	GetByReference(ctx context.Context, reference string) (*model.BookingRecord, error)
}

type bookingService struct {
	store       kvstore.Store
	events      events.Publisher
	searchDelay time.Duration
	logger      *logger.Logger
}

// NewBookingService wires the booking flow against its storage and event
// collaborators. searchDelay paces reference lookups; zero disables the wait.
func NewBookingService(store kvstore.Store, publisher events.Publisher, searchDelay time.Duration, log *logger.Logger) BookingService {
	return &bookingService{
		store:       store,
		events:      publisher,
		searchDelay: searchDelay,
		logger:      log,
	}
}

// wait sleeps for the configured search delay unless the request goes away
// first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Complete submits the wizard. Validation failures keep the flow on the
// payment step with field messages; a storage failure is reported opaquely
// and leaves the flow intact so the customer can retry.
func (s *bookingService) Complete(ctx context.Context, w *wizard.Wizard, tour model.TourContext) (*model.BookingRecord, error) {
	if w.Step() != wizard.StepPayment {
		return nil, apperrors.InvalidInput("Booking flow has not reached the payment step")
	}

	if !w.ReadyToSubmit() {
		details := make(map[string]any)
		for field, message := range w.Errors() {
			details[field] = message
		}
		return nil, apperrors.Validation("Payment details are incomplete", details)
	}

	record := BuildRecord(w.Contact(), w.Activity(), tour, time.Now())

	if err := s.store.Put(ctx, kvstore.BookingKey(record.BookingReference), record); err != nil {
		s.logger.Error("Failed to save booking record",
			"booking_reference", record.BookingReference,
			"error", err,
		)
		return nil, apperrors.Internal("There was an error processing your booking. Please try again.", err)
	}

	s.events.Publish(ctx, events.TypeBookingConfirmed, record.BookingReference, record)

	s.logger.Info("Booking confirmed",
		"booking_reference", record.BookingReference,
		"tour", record.Tour,
		"quantity", record.Quantity,
		"total_amount", record.TotalAmount,
	)

	return record, nil
}

// GetByReference looks a booking up by its customer-facing reference.
// Surrounding whitespace is forgiven; references get copied out of emails.
func (s *bookingService) GetByReference(ctx context.Context, reference string) (*model.BookingRecord, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, apperrors.InvalidInput("Booking reference is required")
	}

	if err := wait(ctx, s.searchDelay); err != nil {
		return nil, apperrors.Internal("Booking lookup interrupted", err)
	}

	var record model.BookingRecord
	err := s.store.Get(ctx, kvstore.BookingKey(reference), &record)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, apperrors.NotFoundWithRef("Booking", reference)
	}
	if err != nil {
		s.logger.Error("Failed to load booking record",
			"booking_reference", reference,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return &record, nil
}
