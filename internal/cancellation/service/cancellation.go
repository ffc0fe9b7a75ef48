// Package service accepts cancellation requests. A request is a standalone
// record: accepting one never touches the booking it references, and
// follow-up is handled out of band by support staff.
package service

import (
	"context"
	"time"

	"tourvis/internal/cancellation/validator"
	apperrors "tourvis/pkg/errors"
	"tourvis/pkg/kvstore"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

type CancellationService interface {
	Submit(ctx context.Context, req *model.CancellationRequest) (*model.CancellationRequest, error)
}

type cancellationService struct {
	store     kvstore.Store
	validator *validator.CancellationValidator
	logger    *logger.Logger
}

func NewCancellationService(store kvstore.Store, v *validator.CancellationValidator, log *logger.Logger) CancellationService {
	return &cancellationService{
		store:     store,
		validator: v,
		logger:    log,
	}
}

// Submit validates and stores the request. A request without a booking
// reference is still accepted; support matches it up manually.
func (s *cancellationService) Submit(ctx context.Context, req *model.CancellationRequest) (*model.CancellationRequest, error) {
	if fieldErrors := s.validator.Errors(req); len(fieldErrors) > 0 {
		details := make(map[string]any, len(fieldErrors))
		for field, message := range fieldErrors {
			details[field] = message
		}
		return nil, apperrors.Validation("Cancellation request is incomplete", details)
	}

	req.SubmittedAt = time.Now().UTC().Format(time.RFC3339)

	if req.BookingReference != "" {
		if err := s.store.Put(ctx, kvstore.CancellationKey(req.BookingReference), req); err != nil {
			s.logger.Error("Failed to save cancellation request",
				"booking_reference", req.BookingReference,
				"error", err,
			)
			return nil, apperrors.Internal("Failed to submit cancellation request", err)
		}
	}

	s.logger.Info("Cancellation request submitted",
		"booking_reference", req.BookingReference,
		"reason", req.Reason,
		"refund_method", req.RefundMethod,
	)

	return req, nil
}
