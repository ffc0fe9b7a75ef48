// Package service manages support inquiries: creation into the per-credential
// list and lookups gated by the author and password pair.
package service

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"tourvis/internal/inquiry/validator"
	apperrors "tourvis/pkg/errors"
	"tourvis/pkg/kvstore"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

// StatusPending is the status every new inquiry starts in; responses arrive
// through a back office that is not part of this service.
const StatusPending = "pending"

const idPrefix = "INQ"

type InquiryService interface {
	Create(ctx context.Context, inquiry *model.InquiryRecord) (*model.InquiryRecord, error)
	List(ctx context.Context, author, password string) ([]model.InquiryRecord, error)
	GetByID(ctx context.Context, author, password, id string) (*model.InquiryRecord, error)
}

type inquiryService struct {
	store       kvstore.Store
	validator   *validator.InquiryValidator
	searchDelay time.Duration
	logger      *logger.Logger
}

func NewInquiryService(store kvstore.Store, v *validator.InquiryValidator, searchDelay time.Duration, log *logger.Logger) InquiryService {
	return &inquiryService{
		store:       store,
		validator:   v,
		searchDelay: searchDelay,
		logger:      log,
	}
}

// Create validates the inquiry, stamps it and appends it to the list stored
// under its author and password pair.
func (s *inquiryService) Create(ctx context.Context, inquiry *model.InquiryRecord) (*model.InquiryRecord, error) {
	if fieldErrors := s.validator.Errors(inquiry); len(fieldErrors) > 0 {
		details := make(map[string]any, len(fieldErrors))
		for field, message := range fieldErrors {
			details[field] = message
		}
		return nil, apperrors.Validation("Inquiry is incomplete", details)
	}

	now := time.Now()
	inquiry.ID = newInquiryID(now)
	inquiry.Status = StatusPending
	inquiry.CreatedAt = now.UTC().Format(time.RFC3339)
	inquiry.Responses = []model.InquiryResponse{}

	key := kvstore.InquiryKey(inquiry.Author, inquiry.Password)

	existing := []model.InquiryRecord{}
	err := s.store.Get(ctx, key, &existing)
	if err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		s.logger.Error("Failed to load inquiry list", "error", err)
		return nil, apperrors.Internal("Failed to submit inquiry", err)
	}

	existing = append(existing, *inquiry)
	if err := s.store.Put(ctx, key, existing); err != nil {
		s.logger.Error("Failed to save inquiry list", "error", err)
		return nil, apperrors.Internal("Failed to submit inquiry", err)
	}

	s.logger.Info("Inquiry submitted",
		"inquiry_id", inquiry.ID,
		"inquiry_type", inquiry.InquiryType,
	)

	return inquiry, nil
}

// List returns every inquiry stored under the credential pair, newest data
// last. Unknown credentials read as not found, not as an empty list; the
// inquiry board treats the two differently.
func (s *inquiryService) List(ctx context.Context, author, password string) ([]model.InquiryRecord, error) {
	if author == "" || password == "" {
		return nil, apperrors.InvalidInput("Please enter both Author and Password")
	}

	if err := wait(ctx, s.searchDelay); err != nil {
		return nil, apperrors.Internal("Inquiry search interrupted", err)
	}

	var inquiries []model.InquiryRecord
	err := s.store.Get(ctx, kvstore.InquiryKey(author, password), &inquiries)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, apperrors.New(
			apperrors.CodeNotFound,
			"No inquiries found for the provided Author and Password combination.",
			http.StatusNotFound,
		)
	}
	if err != nil {
		s.logger.Error("Failed to load inquiry list", "error", err)
		return nil, apperrors.Internal("Failed to retrieve inquiries", err)
	}

	return inquiries, nil
}

func (s *inquiryService) GetByID(ctx context.Context, author, password, id string) (*model.InquiryRecord, error) {
	inquiries, err := s.List(ctx, author, password)
	if err != nil {
		return nil, err
	}

	for i := range inquiries {
		if inquiries[i].ID == id {
			return &inquiries[i], nil
		}
	}

	return nil, apperrors.NotFoundWithRef("Inquiry", id)
}

// newInquiryID mirrors the booking reference scheme with its own prefix.
func newInquiryID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return idPrefix + ms
}

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
