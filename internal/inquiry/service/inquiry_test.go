package service

import (
	"context"
	"regexp"
	"testing"

	"tourvis/internal/inquiry/validator"
	apperrors "tourvis/pkg/errors"
	"tourvis/pkg/kvstore"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

func newTestService(t *testing.T) (InquiryService, kvstore.Store) {
	t.Helper()
	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT, Service: "test"})
	store := kvstore.NewMemoryStore()
	return NewInquiryService(store, validator.NewInquiryValidator(log), 0, log), store
}

func validInquiry() *model.InquiryRecord {
	return &model.InquiryRecord{
		Author:      "jane",
		Password:    "hunter2",
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "010-1234-5678",
		InquiryType: "booking",
		Subject:     "Pickup point",
		Message:     "Where does the van pick us up?",
	}
}

func TestCreateInquiry(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validInquiry())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !regexp.MustCompile(`^INQ[0-9]{8}$`).MatchString(created.ID) {
		t.Errorf("inquiry id = %q", created.ID)
	}
	if created.Status != StatusPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
	if created.Responses == nil || len(created.Responses) != 0 {
		t.Errorf("responses should start as an empty list, got %v", created.Responses)
	}
	if created.CreatedAt == "" {
		t.Error("created at should be stamped")
	}
}

func TestCreateInquiryValidation(t *testing.T) {
	svc, _ := newTestService(t)

	inquiry := validInquiry()
	inquiry.Subject = ""
	inquiry.Email = "jane@example"

	_, err := svc.Create(context.Background(), inquiry)
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Fatalf("code = %q, want validation", appErr.Code)
	}
	if appErr.Details["subject"] != "Subject is required" {
		t.Errorf("details = %v", appErr.Details)
	}
	if appErr.Details["email"] != "Please enter a valid email address" {
		t.Errorf("details = %v", appErr.Details)
	}
}

func TestCreateAppendsToList(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Create(context.Background(), validInquiry())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := validInquiry()
	second.Subject = "Follow up"
	if _, err := svc.Create(context.Background(), second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	inquiries, err := svc.List(context.Background(), "jane", "hunter2")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(inquiries) != 2 {
		t.Fatalf("len = %d, want 2", len(inquiries))
	}
	if inquiries[0].ID != first.ID {
		t.Errorf("creation order not preserved: %v", inquiries)
	}
	if inquiries[1].Subject != "Follow up" {
		t.Errorf("second subject = %q", inquiries[1].Subject)
	}
}

func TestListCredentialGating(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Create(context.Background(), validInquiry()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("missing credentials", func(t *testing.T) {
		_, err := svc.List(context.Background(), "jane", "")
		appErr := apperrors.AsAppError(err)
		if appErr.Code != apperrors.CodeInvalidInput {
			t.Errorf("code = %q", appErr.Code)
		}
		if appErr.Message != "Please enter both Author and Password" {
			t.Errorf("message = %q", appErr.Message)
		}
	})

	t.Run("wrong password reads as not found", func(t *testing.T) {
		_, err := svc.List(context.Background(), "jane", "wrong")
		if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
			t.Errorf("error = %v, want not found", err)
		}
	})
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validInquiry())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.GetByID(context.Background(), "jane", "hunter2", created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Subject != "Pickup point" {
		t.Errorf("subject = %q", got.Subject)
	}

	if _, err := svc.GetByID(context.Background(), "jane", "hunter2", "INQ00000000"); apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("unknown id error = %v, want not found", err)
	}
}
