package service

import (
	"context"
	"testing"

	"tourvis/internal/cancellation/validator"
	apperrors "tourvis/pkg/errors"
	"tourvis/pkg/kvstore"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

func newTestService(t *testing.T) (CancellationService, kvstore.Store) {
	t.Helper()
	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT, Service: "test"})
	store := kvstore.NewMemoryStore()
	return NewCancellationService(store, validator.NewCancellationValidator(log), log), store
}

func validRequest() *model.CancellationRequest {
	return &model.CancellationRequest{
		BookingReference: "TV12345678",
		Name:             "Jane Doe",
		Email:            "jane@example.com",
		Phone:            "010-1234-5678",
		Reason:           "schedule",
		Details:          "Flight moved a day earlier",
		RefundMethod:     "original",
	}
}

func TestSubmitHappyPath(t *testing.T) {
	svc, store := newTestService(t)

	accepted, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if accepted.SubmittedAt == "" {
		t.Error("submitted at should be stamped")
	}

	var stored model.CancellationRequest
	if err := store.Get(context.Background(), kvstore.CancellationKey("TV12345678"), &stored); err != nil {
		t.Fatalf("request not persisted: %v", err)
	}
	if stored.Reason != "schedule" {
		t.Errorf("stored reason = %q", stored.Reason)
	}
}

func TestSubmitBankRefundRequiresBankDetails(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.RefundMethod = "bank"

	_, err := svc.Submit(context.Background(), req)
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Fatalf("code = %q, want validation", appErr.Code)
	}
	for key, msg := range map[string]string{
		"bankName":      "Bank name is required",
		"accountNumber": "Account number is required",
		"accountHolder": "Account holder name is required",
	} {
		if appErr.Details[key] != msg {
			t.Errorf("details[%q] = %v, want %q", key, appErr.Details[key], msg)
		}
	}

	req.BankName = "KEB Hana"
	req.AccountNumber = "110-123-456789"
	req.AccountHolder = "Jane Doe"
	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Errorf("Submit() with bank details error = %v", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.Name = ""
	req.Reason = "boredom"

	_, err := svc.Submit(context.Background(), req)
	appErr := apperrors.AsAppError(err)
	if appErr.Details["name"] != "Name is required" {
		t.Errorf("details = %v", appErr.Details)
	}
	if appErr.Details["reason"] != "Cancellation reason is required" {
		t.Errorf("unknown reason should be rejected, details = %v", appErr.Details)
	}
}

func TestSubmitWithoutReferenceSkipsStorage(t *testing.T) {
	svc, store := newTestService(t)

	req := validRequest()
	req.BookingReference = ""
	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	var stored model.CancellationRequest
	if err := store.Get(context.Background(), kvstore.CancellationKey(""), &stored); err != kvstore.ErrKeyNotFound {
		t.Errorf("nothing should be stored without a reference, got %v", err)
	}
}
