package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	"tourvis/internal/tours"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT, Service: "test"})
	router := httprouter.New()
	NewToursHandler(tours.NewCatalog(), log).RegisterRoutes(router)
	return router
}

func get(t *testing.T, router *httprouter.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListTours(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/tours?category=adventure&sort=price-low")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data []model.Tour `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].ID != 2 {
		t.Errorf("tours = %v", resp.Data)
	}
}

func TestGetTour(t *testing.T) {
	router := newTestRouter(t)

	if rec := get(t, router, "/api/v1/tours/3"); rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec := get(t, router, "/api/v1/tours/99"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown tour status = %d", rec.Code)
	}
	if rec := get(t, router, "/api/v1/tours/abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d", rec.Code)
	}
}

func TestGetOptions(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/tours/1/options")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var dates struct {
		Data struct {
			Dates []string `json:"dates"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &dates); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dates.Data.Dates) != 3 {
		t.Errorf("dates = %v", dates.Data.Dates)
	}

	rec = get(t, router, "/api/v1/tours/1/options?date=2025-01-17")
	var slots struct {
		Data struct {
			Options []model.TourOption `json:"options"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &slots); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(slots.Data.Options) != 4 {
		t.Errorf("options = %v", slots.Data.Options)
	}

	rec = get(t, router, "/api/v1/tours/2/options?date=2025-01-17")
	if err := json.Unmarshal(rec.Body.Bytes(), &slots); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if slots.Data.Options == nil || len(slots.Data.Options) != 0 {
		t.Errorf("tour without slots should return an empty list, got %v", slots.Data.Options)
	}
}
