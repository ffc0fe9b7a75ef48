package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"tourvis/internal/tours"
	apperrors "tourvis/pkg/errors"
	httputil "tourvis/pkg/http"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

type ToursHandler struct {
	catalog *tours.Catalog
	log     *logger.Logger
}

func NewToursHandler(catalog *tours.Catalog, log *logger.Logger) *ToursHandler {
	return &ToursHandler{
		catalog: catalog,
		log:     log,
	}
}

func (h *ToursHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	result := h.catalog.List(tours.Filter{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Duration: query.Get("duration"),
		SortBy:   query.Get("sort"),
	})

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ToursHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Tour id must be a number")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	tour, ok := h.catalog.Get(id)
	if !ok {
		if writeErr := httputil.WriteError(w, apperrors.NotFound("Tour")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, tour); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

// GetOptions lists the bookable slots for a tour. Without a date query it
// returns the dates that have any; with one it returns that day's slots.
func (h *ToursHandler) GetOptions(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Tour id must be a number")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetOptions", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if _, ok := h.catalog.Get(id); !ok {
		if writeErr := httputil.WriteError(w, apperrors.NotFound("Tour")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetOptions", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		if err := httputil.WriteSuccess(w, map[string]any{
			"dates": h.catalog.AvailableDates(id),
		}); err != nil {
			h.log.Error("failed to write success response", "handler", "GetOptions", "operation", "WriteSuccess", "error", err)
		}
		return
	}

	options := h.catalog.OptionsForDate(id, date)
	if options == nil {
		options = []model.TourOption{}
	}

	if err := httputil.WriteSuccess(w, map[string]any{
		"date":    date,
		"options": options,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "GetOptions", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ToursHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/tours", h.List)
	router.GET("/api/v1/tours/:id", h.GetByID)
	router.GET("/api/v1/tours/:id/options", h.GetOptions)
}
