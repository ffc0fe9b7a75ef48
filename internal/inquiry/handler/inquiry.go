package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tourvis/internal/inquiry/service"
	httputil "tourvis/pkg/http"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

type InquiryHandler struct {
	service service.InquiryService
	log     *logger.Logger
}

func NewInquiryHandler(svc service.InquiryService, log *logger.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: svc,
		log:     log,
	}
}

func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var inquiry model.InquiryRecord
	if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	created, err := h.service.Create(r.Context(), &inquiry)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, created); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	inquiries, err := h.service.List(r.Context(), query.Get("author"), query.Get("password"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, inquiries); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *InquiryHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	query := r.URL.Query()

	inquiry, err := h.service.GetByID(r.Context(), query.Get("author"), query.Get("password"), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, inquiry); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *InquiryHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/inquiries", h.Create)
	router.GET("/api/v1/inquiries", h.List)
	router.GET("/api/v1/inquiries/:id", h.GetByID)
}
