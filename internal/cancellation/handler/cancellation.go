package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tourvis/internal/cancellation/service"
	httputil "tourvis/pkg/http"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

type CancellationHandler struct {
	service service.CancellationService
	log     *logger.Logger
}

func NewCancellationHandler(svc service.CancellationService, log *logger.Logger) *CancellationHandler {
	return &CancellationHandler{
		service: svc,
		log:     log,
	}
}

func (h *CancellationHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Submit", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	accepted, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Submit", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, accepted); err != nil {
		h.log.Error("failed to write created response", "handler", "Submit", "operation", "WriteCreated", "error", err)
	}
}

func (h *CancellationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/cancellation-requests", h.Submit)
}
