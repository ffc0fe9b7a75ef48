// Package handler exposes the booking flow over HTTP: session lifecycle,
// per-field wizard edits, step navigation, submission and reference lookup.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	bookingerrors "tourvis/internal/booking/errors"
	"tourvis/internal/booking/service"
	"tourvis/internal/booking/session"
	"tourvis/internal/booking/validator"
	"tourvis/internal/booking/wizard"
	"tourvis/pkg/config"
	apperrors "tourvis/pkg/errors"
	httputil "tourvis/pkg/http"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

// disposeAfter is how long a submitted session lingers so the confirmation
// view can still read it before disposal.
const disposeAfter = 3 * time.Second

type BookingHandler struct {
	sessions *session.Manager
	service  service.BookingService
	log      *logger.Logger
}

func NewBookingHandler(sessions *session.Manager, svc service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		sessions: sessions,
		service:  svc,
		log:      log,
	}
}

// sessionState is the full wizard snapshot returned by every session
// endpoint, mirroring what the booking page renders.
type sessionState struct {
	ID          string             `json:"id"`
	Step        string             `json:"step"`
	Tour        model.TourContext  `json:"tour"`
	TotalAmount int                `json:"totalAmount"`
	Contact     model.ContactInfo  `json:"contact"`
	Activity    model.ActivityInfo `json:"activity"`
	Payment     model.PaymentInfo  `json:"payment"`
	Errors      validator.ErrorMap `json:"errors"`
}

type fieldUpdateRequest struct {
	Step  string `json:"step"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type sameAsTravelerRequest struct {
	Checked bool `json:"checked"`
}

type editRequest struct {
	Step string `json:"step"`
}

func (h *BookingHandler) CreateSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	// Unusable entry parameters fall back to the defaults the product page
	// would have sent; a broken link still yields a workable flow.
	tour := model.TourContext{
		Tour:     config.DefaultTourSlug,
		Date:     time.Now().UTC().Format("2006-01-02"),
		Time:     config.DefaultTourTime,
		Quantity: config.DefaultQuantity,
		Price:    config.DefaultUnitPrice,
	}
	if v := query.Get("tour"); v != "" {
		tour.Tour = v
	}
	if v := query.Get("date"); v != "" {
		tour.Date = v
	}
	if v := query.Get("time"); v != "" {
		tour.Time = v
	}
	if v, err := strconv.Atoi(query.Get("quantity")); err == nil && v > 0 {
		tour.Quantity = v
	}
	if v, err := strconv.Atoi(query.Get("price")); err == nil && v > 0 {
		tour.Price = v
	}

	s := h.sessions.Create(tour)

	h.writeState(w, s, http.StatusCreated)
}

func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, err := h.sessions.Get(ps.ByName("id"))
	if err != nil {
		h.writeSessionError(w, "GetSession", err)
		return
	}

	h.writeState(w, s, http.StatusOK)
}

// UpdateField applies one field edit to the step named in the body. An edit
// the character-set rules reject is reported as not accepted with the state
// unchanged, the same way typing a stray character into the form does
// nothing.
func (h *BookingHandler) UpdateField(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, err := h.sessions.Get(ps.ByName("id"))
	if err != nil {
		h.writeSessionError(w, "UpdateField", err)
		return
	}

	var req fieldUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadBody(w, "UpdateField")
		return
	}

	accepted := false
	err = s.With(func(wz *wizard.Wizard) error {
		switch wizard.Step(req.Step) {
		case wizard.StepContact:
			accepted = wz.SetContactField(req.Field, req.Value)
		case wizard.StepActivity:
			accepted = wz.SetActivityField(req.Field, req.Value)
		case wizard.StepPayment:
			accepted = wz.SetPaymentField(req.Field, req.Value)
		default:
			return bookingerrors.ErrUnknownStep
		}
		return nil
	})
	if err != nil {
		h.writeSessionError(w, "UpdateField", err)
		return
	}

	h.writeStateAccepted(w, s, accepted)
}

func (h *BookingHandler) SetSameAsTraveler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, err := h.sessions.Get(ps.ByName("id"))
	if err != nil {
		h.writeSessionError(w, "SetSameAsTraveler", err)
		return
	}

	var req sameAsTravelerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadBody(w, "SetSameAsTraveler")
		return
	}

	err = s.With(func(wz *wizard.Wizard) error {
		wz.SetSameAsTraveler(req.Checked)
		return nil
	})
	if err != nil {
		h.writeSessionError(w, "SetSameAsTraveler", err)
		return
	}

	h.writeState(w, s, http.StatusOK)
}

func (h *BookingHandler) Next(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, err := h.sessions.Get(ps.ByName("id"))
	if err != nil {
		h.writeSessionError(w, "Next", err)
		return
	}

	var stepErrors validator.ErrorMap
	advanced := false
	err = s.With(func(wz *wizard.Wizard) error {
		advanced = wz.Next()
		stepErrors = wz.Errors()
		return nil
	})
	if err != nil {
		h.writeSessionError(w, "Next", err)
		return
	}

	if !advanced {
		details := make(map[string]any, len(stepErrors))
		for field, message := range stepErrors {
			details[field] = message
		}
		h.writeError(w, "Next", apperrors.Validation("Please correct the highlighted fields", details))
		return
	}

	h.writeState(w, s, http.StatusOK)
}

func (h *BookingHandler) EditStep(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, err := h.sessions.Get(ps.ByName("id"))
	if err != nil {
		h.writeSessionError(w, "EditStep", err)
		return
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadBody(w, "EditStep")
		return
	}

	err = s.With(func(wz *wizard.Wizard) error {
		if !wz.Edit(wizard.Step(req.Step)) {
			return bookingerrors.ErrUnknownStep
		}
		return nil
	})
	if err != nil {
		h.writeSessionError(w, "EditStep", err)
		return
	}

	h.writeState(w, s, http.StatusOK)
}

func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, err := h.sessions.Get(ps.ByName("id"))
	if err != nil {
		h.writeSessionError(w, "Submit", err)
		return
	}

	var record *model.BookingRecord
	err = s.With(func(wz *wizard.Wizard) error {
		var completeErr error
		record, completeErr = h.service.Complete(r.Context(), wz, s.Tour)
		return completeErr
	})
	if err != nil {
		h.writeError(w, "Submit", err)
		return
	}

	s.Defer(disposeAfter, func() {
		h.sessions.Close(s.ID)
	})

	if writeErr := httputil.WriteCreated(w, record); writeErr != nil {
		h.log.Error("failed to write created response", "handler", "Submit", "operation", "WriteCreated", "error", writeErr)
	}
}

func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	record, err := h.service.GetByReference(r.Context(), ps.ByName("ref"))
	if err != nil {
		h.writeError(w, "GetByReference", err)
		return
	}

	if writeErr := httputil.WriteSuccess(w, record); writeErr != nil {
		h.log.Error("failed to write success response", "handler", "GetByReference", "operation", "WriteSuccess", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/booking-sessions", h.CreateSession)
	router.GET("/api/v1/booking-sessions/:id", h.GetSession)
	router.PATCH("/api/v1/booking-sessions/:id/fields", h.UpdateField)
	router.PUT("/api/v1/booking-sessions/:id/same-as-traveler", h.SetSameAsTraveler)
	router.POST("/api/v1/booking-sessions/:id/next", h.Next)
	router.POST("/api/v1/booking-sessions/:id/edit", h.EditStep)
	router.POST("/api/v1/booking-sessions/:id/submit", h.Submit)
	router.GET("/api/v1/bookings/ref/:ref", h.GetByReference)
}

func (h *BookingHandler) writeState(w http.ResponseWriter, s *session.Session, status int) {
	state, err := h.snapshot(s)
	if err != nil {
		h.writeSessionError(w, "writeState", err)
		return
	}

	if writeErr := httputil.WriteJSON(w, status, httputil.SuccessResponse{Data: state}); writeErr != nil {
		h.log.Error("failed to write state response", "handler", "writeState", "operation", "WriteJSON", "error", writeErr)
	}
}

func (h *BookingHandler) writeStateAccepted(w http.ResponseWriter, s *session.Session, accepted bool) {
	state, err := h.snapshot(s)
	if err != nil {
		h.writeSessionError(w, "writeStateAccepted", err)
		return
	}

	payload := struct {
		Accepted bool `json:"accepted"`
		sessionState
	}{Accepted: accepted, sessionState: state}

	if writeErr := httputil.WriteJSON(w, http.StatusOK, httputil.SuccessResponse{Data: payload}); writeErr != nil {
		h.log.Error("failed to write state response", "handler", "writeStateAccepted", "operation", "WriteJSON", "error", writeErr)
	}
}

func (h *BookingHandler) snapshot(s *session.Session) (sessionState, error) {
	var state sessionState
	err := s.With(func(wz *wizard.Wizard) error {
		state = sessionState{
			ID:          s.ID,
			Step:        string(wz.Step()),
			Tour:        s.Tour,
			TotalAmount: s.Tour.TotalAmount(),
			Contact:     wz.Contact(),
			Activity:    wz.Activity(),
			Payment:     wz.Payment(),
			Errors:      wz.Errors(),
		}
		return nil
	})
	return state, err
}

func (h *BookingHandler) writeSessionError(w http.ResponseWriter, handlerName string, err error) {
	switch {
	case errors.Is(err, bookingerrors.ErrSessionNotFound):
		err = apperrors.NotFound("Booking session")
	case errors.Is(err, bookingerrors.ErrSessionClosed):
		err = apperrors.Conflict("Booking session is already closed")
	case errors.Is(err, bookingerrors.ErrUnknownStep):
		err = apperrors.InvalidInput("Unknown or unreachable wizard step")
	}
	h.writeError(w, handlerName, err)
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) writeBadBody(w http.ResponseWriter, handlerName string) {
	if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
	}); writeErr != nil {
		h.log.Error("failed to write JSON response", "handler", handlerName, "operation", "WriteJSON", "error", writeErr)
	}
}
