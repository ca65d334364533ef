package select_payment_method

import (
	"net/http"

	"github.com/m04kA/SMC-TourBooking/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/sessions/{sessionId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.SessionID(r)

	var req SelectPaymentMethodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/%s/payment - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.SelectPaymentMethod(r.Context(), id, req.Code)
	if err != nil {
		status := handlers.RespondFlowError(w, err, &snap)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /sessions/%s/payment - Failed to set payment method: code=%s, status=%d, error=%v", id, req.Code, status, err)
		} else {
			h.logger.Warn("POST /sessions/%s/payment - Rejected: code=%s, status=%d, error=%v", id, req.Code, status, err)
		}
		return
	}

	h.logger.Info("POST /sessions/%s/payment - Payment method %s set, step=%s", id, req.Code, snap.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
