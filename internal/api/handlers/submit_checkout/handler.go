package submit_checkout

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

// Handle POST /api/v1/bookings/sessions/{sessionId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.SessionID(r)

	var req SubmitCheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/%s/checkout - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.SubmitCheckout(r.Context(), id, req.ToCheckoutRequest())
	if err != nil {
		status := handlers.RespondFlowError(w, err, &snap)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /sessions/%s/checkout - Failed to save contact: status=%d, error=%v", id, status, err)
		} else {
			h.logger.Warn("POST /sessions/%s/checkout - Rejected: status=%d, error=%v", id, status, err)
		}
		return
	}

	h.logger.Info("POST /sessions/%s/checkout - Contact accepted, step=%s", id, snap.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
