package set_quantity

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

// Handle PUT /api/v1/bookings/sessions/{sessionId}/quantity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.SessionID(r)

	var req SetQuantityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/%s/quantity - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.SetQuantity(id, req.Quantity)
	if err != nil {
		status := handlers.RespondFlowError(w, err, &snap)
		h.logger.Warn("PUT /sessions/%s/quantity - Rejected: quantity=%d, status=%d, error=%v", id, req.Quantity, status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
