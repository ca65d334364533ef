package request_enquiry

import (
	"net/http"

	"github.com/m04kA/SMC-TourBooking/internal/api/handlers"
)

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

// Handle POST /api/v1/bookings/sessions/{sessionId}/enquiry
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.SessionID(r)

	redirect, snap, err := h.service.RequestEnquiry(id)
	if err != nil {
		status := handlers.RespondFlowError(w, err, &snap)
		h.logger.Warn("POST /sessions/%s/enquiry - Rejected: status=%d, error=%v", id, status, err)
		return
	}

	h.logger.Info("POST /sessions/%s/enquiry - Redirecting to %s", id, redirect)
	handlers.RespondJSON(w, http.StatusOK, EnquiryResponse{RedirectURL: redirect})
}
