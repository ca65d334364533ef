package load_payment_methods

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

// Handle GET /api/v1/bookings/sessions/{sessionId}/payment-methods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.SessionID(r)

	snap, err := h.service.LoadPaymentMethods(r.Context(), id)
	if err != nil {
		status := handlers.RespondFlowError(w, err, &snap)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /sessions/%s/payment-methods - Failed to load methods: status=%d, error=%v", id, status, err)
		} else {
			h.logger.Warn("GET /sessions/%s/payment-methods - Rejected: status=%d, error=%v", id, status, err)
		}
		return
	}

	h.logger.Info("GET /sessions/%s/payment-methods - %d method(s) loaded", id, len(snap.PaymentMethods))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
