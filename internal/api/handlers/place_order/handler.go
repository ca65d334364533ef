package place_order

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

// Handle POST /api/v1/bookings/sessions/{sessionId}/order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.SessionID(r)

	snap, err := h.service.PlaceOrder(r.Context(), id)
	if err != nil {
		status := handlers.RespondFlowError(w, err, &snap)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /sessions/%s/order - Failed to place order: status=%d, error=%v", id, status, err)
		} else {
			h.logger.Warn("POST /sessions/%s/order - Rejected: status=%d, error=%v", id, status, err)
		}
		return
	}

	orderNumber := ""
	if snap.Order != nil {
		orderNumber = snap.Order.OrderNumber
	}
	h.logger.Info("POST /sessions/%s/order - Order placed: order_number=%s", id, orderNumber)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSnapshot(snap))
}
