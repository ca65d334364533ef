package go_back

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

// Handle POST /api/v1/bookings/sessions/{sessionId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.SessionID(r)

	snap, err := h.service.Back(id)
	if err != nil {
		status := handlers.RespondFlowError(w, err, &snap)
		h.logger.Warn("POST /sessions/%s/back - Rejected: status=%d, error=%v", id, status, err)
		return
	}

	h.logger.Info("POST /sessions/%s/back - Returned to step=%s", id, snap.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
