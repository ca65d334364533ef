package get_session

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

// Handle GET /api/v1/bookings/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.SessionID(r)

	snap, err := h.service.Snapshot(id)
	if err != nil {
		h.logger.Warn("GET /sessions/%s - Session not found: %v", id, err)
		handlers.RespondFlowError(w, err, nil)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
