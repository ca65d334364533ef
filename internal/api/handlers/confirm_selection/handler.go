package confirm_selection

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

// Handle POST /api/v1/bookings/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.SessionID(r)

	snap, err := h.service.ConfirmSelection(r.Context(), id)
	if err != nil {
		status := handlers.RespondFlowError(w, err, &snap)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /sessions/%s/confirm - Failed to add item: status=%d, error=%v", id, status, err)
		} else {
			h.logger.Warn("POST /sessions/%s/confirm - Rejected: status=%d, error=%v", id, status, err)
		}
		return
	}

	h.logger.Info("POST /sessions/%s/confirm - Item added, step=%s", id, snap.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
