package start_session

import (
	"net/http"

	"github.com/m04kA/SMC-TourBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TourBooking/internal/service/sessions"
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

// Handle POST /api/v1/bookings/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Заголовок посетителя имеет приоритет над телом
	visitorID := r.Header.Get(handlers.VisitorHeader)
	if visitorID == "" {
		visitorID = req.VisitorID
	}

	snap, err := h.service.Start(r.Context(), sessions.StartRequest{URLKey: req.URLKey, VisitorID: visitorID})
	if err != nil {
		// Сессия с ошибкой старта не регистрируется
		status := handlers.RespondFlowError(w, err, nil)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /sessions - Failed to start session: url_key=%s, error=%v", req.URLKey, err)
		} else {
			h.logger.Warn("POST /sessions - Rejected: url_key=%s, status=%d, error=%v", req.URLKey, status, err)
		}
		return
	}

	w.Header().Set(handlers.SessionHeader, snap.SessionID)
	h.logger.Info("POST /sessions - Session started: session=%s, url_key=%s", snap.SessionID, req.URLKey)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSnapshot(snap))
}
