package set_option

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourBooking/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidOptionID    = "invalid option id"
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

// Handle PUT /api/v1/bookings/sessions/{sessionId}/options/{optionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.SessionID(r)

	optionID, err := strconv.ParseInt(mux.Vars(r)["optionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /sessions/%s/options - Invalid option id: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidOptionID)
		return
	}

	var req SetOptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/%s/options/%d - Invalid request body: %v", id, optionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.SetOption(id, optionID, req.Value)
	if err != nil {
		status := handlers.RespondFlowError(w, err, &snap)
		h.logger.Warn("PUT /sessions/%s/options/%d - Rejected: status=%d, error=%v", id, optionID, status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
