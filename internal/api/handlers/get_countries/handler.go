package get_countries

import (
	"net/http"

	"github.com/m04kA/SMC-TourBooking/internal/api/handlers"
)

const msgCountriesUnavailable = "country list is unavailable"

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

// Handle GET /api/v1/bookings/countries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.Countries(r.Context())
	if err != nil {
		h.logger.Error("GET /countries - Failed to load countries: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgCountriesUnavailable)
		return
	}

	resp := CountriesResponse{Countries: make([]CountryResponse, 0, len(countries))}
	for _, c := range countries {
		resp.Countries = append(resp.Countries, CountryResponse{Code: c.Code, Name: c.Name})
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
