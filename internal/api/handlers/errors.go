package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBooking/internal/service/sessions"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
)

const (
	msgSessionNotFound    = "booking session not found or expired"
	msgProductNotFound    = "product not found"
	msgInvalidInput       = "invalid request"
	msgCatalogUnavailable = "the tour catalog is temporarily unavailable"
	msgBusy               = "another operation is in progress, please wait"
	msgInvalidTransition  = "this action is not available at the current step"
	msgSessionComplete    = "the order has already been placed"
	msgEnquiryOnly        = "this tour is available on enquiry only"
	msgNotEnquiryOnly     = "this tour can be booked directly"
	msgAlreadyStarted     = "the booking session has already been started"
	msgStaleCart          = "your booking session has expired, please start again"
	msgGateway            = "the store could not process the request, please try again"
)

// RespondFlowError отправляет ошибку сервиса сессий или сценария бронирования.
// snap передается, если сессия существует; возвращает отправленный статус.
func RespondFlowError(w http.ResponseWriter, err error, snap *booking_flow.Snapshot) int {
	status, message := classify(err)

	body := ErrorResponse{Error: message}
	var verr *booking_flow.ValidationError
	if errors.As(err, &verr) {
		body.Error = verr.Message
		body.Fields = verr.Fields
		body.Missing = verr.Missing
	} else if snap != nil && snap.Error != "" && (status == http.StatusBadGateway || status == http.StatusGone) {
		body.Error = snap.Error
	}
	if snap != nil && snap.SessionID != "" {
		body.Session = FromSnapshot(*snap)
	}

	RespondJSON(w, status, body)
	return status
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, sessions.ErrSessionNotFound):
		return http.StatusNotFound, msgSessionNotFound
	case errors.Is(err, sessions.ErrProductNotFound):
		return http.StatusNotFound, msgProductNotFound
	case errors.Is(err, sessions.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidInput
	case errors.Is(err, sessions.ErrCatalogUnavailable):
		return http.StatusBadGateway, msgCatalogUnavailable
	case errors.Is(err, booking_flow.ErrValidation):
		return http.StatusBadRequest, msgInvalidInput
	case errors.Is(err, booking_flow.ErrBusy):
		return http.StatusConflict, msgBusy
	case errors.Is(err, booking_flow.ErrInvalidTransition):
		return http.StatusConflict, msgInvalidTransition
	case errors.Is(err, booking_flow.ErrSessionComplete):
		return http.StatusConflict, msgSessionComplete
	case errors.Is(err, booking_flow.ErrEnquiryOnly):
		return http.StatusConflict, msgEnquiryOnly
	case errors.Is(err, booking_flow.ErrNotEnquiryOnly):
		return http.StatusConflict, msgNotEnquiryOnly
	case errors.Is(err, booking_flow.ErrAlreadyStarted):
		return http.StatusConflict, msgAlreadyStarted
	case errors.Is(err, booking_flow.ErrStaleCart):
		return http.StatusGone, msgStaleCart
	case errors.Is(err, booking_flow.ErrGateway):
		return http.StatusBadGateway, msgGateway
	}
	return http.StatusInternalServerError, msgInternalError
}
