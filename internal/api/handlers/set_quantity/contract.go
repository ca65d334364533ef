package set_quantity

import "github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"

type SessionService interface {
	SetQuantity(id string, quantity int) (booking_flow.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
