package select_payment_method

import (
	"context"

	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
)

type SessionService interface {
	SelectPaymentMethod(ctx context.Context, id, code string) (booking_flow.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
