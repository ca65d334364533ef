package confirm_selection

import (
	"context"

	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
)

type SessionService interface {
	ConfirmSelection(ctx context.Context, id string) (booking_flow.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
