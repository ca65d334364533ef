package start_session

import (
	"context"

	"github.com/m04kA/SMC-TourBooking/internal/service/sessions"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
)

type SessionService interface {
	Start(ctx context.Context, req sessions.StartRequest) (booking_flow.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
