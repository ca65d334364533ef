package get_countries

import (
	"context"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

type SessionService interface {
	Countries(ctx context.Context) ([]domain.Country, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
