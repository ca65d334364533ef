package sessions

import (
	"time"

	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
)

// DefaultSessionTTL время жизни неактивной сессии
const DefaultSessionTTL = time.Hour

// Settings параметры сервиса сессий
type Settings struct {
	Flow       booking_flow.Settings
	SessionTTL time.Duration
}

// StartRequest запрос на начало бронирования
type StartRequest struct {
	URLKey    string
	VisitorID string // посетитель, которому принадлежит сохраненная корзина; по умолчанию id сессии
}

// OptionResolvers резолверы, общие для всех сессий
type OptionResolvers struct {
	Availability booking_flow.AvailabilityResolver
	Options      booking_flow.OptionResolver
}
