package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
)

// Catalog интерфейс чтения каталога магазина
type Catalog interface {
	GetProductByURLKey(ctx context.Context, urlKey string) (*domain.Product, error)
	GetBookingAvailability(ctx context.Context, sku string) (*domain.AvailabilityFeed, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// CartGateway интерфейс удаленной корзины
type CartGateway = booking_flow.CartGateway

// CartIDBackend хранилище идентификаторов корзин по посетителям
type CartIDBackend interface {
	Load(ctx context.Context, visitorID string) (string, error)
	Save(ctx context.Context, visitorID, cartID string) error
	Clear(ctx context.Context, visitorID string) error
}

// OrderJournal интерфейс журнала размещенных заказов
type OrderJournal interface {
	Create(ctx context.Context, order *domain.OrderRecord) (*domain.OrderRecord, error)
}

// EventPublisher интерфейс публикации событий о заказах
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *domain.OrderRecord) error
}

// MetricsRecorder интерфейс записи метрик
type MetricsRecorder interface {
	ObserveGatewayCall(operation string, started time.Time, err error)
	Transition(transition, outcome string)
	SetActiveSessions(n int)
	OrderPlaced()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
