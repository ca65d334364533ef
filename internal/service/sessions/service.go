package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
	magentoClient "github.com/m04kA/SMC-TourBooking/internal/integrations/magento"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
)

// journalTimeout таймаут записи заказа в журнал и публикации события
const journalTimeout = 5 * time.Second

type session struct {
	orchestrator *booking_flow.Orchestrator
	product      *domain.Product
	visitorID    string
	lastSeen     time.Time
}

// Service реестр сессий бронирования: одна сессия на посетителя и продукт
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session

	catalog   Catalog
	gateway   CartGateway
	cartIDs   CartIDBackend
	resolvers OptionResolvers
	journal   OrderJournal   // может быть nil
	publisher EventPublisher // может быть nil
	settings  Settings
	metrics   MetricsRecorder
	logger    Logger

	countries countryCache

	now   func() time.Time
	newID func() string
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	catalog Catalog,
	gateway CartGateway,
	cartIDs CartIDBackend,
	resolvers OptionResolvers,
	journal OrderJournal,
	publisher EventPublisher,
	settings Settings,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	if settings.SessionTTL <= 0 {
		settings.SessionTTL = DefaultSessionTTL
	}
	return &Service{
		sessions:  make(map[string]*session),
		catalog:   catalog,
		gateway:   gateway,
		cartIDs:   cartIDs,
		resolvers: resolvers,
		journal:   journal,
		publisher: publisher,
		settings:  settings,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Start загружает продукт и ленту доступности, создает корзину и регистрирует сессию
func (s *Service) Start(ctx context.Context, req StartRequest) (booking_flow.Snapshot, error) {
	urlKey := strings.TrimSpace(req.URLKey)
	if urlKey == "" {
		return booking_flow.Snapshot{}, fmt.Errorf("%w: urlKey is required", ErrInvalidInput)
	}
	s.logger.Info("Start: starting booking for url_key=%s", urlKey)

	product, err := s.catalog.GetProductByURLKey(ctx, urlKey)
	if err != nil {
		if errors.Is(err, magentoClient.ErrNotFound) {
			s.logger.Warn("Start: product url_key=%s not found", urlKey)
			return booking_flow.Snapshot{}, fmt.Errorf("%w: url_key=%s", ErrProductNotFound, urlKey)
		}
		s.logger.Error("Start: failed to load product url_key=%s: %v", urlKey, err)
		return booking_flow.Snapshot{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	// Недоступная лента не блокирует бронирование
	feed, err := s.catalog.GetBookingAvailability(ctx, product.SKU)
	if err != nil {
		s.logger.Warn("Start: availability feed for sku=%s unavailable, using defaults: %v", product.SKU, err)
		feed = nil
	}

	id := s.newID()
	visitorID := strings.TrimSpace(req.VisitorID)
	if visitorID == "" {
		visitorID = id
	}

	// Без списка стран проверяется только формат кода
	flow := s.settings.Flow
	if countries, err := s.Countries(ctx); err != nil {
		s.logger.Warn("Start: country list unavailable, checking code format only: %v", err)
	} else {
		flow.Countries = countries
	}

	orch := booking_flow.NewOrchestrator(
		id,
		product,
		feed,
		s.gateway,
		&visitorCartStore{backend: s.cartIDs, visitorID: visitorID},
		s.resolvers.Availability,
		s.resolvers.Options,
		flow,
		s.metrics,
		s.logger,
	)
	if err := orch.Start(ctx); err != nil {
		return orch.Snapshot(), err
	}

	s.mu.Lock()
	s.sessions[id] = &session{orchestrator: orch, product: product, visitorID: visitorID, lastSeen: s.now()}
	count := len(s.sessions)
	s.mu.Unlock()
	s.metrics.SetActiveSessions(count)

	s.logger.Info("Start: session=%s visitor=%s sku=%s registered", id, visitorID, product.SKU)
	return orch.Snapshot(), nil
}

// Snapshot возвращает состояние сессии
func (s *Service) Snapshot(id string) (booking_flow.Snapshot, error) {
	return s.run(id, func(*booking_flow.Orchestrator) error { return nil })
}

// SetOption сохраняет ответ на опцию
func (s *Service) SetOption(id string, optionID int64, value string) (booking_flow.Snapshot, error) {
	return s.run(id, func(o *booking_flow.Orchestrator) error {
		return o.SetOption(optionID, value)
	})
}

// SetQuantity задает количество мест
func (s *Service) SetQuantity(id string, quantity int) (booking_flow.Snapshot, error) {
	return s.run(id, func(o *booking_flow.Orchestrator) error {
		return o.SetQuantity(quantity)
	})
}

// ConfirmSelection product -> checkout
func (s *Service) ConfirmSelection(ctx context.Context, id string) (booking_flow.Snapshot, error) {
	return s.run(id, func(o *booking_flow.Orchestrator) error {
		return o.ConfirmSelection(ctx)
	})
}

// RequestEnquiry адрес страницы запроса для продуктов "только по запросу"
func (s *Service) RequestEnquiry(id string) (string, booking_flow.Snapshot, error) {
	var redirect string
	snap, err := s.run(id, func(o *booking_flow.Orchestrator) error {
		var err error
		redirect, err = o.RequestEnquiry()
		return err
	})
	return redirect, snap, err
}

// SubmitCheckout checkout -> payment
func (s *Service) SubmitCheckout(ctx context.Context, id string, req booking_flow.CheckoutRequest) (booking_flow.Snapshot, error) {
	return s.run(id, func(o *booking_flow.Orchestrator) error {
		return o.SubmitCheckout(ctx, req)
	})
}

// LoadPaymentMethods загружает способы оплаты
func (s *Service) LoadPaymentMethods(ctx context.Context, id string) (booking_flow.Snapshot, error) {
	return s.run(id, func(o *booking_flow.Orchestrator) error {
		_, err := o.LoadPaymentMethods(ctx)
		return err
	})
}

// SelectPaymentMethod payment -> review
func (s *Service) SelectPaymentMethod(ctx context.Context, id, code string) (booking_flow.Snapshot, error) {
	return s.run(id, func(o *booking_flow.Orchestrator) error {
		return o.SelectPaymentMethod(ctx, code)
	})
}

// Back возвращает на предыдущий шаг
func (s *Service) Back(id string) (booking_flow.Snapshot, error) {
	return s.run(id, func(o *booking_flow.Orchestrator) error {
		return o.Back()
	})
}

// PlaceOrder review -> success; после успеха заказ записывается в журнал и публикуется,
// а сессия удаляется из реестра. Ошибки журнала и публикации не отменяют успешное размещение.
func (s *Service) PlaceOrder(ctx context.Context, id string) (booking_flow.Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return booking_flow.Snapshot{}, err
	}

	order, err := sess.orchestrator.PlaceOrder(ctx)
	snap := sess.orchestrator.Snapshot()
	if err != nil {
		return snap, err
	}

	s.metrics.OrderPlaced()
	record := s.buildRecord(sess, snap, order)
	s.release(id)

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()
	s.recordOrder(recordCtx, record)

	return snap, nil
}

// Count число активных сессий
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictIdle удаляет сессии, неактивные дольше TTL
func (s *Service) EvictIdle() int {
	deadline := s.now().Add(-s.settings.SessionTTL)

	s.mu.Lock()
	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(deadline) {
			delete(s.sessions, id)
			evicted++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	if evicted > 0 {
		s.logger.Info("EvictIdle: evicted %d idle session(s), %d active", evicted, count)
	}
	s.metrics.SetActiveSessions(count)
	return evicted
}

// RunEviction периодически удаляет неактивные сессии до закрытия stopCh
func (s *Service) RunEviction(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.EvictIdle()
		}
	}
}

// release удаляет сессию завершенного бронирования
func (s *Service) release(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(count)
	s.logger.Info("PlaceOrder: session=%s released, %d active", id, count)
}

func (s *Service) run(id string, fn func(o *booking_flow.Orchestrator) error) (booking_flow.Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return booking_flow.Snapshot{}, err
	}
	err = fn(sess.orchestrator)
	return sess.orchestrator.Snapshot(), err
}

func (s *Service) lookup(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
	}
	sess.lastSeen = s.now()
	return sess, nil
}

func (s *Service) buildRecord(sess *session, snap booking_flow.Snapshot, order domain.PlacedOrder) *domain.OrderRecord {
	record := &domain.OrderRecord{
		OrderNumber: order.OrderNumber,
		SessionID:   snap.SessionID,
		SKU:         sess.product.SKU,
		ProductName: sess.product.Name,
		Quantity:    snap.Quantity,
		PlacedAt:    s.now(),
	}
	if order.PaymentLink != "" {
		link := order.PaymentLink
		record.PaymentLink = &link
	}
	if opt, ok := sess.product.AvailabilityOption(s.settings.Flow.DateOptionTitle); ok {
		if day, answered := snap.Selected.Answer(opt.ID); answered {
			record.TourDate = &day
		}
	}
	if snap.Totals != nil {
		record.GrandTotal = snap.Totals.GrandTotal.Value
		record.Currency = snap.Totals.GrandTotal.Currency
		record.Email = snap.Totals.Email
	}
	if record.Email == "" && snap.Contact != nil {
		record.Email = snap.Contact.Email
	}
	return record
}

func (s *Service) recordOrder(ctx context.Context, record *domain.OrderRecord) {
	if s.journal != nil {
		if _, err := s.journal.Create(ctx, record); err != nil {
			s.logger.Error("PlaceOrder: failed to journal order %s: %v", record.OrderNumber, err)
		} else {
			s.logger.Info("PlaceOrder: order %s journaled with id=%d", record.OrderNumber, record.ID)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, record); err != nil {
			s.logger.Error("PlaceOrder: failed to publish order %s: %v", record.OrderNumber, err)
		}
	}
}
