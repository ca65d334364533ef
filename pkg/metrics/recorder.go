package metrics

import "time"

const (
	statusOK    = "ok"
	statusError = "error"
)

// Recorder привязывает метрики к имени сервиса
// Нулевой Recorder (метрики выключены) ничего не записывает
type Recorder struct {
	m       *Metrics
	service string
}

// NewRecorder создает Recorder; m может быть nil
func NewRecorder(m *Metrics, serviceName string) *Recorder {
	return &Recorder{m: m, service: serviceName}
}

// ObserveGatewayCall записывает длительность и результат вызова корзины
func (r *Recorder) ObserveGatewayCall(operation string, started time.Time, err error) {
	if r == nil || r.m == nil {
		return
	}
	status := statusOK
	if err != nil {
		status = statusError
	}
	r.m.GatewayCallsTotal.WithLabelValues(r.service, operation, status).Inc()
	r.m.GatewayCallDuration.WithLabelValues(r.service, operation).Observe(time.Since(started).Seconds())
}

// Transition считает переход между шагами бронирования
func (r *Recorder) Transition(transition, outcome string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.BookingTransitionsTotal.WithLabelValues(r.service, transition, outcome).Inc()
}

// SetActiveSessions выставляет число сессий в памяти
func (r *Recorder) SetActiveSessions(n int) {
	if r == nil || r.m == nil {
		return
	}
	r.m.ActiveSessions.WithLabelValues(r.service).Set(float64(n))
}

// OrderPlaced считает размещенный заказ
func (r *Recorder) OrderPlaced() {
	if r == nil || r.m == nil {
		return
	}
	r.m.OrdersPlacedTotal.WithLabelValues(r.service).Inc()
}
