package load_payment_methods

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TourBooking/internal/domain"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) LoadPaymentMethods(ctx context.Context, id string) (booking_flow.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(booking_flow.Snapshot), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func setupRouter(svc SessionService) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/sessions/{sessionId}/payment-methods",
		NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_LoadPaymentMethods(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("LoadPaymentMethods", mock.Anything, "s-1").Return(booking_flow.Snapshot{
		SessionID: "s-1",
		Step:      domain.StepPayment,
		PaymentMethods: []domain.PaymentMethod{
			{Code: "checkmo", Title: "Check / Money order"},
			{Code: "banktransfer", Title: "Bank Transfer"},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/sessions/s-1/payment-methods", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.SnapshotResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []handlers.PaymentMethodResponse{
		{Code: "checkmo", Title: "Check / Money order"},
		{Code: "banktransfer", Title: "Bank Transfer"},
	}, resp.PaymentMethods)
	svc.AssertExpectations(t)
}

func TestHandler_LoadPaymentMethods_GatewayError(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	gatewayErr := &booking_flow.GatewayError{
		Operation: "listPaymentMethods",
		Message:   "Could not load payment methods. Please try again.",
		Err:       errors.New("timeout"),
	}
	svc.On("LoadPaymentMethods", mock.Anything, "s-1").
		Return(booking_flow.Snapshot{SessionID: "s-1", Step: domain.StepPayment, Error: gatewayErr.Message}, gatewayErr)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/sessions/s-1/payment-methods", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gatewayErr.Message, resp.Error)
	require.NotNil(t, resp.Session)
	assert.Equal(t, "payment", resp.Session.Step)
	svc.AssertExpectations(t)
}
