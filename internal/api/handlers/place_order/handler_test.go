package place_order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

func (m *mockService) PlaceOrder(ctx context.Context, id string) (booking_flow.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(booking_flow.Snapshot), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func setupRouter(svc SessionService) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/sessions/{sessionId}/order",
		NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)
	return r
}

func TestHandler_PlaceOrder(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("PlaceOrder", mock.Anything, "s-1").Return(booking_flow.Snapshot{
		SessionID: "s-1",
		Step:      domain.StepSuccess,
		Order:     &domain.PlacedOrder{OrderNumber: "000000042", PaymentLink: "https://pay.example.com/42"},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/sessions/s-1/order", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp handlers.SnapshotResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "success", resp.Step)
	require.NotNil(t, resp.Order)
	assert.Equal(t, "000000042", resp.Order.OrderNumber)
	assert.False(t, resp.HasCart)
}

func TestHandler_PlaceOrder_Errors(t *testing.T) {
	gatewayErr := &booking_flow.GatewayError{
		Operation: "placeOrder",
		Message:   "Could not place your order: payment declined. Please try again.",
		Err:       errors.New("backend"),
	}

	tests := []struct {
		name           string
		snap           booking_flow.Snapshot
		mockErr        error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "backend text surfaced",
			snap:           booking_flow.Snapshot{SessionID: "s-1", Step: domain.StepReview, Error: gatewayErr.Message},
			mockErr:        gatewayErr,
			expectedStatus: http.StatusBadGateway,
			expectedError:  gatewayErr.Message,
		},
		{
			name:           "stale cart",
			snap:           booking_flow.Snapshot{SessionID: "s-1", Step: domain.StepReview, Terminated: true, Error: "Your booking session has expired"},
			mockErr:        booking_flow.ErrStaleCart,
			expectedStatus: http.StatusGone,
			expectedError:  "Your booking session has expired",
		},
		{
			name:           "not at review step",
			snap:           booking_flow.Snapshot{SessionID: "s-1", Step: domain.StepPayment},
			mockErr:        fmt.Errorf("%w: payment", booking_flow.ErrInvalidTransition),
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			router := setupRouter(svc)
			svc.On("PlaceOrder", mock.Anything, "s-1").Return(tt.snap, tt.mockErr)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/sessions/s-1/order", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
