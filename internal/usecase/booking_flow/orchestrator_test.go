package booking_flow

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/resolve_availability"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/resolve_options"
)

const (
	optTourDate  int64 = 1
	optCruise    int64 = 2
	optArrival   int64 = 3
	optDeparture int64 = 4

	valueYes int64 = 21
	valueNo  int64 = 22

	testCartID = "cart-abc"
	tourDay    = "2024-07-01"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateCart(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) AddItem(ctx context.Context, cartID string, item domain.CartItem) (domain.AddedItem, error) {
	args := m.Called(ctx, cartID, item)
	return args.Get(0).(domain.AddedItem), args.Error(1)
}

func (m *mockGateway) RemoveItem(ctx context.Context, cartID, itemUID string) error {
	args := m.Called(ctx, cartID, itemUID)
	return args.Error(0)
}

func (m *mockGateway) SetGuestEmail(ctx context.Context, cartID, email string) (string, error) {
	args := m.Called(ctx, cartID, email)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) SetBillingAddress(ctx context.Context, cartID string, address domain.BillingAddress) (domain.BillingAddress, error) {
	args := m.Called(ctx, cartID, address)
	return args.Get(0).(domain.BillingAddress), args.Error(1)
}

func (m *mockGateway) ListPaymentMethods(ctx context.Context, cartID string) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, cartID)
	methods, _ := args.Get(0).([]domain.PaymentMethod)
	return methods, args.Error(1)
}

func (m *mockGateway) SetPaymentMethod(ctx context.Context, cartID, code string) (domain.PaymentMethod, error) {
	args := m.Called(ctx, cartID, code)
	return args.Get(0).(domain.PaymentMethod), args.Error(1)
}

func (m *mockGateway) GetTotals(ctx context.Context, cartID string) (domain.CartTotals, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(domain.CartTotals), args.Error(1)
}

func (m *mockGateway) PlaceOrder(ctx context.Context, cartID string) (domain.PlacedOrder, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(domain.PlacedOrder), args.Error(1)
}

type memoryStore struct {
	mu      sync.Mutex
	cartID  string
	cleared int
}

func (s *memoryStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartID, nil
}

func (s *memoryStore) Save(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartID = cartID
	return nil
}

func (s *memoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartID = ""
	s.cleared++
	return nil
}

func (s *memoryStore) get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartID
}

type nopMetrics struct{}

func (nopMetrics) ObserveGatewayCall(string, time.Time, error) {}
func (nopMetrics) Transition(string, string)                   {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type backendErr struct{ msg string }

func (e backendErr) Error() string       { return "magento: " + e.msg }
func (e backendErr) UserMessage() string { return e.msg }

func tourProduct() *domain.Product {
	return &domain.Product{
		SKU:     "island-tour",
		Name:    "Island Tour",
		Price:   domain.Money{Value: 120, Currency: "USD"},
		InStock: true,
		Options: []domain.ProductOption{
			{ID: optTourDate, Title: domain.TourDateOptionTitle, Kind: domain.OptionKindDate, Required: true, SortOrder: 1},
			{
				ID: optCruise, Title: domain.CruiseShipOptionTitle, Kind: domain.OptionKindRadio, Required: true, SortOrder: 2,
				Values: []domain.OptionValue{
					{ID: valueYes, Title: domain.CruiseShipYesValueTitle},
					{ID: valueNo, Title: "NO"},
				},
			},
			{ID: optArrival, Title: domain.ShipArrivalOptionTitle, Kind: domain.OptionKindField, Required: true, SortOrder: 3},
			{ID: optDeparture, Title: domain.ShipDepartureOptionTitle, Kind: domain.OptionKindField, Required: true, SortOrder: 4},
		},
	}
}

func tourFeed() *domain.AvailabilityFeed {
	return &domain.AvailabilityFeed{
		SKU:     "island-tour",
		Success: true,
		Entries: []domain.DateCapacity{
			{Date: tourDay, Committed: 10, QtyTotal: 10, Allowed: 12, Remaining: 2},
		},
	}
}

func validContact() CheckoutRequest {
	return CheckoutRequest{
		Email: "guest@example.com",
		Address: domain.BillingAddress{
			FirstName: "Ann",
			LastName:  "Lee",
			Street:    []string{"1 Harbour Rd"},
			City:      "Nassau",
			Postcode:  "00000",
			Telephone: "+1 242 555 0100",
		},
	}
}

func normalizedAddress() domain.BillingAddress {
	addr := validContact().Address
	addr.CountryCode = domain.DefaultCountryCode
	return addr
}

type fixture struct {
	o       *Orchestrator
	gateway *mockGateway
	store   *memoryStore
}

func newFixture(t *testing.T, product *domain.Product) *fixture {
	t.Helper()
	return newFixtureWithSettings(t, product, Settings{ContactPath: "/contact"})
}

func newFixtureWithSettings(t *testing.T, product *domain.Product, settings Settings) *fixture {
	t.Helper()
	gw := &mockGateway{}
	store := &memoryStore{cartID: "stale-from-previous-visit"}
	o := NewOrchestrator(
		"session-1",
		product,
		tourFeed(),
		gw,
		store,
		resolve_availability.NewResolver(domain.DefaultAllowedSeats),
		resolve_options.NewResolver(resolve_options.DefaultRules()),
		settings,
		nopMetrics{},
		nopLogger{},
	)
	t.Cleanup(func() { gw.AssertExpectations(t) })
	return &fixture{o: o, gateway: gw, store: store}
}

func (f *fixture) start(t *testing.T) {
	t.Helper()
	f.gateway.On("CreateCart", mock.Anything).Return(testCartID, nil).Once()
	require.NoError(t, f.o.Start(context.Background()))
}

func (f *fixture) selectNoCruise(t *testing.T, quantity int) {
	t.Helper()
	require.NoError(t, f.o.SetOption(optTourDate, tourDay))
	require.NoError(t, f.o.SetOption(optCruise, "22"))
	require.NoError(t, f.o.SetQuantity(quantity))
}

func expectedItem(quantity int) domain.CartItem {
	return domain.CartItem{
		SKU:      "island-tour",
		Quantity: quantity,
		Options: []domain.CartItemOption{
			{OptionID: optTourDate, ValueDate: "2024-07-01 00:00:00"},
			{OptionID: optCruise, ValueString: "22"},
		},
	}
}

func (f *fixture) toCheckout(t *testing.T) {
	t.Helper()
	f.start(t)
	f.selectNoCruise(t, 2)
	f.gateway.On("AddItem", mock.Anything, testCartID, expectedItem(2)).
		Return(domain.AddedItem{UID: "item-1", GrandTotal: domain.Money{Value: 240, Currency: "USD"}}, nil).Once()
	require.NoError(t, f.o.ConfirmSelection(context.Background()))
}

func (f *fixture) toPayment(t *testing.T) {
	t.Helper()
	f.toCheckout(t)
	f.gateway.On("SetGuestEmail", mock.Anything, testCartID, "guest@example.com").Return("guest@example.com", nil).Once()
	f.gateway.On("SetBillingAddress", mock.Anything, testCartID, normalizedAddress()).Return(normalizedAddress(), nil).Once()
	require.NoError(t, f.o.SubmitCheckout(context.Background(), validContact()))
}

var testMethods = []domain.PaymentMethod{
	{Code: "checkmo", Title: "Check / Money order"},
	{Code: "stripe", Title: "Card"},
}

var testTotals = domain.CartTotals{
	Email:      "guest@example.com",
	GrandTotal: domain.Money{Value: 252, Currency: "USD"},
	Taxes:      []domain.AppliedTax{{Label: "VAT", Amount: domain.Money{Value: 12, Currency: "USD"}}},
}

func (f *fixture) toReview(t *testing.T) {
	t.Helper()
	f.toPayment(t)
	f.gateway.On("ListPaymentMethods", mock.Anything, testCartID).Return(testMethods, nil).Once()
	_, err := f.o.LoadPaymentMethods(context.Background())
	require.NoError(t, err)
	f.gateway.On("SetPaymentMethod", mock.Anything, testCartID, "checkmo").Return(testMethods[0], nil).Once()
	f.gateway.On("GetTotals", mock.Anything, testCartID).Return(testTotals, nil).Once()
	require.NoError(t, f.o.SelectPaymentMethod(context.Background(), "checkmo"))
}

func TestStart_ReplacesStoredCart(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.start(t)

	snap := f.o.Snapshot()
	assert.Equal(t, domain.StepProduct, snap.Step)
	assert.True(t, snap.HasCart)
	assert.Equal(t, testCartID, f.store.get())
	assert.Equal(t, 1, f.store.cleared)

	err := f.o.Start(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestStart_CreateCartFails(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.gateway.On("CreateCart", mock.Anything).Return("", errors.New("timeout")).Once()

	err := f.o.Start(context.Background())
	require.ErrorIs(t, err, ErrGateway)

	snap := f.o.Snapshot()
	assert.False(t, snap.HasCart)
	assert.False(t, snap.Loading)
	assert.Contains(t, snap.Error, msgCreateCartFailed)
}

func TestConfirmSelection_QuantityExceedsRemaining(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.start(t)
	f.selectNoCruise(t, 3)

	err := f.o.ConfirmSelection(context.Background())
	require.ErrorIs(t, err, ErrValidation)

	snap := f.o.Snapshot()
	assert.Equal(t, domain.StepProduct, snap.Step)
	assert.Contains(t, snap.Error, "Only 2 seat(s) available")
	assert.True(t, snap.QuantityExceeded)
	f.gateway.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmSelection_WithinRemainingAddsItem(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toCheckout(t)

	snap := f.o.Snapshot()
	assert.Equal(t, domain.StepCheckout, snap.Step)
	assert.Empty(t, snap.Error)
	require.NotNil(t, snap.ItemGrandTotal)
	assert.Equal(t, 240.0, snap.ItemGrandTotal.Value)
	require.NotNil(t, snap.Availability)
	assert.True(t, snap.LimitedAvailability)
	assert.Equal(t, "Only 2 of 12 seat(s) left for 2024-07-01", snap.AvailabilityMessage)
}

func TestConfirmSelection_HiddenDependentsExcluded(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.start(t)

	require.NoError(t, f.o.SetOption(optTourDate, tourDay))
	require.NoError(t, f.o.SetOption(optCruise, "21"))
	require.NoError(t, f.o.SetOption(optArrival, "08:00"))
	require.NoError(t, f.o.SetOption(optDeparture, "17:00"))
	require.NoError(t, f.o.SetOption(optCruise, "22"))

	f.gateway.On("AddItem", mock.Anything, testCartID, expectedItem(1)).
		Return(domain.AddedItem{UID: "item-1"}, nil).Once()
	require.NoError(t, f.o.ConfirmSelection(context.Background()))
}

func TestConfirmSelection_MissingRequiredOptions(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.start(t)
	require.NoError(t, f.o.SetOption(optTourDate, tourDay))
	require.NoError(t, f.o.SetOption(optCruise, "21"))

	err := f.o.ConfirmSelection(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{domain.ShipArrivalOptionTitle, domain.ShipDepartureOptionTitle}, verr.Missing)
	assert.Equal(t, domain.StepProduct, f.o.Step())
}

func TestConfirmSelection_OutOfStock(t *testing.T) {
	product := tourProduct()
	product.InStock = false
	f := newFixture(t, product)
	f.start(t)
	f.selectNoCruise(t, 1)

	err := f.o.ConfirmSelection(context.Background())
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, msgOutOfStock, f.o.Snapshot().Error)
}

func TestConfirmSelection_BackendErrorKeepsStep(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.start(t)
	f.selectNoCruise(t, 2)
	f.gateway.On("AddItem", mock.Anything, testCartID, expectedItem(2)).
		Return(domain.AddedItem{}, backendErr{msg: "The requested qty is not available"}).Once()

	err := f.o.ConfirmSelection(context.Background())
	require.ErrorIs(t, err, ErrGateway)

	snap := f.o.Snapshot()
	assert.Equal(t, domain.StepProduct, snap.Step)
	assert.Equal(t, "Could not add the tour to your cart: The requested qty is not available. Please try again.", snap.Error)
	assert.True(t, snap.HasCart)
}

func TestSubmitCheckout_BillingFailsThenRetriesBoth(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toCheckout(t)

	f.gateway.On("SetGuestEmail", mock.Anything, testCartID, "guest@example.com").Return("guest@example.com", nil).Twice()
	f.gateway.On("SetBillingAddress", mock.Anything, testCartID, normalizedAddress()).
		Return(domain.BillingAddress{}, errors.New("region is required")).Once()

	err := f.o.SubmitCheckout(context.Background(), validContact())
	require.ErrorIs(t, err, ErrGateway)

	snap := f.o.Snapshot()
	assert.Equal(t, domain.StepCheckout, snap.Step)
	assert.Contains(t, snap.Error, msgBillingFailed)
	assert.Equal(t, testCartID, f.store.get())

	f.gateway.On("SetBillingAddress", mock.Anything, testCartID, normalizedAddress()).Return(normalizedAddress(), nil).Once()
	require.NoError(t, f.o.SubmitCheckout(context.Background(), validContact()))
	assert.Equal(t, domain.StepPayment, f.o.Step())
	f.gateway.AssertNumberOfCalls(t, "SetGuestEmail", 2)
	f.gateway.AssertNumberOfCalls(t, "SetBillingAddress", 2)
}

func TestSubmitCheckout_EmailFailureSkipsBilling(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toCheckout(t)
	f.gateway.On("SetGuestEmail", mock.Anything, testCartID, "guest@example.com").Return("", errors.New("boom")).Once()

	err := f.o.SubmitCheckout(context.Background(), validContact())
	require.ErrorIs(t, err, ErrGateway)
	f.gateway.AssertNotCalled(t, "SetBillingAddress", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitCheckout_Validation(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toCheckout(t)

	req := validContact()
	req.Email = "not-an-email"
	req.Address.City = "  "

	err := f.o.SubmitCheckout(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Please enter a valid email", verr.Fields[FieldEmail])
	assert.Equal(t, "City is required", verr.Fields[FieldCity])
	assert.Equal(t, domain.StepCheckout, f.o.Step())
}

func TestSubmitCheckout_RejectsUnknownCountry(t *testing.T) {
	settings := Settings{
		ContactPath: "/contact",
		Countries:   []domain.Country{{Code: "US", Name: "United States"}, {Code: "BS", Name: "Bahamas"}},
	}

	tests := []struct {
		name    string
		country string
	}{
		{name: "malformed code", country: "ZZ-NOT-A-COUNTRY"},
		{name: "code outside store list", country: "FR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixtureWithSettings(t, tourProduct(), settings)
			f.toCheckout(t)

			req := validContact()
			req.Address.CountryCode = tt.country

			err := f.o.SubmitCheckout(context.Background(), req)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, msgCountryUnsupported, verr.Fields[FieldCountryCode])
			assert.Equal(t, domain.StepCheckout, f.o.Step())
			f.gateway.AssertNotCalled(t, "SetBillingAddress", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitCheckout_MalformedCountryWithoutStoreList(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toCheckout(t)

	req := validContact()
	req.Address.CountryCode = "usa"

	err := f.o.SubmitCheckout(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, msgCountryUnsupported, verr.Fields[FieldCountryCode])
}

func TestSelectPaymentMethod_RequiresLoadedMethods(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toPayment(t)

	err := f.o.SelectPaymentMethod(context.Background(), "checkmo")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, msgNoMethodsLoaded, f.o.Snapshot().Error)

	f.gateway.On("ListPaymentMethods", mock.Anything, testCartID).Return(testMethods, nil).Once()
	methods, err := f.o.LoadPaymentMethods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testMethods, methods)
	assert.Equal(t, "checkmo", f.o.Snapshot().SelectedPaymentMethod)

	err = f.o.SelectPaymentMethod(context.Background(), "paypal")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, msgUnknownMethod, f.o.Snapshot().Error)
}

func TestSelectPaymentMethod_LoadsTotals(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toReview(t)

	snap := f.o.Snapshot()
	assert.Equal(t, domain.StepReview, snap.Step)
	require.NotNil(t, snap.Totals)
	assert.Equal(t, 252.0, snap.Totals.GrandTotal.Value)
	assert.Equal(t, "checkmo", snap.SelectedPaymentMethod)
}

func TestPlaceOrder_ClearsCart(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toReview(t)
	f.gateway.On("PlaceOrder", mock.Anything, testCartID).
		Return(domain.PlacedOrder{OrderNumber: "000000042", PaymentLink: "https://pay.example.com/42"}, nil).Once()

	order, err := f.o.PlaceOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "000000042", order.OrderNumber)

	snap := f.o.Snapshot()
	assert.Equal(t, domain.StepSuccess, snap.Step)
	assert.False(t, snap.HasCart)
	require.NotNil(t, snap.Order)
	require.NotNil(t, snap.Totals)
	assert.Empty(t, f.store.get())

	// Старая корзина больше не используется
	_, err = f.o.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrSessionComplete)
	assert.ErrorIs(t, f.o.Back(), ErrSessionComplete)
	_, err = f.o.LoadPaymentMethods(context.Background())
	assert.ErrorIs(t, err, ErrSessionComplete)
	f.gateway.AssertNumberOfCalls(t, "PlaceOrder", 1)
}

func TestPlaceOrder_FailureKeepsReview(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toReview(t)
	f.gateway.On("PlaceOrder", mock.Anything, testCartID).Return(domain.PlacedOrder{}, errors.New("payment declined")).Once()

	_, err := f.o.PlaceOrder(context.Background())
	require.ErrorIs(t, err, ErrGateway)

	snap := f.o.Snapshot()
	assert.Equal(t, domain.StepReview, snap.Step)
	assert.True(t, snap.HasCart)
	assert.Equal(t, testCartID, f.store.get())
}

func TestBack_ReentryDoesNotRepeatCalls(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toReview(t)

	require.NoError(t, f.o.Back())
	snap := f.o.Snapshot()
	assert.Equal(t, domain.StepPayment, snap.Step)
	assert.Equal(t, testMethods, snap.PaymentMethods)

	require.NoError(t, f.o.Back())
	require.NoError(t, f.o.Back())
	assert.Equal(t, domain.StepProduct, f.o.Step())
	assert.ErrorIs(t, f.o.Back(), ErrInvalidTransition)

	// Те же данные: addItem, setGuestEmail и setBillingAddress не повторяются
	require.NoError(t, f.o.ConfirmSelection(context.Background()))
	require.NoError(t, f.o.SubmitCheckout(context.Background(), validContact()))
	assert.Equal(t, domain.StepPayment, f.o.Step())

	// Способ оплаты уже принят, итоги запрашиваются заново
	f.gateway.On("GetTotals", mock.Anything, testCartID).Return(testTotals, nil).Once()
	require.NoError(t, f.o.SelectPaymentMethod(context.Background(), "checkmo"))

	f.gateway.AssertNumberOfCalls(t, "AddItem", 1)
	f.gateway.AssertNumberOfCalls(t, "SetGuestEmail", 1)
	f.gateway.AssertNumberOfCalls(t, "SetBillingAddress", 1)
	f.gateway.AssertNumberOfCalls(t, "SetPaymentMethod", 1)
	f.gateway.AssertNumberOfCalls(t, "GetTotals", 2)
}

func TestBack_ChangedSelectionReplacesItem(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.toCheckout(t)

	require.NoError(t, f.o.Back())
	require.NoError(t, f.o.SetQuantity(1))

	f.gateway.On("RemoveItem", mock.Anything, testCartID, "item-1").Return(nil).Once()
	f.gateway.On("AddItem", mock.Anything, testCartID, expectedItem(1)).
		Return(domain.AddedItem{UID: "item-2", GrandTotal: domain.Money{Value: 120, Currency: "USD"}}, nil).Once()

	require.NoError(t, f.o.ConfirmSelection(context.Background()))
	snap := f.o.Snapshot()
	assert.Equal(t, domain.StepCheckout, snap.Step)
	assert.Equal(t, 120.0, snap.ItemGrandTotal.Value)
}

func TestLiveRecheckOnEveryAttempt(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.start(t)
	f.selectNoCruise(t, 3)

	require.ErrorIs(t, f.o.ConfirmSelection(context.Background()), ErrValidation)
	require.ErrorIs(t, f.o.ConfirmSelection(context.Background()), ErrValidation)

	require.NoError(t, f.o.SetOption(optTourDate, "2024-07-02"))
	snap := f.o.Snapshot()
	require.NotNil(t, snap.Availability)
	assert.Equal(t, 12, snap.Availability.Remaining)
	assert.False(t, snap.Availability.HasRecordedBooking)
	assert.False(t, snap.QuantityExceeded)
}

func TestBusy_RejectsConcurrentTransitions(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.start(t)
	f.selectNoCruise(t, 2)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.gateway.On("AddItem", mock.Anything, testCartID, expectedItem(2)).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(domain.AddedItem{UID: "item-1"}, nil).Once()

	done := make(chan error, 1)
	go func() { done <- f.o.ConfirmSelection(context.Background()) }()
	<-entered

	assert.True(t, f.o.Snapshot().Loading)
	assert.ErrorIs(t, f.o.ConfirmSelection(context.Background()), ErrBusy)
	assert.ErrorIs(t, f.o.SetQuantity(5), ErrBusy)
	assert.ErrorIs(t, f.o.SetOption(optCruise, "21"), ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, domain.StepCheckout, f.o.Step())
	assert.False(t, f.o.Snapshot().Loading)
}

func TestStaleCart_TerminatesSession(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.selectNoCruise(t, 2)
	f.store.cartID = ""

	err := f.o.ConfirmSelection(context.Background())
	require.ErrorIs(t, err, ErrStaleCart)

	snap := f.o.Snapshot()
	assert.True(t, snap.Terminated)
	assert.Equal(t, msgStaleCart, snap.Error)
	assert.ErrorIs(t, f.o.SetQuantity(1), ErrStaleCart)
	f.gateway.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestStaleCart_RestoredFromStore(t *testing.T) {
	f := newFixture(t, tourProduct())
	f.selectNoCruise(t, 2)
	f.store.cartID = "restored-cart"
	f.gateway.On("AddItem", mock.Anything, "restored-cart", expectedItem(2)).Return(domain.AddedItem{UID: "x"}, nil).Once()

	require.NoError(t, f.o.ConfirmSelection(context.Background()))
	assert.True(t, f.o.Snapshot().HasCart)
}

func TestEnquiryOnly(t *testing.T) {
	product := tourProduct()
	product.EnquiryOnly = true
	f := newFixture(t, product)

	require.ErrorIs(t, f.o.ConfirmSelection(context.Background()), ErrEnquiryOnly)

	redirect, err := f.o.RequestEnquiry()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(redirect, "/contact?"))

	parsed, err := url.Parse(redirect)
	require.NoError(t, err)
	assert.Equal(t, "Hello, I would like to enquire about the tour: Island Tour", parsed.Query().Get("message"))
}

func TestRequestEnquiry_DirectProduct(t *testing.T) {
	f := newFixture(t, tourProduct())
	_, err := f.o.RequestEnquiry()
	assert.ErrorIs(t, err, ErrNotEnquiryOnly)
}

func TestSetOption_Validation(t *testing.T) {
	f := newFixture(t, tourProduct())

	assert.ErrorIs(t, f.o.SetOption(99, "x"), ErrValidation)
	assert.ErrorIs(t, f.o.SetOption(optCruise, "777"), ErrValidation)
	assert.ErrorIs(t, f.o.SetQuantity(0), ErrValidation)

	require.NoError(t, f.o.SetOption(optCruise, "21"))
	require.NoError(t, f.o.SetOption(optCruise, ""))
	snap := f.o.Snapshot()
	_, answered := snap.Selected[optCruise]
	assert.False(t, answered)
	assert.Empty(t, snap.Error)
}

func TestTransitionsRejectedAtWrongStep(t *testing.T) {
	f := newFixture(t, tourProduct())

	assert.ErrorIs(t, f.o.SubmitCheckout(context.Background(), validContact()), ErrInvalidTransition)
	_, err := f.o.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, f.o.SelectPaymentMethod(context.Background(), "checkmo"), ErrInvalidTransition)
}
