package booking_flow

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/resolve_availability"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/resolve_options"
)

// Orchestrator конечный автомат оформления бронирования одного посетителя.
//
// Шаги: product -> checkout -> payment -> review -> success.
// Одновременно выполняется не более одной последовательности вызовов корзины:
// флаг loading выставляется под мьютексом до вызова и снимается после.
// Мьютекс не удерживается во время сетевых вызовов.
type Orchestrator struct {
	mu sync.Mutex

	sessionID  string
	product    *domain.Product
	feed       *domain.AvailabilityFeed
	dateOption *domain.ProductOption
	countries  map[string]struct{}

	gateway      CartGateway
	cartStore    CartIDStore
	availability AvailabilityResolver
	options      OptionResolver
	settings     Settings
	metrics      MetricsRecorder
	logger       Logger

	state      state
	loading    bool
	errText    string
	terminated bool

	cartID   string
	selected domain.SelectedOptions
	quantity int
	dateInfo *domain.DateAvailability
	done     progress
}

// NewOrchestrator создает сессию на шаге product; корзина создается в Start
func NewOrchestrator(
	sessionID string,
	product *domain.Product,
	feed *domain.AvailabilityFeed,
	gateway CartGateway,
	cartStore CartIDStore,
	availability AvailabilityResolver,
	options OptionResolver,
	settings Settings,
	metrics MetricsRecorder,
	logger Logger,
) *Orchestrator {
	if settings.DateOptionTitle == "" {
		settings.DateOptionTitle = domain.TourDateOptionTitle
	}
	if settings.LowAvailabilityThreshold <= 0 {
		settings.LowAvailabilityThreshold = domain.DefaultLowAvailabilityThreshold
	}

	o := &Orchestrator{
		sessionID:    sessionID,
		product:      product,
		feed:         feed,
		gateway:      gateway,
		cartStore:    cartStore,
		availability: availability,
		options:      options,
		settings:     settings,
		metrics:      metrics,
		logger:       logger,
		state:        productState{},
		selected:     make(domain.SelectedOptions),
		quantity:     1,
		countries:    countrySet(settings.Countries),
	}
	if opt, ok := product.AvailabilityOption(settings.DateOptionTitle); ok {
		o.dateOption = opt
	}
	return o
}

// Start сбрасывает сохраненный идентификатор корзины и создает новую корзину
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if err := o.guard(domain.StepProduct); err != nil {
		o.mu.Unlock()
		return o.reject(opStart, err)
	}
	if o.cartID != "" {
		o.mu.Unlock()
		return o.reject(opStart, ErrAlreadyStarted)
	}
	o.loading = true
	o.mu.Unlock()

	// Предыдущая корзина не переиспользуется
	if err := o.cartStore.Clear(ctx); err != nil {
		o.logger.Warn("%s: session=%s failed to clear stored cart id: %v", opStart, o.sessionID, err)
	}

	var cartID string
	err := o.call(opStart, "createCart", func() error {
		var err error
		cartID, err = o.gateway.CreateCart(ctx)
		return err
	})
	if err == nil && cartID == "" {
		err = errors.New("empty cart id returned")
	}
	if err != nil {
		return o.fail(opStart, newGatewayError("createCart", msgCreateCartFailed, err))
	}

	if err := o.cartStore.Save(ctx, cartID); err != nil {
		o.logger.Warn("%s: session=%s failed to persist cart id: %v", opStart, o.sessionID, err)
	}

	o.mu.Lock()
	o.cartID = cartID
	o.loading = false
	o.errText = ""
	o.mu.Unlock()

	o.logger.Info("%s: session=%s sku=%s cart created", opStart, o.sessionID, o.product.SKU)
	o.metrics.Transition(opStart, outcomeSuccess)
	return nil
}

// SetOption сохраняет ответ на опцию; пустое значение удаляет ответ.
// Изменение даты пересчитывает остаток мест.
func (o *Orchestrator) SetOption(optionID int64, raw string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.guard(domain.StepProduct); err != nil {
		return o.reject(opSetOption, err)
	}

	opt, ok := o.product.Option(optionID)
	if !ok {
		return o.invalid(opSetOption, &ValidationError{Message: fmt.Sprintf("%s: %d", msgUnknownOption, optionID)})
	}

	value, err := resolve_options.NormalizeAnswer(opt, raw)
	if err != nil {
		o.logger.Warn("%s: session=%s option=%d: %v", opSetOption, o.sessionID, optionID, err)
		return o.invalid(opSetOption, &ValidationError{Message: fmt.Sprintf("Invalid value for %s", opt.Title)})
	}

	if value == "" {
		delete(o.selected, optionID)
	} else {
		o.selected[optionID] = value
	}
	if o.dateOption != nil && o.dateOption.ID == optionID {
		o.refreshAvailability()
	}
	o.errText = ""
	return nil
}

// SetQuantity задает количество мест
func (o *Orchestrator) SetQuantity(quantity int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.guard(domain.StepProduct); err != nil {
		return o.reject(opSetQuantity, err)
	}
	if quantity < 1 {
		return o.invalid(opSetQuantity, &ValidationError{Message: msgInvalidQuantity})
	}
	o.quantity = quantity
	o.errText = ""
	return nil
}

// ConfirmSelection product -> checkout: локальные проверки, затем addItem
func (o *Orchestrator) ConfirmSelection(ctx context.Context) error {
	o.mu.Lock()
	if err := o.guard(domain.StepProduct); err != nil {
		o.mu.Unlock()
		return o.reject(opConfirmSelection, err)
	}
	if o.product.EnquiryOnly {
		o.mu.Unlock()
		return o.reject(opConfirmSelection, ErrEnquiryOnly)
	}

	item, verr := o.buildItem()
	if verr != nil {
		err := o.invalid(opConfirmSelection, verr)
		o.mu.Unlock()
		return err
	}

	fp := fingerprint(item)
	if o.done.item != nil && o.done.item.fingerprint == fp {
		o.state = checkoutState{}
		o.errText = ""
		o.mu.Unlock()
		o.logger.Info("%s: session=%s item unchanged, addItem not reissued", opConfirmSelection, o.sessionID)
		o.metrics.Transition(opConfirmSelection, outcomeSuccess)
		return nil
	}
	previous := o.done.item
	o.loading = true
	o.mu.Unlock()

	cartID, err := o.requireCart(ctx)
	if err != nil {
		return o.fail(opConfirmSelection, err)
	}

	// Выбор изменился после возврата назад: заменяем позицию в той же корзине
	if previous != nil && previous.uid != "" {
		err := o.call(opConfirmSelection, "removeItem", func() error {
			return o.gateway.RemoveItem(ctx, cartID, previous.uid)
		})
		if err != nil {
			return o.fail(opConfirmSelection, newGatewayError("removeItem", msgRemoveItemFailed, err))
		}
		o.mu.Lock()
		o.done.item = nil
		o.mu.Unlock()
	}

	var added domain.AddedItem
	err = o.call(opConfirmSelection, "addItem", func() error {
		var err error
		added, err = o.gateway.AddItem(ctx, cartID, item)
		return err
	})
	if err != nil {
		return o.fail(opConfirmSelection, newGatewayError("addItem", msgAddItemFailed, err))
	}

	o.mu.Lock()
	o.done.item = &addedItem{fingerprint: fp, uid: added.UID, grandTotal: added.GrandTotal}
	o.done.payment = ""
	o.state = checkoutState{}
	o.succeed()
	o.mu.Unlock()

	o.logger.Info("%s: session=%s sku=%s qty=%d added, grand_total=%.2f %s",
		opConfirmSelection, o.sessionID, item.SKU, item.Quantity, added.GrandTotal.Value, added.GrandTotal.Currency)
	o.metrics.Transition(opConfirmSelection, outcomeSuccess)
	return nil
}

// RequestEnquiry возвращает адрес страницы запроса для продукта "только по запросу".
// Переходом не является, корзина не изменяется.
func (o *Orchestrator) RequestEnquiry() (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.guard(domain.StepProduct); err != nil {
		return "", o.reject(opRequestEnquiry, err)
	}
	if !o.product.EnquiryOnly {
		return "", o.reject(opRequestEnquiry, ErrNotEnquiryOnly)
	}

	query := url.Values{}
	query.Set("message", fmt.Sprintf(msgEnquiryMessage, o.product.Name))
	redirect := o.settings.ContactPath + "?" + query.Encode()

	o.logger.Info("%s: session=%s sku=%s redirecting to contact", opRequestEnquiry, o.sessionID, o.product.SKU)
	o.metrics.Transition(opRequestEnquiry, outcomeSuccess)
	return redirect, nil
}

// SubmitCheckout checkout -> payment: setGuestEmail, затем setBillingAddress.
// Если первый вызов не удался, второй не выполняется; повторная отправка повторяет оба.
func (o *Orchestrator) SubmitCheckout(ctx context.Context, req CheckoutRequest) error {
	contact := normalizeCheckout(req)

	o.mu.Lock()
	if err := o.guard(domain.StepCheckout); err != nil {
		o.mu.Unlock()
		return o.reject(opSubmitCheckout, err)
	}
	if verr := validateCheckout(contact, o.countries); verr != nil {
		err := o.invalid(opSubmitCheckout, verr)
		o.mu.Unlock()
		return err
	}
	if sameContact(o.done.contact, &contact) {
		o.state = paymentState{methods: o.done.methods, loaded: o.done.methods != nil}
		o.errText = ""
		o.mu.Unlock()
		o.logger.Info("%s: session=%s contact unchanged, calls not reissued", opSubmitCheckout, o.sessionID)
		o.metrics.Transition(opSubmitCheckout, outcomeSuccess)
		return nil
	}
	o.loading = true
	o.mu.Unlock()

	cartID, err := o.requireCart(ctx)
	if err != nil {
		return o.fail(opSubmitCheckout, err)
	}

	var acceptedEmail string
	err = o.call(opSubmitCheckout, "setGuestEmail", func() error {
		var err error
		acceptedEmail, err = o.gateway.SetGuestEmail(ctx, cartID, contact.Email)
		return err
	})
	if err != nil {
		return o.fail(opSubmitCheckout, newGatewayError("setGuestEmail", msgGuestEmailFailed, err))
	}

	err = o.call(opSubmitCheckout, "setBillingAddress", func() error {
		_, err := o.gateway.SetBillingAddress(ctx, cartID, contact.Address)
		return err
	})
	if err != nil {
		return o.fail(opSubmitCheckout, newGatewayError("setBillingAddress", msgBillingFailed, err))
	}

	o.mu.Lock()
	o.done.contact = &contact
	o.done.methods = nil
	o.done.payment = ""
	o.state = paymentState{}
	o.succeed()
	o.mu.Unlock()

	o.logger.Info("%s: session=%s guest email %s and billing address accepted", opSubmitCheckout, o.sessionID, acceptedEmail)
	o.metrics.Transition(opSubmitCheckout, outcomeSuccess)
	return nil
}

// LoadPaymentMethods загружает способы оплаты для корзины (шаг payment)
func (o *Orchestrator) LoadPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	o.mu.Lock()
	if err := o.guard(domain.StepPayment); err != nil {
		o.mu.Unlock()
		return nil, o.reject(opLoadPaymentMethods, err)
	}
	o.loading = true
	o.mu.Unlock()

	cartID, err := o.requireCart(ctx)
	if err != nil {
		return nil, o.fail(opLoadPaymentMethods, err)
	}

	var methods []domain.PaymentMethod
	err = o.call(opLoadPaymentMethods, "listPaymentMethods", func() error {
		var err error
		methods, err = o.gateway.ListPaymentMethods(ctx, cartID)
		return err
	})
	if err != nil {
		return nil, o.fail(opLoadPaymentMethods, newGatewayError("listPaymentMethods", msgListMethodsFailed, err))
	}
	if methods == nil {
		methods = []domain.PaymentMethod{}
	}

	o.mu.Lock()
	o.done.methods = methods
	o.state = paymentState{methods: methods, loaded: true}
	o.succeed()
	o.mu.Unlock()

	o.logger.Info("%s: session=%s %d payment method(s) available", opLoadPaymentMethods, o.sessionID, len(methods))
	o.metrics.Transition(opLoadPaymentMethods, outcomeSuccess)
	return copyMethods(methods), nil
}

// SelectPaymentMethod payment -> review: setPaymentMethod, затем getTotals.
// Итоги запрашиваются всегда, даже если способ оплаты уже принят.
func (o *Orchestrator) SelectPaymentMethod(ctx context.Context, code string) error {
	o.mu.Lock()
	if err := o.guard(domain.StepPayment); err != nil {
		o.mu.Unlock()
		return o.reject(opSelectPaymentMethod, err)
	}

	ps := o.state.(paymentState)
	method, verr := pickMethod(ps, code)
	if verr != nil {
		err := o.invalid(opSelectPaymentMethod, verr)
		o.mu.Unlock()
		return err
	}
	alreadySet := o.done.payment == method.Code
	o.loading = true
	o.mu.Unlock()

	cartID, err := o.requireCart(ctx)
	if err != nil {
		return o.fail(opSelectPaymentMethod, err)
	}

	if !alreadySet {
		err = o.call(opSelectPaymentMethod, "setPaymentMethod", func() error {
			_, err := o.gateway.SetPaymentMethod(ctx, cartID, method.Code)
			return err
		})
		if err != nil {
			return o.fail(opSelectPaymentMethod, newGatewayError("setPaymentMethod", msgSetMethodFailed, err))
		}
		o.mu.Lock()
		o.done.payment = method.Code
		o.mu.Unlock()
	}

	var totals domain.CartTotals
	err = o.call(opSelectPaymentMethod, "getTotals", func() error {
		var err error
		totals, err = o.gateway.GetTotals(ctx, cartID)
		return err
	})
	if err != nil {
		return o.fail(opSelectPaymentMethod, newGatewayError("getTotals", msgTotalsFailed, err))
	}

	o.mu.Lock()
	o.state = reviewState{method: method, totals: totals}
	o.succeed()
	o.mu.Unlock()

	o.logger.Info("%s: session=%s method=%s grand_total=%.2f %s",
		opSelectPaymentMethod, o.sessionID, method.Code, totals.GrandTotal.Value, totals.GrandTotal.Currency)
	o.metrics.Transition(opSelectPaymentMethod, outcomeSuccess)
	return nil
}

// PlaceOrder review -> success. После успеха идентификатор корзины сбрасывается
// и больше не используется.
func (o *Orchestrator) PlaceOrder(ctx context.Context) (domain.PlacedOrder, error) {
	o.mu.Lock()
	if err := o.guard(domain.StepReview); err != nil {
		o.mu.Unlock()
		return domain.PlacedOrder{}, o.reject(opPlaceOrder, err)
	}
	rs := o.state.(reviewState)
	o.loading = true
	o.mu.Unlock()

	cartID, err := o.requireCart(ctx)
	if err != nil {
		return domain.PlacedOrder{}, o.fail(opPlaceOrder, err)
	}

	var order domain.PlacedOrder
	err = o.call(opPlaceOrder, "placeOrder", func() error {
		var err error
		order, err = o.gateway.PlaceOrder(ctx, cartID)
		return err
	})
	if err != nil {
		return domain.PlacedOrder{}, o.fail(opPlaceOrder, newGatewayError("placeOrder", msgPlaceOrderFailed, err))
	}

	if err := o.cartStore.Clear(ctx); err != nil {
		o.logger.Warn("%s: session=%s failed to clear stored cart id: %v", opPlaceOrder, o.sessionID, err)
	}

	o.mu.Lock()
	o.cartID = ""
	o.state = successState{order: order, totals: rs.totals}
	o.succeed()
	o.mu.Unlock()

	o.logger.Info("%s: session=%s order %s placed", opPlaceOrder, o.sessionID, order.OrderNumber)
	o.metrics.Transition(opPlaceOrder, outcomeSuccess)
	return order, nil
}

// Back возвращает на предыдущий шаг без вызовов корзины; ошибка сбрасывается.
// Недоступно, пока выполняется вызов.
func (o *Orchestrator) Back() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.guard(domain.StepCheckout, domain.StepPayment, domain.StepReview); err != nil {
		return o.reject(opBack, err)
	}

	prev, _ := o.state.step().Previous()
	switch prev {
	case domain.StepProduct:
		o.state = productState{}
	case domain.StepCheckout:
		o.state = checkoutState{}
	case domain.StepPayment:
		o.state = paymentState{methods: o.done.methods, loaded: o.done.methods != nil}
	}
	o.errText = ""

	o.logger.Info("%s: session=%s returned to %s", opBack, o.sessionID, prev)
	o.metrics.Transition(opBack, outcomeSuccess)
	return nil
}

// Step текущий шаг
func (o *Orchestrator) Step() domain.Step {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.step()
}

// Snapshot возвращает копию состояния сессии
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	res := o.options.Resolve(o.product.Options, o.selected)
	snap := Snapshot{
		SessionID:  o.sessionID,
		Step:       o.state.step(),
		Loading:    o.loading,
		Error:      o.errText,
		Terminated: o.terminated,
		HasCart:    o.cartID != "",
		Product:    o.product,
		Selected:   o.selected.Clone(),
		Options:    res.States,
		Quantity:   o.quantity,
	}

	if o.dateInfo != nil {
		info := *o.dateInfo
		snap.Availability = &info
		snap.LimitedAvailability = info.IsLimited(o.settings.LowAvailabilityThreshold)
		snap.QuantityExceeded = info.Exceeds(o.quantity)
		switch {
		case snap.QuantityExceeded && info.IsSoldOut():
			snap.AvailabilityMessage = resolve_availability.SoldOutMessage(info)
		case snap.QuantityExceeded:
			snap.AvailabilityMessage = resolve_availability.ExceededMessage(info)
		case snap.LimitedAvailability:
			snap.AvailabilityMessage = resolve_availability.LimitedMessage(info)
		}
	}
	if o.done.item != nil {
		total := o.done.item.grandTotal
		snap.ItemGrandTotal = &total
	}
	if o.done.contact != nil {
		contact := *o.done.contact
		contact.Address.Street = append([]string(nil), contact.Address.Street...)
		snap.Contact = &contact
	}

	switch st := o.state.(type) {
	case paymentState:
		snap.PaymentMethods = copyMethods(st.methods)
		snap.SelectedPaymentMethod = o.done.payment
		if snap.SelectedPaymentMethod == "" && len(st.methods) > 0 {
			snap.SelectedPaymentMethod = st.methods[0].Code
		}
	case reviewState:
		totals := st.totals
		snap.Totals = &totals
		snap.SelectedPaymentMethod = st.method.Code
	case successState:
		totals, order := st.totals, st.order
		snap.Totals = &totals
		snap.Order = &order
	}

	return snap
}

// guard проверяет, что сессия активна, вызов не выполняется и шаг подходит. Вызывать под мьютексом.
func (o *Orchestrator) guard(allowed ...domain.Step) error {
	if o.terminated {
		return ErrStaleCart
	}
	current := o.state.step()
	if current.IsTerminal() {
		return ErrSessionComplete
	}
	if o.loading {
		return ErrBusy
	}
	for _, s := range allowed {
		if s == current {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidTransition, current)
}

// buildItem выполняет локальные проверки шага product. Вызывать под мьютексом.
func (o *Orchestrator) buildItem() (domain.CartItem, *ValidationError) {
	if !o.product.InStock {
		return domain.CartItem{}, &ValidationError{Message: msgOutOfStock}
	}
	if o.quantity < 1 {
		return domain.CartItem{}, &ValidationError{Message: msgInvalidQuantity}
	}

	res := o.options.Resolve(o.product.Options, o.selected)
	if !res.Complete() {
		return domain.CartItem{}, missingOptionsError(res.MissingTitles())
	}

	// Остаток мест проверяется заново при каждой попытке
	if o.dateOption != nil && res.IsVisible(o.dateOption.ID) {
		o.refreshAvailability()
		if o.dateInfo != nil && o.dateInfo.Exceeds(o.quantity) {
			msg := resolve_availability.ExceededMessage(*o.dateInfo)
			if o.dateInfo.IsSoldOut() {
				msg = resolve_availability.SoldOutMessage(*o.dateInfo)
			}
			return domain.CartItem{}, &ValidationError{Message: msg}
		}
	}

	return domain.CartItem{
		SKU:      o.product.SKU,
		Quantity: o.quantity,
		Options:  res.Payload,
	}, nil
}

// refreshAvailability пересчитывает остаток мест на выбранную дату. Вызывать под мьютексом.
func (o *Orchestrator) refreshAvailability() {
	if o.dateOption == nil {
		return
	}
	day, ok := o.selected.Answer(o.dateOption.ID)
	if !ok {
		o.dateInfo = nil
		return
	}
	info := o.availability.Resolve(o.feed, day)
	o.dateInfo = &info
}

// requireCart возвращает идентификатор корзины; при его потере один раз читает хранилище
func (o *Orchestrator) requireCart(ctx context.Context) (string, error) {
	o.mu.Lock()
	cartID := o.cartID
	o.mu.Unlock()
	if cartID != "" {
		return cartID, nil
	}

	stored, err := o.cartStore.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: load stored cart id: %v", ErrStaleCart, err)
	}
	if stored == "" {
		return "", ErrStaleCart
	}

	o.mu.Lock()
	o.cartID = stored
	o.mu.Unlock()
	o.logger.Warn("requireCart: session=%s cart id restored from store", o.sessionID)
	return stored, nil
}

// call выполняет один вызов корзины с записью метрик
func (o *Orchestrator) call(op, gatewayOp string, fn func() error) error {
	started := time.Now()
	err := fn()
	o.metrics.ObserveGatewayCall(gatewayOp, started, err)
	if err != nil {
		o.logger.Error("%s: session=%s %s failed: %v", op, o.sessionID, gatewayOp, err)
	}
	return err
}

// fail завершает неудачную последовательность вызовов: шаг не меняется, ошибка сохраняется
func (o *Orchestrator) fail(op string, err error) error {
	outcome := outcomeGateway

	o.mu.Lock()
	o.loading = false
	o.errText = userText(err)
	if errors.Is(err, ErrStaleCart) {
		o.terminated = true
		o.cartID = ""
		outcome = outcomeStaleCart
	}
	o.mu.Unlock()

	if outcome == outcomeStaleCart {
		o.logger.Error("%s: session=%s terminated: %v", op, o.sessionID, err)
	}
	o.metrics.Transition(op, outcome)
	return err
}

// invalid сохраняет локальную ошибку проверки. Вызывать под мьютексом.
func (o *Orchestrator) invalid(op string, verr *ValidationError) error {
	o.errText = verr.Message
	o.logger.Warn("%s: session=%s validation failed: %s", op, o.sessionID, verr.Message)
	o.metrics.Transition(op, outcomeValidation)
	return verr
}

// reject отклоняет операцию, не меняя состояние сессии
func (o *Orchestrator) reject(op string, err error) error {
	o.logger.Warn("%s: session=%s rejected: %v", op, o.sessionID, err)
	o.metrics.Transition(op, outcomeRejected)
	return err
}

// succeed снимает флаг загрузки и сбрасывает ошибку. Вызывать под мьютексом.
func (o *Orchestrator) succeed() {
	o.loading = false
	o.errText = ""
}

func pickMethod(ps paymentState, code string) (domain.PaymentMethod, *ValidationError) {
	if !ps.loaded {
		return domain.PaymentMethod{}, &ValidationError{Message: msgNoMethodsLoaded}
	}
	if code == "" {
		return domain.PaymentMethod{}, &ValidationError{Message: msgSelectPaymentMethod}
	}
	for _, m := range ps.methods {
		if m.Code == code {
			return m, nil
		}
	}
	return domain.PaymentMethod{}, &ValidationError{Message: msgUnknownMethod}
}

func copyMethods(methods []domain.PaymentMethod) []domain.PaymentMethod {
	if methods == nil {
		return nil
	}
	out := make([]domain.PaymentMethod, len(methods))
	copy(out, methods)
	return out
}
