package magento

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

// CreateCart создает пустую гостевую корзину
func (c *Client) CreateCart(ctx context.Context) (string, error) {
	var data createCartData
	if err := c.do(ctx, "createEmptyCart", createEmptyCartMutation, nil, &data); err != nil {
		return "", err
	}
	if data.CreateEmptyCart == "" {
		return "", fmt.Errorf("%w: createEmptyCart: empty cart id", ErrInvalidResponse)
	}
	return data.CreateEmptyCart, nil
}

// AddItem добавляет виртуальный продукт с опциями и возвращает uid созданной позиции
func (c *Client) AddItem(ctx context.Context, cartID string, item domain.CartItem) (domain.AddedItem, error) {
	input := cartItemInput{}
	input.Data.Quantity = item.Quantity
	input.Data.SKU = item.SKU
	for _, opt := range item.Options {
		input.CustomizableOptions = append(input.CustomizableOptions, customizableOptionInput{
			ID:          opt.OptionID,
			ValueString: opt.Value(),
		})
	}

	vars := map[string]interface{}{
		"input": map[string]interface{}{
			"cart_id":    cartID,
			"cart_items": []cartItemInput{input},
		},
	}

	var data addItemData
	if err := c.do(ctx, "addVirtualProductsToCart", addVirtualProductsMutation, vars, &data); err != nil {
		return domain.AddedItem{}, err
	}

	cart := data.AddVirtualProductsToCart.Cart
	added := domain.AddedItem{
		GrandTotal: domain.Money{Value: cart.Prices.GrandTotal.Value, Currency: cart.Prices.GrandTotal.Currency},
	}
	// Новая позиция добавляется в конец списка
	for i := len(cart.Items) - 1; i >= 0; i-- {
		if cart.Items[i].Product.SKU == item.SKU {
			added.UID = cart.Items[i].UID
			break
		}
	}
	if added.UID == "" {
		c.log.Warn("addVirtualProductsToCart: sku=%s not found in returned cart items", item.SKU)
	}
	return added, nil
}

// RemoveItem удаляет позицию из корзины
func (c *Client) RemoveItem(ctx context.Context, cartID, itemUID string) error {
	var data removeItemData
	vars := map[string]interface{}{"cartId": cartID, "itemUid": itemUID}
	return c.do(ctx, "removeItemFromCart", removeItemMutation, vars, &data)
}

// SetGuestEmail задает email гостя и возвращает принятое значение
func (c *Client) SetGuestEmail(ctx context.Context, cartID, email string) (string, error) {
	var data guestEmailData
	vars := map[string]interface{}{"cartId": cartID, "email": email}
	if err := c.do(ctx, "setGuestEmailOnCart", setGuestEmailMutation, vars, &data); err != nil {
		return "", err
	}
	return data.SetGuestEmailOnCart.Cart.Email, nil
}

// SetBillingAddress задает платежный адрес и возвращает адрес в виде, принятом бэкендом
func (c *Client) SetBillingAddress(ctx context.Context, cartID string, address domain.BillingAddress) (domain.BillingAddress, error) {
	vars := map[string]interface{}{
		"cartId": cartID,
		"address": addressInput{
			FirstName:   address.FirstName,
			LastName:    address.LastName,
			Company:     address.Company,
			Street:      address.Street,
			City:        address.City,
			Region:      address.Region,
			Postcode:    address.Postcode,
			CountryCode: address.CountryCode,
			Telephone:   address.Telephone,
		},
	}

	var data billingAddressData
	if err := c.do(ctx, "setBillingAddressOnCart", setBillingAddressMutation, vars, &data); err != nil {
		return domain.BillingAddress{}, err
	}

	src := data.SetBillingAddressOnCart.Cart.BillingAddress
	if src == nil {
		return domain.BillingAddress{}, fmt.Errorf("%w: setBillingAddressOnCart: empty billing address", ErrInvalidResponse)
	}
	accepted := domain.BillingAddress{
		FirstName:   src.FirstName,
		LastName:    src.LastName,
		Street:      src.Street,
		City:        src.City,
		Postcode:    src.Postcode,
		CountryCode: src.Country.Code,
		Telephone:   src.Telephone,
	}
	if src.Company != nil {
		accepted.Company = *src.Company
	}
	if src.Region != nil {
		accepted.Region = src.Region.Label
	}
	return accepted, nil
}

// ListPaymentMethods получает доступные способы оплаты корзины
func (c *Client) ListPaymentMethods(ctx context.Context, cartID string) ([]domain.PaymentMethod, error) {
	var data paymentMethodsData
	if err := c.do(ctx, "available_payment_methods", paymentMethodsQuery, map[string]interface{}{"cartId": cartID}, &data); err != nil {
		return nil, err
	}
	if data.Cart == nil {
		return nil, fmt.Errorf("%w: cart %s", ErrNotFound, cartID)
	}

	methods := make([]domain.PaymentMethod, 0, len(data.Cart.AvailablePaymentMethods))
	for _, m := range data.Cart.AvailablePaymentMethods {
		methods = append(methods, domain.PaymentMethod{Code: m.Code, Title: m.Title})
	}
	return methods, nil
}

// SetPaymentMethod задает способ оплаты
func (c *Client) SetPaymentMethod(ctx context.Context, cartID, code string) (domain.PaymentMethod, error) {
	var data setPaymentMethodData
	vars := map[string]interface{}{"cartId": cartID, "paymentMethodCode": code}
	if err := c.do(ctx, "setPaymentMethodOnCart", setPaymentMethodMutation, vars, &data); err != nil {
		return domain.PaymentMethod{}, err
	}
	selected := data.SetPaymentMethodOnCart.Cart.SelectedPaymentMethod
	return domain.PaymentMethod{Code: selected.Code, Title: selected.Title}, nil
}

// GetTotals получает итоговые суммы корзины
func (c *Client) GetTotals(ctx context.Context, cartID string) (domain.CartTotals, error) {
	var data cartTotalsData
	if err := c.do(ctx, "cartTotals", cartTotalsQuery, map[string]interface{}{"cartId": cartID}, &data); err != nil {
		return domain.CartTotals{}, err
	}
	if data.Cart == nil {
		return domain.CartTotals{}, fmt.Errorf("%w: cart %s", ErrNotFound, cartID)
	}

	src := data.Cart
	totals := domain.CartTotals{
		GrandTotal:      toMoney(src.Prices.GrandTotal),
		SubtotalInclTax: toMoney(src.Prices.SubtotalIncludingTax),
		SubtotalExclTax: toMoney(src.Prices.SubtotalExcludingTax),
	}
	if src.Email != nil {
		totals.Email = *src.Email
	}
	for _, tax := range src.Prices.AppliedTaxes {
		totals.Taxes = append(totals.Taxes, domain.AppliedTax{Label: tax.Label, Amount: toMoney(tax.Amount)})
	}
	for _, coupon := range src.AppliedCoupons {
		totals.Coupons = append(totals.Coupons, coupon.Code)
	}
	return totals, nil
}

// PlaceOrder размещает заказ; ссылка на оплату может отсутствовать
func (c *Client) PlaceOrder(ctx context.Context, cartID string) (domain.PlacedOrder, error) {
	var data placeOrderData
	if err := c.do(ctx, "placeOrder", placeOrderMutation, map[string]interface{}{"cartId": cartID}, &data); err != nil {
		return domain.PlacedOrder{}, err
	}
	if data.PlaceOrder == nil || data.PlaceOrder.Order.OrderNumber == "" {
		return domain.PlacedOrder{}, fmt.Errorf("%w: placeOrder: empty order number", ErrInvalidResponse)
	}

	order := domain.PlacedOrder{OrderNumber: data.PlaceOrder.Order.OrderNumber}
	if data.PlaceOrder.PaymentLink != nil {
		order.PaymentLink = *data.PlaceOrder.PaymentLink
	}
	c.log.Info("placeOrder: order %s placed", order.OrderNumber)
	return order, nil
}

func toMoney(m money) domain.Money {
	return domain.Money{Value: m.Value, Currency: m.Currency}
}
