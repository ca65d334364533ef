package magento

const optionValueFields = `
	value {
		option_type_id
		title
		price
		price_type
		sku
		sort_order
	}`

const productByURLKeyQuery = `
query GetProduct($urlKey: String!) {
	products(filter: { url_key: { eq: $urlKey } }) {
		items {
			sku
			name
			url_key
			stock_status
			enquiry_only
			price_range {
				maximum_price {
					final_price {
						value
						currency
					}
				}
			}
			... on CustomizableProductInterface {
				options {
					__typename
					title
					required
					sort_order
					option_id
					... on CustomizableDropDownOption {` + optionValueFields + `
					}
					... on CustomizableRadioOption {` + optionValueFields + `
					}
					... on CustomizableCheckboxOption {` + optionValueFields + `
					}
					... on CustomizableMultipleOption {` + optionValueFields + `
					}
				}
			}
		}
	}
}`

const bookingAvailabilityQuery = `
query GetBookingAvailability($sku: String!) {
	bookingCountBySku(sku: $sku) {
		bookings {
			allowed_qty
			count
			date
			qty_total
			remaining_qty
		}
		message
		sku
		success
		total_bookings
	}
}`

const createEmptyCartMutation = `
mutation {
	createEmptyCart
}`

const addVirtualProductsMutation = `
mutation AddVirtualProductsToCart($input: AddVirtualProductsToCartInput!) {
	addVirtualProductsToCart(input: $input) {
		cart {
			items {
				uid
				product {
					name
					sku
				}
				quantity
			}
			prices {
				grand_total {
					value
					currency
				}
			}
		}
	}
}`

const removeItemMutation = `
mutation RemoveItemFromCart($cartId: String!, $itemUid: ID!) {
	removeItemFromCart(input: { cart_id: $cartId, cart_item_uid: $itemUid }) {
		cart {
			id
		}
	}
}`

const setGuestEmailMutation = `
mutation SetGuestEmail($cartId: String!, $email: String!) {
	setGuestEmailOnCart(input: { cart_id: $cartId, email: $email }) {
		cart {
			email
		}
	}
}`

const setBillingAddressMutation = `
mutation SetBillingAddress($cartId: String!, $address: CartAddressInput!) {
	setBillingAddressOnCart(input: { cart_id: $cartId, billing_address: { address: $address } }) {
		cart {
			billing_address {
				firstname
				lastname
				company
				street
				city
				region {
					code
					label
				}
				postcode
				telephone
				country {
					code
					label
				}
			}
		}
	}
}`

const paymentMethodsQuery = `
query GetPaymentMethods($cartId: String!) {
	cart(cart_id: $cartId) {
		available_payment_methods {
			code
			title
		}
	}
}`

const setPaymentMethodMutation = `
mutation SetPaymentMethod($cartId: String!, $paymentMethodCode: String!) {
	setPaymentMethodOnCart(input: { cart_id: $cartId, payment_method: { code: $paymentMethodCode } }) {
		cart {
			selected_payment_method {
				code
				title
			}
		}
	}
}`

const placeOrderMutation = `
mutation PlaceOrder($cartId: String!) {
	placeOrder(input: { cart_id: $cartId }) {
		order {
			order_number
		}
		paymentlink
	}
}`

const cartTotalsQuery = `
query GetCartTotals($cartId: String!) {
	cart(cart_id: $cartId) {
		email
		prices {
			grand_total {
				value
				currency
			}
			subtotal_including_tax {
				value
				currency
			}
			subtotal_excluding_tax {
				value
				currency
			}
			applied_taxes {
				label
				amount {
					value
					currency
				}
			}
		}
		applied_coupons {
			code
		}
	}
}`

const countriesQuery = `
query GetCountries {
	countries {
		id
		two_letter_abbreviation
		full_name_english
	}
}`
