package order

import "github.com/shopspring/decimal"

// CheckoutItem is a client cart line submitted at checkout.
// swagger:model CheckoutItem
type CheckoutItem struct {
	ID       int             `json:"id" example:"1"`
	Name     string          `json:"name" example:"Medicine Buddha"`
	Price    decimal.Decimal `json:"price" example:"289"`
	Quantity int             `json:"quantity" example:"2"`
	Image    string          `json:"image"`
}

// CheckoutRequest is the shared payload of the payment-intent and demo
// order endpoints: the whole client cart plus the shipping form.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	Amount   decimal.Decimal `json:"amount" example:"578"`
	Items    []CheckoutItem  `json:"items"`
	Customer Address         `json:"customer"`
}

// PaymentIntentResponse carries the client secret the payment form needs.
// IsDevelopment marks the no-credential demo path so the client can tell
// the user no real charge will occur.
// swagger:model PaymentIntentResponse
type PaymentIntentResponse struct {
	ClientSecret  string `json:"clientSecret"`
	IsDevelopment bool   `json:"isDevelopment,omitempty"`
}

// CreateOrderResponse is the demo order endpoint's response.
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID int    `json:"orderId" example:"1"`
	Message string `json:"message"`
}
