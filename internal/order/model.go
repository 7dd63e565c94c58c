package order

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

type Order struct {
	ID int `json:"id"`
	// CustomerID stays nil for guest checkout, the only path the store
	// currently offers.
	CustomerID      *int            `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	Status          string          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress Address         `json:"shippingAddress"`
	PaymentIntentID string          `json:"paymentIntentId"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Address is the shipping snapshot embedded in the order, not normalized.
type Address struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Notes      string `json:"notes"`
}

// Item is a denormalized snapshot of a cart line at order time. Name and
// price are copied so historical orders stay stable when product data
// changes later.
type Item struct {
	ID        int             `json:"id"`
	OrderID   int             `json:"orderId"`
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}
