// Package order holds orders and their denormalized line items.
package order

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("order not found")
	ErrInvalidItem = errors.New("invalid order item")
)

type Repository interface {
	// Create persists the order and all its items as one unit: either
	// everything is stored or nothing is. IDs and createdAt are assigned
	// in place.
	Create(ctx context.Context, o *Order, items []Item) error
	GetByID(ctx context.Context, id int) (*Order, error)
	ItemsByOrder(ctx context.Context, orderID int) ([]Item, error)
	// SetPaymentIntent is the only in-place mutation an order ever sees.
	// An unknown id yields ErrNotFound and no state change.
	SetPaymentIntent(ctx context.Context, id int, intentID string) (*Order, error)
}
