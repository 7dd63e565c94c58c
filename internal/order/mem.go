package order

import (
	"context"
	"sync"
	"time"
)

type MemRepo struct {
	mu          sync.RWMutex
	orders      []Order
	items       []Item
	nextOrderID int
	nextItemID  int
}

func NewMemRepo() *MemRepo {
	return &MemRepo{nextOrderID: 1, nextItemID: 1}
}

// Create stages the order and every item, then applies the whole batch.
// Validation happens before any state changes so a bad line never leaves a
// short order behind.
func (r *MemRepo) Create(ctx context.Context, o *Order, items []Item) error {
	for _, it := range items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return ErrInvalidItem
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextOrderID
	o.CreatedAt = time.Now().UTC()

	staged := make([]Item, len(items))
	nextItemID := r.nextItemID
	for i, it := range items {
		it.ID = nextItemID
		it.OrderID = o.ID
		staged[i] = it
		nextItemID++
	}

	r.nextOrderID++
	r.nextItemID = nextItemID
	r.orders = append(r.orders, *o)
	r.items = append(r.items, staged...)
	copy(items, staged)
	return nil
}

func (r *MemRepo) GetByID(ctx context.Context, id int) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			cp := r.orders[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) ItemsByOrder(ctx context.Context, orderID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Item{}
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *MemRepo) SetPaymentIntent(ctx context.Context, id int, intentID string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].PaymentIntentID = intentID
			cp := r.orders[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}
