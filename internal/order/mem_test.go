package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleOrder() (*Order, []Item) {
	o := &Order{
		CustomerName:  "Sarah J.",
		CustomerEmail: "sarah@example.com",
		Status:        StatusPending,
		Total:         decimal.NewFromInt(408),
		ShippingAddress: Address{
			Name: "Sarah J.", Email: "sarah@example.com",
			Address: "1 Main St", City: "Springfield", State: "IL",
			PostalCode: "62701", Country: "US",
		},
	}
	items := []Item{
		{ProductID: 1, Name: "Medicine Buddha", Price: decimal.NewFromInt(289), Quantity: 1},
		{ProductID: 2, Name: "Tibetan Singing Bowl", Price: decimal.NewFromInt(119), Quantity: 1},
	}
	return o, items
}

func TestCreateAssignsIDs(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()

	o, items := sampleOrder()
	if err := repo.Create(ctx, o, items); err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID != 1 || o.CreatedAt.IsZero() {
		t.Fatalf("order not populated: %+v", o)
	}
	for i, it := range items {
		if it.ID == 0 || it.OrderID != o.ID {
			t.Fatalf("item %d not populated: %+v", i, it)
		}
	}

	stored, err := repo.ItemsByOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d items, expected 2", len(stored))
	}
	if stored[0].Name != "Medicine Buddha" || stored[1].Name != "Tibetan Singing Bowl" {
		t.Fatalf("items out of order: %+v", stored)
	}
}

func TestCreateAllOrNothing(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()

	o, items := sampleOrder()
	items[1].Quantity = 0 // bad line

	if err := repo.Create(ctx, o, items); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
	// nothing was written, not even the valid first line
	if _, err := repo.GetByID(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("order should not exist, got %v", err)
	}
	stored, err := repo.ItemsByOrder(ctx, 1)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no items, got %d", len(stored))
	}
}

func TestSetPaymentIntent(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()

	o, items := sampleOrder()
	if err := repo.Create(ctx, o, items); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.SetPaymentIntent(ctx, o.ID, "pi_123")
	if err != nil {
		t.Fatalf("set intent: %v", err)
	}
	if updated.PaymentIntentID != "pi_123" {
		t.Fatalf("intent=%q", updated.PaymentIntentID)
	}
	got, err := repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PaymentIntentID != "pi_123" {
		t.Fatalf("stored intent=%q", got.PaymentIntentID)
	}
}

func TestSetPaymentIntentUnknownOrder(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()

	o, items := sampleOrder()
	if err := repo.Create(ctx, o, items); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.SetPaymentIntent(ctx, 99, "pi_999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// existing order untouched
	got, err := repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PaymentIntentID != "" {
		t.Fatalf("intent mutated: %q", got.PaymentIntentID)
	}
}
