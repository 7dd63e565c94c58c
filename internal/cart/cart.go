// Package cart is the shopper-side cart store: the in-progress order lives
// entirely on the client, independent of any server session, and is only
// submitted wholesale at checkout. State is persisted to a local file on
// every mutation and rehydrated on load.
package cart

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/shopspring/decimal"
)

// Item is one cart line. ID is the product id; name, price and image are
// display copies so the cart renders without refetching the catalog.
type Item struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
}

type Store struct {
	mu    sync.Mutex
	path  string
	items []Item
}

// NewStore rehydrates the cart from path. A missing or unparseable file
// yields an empty cart, never an error: losing a cart beats refusing to
// start.
func NewStore(path string) *Store {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return s
	}
	s.items = items
	return s
}

// save runs with s.mu held. Two processes sharing the same file race with
// last-write-wins semantics.
func (s *Store) save() {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("[cart] marshal: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("[cart] save: %v", err)
	}
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

// AddItem merges by product id: an existing line gains the added quantity,
// otherwise the item is appended.
func (s *Store) AddItem(it Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == it.ID {
			s.items[i].Quantity += it.Quantity
			s.save()
			return
		}
	}
	s.items = append(s.items, it)
	s.save()
}

// RemoveItem deletes the line entirely. An unknown id is a no-op.
func (s *Store) RemoveItem(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.save()
			return
		}
	}
}

// SetQuantity replaces the line's quantity. A quantity of zero or less
// removes the line.
func (s *Store) SetQuantity(id, qty int) {
	if qty <= 0 {
		s.RemoveItem(id)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = qty
			s.save()
			return
		}
	}
}

// Clear empties the cart. Called after a successful order submission.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.save()
}

// Total sums price times quantity across all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
