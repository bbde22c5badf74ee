package store

import (
	"strings"
	"sync"

	"github.com/fairyhunter13/product-order-service/internal/model"
)

// OrderStore owns all persisted Order records.
type OrderStore struct {
	mu sync.RWMutex
	m  map[string]*model.Order
}

// NewOrderStore builds an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{m: make(map[string]*model.Order)}
}

// Save persists an order. Saving the same id twice silently overwrites;
// id uniqueness is the workflow's responsibility, not the store's.
func (s *OrderStore) Save(o *model.Order) error {
	if o == nil {
		return model.InvalidArgumentf("order cannot be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[o.ID] = o
	return nil
}

// FindByID returns the order with the given id, if any. A blank id is
// treated as not found.
func (s *OrderStore) FindByID(id string) (*model.Order, bool) {
	if strings.TrimSpace(id) == "" {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.m[id]
	return o, ok
}

// Len reports how many orders are stored.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
