// Package store holds the in-memory product catalog and order records.
// State is process-lifetime only; both stores are safe for concurrent use.
package store

import (
	"sync"

	"github.com/fairyhunter13/product-order-service/internal/model"
)

// ProductStore owns all Product records. Products are registered once at
// construction and never added or removed afterward; stock mutation goes
// through the per-product lock on model.Product.
type ProductStore struct {
	mu sync.RWMutex
	m  map[int64]*model.Product
}

// NewProductStore builds a store over the given products.
func NewProductStore(products []*model.Product) *ProductStore {
	m := make(map[int64]*model.Product, len(products))
	for _, p := range products {
		m[p.ID()] = p
	}
	return &ProductStore{m: m}
}

// FindAll returns all current products. The slice is fresh but the elements
// are the live shared records; order is unspecified.
func (s *ProductStore) FindAll() []*model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}
	return out
}

// FindByID returns the product with the given id. Absence is not an error;
// the caller decides.
func (s *ProductStore) FindByID(id int64) (*model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.m[id]
	return p, ok
}
