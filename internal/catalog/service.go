// Package catalog exposes read operations over the product store.
package catalog

import (
	"github.com/fairyhunter13/product-order-service/internal/model"
	"github.com/fairyhunter13/product-order-service/internal/store"
)

// Service is a thin read-through wrapper over the product store.
type Service struct {
	products *store.ProductStore
}

// NewService constructs the query service.
func NewService(products *store.ProductStore) *Service {
	return &Service{products: products}
}

// List returns all current products.
func (s *Service) List() []*model.Product {
	return s.products.FindAll()
}

// Get returns the product with the given id. It fails with InvalidArgument
// for a non-positive id and NotFound when no such product exists.
func (s *Service) Get(id int64) (*model.Product, error) {
	if id <= 0 {
		return nil, model.InvalidArgumentf("product id must be a positive number")
	}
	p, ok := s.products.FindByID(id)
	if !ok {
		return nil, model.NotFoundf("product not found: %d", id)
	}
	return p, nil
}
