// Package model defines domain types used by the service.
package model

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product. Identity, name, and price are fixed
// at construction; stock is the only mutable field and is guarded by a
// per-product mutex so that concurrent check-then-deduct sequences on the
// same product serialize, while distinct products never block each other.
type Product struct {
	id    int64
	name  string
	price decimal.Decimal

	mu    sync.Mutex
	stock int64
}

// NewProduct validates and constructs a Product.
func NewProduct(id int64, name string, price decimal.Decimal, stock int64) (*Product, error) {
	if id <= 0 {
		return nil, InvalidArgumentf("product id must be a positive number")
	}
	if strings.TrimSpace(name) == "" {
		return nil, InvalidArgumentf("product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, InvalidArgumentf("product price cannot be negative")
	}
	if stock < 0 {
		return nil, InvalidArgumentf("product stock cannot be negative")
	}
	return &Product{id: id, name: name, price: price, stock: stock}, nil
}

// ID returns the product identifier.
func (p *Product) ID() int64 { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal { return p.price }

// Stock returns the currently available units.
func (p *Product) Stock() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stock
}

// Deduct atomically checks availability and removes qty units from stock.
// It returns a Conflict error when fewer than qty units are available; stock
// never goes negative.
func (p *Product) Deduct(qty int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stock < qty {
		return Conflictf("insufficient stock for product: %s", p.name)
	}
	p.stock -= qty
	return nil
}

// Order represents one persisted order line. Orders are immutable after
// construction; a multi-item request produces one Order per line item, all
// sharing the same ID.
type Order struct {
	ID         string
	ProductID  int64
	Quantity   int64
	TotalPrice decimal.Decimal
}

// NewOrder validates and constructs an Order.
func NewOrder(id string, productID, quantity int64, totalPrice decimal.Decimal) (*Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, InvalidArgumentf("order id cannot be empty")
	}
	if productID <= 0 {
		return nil, InvalidArgumentf("productId must be a positive number")
	}
	if quantity <= 0 {
		return nil, InvalidArgumentf("quantity must be greater than 0")
	}
	if totalPrice.IsNegative() {
		return nil, InvalidArgumentf("order total price cannot be negative")
	}
	return &Order{ID: id, ProductID: productID, Quantity: quantity, TotalPrice: totalPrice}, nil
}

// OrderItem is one (productId, quantity) pair within an order request. It is
// transient input and never persisted on its own.
type OrderItem struct {
	ProductID int64
	Quantity  int64
}

// OrderSummary is the result of placing an order: the ID shared by every
// persisted line and the rounded aggregate total.
type OrderSummary struct {
	OrderID    string
	TotalPrice decimal.Decimal
}
