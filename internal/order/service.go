// Package order implements the order-placement workflow: item validation,
// stock check-and-deduct, price rounding, order id generation, and
// persistence of the resulting order lines.
package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/product-order-service/internal/model"
	"github.com/fairyhunter13/product-order-service/internal/obs"
	"github.com/fairyhunter13/product-order-service/internal/store"
)

// Service orchestrates reads and writes across the product and order stores
// within one logical request. It owns no state of its own.
type Service struct {
	products *store.ProductStore
	orders   *store.OrderStore
}

// NewService constructs the workflow over the given stores.
func NewService(products *store.ProductStore, orders *store.OrderStore) *Service {
	return &Service{products: products, orders: orders}
}

// CreateOrder places a multi-item order. Items are processed sequentially in
// input order: each is validated, its product resolved, stock deducted under
// the product's lock, and its subtotal (price x quantity, rounded half-up to
// 2 decimals) accumulated into the total. One Order record per line item is
// built, all sharing a single id generated before processing begins, and all
// are persisted after the loop. The returned total is the rounded sum of the
// already-rounded subtotals.
//
// Stock deduction is eager: when a later item fails, deductions made for
// earlier items are not rolled back and no order record is persisted.
func (s *Service) CreateOrder(ctx context.Context, items []model.OrderItem) (model.OrderSummary, error) {
	if len(items) == 0 {
		obs.Logger.Error("order_rejected", "reason", "empty_items")
		return model.OrderSummary{}, model.InvalidArgumentf("no items in order request")
	}

	orderID := newOrderID()
	total := decimal.Zero
	orders := make([]*model.Order, 0, len(items))

	for _, item := range items {
		if err := validateItem(item); err != nil {
			obs.Logger.Error("order_rejected", "order_id", orderID, "error", err)
			return model.OrderSummary{}, err
		}

		product, ok := s.products.FindByID(item.ProductID)
		if !ok {
			obs.Logger.Error("order_rejected", "order_id", orderID, "product_id", item.ProductID, "reason", "product_not_found")
			return model.OrderSummary{}, model.NotFoundf("product not found: %d", item.ProductID)
		}

		if err := product.Deduct(item.Quantity); err != nil {
			obs.Logger.Error("order_rejected", "order_id", orderID, "product_id", item.ProductID, "reason", "insufficient_stock")
			return model.OrderSummary{}, err
		}

		itemPrice := itemTotal(product.Price(), item.Quantity)
		total = total.Add(itemPrice)

		o, err := model.NewOrder(orderID, item.ProductID, item.Quantity, itemPrice)
		if err != nil {
			return model.OrderSummary{}, err
		}
		orders = append(orders, o)
	}

	for _, o := range orders {
		if err := s.orders.Save(o); err != nil {
			return model.OrderSummary{}, err
		}
	}

	roundedTotal := total.Round(2)
	obs.Logger.Info("order_created", "order_id", orderID, "items", len(orders), "total_price", roundedTotal.String())
	return model.OrderSummary{OrderID: orderID, TotalPrice: roundedTotal}, nil
}

// CreateSingle places an order for one product and returns the persisted
// record. It follows the same validation, locking, and pricing rules as
// CreateOrder.
func (s *Service) CreateSingle(ctx context.Context, productID, quantity int64) (*model.Order, error) {
	summary, err := s.CreateOrder(ctx, []model.OrderItem{{ProductID: productID, Quantity: quantity}})
	if err != nil {
		return nil, err
	}
	o, ok := s.orders.FindByID(summary.OrderID)
	if !ok {
		return nil, model.NotFoundf("order not found: %s", summary.OrderID)
	}
	return o, nil
}

// GetOrder looks up a persisted order by id.
func (s *Service) GetOrder(id string) (*model.Order, bool) {
	return s.orders.FindByID(id)
}

func validateItem(item model.OrderItem) error {
	if item.ProductID <= 0 {
		return model.InvalidArgumentf("productId must be a positive number")
	}
	if item.Quantity < 1 {
		return model.InvalidArgumentf("quantity must be at least 1")
	}
	return nil
}

// itemTotal computes price x qty rounded half-up to 2 decimal digits.
func itemTotal(price decimal.Decimal, qty int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(qty)).Round(2)
}
