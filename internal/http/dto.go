package httpapi

import (
	"github.com/fairyhunter13/product-order-service/internal/model"
)

// CreateOrderRequest is the POST /orders payload.
type CreateOrderRequest struct {
	Items []OrderItemDTO `json:"items"`
}

// OrderItemDTO is one requested line item.
type OrderItemDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// CreateOrderResponse is returned after a successful order placement.
type CreateOrderResponse struct {
	OrderID    string  `json:"orderId"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

// ProductResponse is the wire shape of a catalog product.
type ProductResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

// OrderResponse is the wire shape of a persisted order line.
type OrderResponse struct {
	ID         string  `json:"id"`
	ProductID  int64   `json:"productId"`
	Quantity   int64   `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

func toOrderItems(items []OrderItemDTO) []model.OrderItem {
	out := make([]model.OrderItem, len(items))
	for i, it := range items {
		out[i] = model.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return out
}

func toProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price().InexactFloat64(),
		Stock: p.Stock(),
	}
}

func toOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice.InexactFloat64(),
	}
}
