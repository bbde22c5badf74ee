package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fairyhunter13/product-order-service/internal/catalog"
	"github.com/fairyhunter13/product-order-service/internal/config"
	"github.com/fairyhunter13/product-order-service/internal/obs"
	"github.com/fairyhunter13/product-order-service/internal/order"
)

// App wires the HTTP handlers to the catalog and order services.
type App struct {
	Cfg     config.Config
	Catalog *catalog.Service
	Orders  *order.Service
}

// NewApp constructs the HTTP application.
func NewApp(cfg config.Config, cat *catalog.Service, ord *order.Service) *App {
	return &App{Cfg: cfg, Catalog: cat, Orders: ord}
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	products := a.Catalog.List()
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "product id must be a number")
		return
	}
	p, err := a.Catalog.Get(id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

func (a *App) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return
	}
	var req CreateOrderRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	sum, err := a.Orders.CreateOrder(r.Context(), toOrderItems(req.Items))
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	resp := CreateOrderResponse{
		OrderID:    sum.OrderID,
		TotalPrice: sum.TotalPrice.InexactFloat64(),
		Status:     "pending",
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusCreated, resp)
	obs.Logger.Info("order_accepted",
		"request_id", RequestIDFromContext(r.Context()),
		"order_id", resp.OrderID,
		"total_price", resp.TotalPrice,
	)
}

func (a *App) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	o, ok := a.Orders.GetOrder(id)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "order not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
