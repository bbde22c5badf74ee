// Package main boots the product catalog and order-placement HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairyhunter13/product-order-service/internal/catalog"
	"github.com/fairyhunter13/product-order-service/internal/config"
	httpapi "github.com/fairyhunter13/product-order-service/internal/http"
	"github.com/fairyhunter13/product-order-service/internal/obs"
	"github.com/fairyhunter13/product-order-service/internal/order"
	"github.com/fairyhunter13/product-order-service/internal/store"
)

func main() {
	cfg := config.Load()
	obs.InitLogger()
	obs.Logger.Info("service_starting")

	products := store.NewProductStore(store.SeedProducts(cfg))
	orders := store.NewOrderStore()
	obs.Logger.Info("catalog_seeded", "products", len(products.FindAll()))

	app := httpapi.NewApp(cfg, catalog.NewService(products), order.NewService(products, orders))
	handler := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}
