package store

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/product-order-service/internal/config"
	"github.com/fairyhunter13/product-order-service/internal/model"
)

type seedProduct struct {
	id    int64
	name  string
	price string
}

var catalogSeed = []seedProduct{
	{1, "Red Fuji Apple", "1.99"},
	{2, "Imported Banana", "0.99"},
	{3, "Sunshine Rose Grape", "4.99"},
	{4, "Thai Golden Pillow Durian", "12.99"},
	{5, "Gannan Navel Orange", "1.49"},
	{6, "Hainan Mango", "2.99"},
	{7, "Zespri Kiwifruit", "3.49"},
	{8, "Hainan Coconut", "2.49"},
	{9, "Washington Red Cherry", "7.99"},
	{10, "Peruvian Blueberry", "4.99"},
	{11, "Australian Strawberry", "3.99"},
	{12, "Florida Orange", "1.79"},
	{13, "California Avocado", "3.29"},
	{14, "Chilean Grapefruit", "2.19"},
	{15, "Philippine Pineapple", "2.79"},
	{16, "Mexican Watermelon", "3.49"},
	{17, "Egyptian Pomegranate", "3.99"},
	{18, "Turkish Fig", "4.79"},
	{19, "Spanish Lemon", "1.19"},
	{20, "Italian Peach", "2.19"},
}

// SeedProducts builds the initial catalog. Each product gets an initial
// stock in [SeedStockMin, SeedStockMin+SeedStockSpan), or exactly
// SeedStockMin when SeedRandom is off.
func SeedProducts(cfg config.Config) []*model.Product {
	out := make([]*model.Product, 0, len(catalogSeed))
	for _, sp := range catalogSeed {
		stock := cfg.SeedStockMin
		if cfg.SeedRandom && cfg.SeedStockSpan > 0 {
			stock += rand.Int64N(cfg.SeedStockSpan)
		}
		p, err := model.NewProduct(sp.id, sp.name, decimal.RequireFromString(sp.price), stock)
		if err != nil {
			// The seed table is static; a bad row is a programming error.
			panic(err)
		}
		out = append(out, p)
	}
	return out
}
