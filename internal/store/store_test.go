package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fairyhunter13/product-order-service/internal/config"
	"github.com/fairyhunter13/product-order-service/internal/model"
)

func mustProduct(t *testing.T, id int64, name, price string, stock int64) *model.Product {
	t.Helper()
	p, err := model.NewProduct(id, name, decimal.RequireFromString(price), stock)
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	return p
}

func TestProductStoreLookup(t *testing.T) {
	s := NewProductStore([]*model.Product{
		mustProduct(t, 1, "Red Fuji Apple", "1.99", 5),
		mustProduct(t, 2, "Imported Banana", "0.99", 3),
	})
	p, ok := s.FindByID(1)
	if !ok || p.Name() != "Red Fuji Apple" {
		t.Fatalf("unexpected product: %v %v", p, ok)
	}
	if _, ok := s.FindByID(99); ok {
		t.Fatalf("expected absent product")
	}
	if got := len(s.FindAll()); got != 2 {
		t.Fatalf("expected 2 products, got %d", got)
	}
}

func TestProductDeductInsufficientStock(t *testing.T) {
	p := mustProduct(t, 1, "Spanish Lemon", "1.19", 1)
	err := p.Deduct(2)
	if model.KindOf(err) != model.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if p.Stock() != 1 {
		t.Fatalf("stock mutated on failed deduct: %d", p.Stock())
	}
}

func TestProductConcurrentDeductNeverOversells(t *testing.T) {
	const initial = 100
	p := mustProduct(t, 1, "Hainan Mango", "2.99", initial)
	var g errgroup.Group
	for i := 0; i < initial+50; i++ {
		g.Go(func() error {
			_ = p.Deduct(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := p.Stock(); got != 0 {
		t.Fatalf("expected stock 0, got %d", got)
	}
}

func TestOrderStoreSaveNil(t *testing.T) {
	s := NewOrderStore()
	err := s.Save(nil)
	if model.KindOf(err) != model.KindInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestOrderStoreSaveOverwritesSameID(t *testing.T) {
	s := NewOrderStore()
	first, _ := model.NewOrder("ORD-1", 1, 1, decimal.RequireFromString("1.99"))
	second, _ := model.NewOrder("ORD-1", 2, 2, decimal.RequireFromString("3.98"))
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(second); err != nil {
		t.Fatal(err)
	}
	got, ok := s.FindByID("ORD-1")
	if !ok || got.ProductID != 2 {
		t.Fatalf("expected overwrite, got %+v %v", got, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 order, got %d", s.Len())
	}
}

func TestOrderStoreFindByBlankID(t *testing.T) {
	s := NewOrderStore()
	if _, ok := s.FindByID("  "); ok {
		t.Fatalf("blank id should be absent")
	}
}

func TestSeedProducts(t *testing.T) {
	cfg := config.Config{SeedStockMin: 5, SeedStockSpan: 10, SeedRandom: true}
	products := SeedProducts(cfg)
	if len(products) != 20 {
		t.Fatalf("expected 20 products, got %d", len(products))
	}
	for _, p := range products {
		if st := p.Stock(); st < 5 || st >= 15 {
			t.Fatalf("stock out of range for %s: %d", p.Name(), st)
		}
	}
}

func TestSeedProductsPinned(t *testing.T) {
	cfg := config.Config{SeedStockMin: 7, SeedStockSpan: 10, SeedRandom: false}
	for _, p := range SeedProducts(cfg) {
		if p.Stock() != 7 {
			t.Fatalf("expected pinned stock 7 for %s, got %d", p.Name(), p.Stock())
		}
	}
}
