package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProductValidation(t *testing.T) {
	price := decimal.RequireFromString("1.99")
	cases := []struct {
		name  string
		id    int64
		pname string
		price decimal.Decimal
		stock int64
	}{
		{"zero id", 0, "Apple", price, 1},
		{"negative id", -1, "Apple", price, 1},
		{"blank name", 1, "  ", price, 1},
		{"negative price", 1, "Apple", decimal.RequireFromString("-0.01"), 1},
		{"negative stock", 1, "Apple", price, -1},
	}
	for _, tc := range cases {
		if _, err := NewProduct(tc.id, tc.pname, tc.price, tc.stock); KindOf(err) != KindInvalidArgument {
			t.Fatalf("%s: expected invalid argument, got %v", tc.name, err)
		}
	}
	if _, err := NewProduct(1, "Apple", price, 0); err != nil {
		t.Fatalf("zero stock should be valid: %v", err)
	}
}

func TestNewOrderValidation(t *testing.T) {
	total := decimal.RequireFromString("3.98")
	if _, err := NewOrder("", 1, 1, total); KindOf(err) != KindInvalidArgument {
		t.Fatalf("blank id: %v", err)
	}
	if _, err := NewOrder("ORD-1", 0, 1, total); KindOf(err) != KindInvalidArgument {
		t.Fatalf("bad productId: %v", err)
	}
	if _, err := NewOrder("ORD-1", 1, 0, total); KindOf(err) != KindInvalidArgument {
		t.Fatalf("bad quantity: %v", err)
	}
	if _, err := NewOrder("ORD-1", 1, 1, decimal.RequireFromString("-1")); KindOf(err) != KindInvalidArgument {
		t.Fatalf("negative total: %v", err)
	}
	o, err := NewOrder("ORD-1", 1, 2, total)
	if err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}
	if o.ID != "ORD-1" || o.ProductID != 1 || o.Quantity != 2 {
		t.Fatalf("unexpected order: %+v", o)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(NotFoundf("x")) != KindNotFound {
		t.Fatalf("not found kind")
	}
	if KindOf(Conflictf("x")) != KindConflict {
		t.Fatalf("conflict kind")
	}
	if KindOf(InvalidArgumentf("x")) != KindInvalidArgument {
		t.Fatalf("invalid argument kind")
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Fatalf("untyped errors are internal")
	}
	if KindOf(nil) != KindInternal {
		t.Fatalf("nil has no business kind")
	}
}

func TestProductDeduct(t *testing.T) {
	p, err := NewProduct(1, "Apple", decimal.RequireFromString("1.99"), 5)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Deduct(3); err != nil {
		t.Fatalf("Deduct: %v", err)
	}
	if p.Stock() != 2 {
		t.Fatalf("expected 2, got %d", p.Stock())
	}
	if err := p.Deduct(3); KindOf(err) != KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if p.Stock() != 2 {
		t.Fatalf("failed deduct must not mutate stock")
	}
}
