package services

import (
	"math"
	"testing"

	"urban-threads/storage"
)

func TestPlaceOrderSnapshotsAndClears(t *testing.T) {
	cart := NewCartStore(storage.NewMemoryStore(), testLogger())
	checkout := NewCheckout(cart)

	cart.AddToCart(testProduct("p1", 19.99))
	cart.AddToCart(testProduct("p1", 19.99))
	cart.AddToCart(testProduct("p2", 5.00))

	summary := checkout.PlaceOrder()

	if len(summary.Items) != 2 {
		t.Fatalf("expected 2 line items in summary, got %d", len(summary.Items))
	}
	if math.Abs(summary.Total-44.98) > 1e-9 {
		t.Fatalf("expected total 44.98, got %v", summary.Total)
	}
	if summary.PlacedAt.IsZero() {
		t.Fatal("expected placed-at timestamp")
	}

	if len(cart.Items()) != 0 {
		t.Fatal("cart must be empty after checkout")
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	cart := NewCartStore(storage.NewMemoryStore(), testLogger())
	checkout := NewCheckout(cart)

	summary := checkout.PlaceOrder()
	if len(summary.Items) != 0 || summary.Total != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}
