package services

import (
	"math"
	"testing"

	"urban-threads/models"
	"urban-threads/storage"
)

func testProduct(id string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: models.CategoryCaps,
	}
}

func TestAddToCartIncrementsQuantity(t *testing.T) {
	cart := NewCartStore(storage.NewMemoryStore(), testLogger())
	p := testProduct("p1", 19.99)

	cart.AddToCart(p)
	cart.AddToCart(p)
	cart.AddToCart(p)

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected exactly one line item, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
}

func TestAddToCartOpensPanel(t *testing.T) {
	cart := NewCartStore(storage.NewMemoryStore(), testLogger())
	if cart.IsOpen() {
		t.Fatal("cart should start closed")
	}

	cart.AddToCart(testProduct("p1", 5))
	if !cart.IsOpen() {
		t.Fatal("adding to cart must open the panel")
	}
}

func TestRemoveFromCart(t *testing.T) {
	cart := NewCartStore(storage.NewMemoryStore(), testLogger())
	p := testProduct("p1", 5)
	cart.AddToCart(p)
	cart.AddToCart(p)

	cart.RemoveFromCart("p1")
	if len(cart.Items()) != 0 {
		t.Fatal("remove must delete the item regardless of quantity")
	}
}

func TestUpdateQuantity(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		wantGone bool
		wantQty  int
	}{
		{"zero removes", 0, true, 0},
		{"negative removes", -1, true, 0},
		{"positive sets exactly", 5, false, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cart := NewCartStore(storage.NewMemoryStore(), testLogger())
			cart.AddToCart(testProduct("p1", 5))

			cart.UpdateQuantity("p1", tc.quantity)

			items := cart.Items()
			if tc.wantGone {
				if len(items) != 0 {
					t.Fatalf("expected item removed, got %d items", len(items))
				}
				return
			}
			if len(items) != 1 || items[0].Quantity != tc.wantQty {
				t.Fatalf("expected quantity %d, got %+v", tc.wantQty, items)
			}
		})
	}

	t.Run("unknown id is a no-op", func(t *testing.T) {
		cart := NewCartStore(storage.NewMemoryStore(), testLogger())
		cart.AddToCart(testProduct("p1", 5))

		cart.UpdateQuantity("nope", 7)

		items := cart.Items()
		if len(items) != 1 || items[0].Quantity != 1 {
			t.Fatalf("no-op expected, got %+v", items)
		}
	})
}

func TestSubtotal(t *testing.T) {
	cart := NewCartStore(storage.NewMemoryStore(), testLogger())
	p := testProduct("p1", 19.99)

	cart.AddToCart(p)
	cart.AddToCart(p)
	cart.AddToCart(p)

	if got := cart.Subtotal(); math.Abs(got-59.97) > 1e-9 {
		t.Fatalf("expected subtotal 59.97, got %v", got)
	}

	cart.AddToCart(testProduct("p2", 5.00))
	if got := cart.Subtotal(); math.Abs(got-64.97) > 1e-9 {
		t.Fatalf("expected subtotal 64.97, got %v", got)
	}

	cart.ClearCart()
	if got := cart.Subtotal(); got != 0 {
		t.Fatalf("expected empty subtotal, got %v", got)
	}
}

func TestCartPersistsItemsButNotVisibility(t *testing.T) {
	store := storage.NewMemoryStore()
	cart := NewCartStore(store, testLogger())

	first := testProduct("p1", 10)
	second := testProduct("p2", 20)
	cart.AddToCart(first)
	cart.AddToCart(second)
	cart.AddToCart(second)

	reloaded := NewCartStore(store, testLogger())
	items := reloaded.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 line items after reload, got %d", len(items))
	}
	// Insertion order is preserved.
	if items[0].ID != "p1" || items[1].ID != "p2" {
		t.Fatalf("order lost across reload: %s, %s", items[0].ID, items[1].ID)
	}
	if items[1].Quantity != 2 {
		t.Fatalf("quantity lost across reload: %d", items[1].Quantity)
	}

	// The visibility flag resets to closed.
	if reloaded.IsOpen() {
		t.Fatal("visibility flag must not persist")
	}
}

func TestCartCorruptDataStartsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Set("cart", []byte(`not json at all`))

	cart := NewCartStore(store, testLogger())
	if len(cart.Items()) != 0 {
		t.Fatal("corrupt cart data must fall back to empty")
	}
}

func TestToggleCart(t *testing.T) {
	cart := NewCartStore(storage.NewMemoryStore(), testLogger())

	if open := cart.ToggleCart(); !open {
		t.Fatal("first toggle should open")
	}
	if open := cart.ToggleCart(); open {
		t.Fatal("second toggle should close")
	}
}

func TestCartItemsAreFrozenCopies(t *testing.T) {
	store := storage.NewMemoryStore()
	catalog := NewCatalogStore(store, testLogger())
	cart := NewCartStore(store, testLogger())

	created := catalog.Add(models.ProductRequest{Name: "Cap", Price: 10, Category: models.CategoryCaps})
	cart.AddToCart(created)

	// Catalog edits and deletes do not reach into the cart.
	updated := created
	updated.Price = 99
	catalog.Update(updated)
	catalog.Delete(created.ID)

	items := cart.Items()
	if len(items) != 1 {
		t.Fatal("cart item must survive catalog delete")
	}
	if items[0].Price != 10 {
		t.Fatalf("cart item price must stay frozen at add-time, got %v", items[0].Price)
	}
}

func TestCartSubscribe(t *testing.T) {
	cart := NewCartStore(storage.NewMemoryStore(), testLogger())

	calls := 0
	unsubscribe := cart.Subscribe(func() { calls++ })
	defer unsubscribe()

	cart.AddToCart(testProduct("p1", 5))
	cart.UpdateQuantity("p1", 3)
	cart.ClearCart()

	if calls != 3 {
		t.Fatalf("expected 3 notifications, got %d", calls)
	}
}
