package services

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"sync"

	"urban-threads/models"
	"urban-threads/storage"
)

// CartStore owns the cart line items. Items are frozen copies taken at
// add-time: later catalog edits do not touch them. Contents persist across
// restarts; the visibility flag does not.
type CartStore struct {
	notifier

	mu    sync.Mutex
	store storage.Store
	log   *slog.Logger
	items []models.CartItem
	open  bool
}

func NewCartStore(store storage.Store, log *slog.Logger) *CartStore {
	c := &CartStore{store: store, log: log}
	c.load()
	return c
}

func (c *CartStore) load() {
	raw, err := c.store.Get(keyCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.log.Warn("could not read cart, starting empty", "error", err)
		}
		c.items = []models.CartItem{}
		return
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn("could not parse cart, starting empty", "error", err)
		items = []models.CartItem{}
	}
	c.items = items
}

func (c *CartStore) persist() {
	raw, err := json.Marshal(c.items)
	if err != nil {
		c.log.Error("failed to serialize cart", "error", err)
		return
	}
	if err := c.store.Set(keyCart, raw); err != nil {
		c.log.Error("failed to persist cart", "error", err)
	}
}

// Items returns the line items in insertion order.
func (c *CartStore) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal is recomputed on every read and rounded to cents.
func (c *CartStore) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum float64
	for _, item := range c.items {
		sum += item.Price * float64(item.Quantity)
	}
	return math.Round(sum*100) / 100
}

func (c *CartStore) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// AddToCart increments the quantity of an existing line item or inserts a
// new one with quantity 1, and opens the cart panel.
func (c *CartStore) AddToCart(product models.Product) {
	c.mu.Lock()
	found := false
	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.items = append(c.items, models.CartItem{Product: product, Quantity: 1})
	}
	c.open = true
	c.persist()
	c.mu.Unlock()

	c.notify()
}

// RemoveFromCart deletes the line item outright, regardless of quantity.
func (c *CartStore) RemoveFromCart(productID string) {
	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persist()
	c.mu.Unlock()

	c.notify()
}

// UpdateQuantity sets the line item's quantity. A quantity <= 0 removes the
// item instead; an absent id is a no-op.
func (c *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveFromCart(productID)
		return
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.persist()
	c.mu.Unlock()

	c.notify()
}

func (c *CartStore) ClearCart() {
	c.mu.Lock()
	c.items = []models.CartItem{}
	c.persist()
	c.mu.Unlock()

	c.notify()
}

// ToggleCart flips the panel visibility flag and returns the new state.
// The flag is presentation state and is never persisted.
func (c *CartStore) ToggleCart() bool {
	c.mu.Lock()
	c.open = !c.open
	open := c.open
	c.mu.Unlock()

	c.notify()
	return open
}
