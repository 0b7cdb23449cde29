package services

import (
	"time"

	"urban-threads/models"
)

// Checkout turns the current cart into an order summary. There is no
// payment or fulfillment behind it; placing an order snapshots the cart
// and empties it, mirroring the demo checkout flow.
type Checkout struct {
	cart *CartStore
}

func NewCheckout(cart *CartStore) *Checkout {
	return &Checkout{cart: cart}
}

// PlaceOrder snapshots the cart items and total, clears the cart, and
// returns the summary. An empty cart yields an empty summary.
func (c *Checkout) PlaceOrder() models.OrderSummary {
	items := c.cart.Items()
	total := c.cart.Subtotal()
	if len(items) > 0 {
		c.cart.ClearCart()
	}
	return models.OrderSummary{
		Items:    items,
		Total:    total,
		PlacedAt: time.Now().UTC(),
	}
}
