package controllers

import (
	"github.com/gin-gonic/gin"

	"urban-threads/services"
)

type OrderController struct {
	Checkout *services.Checkout
}

func NewOrderController(checkout *services.Checkout) *OrderController {
	return &OrderController{Checkout: checkout}
}

// PlaceOrder godoc
// @Summary Place order
// @Description Snapshot the cart into an order summary and empty it
// @Tags Checkout
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /checkout [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	summary := ctrl.Checkout.PlaceOrder()
	if len(summary.Items) == 0 {
		c.JSON(200, gin.H{"success": true, "message": "Cart is empty", "data": summary})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order placed", "data": summary})
}
