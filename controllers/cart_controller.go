package controllers

import (
	"github.com/gin-gonic/gin"

	"urban-threads/models"
	"urban-threads/services"
)

type CartController struct {
	Cart    *services.CartStore
	Catalog *services.CatalogStore
}

func NewCartController(cart *services.CartStore, catalog *services.CatalogStore) *CartController {
	return &CartController{Cart: cart, Catalog: catalog}
}

func (ctrl *CartController) cartResponse(message string) gin.H {
	return gin.H{
		"success": true,
		"message": message,
		"data": gin.H{
			"items":    ctrl.Cart.Items(),
			"subtotal": ctrl.Cart.Subtotal(),
			"isOpen":   ctrl.Cart.IsOpen(),
		},
	}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the current cart contents and subtotal
// @Tags Cart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(200, ctrl.cartResponse("Cart retrieved"))
}

// AddItem godoc
// @Summary Add product to cart
// @Description Add one of a product; repeat adds increment the quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product to add"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	// The cart keeps a frozen copy; later catalog edits do not change it.
	product, ok := ctrl.Catalog.FindByID(req.ProductID)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	ctrl.Cart.AddToCart(product)
	c.JSON(200, ctrl.cartResponse("Added to cart"))
}

// UpdateItem godoc
// @Summary Update line item quantity
// @Description Set a line item's quantity; zero or below removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} map[string]interface{}
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	ctrl.Cart.UpdateQuantity(c.Param("id"), req.Quantity)
	c.JSON(200, ctrl.cartResponse("Cart updated"))
}

// RemoveItem godoc
// @Summary Remove line item
// @Description Remove a line item outright, regardless of quantity
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	ctrl.Cart.RemoveFromCart(c.Param("id"))
	c.JSON(200, ctrl.cartResponse("Item removed"))
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove all line items
// @Tags Cart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.Cart.ClearCart()
	c.JSON(200, ctrl.cartResponse("Cart cleared"))
}

// ToggleCart godoc
// @Summary Toggle cart panel
// @Description Flip the cart panel visibility flag
// @Tags Cart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cart/toggle [post]
func (ctrl *CartController) ToggleCart(c *gin.Context) {
	ctrl.Cart.ToggleCart()
	c.JSON(200, ctrl.cartResponse("Cart toggled"))
}
