package routes

import (
	"github.com/gin-gonic/gin"

	"urban-threads/controllers"
	"urban-threads/middleware"
)

// Controllers holds the wired handlers. Constructed once in main and passed
// in, rather than reached for through package globals.
type Controllers struct {
	Auth    *controllers.AuthController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	Contact *controllers.ContactController
	Admin   *controllers.AdminController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", ctrl.Auth.Login)
	router.POST("/auth/logout", ctrl.Auth.Logout)

	router.GET("/products", ctrl.Product.GetAllProducts)
	router.GET("/products/:id", ctrl.Product.GetProductByID)

	router.GET("/cart", ctrl.Cart.GetCart)
	router.POST("/cart/items", ctrl.Cart.AddItem)
	router.PATCH("/cart/items/:id", ctrl.Cart.UpdateItem)
	router.DELETE("/cart/items/:id", ctrl.Cart.RemoveItem)
	router.DELETE("/cart", ctrl.Cart.ClearCart)
	router.POST("/cart/toggle", ctrl.Cart.ToggleCart)

	router.POST("/checkout", ctrl.Order.PlaceOrder)
	router.POST("/contact", ctrl.Contact.Submit)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/account", ctrl.Auth.Account)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", ctrl.Admin.GetDashboard)

		admin.POST("/products", ctrl.Product.CreateProduct)
		admin.PATCH("/products/:id", ctrl.Product.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.Product.DeleteProduct)

		admin.GET("/messages", ctrl.Admin.GetAllMessages)
	}
}
