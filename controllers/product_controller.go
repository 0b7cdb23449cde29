package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"urban-threads/models"
	"urban-threads/services"
)

type ProductController struct {
	Catalog *services.CatalogStore
}

func NewProductController(catalog *services.CatalogStore) *ProductController {
	return &ProductController{Catalog: catalog}
}

// GetAllProducts godoc
// @Summary Get products
// @Description Get the catalog, newest first, optionally filtered by category and max price
// @Tags Products
// @Produce json
// @Param category query string false "Category filter" Enums(Caps, T-shirts)
// @Param max_price query number false "Maximum price"
// @Param featured query bool false "Only featured products"
// @Success 200 {object} map[string]interface{}
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	if featured, _ := strconv.ParseBool(c.Query("featured")); featured {
		products := ctrl.Catalog.Featured()
		c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": products, "total": len(products)})
		return
	}

	category := models.Category(strings.TrimSpace(c.Query("category")))
	if category != "" && !models.ValidCategory(category) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category"})
		return
	}

	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)

	products := ctrl.Catalog.Filter(category, maxPrice)
	c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": products, "total": len(products)})
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Get product details for the detail view
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, ok := ctrl.Catalog.FindByID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

func validateProductRequest(req models.ProductRequest) (string, bool) {
	if strings.TrimSpace(req.Name) == "" {
		return "Name is required", false
	}
	if req.Price < 0 {
		return "Price must not be negative", false
	}
	if !models.ValidCategory(req.Category) {
		return "Invalid category", false
	}
	return "", true
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ProductRequest true "Product"
// @Success 201 {object} map[string]interface{}
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if msg, ok := validateProductRequest(req); !ok {
		c.JSON(400, gin.H{"success": false, "message": msg})
		return
	}

	product := ctrl.Catalog.Add(req)
	c.JSON(201, gin.H{"success": true, "message": "Product created", "data": product})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Replace the product with a matching id (Admin). Unknown ids are ignored.
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.ProductRequest true "Product"
// @Success 200 {object} map[string]interface{}
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if msg, ok := validateProductRequest(req); !ok {
		c.JSON(400, gin.H{"success": false, "message": msg})
		return
	}

	ctrl.Catalog.Update(models.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		IsFeatured:  req.IsFeatured,
	})

	c.JSON(200, gin.H{"success": true, "message": "Product updated"})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Delete the product with a matching id (Admin). Unknown ids are ignored.
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	ctrl.Catalog.Delete(c.Param("id"))
	c.JSON(200, gin.H{"success": true, "message": "Product deleted"})
}
