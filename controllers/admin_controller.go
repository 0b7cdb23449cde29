package controllers

import (
	"github.com/gin-gonic/gin"

	"urban-threads/services"
)

type AdminController struct {
	Catalog  *services.CatalogStore
	Messages *services.ContactLog
}

func NewAdminController(catalog *services.CatalogStore, messages *services.ContactLog) *AdminController {
	return &AdminController{Catalog: catalog, Messages: messages}
}

// GetDashboard godoc
// @Summary Admin dashboard
// @Description Get store-wide counts for the dashboard cards
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/dashboard [get]
func (ctrl *AdminController) GetDashboard(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"message": "Dashboard retrieved",
		"data": gin.H{
			"total_products":   ctrl.Catalog.Count(),
			"contact_messages": ctrl.Messages.Count(),
			"total_users":      services.DemoAccountCount,
		},
	})
}

// GetAllMessages godoc
// @Summary List contact messages
// @Description Get all contact submissions, newest first
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/messages [get]
func (ctrl *AdminController) GetAllMessages(c *gin.Context) {
	messages := ctrl.Messages.ListAll()
	c.JSON(200, gin.H{"success": true, "message": "Messages retrieved", "data": messages, "total": len(messages)})
}
