package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"urban-threads/models"
	"urban-threads/services"
)

type ContactController struct {
	Log *services.ContactLog
}

func NewContactController(log *services.ContactLog) *ContactController {
	return &ContactController{Log: log}
}

// Submit godoc
// @Summary Submit contact message
// @Description Validate and append a contact form submission
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact form"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /contact [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	submission, err := ctrl.Log.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(400, gin.H{"success": false, "message": "Validation failed", "errors": verr.Fields})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Something went wrong. Please try again."})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Thanks for reaching out!", "data": submission})
}
