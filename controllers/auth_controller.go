package controllers

import (
	"github.com/gin-gonic/gin"

	"urban-threads/models"
	"urban-threads/services"
	"urban-threads/utils"
)

type AuthController struct {
	Sessions *services.SessionStore
}

func NewAuthController(sessions *services.SessionStore) *AuthController {
	return &AuthController{Sessions: sessions}
}

// Login godoc
// @Summary User login
// @Description Login with email and password against the demo accounts
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	identity, err := ctrl.Sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}
	if identity == nil {
		// Same message for wrong email and wrong password.
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(*identity)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"token": token,
			"user": gin.H{
				"email": identity.Email,
				"name":  identity.Name,
				"role":  identity.Role,
			},
		},
	})
}

// Logout godoc
// @Summary User logout
// @Description Clear the active session
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.Sessions.Logout()
	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}

// Account godoc
// @Summary Get account details
// @Description Get the signed-in user's account details
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /account [get]
func (ctrl *AuthController) Account(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"message": "Account retrieved",
		"data": gin.H{
			"email": c.GetString("user_email"),
			"name":  c.GetString("user_name"),
			"role":  c.GetString("user_role"),
		},
	})
}
