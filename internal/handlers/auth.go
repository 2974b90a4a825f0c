package handlers

import (
	"net/http"

	"namas_storefront/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 👤 GET /api/account/user
//
func (a *App) CurrentUser(c *gin.Context) {
	user := a.Gateway.CurrentUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

//
// 🔐 POST /api/account/login
//
func (a *App) Login(c *gin.Context) {
	var credentials models.Login
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	resp := a.Gateway.Login(c.Request.Context(), credentials)
	if resp.Success {
		a.alert("Login successful.")
	}
	c.JSON(http.StatusOK, resp)
}

//
// 📝 POST /api/account/register
//
func (a *App) Register(c *gin.Context) {
	var registration models.Registration
	if err := c.ShouldBindJSON(&registration); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	resp := a.Gateway.Register(c.Request.Context(), registration)
	if resp.Success {
		a.alert("Registration successful.")
	}
	c.JSON(http.StatusOK, resp)
}

//
// 🚪 POST /api/account/logout
//
func (a *App) Logout(c *gin.Context) {
	if err := a.Gateway.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

//
// 🌐 GET /api/account/oauth/:provider — URL de redirection OAuth du backend
//
func (a *App) OAuthURL(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": a.Gateway.OAuthLoginURL(c.Param("provider"))})
}
