package handlers

import (
	"errors"
	"net/http"

	"namas_storefront/internal/gateway"

	"github.com/gin-gonic/gin"
)

//
// 📦 GET /api/orders
//
func (a *App) Orders(c *gin.Context) {
	orders, err := a.Gateway.Orders(c.Request.Context())
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthenticated) {
			a.Bus.PublishAuthDialog()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
