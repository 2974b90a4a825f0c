package handlers

import (
	"errors"
	"net/http"

	"namas_storefront/internal/checkout"
	"namas_storefront/internal/gateway"
	"namas_storefront/internal/models"
	"namas_storefront/internal/payment"

	"github.com/gin-gonic/gin"
)

//
// 🧾 GET /api/checkout — ouvre le flux, instantané du panier
//
func (a *App) BeginCheckout(c *gin.Context) {
	flow := checkout.NewOrchestrator(a.Gateway, a.Payments, a.Bus, a.ReturnURL)

	err := flow.Load(c.Request.Context())
	if errors.Is(err, checkout.ErrCartEmpty) {
		a.setCheckoutFlow(flow)
		c.JSON(http.StatusOK, gin.H{"cartEmpty": true, "items": []models.CartItem{}})
		return
	}
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthenticated) {
			a.Bus.PublishAuthDialog()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	a.setCheckoutFlow(flow)
	items := flow.Items()
	c.JSON(http.StatusOK, gin.H{
		"cartEmpty": false,
		"items":     items,
		"total":     models.CartTotal(items),
		"state":     flow.State(),
	})
}

//
// 🏠 POST /api/checkout/address — état du widget d'adresse (null = incomplète)
//
func (a *App) SetCheckoutAddress(c *gin.Context) {
	flow := a.checkoutFlow()
	if flow == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "aucun checkout en cours"})
		return
	}

	var input struct {
		Address *models.ShippingAddress `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := flow.SetAddress(c.Request.Context(), input.Address); err != nil {
		if errors.Is(err, checkout.ErrCartEmpty) {
			c.JSON(http.StatusOK, gin.H{"cartEmpty": true, "state": flow.State()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "state": flow.State()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":        flow.State(),
		"clientSecret": flow.ClientSecret(),
	})
}

//
// 💳 POST /api/checkout/submit — finalise la commande puis confirme le paiement
//
func (a *App) SubmitCheckout(c *gin.Context) {
	flow := a.checkoutFlow()
	if flow == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "aucun checkout en cours"})
		return
	}

	status, err := flow.Submit(c.Request.Context())
	if err != nil {
		var confirmErr *payment.ConfirmError
		if errors.As(err, &confirmErr) && confirmErr.Inline() {
			// Erreur carte/validation : message en ligne sur le formulaire
			c.JSON(http.StatusOK, gin.H{
				"state":   flow.State(),
				"message": confirmErr.Message,
			})
			return
		}
		if errors.Is(err, checkout.ErrNoAddress) || errors.Is(err, checkout.ErrNotPayable) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": flow.State()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"state":   flow.State(),
			"message": "An unexpected error occurred.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":   flow.State(),
		"status":  status,
		"message": "Payment successful!",
	})
}

//
// ✅ GET /api/checkout/complete — page de complétion (en ligne ou redirect)
//
func (a *App) CompleteCheckout(c *gin.Context) {
	result := checkout.CompletePayment(c.Request.Context(), a.Payments, c.Request.URL.Query())
	c.JSON(http.StatusOK, result)
}

//
// 📮 POST /api/address/verify
//
func (a *App) VerifyAddress(c *gin.Context) {
	var address models.ShippingAddress
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	resp, err := a.Gateway.VerifyAddress(c.Request.Context(), &address)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
