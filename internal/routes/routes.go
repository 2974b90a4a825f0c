package routes

import (
	"namas_storefront/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, app *handlers.App) {
	api := r.Group("/api")

	// Panier
	api.GET("/cart", app.GetCart)
	api.POST("/cart/add", app.AddToCart)
	api.PUT("/cart/quantity", app.UpdateQuantity)
	api.DELETE("/cart/:productId", app.RemoveFromCart)

	// Personnalisation
	api.GET("/beads", app.ListBeads)
	api.POST("/customize", app.AddCustomBracelet)
	api.DELETE("/customize", app.RemoveCustomBracelets)

	// Catalogue : /products?product_id= sert la fiche d'un seul produit
	api.GET("/products", app.ListProducts)
	api.GET("/products/page-count", app.PageCount)

	// Compte
	api.GET("/account/user", app.CurrentUser)
	api.POST("/account/login", app.Login)
	api.POST("/account/register", app.Register)
	api.POST("/account/logout", app.Logout)
	api.GET("/account/oauth/:provider", app.OAuthURL)

	// Checkout
	api.GET("/checkout", app.BeginCheckout)
	api.POST("/checkout/address", app.SetCheckoutAddress)
	api.POST("/checkout/submit", app.SubmitCheckout)
	api.GET("/checkout/complete", app.CompleteCheckout)
	api.POST("/address/verify", app.VerifyAddress)

	// Commandes
	api.GET("/orders", app.Orders)

	// Notification transitoire courante
	api.GET("/alert", app.CurrentAlert)

	// Notifications temps réel
	r.GET("/ws/notifications", app.NotificationsWebSocket)
}
