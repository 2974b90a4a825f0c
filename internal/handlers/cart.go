package handlers

import (
	"errors"
	"net/http"

	"namas_storefront/internal/customize"
	"namas_storefront/internal/gateway"
	"namas_storefront/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🛒 GET /api/cart
//
func (a *App) GetCart(c *gin.Context) {
	items, err := a.Cart.Get(c.Request.Context())
	if err != nil {
		// Échec d'affichage du panier : 401 ouvre la connexion, le reste
		// part en alerte générique
		if errors.Is(err, gateway.ErrUnauthenticated) {
			a.Bus.PublishAuthDialog()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
			return
		}
		a.alert("Failed to get cart")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": models.CartTotal(items),
	})
}

//
// 🟢 POST /api/cart/add
//
func (a *App) AddToCart(c *gin.Context) {
	var input models.CartItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	if err := a.Cart.Add(c.Request.Context(), input); err != nil {
		if errors.Is(err, gateway.ErrUnauthenticated) {
			a.alert("Please sign in to add items to cart.")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
			return
		}
		a.alert("Failed to add item to cart")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit ajouté au panier"})
}

//
// 🔁 PUT /api/cart/quantity
//
func (a *App) UpdateQuantity(c *gin.Context) {
	var input struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	if err := a.Cart.UpdateQuantity(c.Request.Context(), input.ProductID, input.Quantity); err != nil {
		a.alert("Failed to update quantity")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quantité mise à jour"})
}

//
// ❌ DELETE /api/cart/:productId
//
func (a *App) RemoveFromCart(c *gin.Context) {
	productID := c.Param("productId")

	if err := a.Cart.Remove(c.Request.Context(), productID); err != nil {
		a.alert("Failed to remove item from cart")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé du panier"})
}

//
// 🗑️ DELETE /api/customize — retire les bracelets personnalisés du panier
//
// Les bracelets personnalisés portent un product_id vide, la route
// /cart/:productId ne peut donc pas les désigner. Le filtre sur l'identité
// vide retire toutes les lignes personnalisées d'un coup.
func (a *App) RemoveCustomBracelets(c *gin.Context) {
	if err := a.Cart.Remove(c.Request.Context(), ""); err != nil {
		a.alert("Failed to remove item from cart")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bracelet supprimé du panier"})
}

//
// 📿 POST /api/customize — bracelet personnalisé complet vers le panier
//
func (a *App) AddCustomBracelet(c *gin.Context) {
	var input struct {
		Beads []models.Bead `json:"beads" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	bracelet := customize.NewBracelet()
	if len(input.Beads) != customize.SlotCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le bracelet doit porter 12 perles"})
		return
	}
	for i, bead := range input.Beads {
		if err := bracelet.SetBead(i, bead); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	item, err := bracelet.CartItem()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.Cart.Add(c.Request.Context(), item); err != nil {
		a.alert("Please sign in to add items to cart.")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bracelet ajouté au panier"})
}
