package handlers

import (
	"net/http"
	"strconv"

	"namas_storefront/internal/customize"
	"namas_storefront/internal/models"

	"github.com/gin-gonic/gin"
)

func productFilterFromQuery(c *gin.Context) models.ProductFilter {
	filter := models.ProductFilter{
		Type:   c.Query("type"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	}
	if v, err := strconv.ParseFloat(c.Query("price_min"), 64); err == nil {
		filter.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(c.Query("price_max"), 64); err == nil {
		filter.PriceMax = &v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = v
	}
	return filter
}

//
// 🧾 GET /api/products — ?product_id= sert la fiche d'un seul produit
//
func (a *App) ListProducts(c *gin.Context) {
	if productID := c.Query("product_id"); productID != "" {
		product, err := a.Gateway.ProductDetails(c.Request.Context(), productID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
		return
	}

	products, err := a.Gateway.ListProducts(c.Request.Context(), productFilterFromQuery(c))
	if err != nil {
		a.alert("Error fetching products. Please try again later.")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

//
// 📄 GET /api/products/page-count
//
func (a *App) PageCount(c *gin.Context) {
	pages, err := a.Gateway.PageCount(c.Request.Context(), productFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

//
// 📿 GET /api/beads — catalogue de perles pour le sélecteur
//
func (a *App) ListBeads(c *gin.Context) {
	products, err := a.Gateway.ListProducts(c.Request.Context(), models.ProductFilter{Type: "bead"})
	if err != nil {
		a.alert("Error fetching beads. Please try again later.")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"beads": customize.BeadsFromProducts(products)})
}
