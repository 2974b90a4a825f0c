package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"namas_storefront/internal/models"
)

// productQuery encode les filtres produits ; /products/page-count ignore
// le tri et la page, d'où withSort.
type productQuery struct {
	filter   models.ProductFilter
	withSort bool
}

func (f *productQuery) encode() string {
	params := url.Values{}
	if f.filter.Type != "" {
		params.Set("type", f.filter.Type)
	}
	if f.withSort {
		if f.filter.SortBy != "" {
			params.Set("sort_by", f.filter.SortBy)
		}
		if f.filter.Order != "" {
			params.Set("order", f.filter.Order)
		}
	}
	if f.filter.PriceMin != nil {
		params.Set("price_min", strconv.FormatFloat(*f.filter.PriceMin, 'f', -1, 64))
	}
	if f.filter.PriceMax != nil {
		params.Set("price_max", strconv.FormatFloat(*f.filter.PriceMax, 'f', -1, 64))
	}
	if f.withSort && f.filter.Page > 0 {
		params.Set("page", strconv.Itoa(f.filter.Page))
	}
	if encoded := params.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// ListProducts retourne une page de produits selon les filtres.
func (c *Client) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := productQuery{filter: filter, withSort: true}
	req, err := c.newRequest(ctx, http.MethodGet, "/products"+query.encode(), nil)
	if err != nil {
		return nil, err
	}

	var body models.ProductsResponse
	resp, err := c.do(req, &body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("échec récupération produits: %s", resp.Status)
	}
	return body.Products, nil
}

// ProductDetails retourne un seul produit par son identifiant.
func (c *Client) ProductDetails(ctx context.Context, productID string) (*models.Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/products?product_id="+url.QueryEscape(productID), nil)
	if err != nil {
		return nil, err
	}

	var body models.ProductDetailsResponse
	resp, err := c.do(req, &body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("échec récupération produit: %s", resp.Status)
	}
	return &body.Product, nil
}

// PageCount retourne le nombre de pages pour les filtres donnés.
// Le tri et la page ne changent pas le compte, le backend les ignore.
func (c *Client) PageCount(ctx context.Context, filter models.ProductFilter) (int, error) {
	query := productQuery{filter: filter}
	req, err := c.newRequest(ctx, http.MethodGet, "/products/page-count"+query.encode(), nil)
	if err != nil {
		return 0, err
	}

	var body models.PageCountResponse
	resp, err := c.do(req, &body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("échec récupération nombre de pages: %s", resp.Status)
	}
	return body.Pages, nil
}
