package gateway

import (
	"context"
	"fmt"
	"net/http"

	"namas_storefront/internal/models"
)

// CreatePayment demande la création d'un PaymentIntent au backend et
// retourne son client secret.
func (c *Client) CreatePayment(ctx context.Context, items []models.CartItem, address *models.ShippingAddress) (string, error) {
	payload := struct {
		Items           []models.CartItem       `json:"items"`
		ShippingAddress *models.ShippingAddress `json:"shippingAddress"`
	}{Items: items, ShippingAddress: address}

	req, err := c.newRequest(ctx, http.MethodPost, "/checkout/create-payment", payload)
	if err != nil {
		return "", err
	}

	var body struct {
		ClientSecret string `json:"clientSecret"`
	}
	resp, err := c.do(req, &body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("échec création PaymentIntent: %s", resp.Status)
	}
	return body.ClientSecret, nil
}

// Checkout finalise la commande côté backend. L'adresse part sous forme
// de chaîne formatée, c'est le contrat de POST /checkout.
func (c *Client) Checkout(ctx context.Context, address *models.ShippingAddress) (*models.Order, error) {
	payload := struct {
		ShippingAddress string `json:"shipping_address"`
	}{ShippingAddress: address.Formatted()}

	req, err := c.newRequest(ctx, http.MethodPost, "/checkout", payload)
	if err != nil {
		return nil, err
	}

	var body models.CheckoutResponse
	resp, err := c.do(req, &body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Checkout failed: %s", resp.Status)
	}
	return &body.Order, nil
}

// Orders liste les commandes de l'utilisateur courant.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}

	var body models.OrdersResponse
	resp, err := c.do(req, &body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Get orders failed: %s", resp.Status)
	}
	return body.Orders, nil
}
