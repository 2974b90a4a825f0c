package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"namas_storefront/internal/models"
)

// GetCart relit le panier complet depuis le backend. Un 401 est remonté
// comme ErrUnauthenticated pour que l'UI ouvre la boîte de connexion au
// lieu d'une alerte générique.
func (c *Client) GetCart(ctx context.Context) ([]models.CartItem, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/cart", nil)
	if err != nil {
		return nil, err
	}

	var body models.CartResponse
	resp, err := c.do(req, &body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return nil, cartError(body.Messages, "Failed to get cart")
	}
	return body.CartItems, nil
}

// ReplaceCart réécrit le panier entier (aucun protocole de delta).
// Retourne les messages consultatifs du backend (ajustements de stock).
func (c *Client) ReplaceCart(ctx context.Context, items []models.CartItem) ([]string, error) {
	payload := struct {
		CartItems []models.CartItem `json:"cart_items"`
	}{CartItems: items}

	req, err := c.newRequest(ctx, http.MethodPost, "/cart", payload)
	if err != nil {
		return nil, err
	}

	var body models.CartResponse
	resp, err := c.do(req, &body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return nil, cartError(body.Messages, "Failed to update cart")
	}
	return body.Messages, nil
}

func cartError(messages []string, fallback string) error {
	if len(messages) > 0 {
		return errors.New(messages[0])
	}
	return fmt.Errorf("%s", fallback)
}
