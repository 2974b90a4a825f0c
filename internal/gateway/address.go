package gateway

import (
	"context"
	"errors"
	"net/http"

	"namas_storefront/internal/models"
)

// VerifyAddress soumet l'adresse au service de normalisation du backend.
func (c *Client) VerifyAddress(ctx context.Context, address *models.ShippingAddress) (*models.VerifyAddressResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/verify-address", address)
	if err != nil {
		return nil, err
	}

	var body models.VerifyAddressResponse
	resp, err := c.do(req, &body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		if body.Message != "" {
			return nil, errors.New(body.Message)
		}
		return nil, errors.New("Address verification failed.")
	}
	return &body, nil
}
