package models

// VerifyAddressResponse : réponse de POST /api/verify-address
type VerifyAddressResponse struct {
	Success          bool             `json:"success"`
	ValidatedAddress *ShippingAddress `json:"validated_address,omitempty"`
	Message          string           `json:"message,omitempty"`
}
