package models

import "fmt"

// ShippingAddress : adresse produite par le widget de saisie.
// Nil tant que le widget n'a pas signalé un état complet.
type ShippingAddress struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Email         string `json:"email,omitempty"`
}

// Complete : l'adresse est structurellement valide pour le checkout
func (a *ShippingAddress) Complete() bool {
	if a == nil {
		return false
	}
	return a.StreetAddress != "" && a.City != "" && a.State != "" &&
		a.PostalCode != "" && a.Country != ""
}

// Formatted : format attendu par POST /checkout (champ shipping_address)
func (a *ShippingAddress) Formatted() string {
	return fmt.Sprintf("%s, %s, %s %s, %s",
		a.StreetAddress, a.City, a.State, a.PostalCode, a.Country)
}

type Order struct {
	OrderID         string     `json:"order_id"`
	User            int        `json:"user"`
	Amount          string     `json:"amount"`
	ShippingAddress string     `json:"shipping_address"`
	Status          string     `json:"status"`
	CreatedAt       string     `json:"created_at"`
	Items           []CartItem `json:"items"`
}

type CheckoutResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}
