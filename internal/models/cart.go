package models

// CartItem : ligne du panier telle que le backend la sérialise.
// Les bracelets personnalisés portent un product_id vide.
type CartItem struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Inventory int      `json:"inventory"`
	Price     float64  `json:"price"`
	Category  string   `json:"category,omitempty"`
	Images    []string `json:"images,omitempty"`
	Beads     []Bead   `json:"beads,omitempty"`
}

type CartResponse struct {
	Success   bool       `json:"success"`
	CartItems []CartItem `json:"cart_items"`
	Messages  []string   `json:"messages,omitempty"`
}

// CartTotal calcule le prix total du panier
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
