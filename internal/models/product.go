package models

type Product struct {
	ProductID   string   `json:"product_id"`
	Name        string   `json:"name"`
	Images      []string `json:"images"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Inventory   int      `json:"inventory"`
	Rating      *float64 `json:"rating"`
	Beads       []Bead   `json:"beads,omitempty"`
}

type ProductsResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}

type ProductDetailsResponse struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
}

type PageCountResponse struct {
	Success bool `json:"success"`
	Pages   int  `json:"pages"`
}

// Champs de tri acceptés par le backend
const (
	SortByPrice      = "price"
	SortByCreatedAt  = "created_at"
	SortBySalesCount = "sales_count"
)

// ProductFilter : paramètres de la requête /products
type ProductFilter struct {
	Type     string
	SortBy   string
	Order    string // asc ou desc
	PriceMin *float64
	PriceMax *float64
	Page     int
}
