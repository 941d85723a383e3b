package model

// Product represents a product record. Category is a free-text tag used for
// grouping, not a reference into the categories collection.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
	InStock     bool    `json:"inStock"`
	Stock       int     `json:"stock"`
}
