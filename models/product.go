package models

// Category is the product category. The catalog only carries caps and t-shirts.
type Category string

const (
	CategoryCaps    Category = "Caps"
	CategoryTshirts Category = "T-shirts"
)

func ValidCategory(c Category) bool {
	return c == CategoryCaps || c == CategoryTshirts
}

// Product field names mirror the persisted JSON blobs so saved catalogs
// round-trip without loss across restarts.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
	IsFeatured  bool     `json:"isFeatured"`
}

// CartItem is a frozen copy of a product plus the requested quantity.
// Quantity is always >= 1 for a stored item.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
