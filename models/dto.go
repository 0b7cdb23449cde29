package models

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProductRequest struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
	IsFeatured  bool     `json:"isFeatured"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// OrderSummary is the checkout confirmation: a snapshot of the cart taken
// at the moment the order was placed.
type OrderSummary struct {
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placedAt"`
}
