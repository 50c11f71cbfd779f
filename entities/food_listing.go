package entities

import (
	"github.com/google/uuid"
)

type FoodListing struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodName    string    `gorm:"index" json:"food_name"`
	FoodImage   string    `json:"food_image,omitempty"`
	Category    string    `json:"food_category"`
	Origin      string    `json:"food_origin"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"` // remaining stock, decremented per purchase
	Count       int       `json:"count"`    // running total sold
	SellerEmail string    `gorm:"index" json:"seller_email"`
	SellerName  string    `json:"seller_name"`

	Timestamp
}
