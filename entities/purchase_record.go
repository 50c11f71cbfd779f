package entities

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseRecord is a receipt; food name, image and price are copied from the
// listing at purchase time so the buyer's history survives listing edits.
// FoodID is a plain reference without a database constraint: the cascade on
// listing deletion runs as a follow-up operation, not inside one transaction.
type PurchaseRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID         uuid.UUID `gorm:"index" json:"food_id"`
	BuyerEmail     string    `gorm:"index" json:"buyer_email"`
	BuyerName      string    `json:"buyer_name"`
	QuantityBought int       `json:"quantity_bought"`
	FoodName       string    `json:"food_name"`
	FoodImage      string    `json:"food_image,omitempty"`
	Price          float64   `json:"price"`
	PurchaseDate   time.Time `json:"purchase_date"`

	Timestamp
}
