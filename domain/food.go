package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFood     = "food added successfully"
	MessageSuccessUpdateFood  = "food updated successfully"
	MessageSuccessDeleteFood  = "food deleted successfully"
	MessageSuccessGetFoods    = "foods retrieved successfully"
	MessageSuccessGetFood     = "food retrieved successfully"
	MessageSuccessAdjustStock = "stock adjusted successfully"
	MessageFailedAddFood      = "failed to add food"
	MessageFailedUpdateFood   = "failed to update food"
	MessageFailedDeleteFood   = "failed to delete food"
	MessageFailedGetFoods     = "failed to retrieve foods"
	MessageFailedAdjustStock  = "failed to adjust stock"
	MessageFailedFoodNotFound = "food not found"

	ErrFoodNotFound    = errors.New("food not found")
	ErrInvalidQuantity = errors.New("quantity bought must be a positive integer")
)

type (
	AddFoodRequest struct {
		FoodName    string  `json:"food_name" validate:"required"`
		FoodImage   string  `json:"food_image" validate:"omitempty,url"`
		Category    string  `json:"food_category" validate:"required"`
		Origin      string  `json:"food_origin" validate:"omitempty"`
		Description string  `json:"description" validate:"omitempty"`
		Price       float64 `json:"price" validate:"required,gt=0"`
		Quantity    int     `json:"quantity" validate:"min=0"`
		Count       int     `json:"count" validate:"min=0"`
		SellerEmail string  `json:"seller_email" validate:"required,email"`
		SellerName  string  `json:"seller_name" validate:"omitempty"`
	}

	AddFoodResponse struct {
		ID string `json:"inserted_id"`
	}

	// UpdateFoodRequest carries any subset of the listing fields; absent
	// fields keep their stored values. The update is keyed on the route id
	// and creates the row when it does not exist yet.
	UpdateFoodRequest struct {
		FoodName    *string  `json:"food_name" validate:"omitempty,min=1"`
		FoodImage   *string  `json:"food_image" validate:"omitempty,url"`
		Category    *string  `json:"food_category" validate:"omitempty,min=1"`
		Origin      *string  `json:"food_origin"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price" validate:"omitempty,gt=0"`
		Quantity    *int     `json:"quantity" validate:"omitempty,min=0"`
		Count       *int     `json:"count" validate:"omitempty,min=0"`
		SellerEmail *string  `json:"seller_email" validate:"omitempty,email"`
		SellerName  *string  `json:"seller_name"`
	}

	// StockAdjustmentRequest is the body of the purchase-changes and
	// delete-changes routes. The field name matches the web client's payload.
	StockAdjustmentRequest struct {
		QuantityBought int `json:"quantityBought" validate:"required,min=1"`
	}

	FoodResponse struct {
		ID          string    `json:"id"`
		FoodName    string    `json:"food_name"`
		FoodImage   string    `json:"food_image,omitempty"`
		Category    string    `json:"food_category"`
		Origin      string    `json:"food_origin"`
		Description string    `json:"description"`
		Price       float64   `json:"price"`
		Quantity    int       `json:"quantity"`
		Count       int       `json:"count"`
		SellerEmail string    `json:"seller_email"`
		SellerName  string    `json:"seller_name"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
