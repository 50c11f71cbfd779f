package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreatePurchase  = "purchase saved successfully"
	MessageSuccessGetPurchases    = "purchases retrieved successfully"
	MessageSuccessDeletePurchase  = "purchase deleted successfully"
	MessageSuccessDeletePurchases = "purchases deleted successfully"
	MessageFailedCreatePurchase   = "failed to save purchase"
	MessageFailedGetPurchases     = "failed to retrieve purchases"
	MessageFailedDeletePurchase   = "failed to delete purchase"

	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrPaymentFailed    = errors.New("payment gateway rejected the transaction")
)

type (
	CreatePurchaseRequest struct {
		FoodID           string  `json:"food_id" validate:"required,uuid"`
		FoodName         string  `json:"food_name" validate:"required"`
		FoodImage        string  `json:"food_image" validate:"omitempty,url"`
		Price            float64 `json:"price" validate:"required,gt=0"`
		QuantityBought   int     `json:"quantityBought" validate:"required,min=1"`
		BuyerEmail       string  `json:"buyer_email" validate:"required,email"`
		BuyerName        string  `json:"buyer_name" validate:"omitempty"`
		PaymentRequested bool    `json:"payment_requested"`
	}

	CreatePurchaseResponse struct {
		ID                 string `json:"inserted_id"`
		PaymentToken       string `json:"payment_token,omitempty"`
		PaymentRedirectURL string `json:"payment_redirect_url,omitempty"`
	}

	PurchaseResponse struct {
		ID             string    `json:"id"`
		FoodID         string    `json:"food_id"`
		FoodName       string    `json:"food_name"`
		FoodImage      string    `json:"food_image,omitempty"`
		Price          float64   `json:"price"`
		QuantityBought int       `json:"quantity_bought"`
		BuyerEmail     string    `json:"buyer_email"`
		BuyerName      string    `json:"buyer_name"`
		PurchaseDate   time.Time `json:"purchase_date"`
	}
)
