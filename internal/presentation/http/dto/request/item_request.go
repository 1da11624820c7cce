package request

import "github.com/google/uuid"

// CreateItemRequest represents an item creation request
type CreateItemRequest struct {
	ConsignorID uuid.UUID `json:"consignor_id" binding:"required"`
	Name        string    `json:"name" binding:"required,min=2,max=255"`
	SKU         string    `json:"sku" binding:"omitempty,max=100"`
	Price       float64   `json:"price" binding:"required,gt=0"`
	Quantity    int       `json:"quantity" binding:"min=0"`
	Notes       *string   `json:"notes"`
}

// UpdateItemRequest represents an item update request
type UpdateItemRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,gt=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,min=0"`
	Notes    *string  `json:"notes"`
}
