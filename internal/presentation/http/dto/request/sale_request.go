package request

import "github.com/google/uuid"

// SaleItemRequest represents one line of a checkout request
type SaleItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest represents a checkout request
type CreateSaleRequest struct {
	PaymentMethod string            `json:"payment_method" binding:"required,oneof=cash card"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// RefundItemRequest represents one refunded line
type RefundItemRequest struct {
	SaleLineItemID uuid.UUID `json:"sale_line_item_id" binding:"required"`
	Quantity       int       `json:"quantity" binding:"required,gt=0"`
	Restocked      bool      `json:"restocked"`
}

// CreateRefundRequest represents a refund request against a sale
type CreateRefundRequest struct {
	PaymentMethod string              `json:"payment_method" binding:"required,oneof=cash card"`
	Reason        *string             `json:"reason"`
	Items         []RefundItemRequest `json:"items" binding:"required,min=1,dive"`
}
