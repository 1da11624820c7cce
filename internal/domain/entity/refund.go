package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Refund records money returned against a prior sale. Refunds are
// append-only: they are never edited or deleted once written.
type Refund struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"sale_id"`
	Amount        int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	Reason        *string            `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt     time.Time          `gorm:"index" json:"created_at"`

	// Relationships
	Sale  Sale         `gorm:"foreignKey:SaleID" json:"-"`
	Items []RefundItem `gorm:"foreignKey:RefundID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (r Refund) MarshalJSON() ([]byte, error) {
	type Alias Refund
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(r),
		Amount: float64(r.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new refund
func (r *Refund) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Refund model
func (Refund) TableName() string {
	return "refunds"
}

// RefundItem ties a refund to one sale line item. The sum of refunded
// quantities across all refunds referencing a line item must never
// exceed the line item's original quantity.
type RefundItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RefundID       uuid.UUID `gorm:"type:uuid;not null;index" json:"refund_id"`
	SaleLineItemID uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_line_item_id"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	Restocked      bool      `gorm:"default:false" json:"restocked"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	Refund       Refund       `gorm:"foreignKey:RefundID" json:"-"`
	SaleLineItem SaleLineItem `gorm:"foreignKey:SaleLineItemID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new refund item
func (ri *RefundItem) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RefundItem model
func (RefundItem) TableName() string {
	return "refund_items"
}
