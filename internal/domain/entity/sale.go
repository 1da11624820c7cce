package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale represents a completed point-of-sale transaction
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleNumber    string             `gorm:"size:100;unique;not null" json:"sale_number"`
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	SubTotal      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax           int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total         int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CompletedAt   time.Time          `gorm:"not null;index" json:"completed_at"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Items   []SaleLineItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Refunds []Refund       `gorm:"foreignKey:SaleID" json:"refunds,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(s),
		SubTotal: float64(s.SubTotal) / 100,
		Tax:      float64(s.Tax) / 100,
		Total:    float64(s.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleLineItem is one row of a completed sale. Rows are immutable once
// written: the commission split and tender are snapshotted here at
// checkout so that later edits to the consignor or sale never change
// what the consignor is owed for this row.
type SaleLineItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ConsignorID uuid.UUID `gorm:"type:uuid;not null;index" json:"consignor_id"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	ItemName    string    `gorm:"size:255;not null" json:"item_name"`
	SKU         string    `gorm:"size:100" json:"sku"`
	UnitPrice   int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Quantity    int       `gorm:"not null" json:"quantity"`
	// SplitSnapshot is the consignor's commission split captured at sale
	// completion. All payout math uses this value, never the consignor's
	// current default split.
	SplitSnapshot decimal.Decimal    `gorm:"type:numeric(5,4);not null" json:"split_snapshot"`
	TaxCollected  int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	CompletedAt   time.Time          `gorm:"not null;index" json:"completed_at"`
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
	Item Item `gorm:"foreignKey:ItemID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (li SaleLineItem) MarshalJSON() ([]byte, error) {
	type Alias SaleLineItem
	return json.Marshal(&struct {
		Alias
		UnitPrice    float64 `json:"unit_price"`
		TaxCollected float64 `json:"tax_collected"`
	}{
		Alias:        Alias(li),
		UnitPrice:    float64(li.UnitPrice) / 100,
		TaxCollected: float64(li.TaxCollected) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale line item
func (li *SaleLineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLineItem model
func (SaleLineItem) TableName() string {
	return "sale_line_items"
}
