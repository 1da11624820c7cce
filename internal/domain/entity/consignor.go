package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Consignor represents a vendor placing goods for sale on commission
type Consignor struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ConsignorNumber string         `gorm:"size:100;unique;not null" json:"consignor_number"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Email           *string        `gorm:"size:255" json:"email,omitempty"`
	Phone           *string        `gorm:"size:50" json:"phone,omitempty"`
	Address         *string        `gorm:"type:text" json:"address,omitempty"`
	// DefaultSplit is the consignor's share of each sale, 0 < split <= 1.
	// Editing it never changes past sales: line items carry their own
	// snapshot taken at checkout.
	DefaultSplit decimal.Decimal `gorm:"type:numeric(5,4);not null" json:"default_split"`
	Active       bool            `gorm:"default:true" json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Items   []Item   `gorm:"foreignKey:ConsignorID" json:"-"`
	Payouts []Payout `gorm:"foreignKey:ConsignorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new consignor
func (c *Consignor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Consignor model
func (Consignor) TableName() string {
	return "consignors"
}
