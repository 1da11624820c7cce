package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item represents a consigned inventory item offered for sale
type Item struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ConsignorID uuid.UUID      `gorm:"type:uuid;not null;index" json:"consignor_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	SKU         string         `gorm:"size:100;unique;not null" json:"sku"`
	Price       int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Quantity    int            `gorm:"default:0" json:"quantity"`
	Notes       *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Consignor Consignor `gorm:"foreignKey:ConsignorID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
