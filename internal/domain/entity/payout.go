package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Payout is an immutable record of money actually paid to a consignor.
// Rows are only ever inserted, never updated or deleted: together they
// form the financial audit trail, and the latest row anchors the start
// of the next reconciliation period.
//
// The unique index on (consignor_id, period_end) is the store-level
// guard against two operators recording a payout for the same period
// concurrently; the engine itself takes no locks.
type Payout struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ConsignorID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_payouts_consignor_period" json:"consignor_id"`
	PaidAt      time.Time `gorm:"not null;index" json:"paid_at"`
	PeriodStart time.Time `gorm:"not null" json:"period_start"`
	PeriodEnd   time.Time `gorm:"not null;uniqueIndex:idx_payouts_consignor_period" json:"period_end"`
	Amount      int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON

	// Audit snapshot of the reconciled period.
	GrossSales   int64 `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	TaxCollected int64 `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	StoreShare   int64 `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CardFees     int64 `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	SalesCount   int   `gorm:"default:0" json:"sales_count"`
	ItemsSold    int   `gorm:"default:0" json:"items_sold"`

	// Partial payout bookkeeping. OriginalAmountDue, PartialReason and
	// BalanceDisposition are only populated when IsPartial is true.
	IsPartial          bool                    `gorm:"default:false" json:"is_partial"`
	OriginalAmountDue  *int64                  `json:"-"` // Stored in cents, excluded from JSON
	PartialReason      *string                 `gorm:"type:text" json:"partial_reason,omitempty"`
	BalanceDisposition enum.BalanceDisposition `gorm:"size:20" json:"balance_disposition,omitempty"`

	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Consignor Consignor `gorm:"foreignKey:ConsignorID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payout) MarshalJSON() ([]byte, error) {
	type Alias Payout
	out := &struct {
		Alias
		Amount            float64  `json:"amount"`
		GrossSales        float64  `json:"gross_sales"`
		TaxCollected      float64  `json:"tax_collected"`
		StoreShare        float64  `json:"store_share"`
		CardFees          float64  `json:"card_fees"`
		OriginalAmountDue *float64 `json:"original_amount_due,omitempty"`
		UnpaidRemainder   *float64 `json:"unpaid_remainder,omitempty"`
	}{
		Alias:        Alias(p),
		Amount:       float64(p.Amount) / 100,
		GrossSales:   float64(p.GrossSales) / 100,
		TaxCollected: float64(p.TaxCollected) / 100,
		StoreShare:   float64(p.StoreShare) / 100,
		CardFees:     float64(p.CardFees) / 100,
	}
	if p.OriginalAmountDue != nil {
		due := float64(*p.OriginalAmountDue) / 100
		remainder := float64(p.UnpaidRemainder()) / 100
		out.OriginalAmountDue = &due
		out.UnpaidRemainder = &remainder
	}
	return json.Marshal(out)
}

// UnpaidRemainder returns the unpaid portion of a partial payout in
// cents, or zero for a full payout. The value is only meaningful under
// the deferred disposition; a forgiven remainder is written off.
func (p *Payout) UnpaidRemainder() int64 {
	if !p.IsPartial || p.OriginalAmountDue == nil {
		return 0
	}
	return *p.OriginalAmountDue - p.Amount
}

// BeforeCreate generates a UUID before creating a new payout
func (p *Payout) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payout model
func (Payout) TableName() string {
	return "payouts"
}
