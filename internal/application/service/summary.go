package service

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// ConsignorPayoutSummary is the computed view of what a consignor is
// owed for one open period. It is derived on demand from stored sales,
// refunds and payouts and is never persisted: recording a payout
// freezes its numbers into the payout row instead. Amounts are in
// cents.
type ConsignorPayoutSummary struct {
	ConsignorID     uuid.UUID `json:"consignor_id"`
	ConsignorName   string    `json:"consignor_name"`
	ConsignorNumber string    `json:"consignor_number"`
	PeriodStart     time.Time `json:"period_start"`
	PeriodEnd       time.Time `json:"period_end"`

	GrossSales    int64 `json:"-"`
	TaxCollected  int64 `json:"-"`
	StoreShare    int64 `json:"-"`
	CardFees      int64 `json:"-"`
	PendingAmount int64 `json:"-"`

	SalesCount int `json:"sales_count"`
	ItemsSold  int `json:"items_sold"`

	// HasLedgerWarnings is set when any contributing item had its
	// refunded quantity clamped; the numbers are safe to pay against
	// but the upstream data needs attention.
	HasLedgerWarnings bool `json:"has_ledger_warnings"`

	// Items lists every contributing line item in completion order,
	// annotated with its refund status, for statements and audit.
	Items []SummaryLineItem `json:"items"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s ConsignorPayoutSummary) MarshalJSON() ([]byte, error) {
	type Alias ConsignorPayoutSummary
	return json.Marshal(&struct {
		Alias
		GrossSales    float64 `json:"gross_sales"`
		TaxCollected  float64 `json:"tax_collected"`
		StoreShare    float64 `json:"store_share"`
		CardFees      float64 `json:"card_fees"`
		PendingAmount float64 `json:"pending_amount"`
	}{
		Alias:         Alias(s),
		GrossSales:    float64(s.GrossSales) / 100,
		TaxCollected:  float64(s.TaxCollected) / 100,
		StoreShare:    float64(s.StoreShare) / 100,
		CardFees:      float64(s.CardFees) / 100,
		PendingAmount: float64(s.PendingAmount) / 100,
	})
}

// SummaryLineItem is one contributing line item within a payout
// summary. Amounts are in cents.
type SummaryLineItem struct {
	LineItemID    uuid.UUID          `json:"line_item_id"`
	SaleID        uuid.UUID          `json:"sale_id"`
	ItemName      string             `json:"item_name"`
	SKU           string             `json:"sku"`
	Quantity      int                `json:"quantity"`
	UnitPrice     int64              `json:"-"`
	SplitSnapshot decimal.Decimal    `json:"split_snapshot"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	CompletedAt   time.Time          `json:"completed_at"`

	LineTotal      int64 `json:"-"`
	ConsignorShare int64 `json:"-"`
	CardFee        int64 `json:"-"`

	RefundedQuantity    int  `json:"refunded_quantity"`
	IsFullyRefunded     bool `json:"is_fully_refunded"`
	IsPartiallyRefunded bool `json:"is_partially_refunded"`
	LedgerWarning       bool `json:"ledger_warning,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (li SummaryLineItem) MarshalJSON() ([]byte, error) {
	type Alias SummaryLineItem
	return json.Marshal(&struct {
		Alias
		UnitPrice      float64 `json:"unit_price"`
		LineTotal      float64 `json:"line_total"`
		ConsignorShare float64 `json:"consignor_share"`
		CardFee        float64 `json:"card_fee"`
	}{
		Alias:          Alias(li),
		UnitPrice:      float64(li.UnitPrice) / 100,
		LineTotal:      float64(li.LineTotal) / 100,
		ConsignorShare: float64(li.ConsignorShare) / 100,
		CardFee:        float64(li.CardFee) / 100,
	})
}

// BuildPayoutSummary aggregates a consignor's line items and refunds
// over one period into a payout summary. It is a pure function of its
// inputs: given the same stored facts and the same period it produces
// identical output, which is what makes summaries safe to recompute on
// every request.
//
// Per item the pending contribution is the refund-adjusted consignor
// share minus the card fee; fees apply regardless of refund status.
// Gross sales, tax and store share shrink proportionally with refunded
// units, so a fully refunded item contributes nothing to them while
// its card fee still lands on the consignor.
func BuildPayoutSummary(
	consignor *entity.Consignor,
	period Period,
	items []entity.SaleLineItem,
	refundItems []entity.RefundItem,
	cardFeeRate decimal.Decimal,
) *ConsignorPayoutSummary {
	summary := &ConsignorPayoutSummary{
		ConsignorID:     consignor.ID,
		ConsignorName:   consignor.Name,
		ConsignorNumber: consignor.ConsignorNumber,
		PeriodStart:     period.Start,
		PeriodEnd:       period.End,
		Items:           make([]SummaryLineItem, 0, len(items)),
	}

	// Repos return items in completion order already; sort anyway so
	// the output is deterministic no matter where the slice came from.
	ordered := make([]entity.SaleLineItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CompletedAt.Equal(ordered[j].CompletedAt) {
			return ordered[i].CompletedAt.Before(ordered[j].CompletedAt)
		}
		return ordered[i].ID.String() < ordered[j].ID.String()
	})

	sales := make(map[uuid.UUID]struct{})

	for i := range ordered {
		item := &ordered[i]
		split := ComputeSplit(item, cardFeeRate)
		adj := AdjustForRefunds(item, refundItems)

		soldQty := item.Quantity - adj.RefundedQuantity
		grossContribution := item.UnitPrice * int64(soldQty)
		taxContribution := proportionalCents(item.TaxCollected, soldQty, item.Quantity)

		summary.GrossSales += grossContribution
		summary.TaxCollected += taxContribution
		summary.StoreShare += grossContribution - adj.AdjustedConsignorShare
		summary.CardFees += split.CardFee
		summary.PendingAmount += adj.AdjustedConsignorShare - split.CardFee
		summary.ItemsSold += soldQty
		if adj.Clamped {
			summary.HasLedgerWarnings = true
		}
		sales[item.SaleID] = struct{}{}

		summary.Items = append(summary.Items, SummaryLineItem{
			LineItemID:          item.ID,
			SaleID:              item.SaleID,
			ItemName:            item.ItemName,
			SKU:                 item.SKU,
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			SplitSnapshot:       item.SplitSnapshot,
			PaymentMethod:       item.PaymentMethod,
			CompletedAt:         item.CompletedAt,
			LineTotal:           split.LineTotal,
			ConsignorShare:      adj.AdjustedConsignorShare,
			CardFee:             split.CardFee,
			RefundedQuantity:    adj.RefundedQuantity,
			IsFullyRefunded:     adj.IsFullyRefunded,
			IsPartiallyRefunded: adj.IsPartiallyRefunded,
			LedgerWarning:       adj.Clamped,
		})
	}

	summary.SalesCount = len(sales)
	return summary
}

// proportionalCents scales amount by part/whole, rounded to the
// nearest cent.
func proportionalCents(amount int64, part, whole int) int64 {
	if whole == 0 || part <= 0 {
		return 0
	}
	if part >= whole {
		return amount
	}
	return decimal.NewFromInt(amount).
		Mul(decimal.New(int64(part), 0)).
		Div(decimal.New(int64(whole), 0)).
		Round(0).IntPart()
}
