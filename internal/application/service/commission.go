package service

import (
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SplitResult is the commission breakdown for a single sale line item.
// All amounts are in cents.
type SplitResult struct {
	LineTotal      int64
	ConsignorGross int64
	StoreShare     int64
	CardFee        int64
}

// ComputeSplit breaks a line item's revenue into the consignor's gross
// share, the store's share and the processor fee. The split fraction is
// the snapshot stored on the line item at checkout, never the
// consignor's current rate. cardFeeRate is a fraction (0.029 for 2.9%)
// and applies only to card tenders; the fee comes out of the
// consignor's net because the store does not absorb processor fees on
// consigned goods.
//
// The store share is computed as the exact complement of the consignor
// share so the two always sum to the line total.
func ComputeSplit(item *entity.SaleLineItem, cardFeeRate decimal.Decimal) SplitResult {
	lineTotal := item.UnitPrice * int64(item.Quantity)
	gross := shareCents(item.UnitPrice, item.Quantity, item.SplitSnapshot)

	var cardFee int64
	if item.PaymentMethod.IsCard() {
		cardFee = decimal.NewFromInt(lineTotal).Mul(cardFeeRate).Round(0).IntPart()
	}

	return SplitResult{
		LineTotal:      lineTotal,
		ConsignorGross: gross,
		StoreShare:     lineTotal - gross,
		CardFee:        cardFee,
	}
}

// shareCents returns the consignor's share of unitPrice x quantity in
// cents, rounded to the nearest cent. Keeping one rounding point for
// both the gross share and refund deductions makes a full refund zero
// out exactly.
func shareCents(unitPrice int64, quantity int, split decimal.Decimal) int64 {
	return decimal.NewFromInt(unitPrice * int64(quantity)).Mul(split).Round(0).IntPart()
}
