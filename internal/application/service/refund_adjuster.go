package service

import (
	"log"

	"github.com/sellbridge/consign-api/internal/domain/entity"
)

// RefundAdjustment describes how refunds against a line item change the
// consignor's share. Amounts are in cents.
type RefundAdjustment struct {
	RefundedQuantity       int
	IsFullyRefunded        bool
	IsPartiallyRefunded    bool
	AdjustedConsignorShare int64
	// Clamped is set when the ledger claims more units refunded than
	// were sold. The refunded quantity is clamped to the original
	// quantity so the share bottoms out at zero instead of going
	// negative, and the condition is surfaced on the summary.
	Clamped bool
}

// AdjustForRefunds reduces a line item's consignor share by the units
// refunded across every refund referencing it. A fully refunded item
// contributes zero; a partially refunded one contributes
// proportionally. Card fees are untouched here: processor fees are not
// refunded, so they still come out of the consignor's net.
func AdjustForRefunds(item *entity.SaleLineItem, refundItems []entity.RefundItem) RefundAdjustment {
	refunded := 0
	for _, ri := range refundItems {
		if ri.SaleLineItemID == item.ID {
			refunded += ri.Quantity
		}
	}

	adj := RefundAdjustment{RefundedQuantity: refunded}
	if refunded > item.Quantity {
		log.Printf("WARNING: line item %s has %d units refunded but only %d sold; clamping",
			item.ID, refunded, item.Quantity)
		adj.RefundedQuantity = item.Quantity
		adj.Clamped = true
		refunded = item.Quantity
	}

	adj.IsFullyRefunded = refunded >= item.Quantity && item.Quantity > 0
	adj.IsPartiallyRefunded = refunded > 0 && refunded < item.Quantity

	gross := shareCents(item.UnitPrice, item.Quantity, item.SplitSnapshot)
	adj.AdjustedConsignorShare = gross - shareCents(item.UnitPrice, refunded, item.SplitSnapshot)
	return adj
}
