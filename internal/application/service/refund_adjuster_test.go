package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func lineItem(id uuid.UUID, unitPrice int64, quantity int, split string) *entity.SaleLineItem {
	return &entity.SaleLineItem{
		ID:            id,
		UnitPrice:     unitPrice,
		Quantity:      quantity,
		SplitSnapshot: decimal.RequireFromString(split),
	}
}

func TestAdjustForRefunds(t *testing.T) {
	lineID := uuid.New()

	tests := []struct {
		name          string
		item          *entity.SaleLineItem
		refunds       []entity.RefundItem
		wantRefunded  int
		wantShare     int64
		wantFull      bool
		wantPartial   bool
		wantClamped   bool
	}{
		{
			name:         "no refunds leaves share untouched",
			item:         lineItem(lineID, 1000, 3, "0.6"),
			refunds:      nil,
			wantRefunded: 0,
			wantShare:    1800,
		},
		{
			name: "partial refund reduces share proportionally",
			item: lineItem(lineID, 1000, 3, "0.6"),
			refunds: []entity.RefundItem{
				{SaleLineItemID: lineID, Quantity: 1},
			},
			wantRefunded: 1,
			wantShare:    1200,
			wantPartial:  true,
		},
		{
			name: "refunds accumulate across records",
			item: lineItem(lineID, 1000, 3, "0.6"),
			refunds: []entity.RefundItem{
				{SaleLineItemID: lineID, Quantity: 1},
				{SaleLineItemID: lineID, Quantity: 1},
			},
			wantRefunded: 2,
			wantShare:    600,
			wantPartial:  true,
		},
		{
			name: "full refund zeroes the share",
			item: lineItem(lineID, 1000, 3, "0.6"),
			refunds: []entity.RefundItem{
				{SaleLineItemID: lineID, Quantity: 3},
			},
			wantRefunded: 3,
			wantShare:    0,
			wantFull:     true,
		},
		{
			name: "over-refund clamps to zero and flags",
			item: lineItem(lineID, 1000, 3, "0.6"),
			refunds: []entity.RefundItem{
				{SaleLineItemID: lineID, Quantity: 5},
			},
			wantRefunded: 3,
			wantShare:    0,
			wantFull:     true,
			wantClamped:  true,
		},
		{
			name: "refunds against other line items are ignored",
			item: lineItem(lineID, 1000, 3, "0.6"),
			refunds: []entity.RefundItem{
				{SaleLineItemID: uuid.New(), Quantity: 3},
			},
			wantRefunded: 0,
			wantShare:    1800,
		},
		{
			name: "odd split full refund still zeroes exactly",
			item: lineItem(lineID, 333, 3, "0.6667"),
			refunds: []entity.RefundItem{
				{SaleLineItemID: lineID, Quantity: 3},
			},
			wantRefunded: 3,
			wantShare:    0,
			wantFull:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustForRefunds(tt.item, tt.refunds)

			if got.RefundedQuantity != tt.wantRefunded {
				t.Errorf("RefundedQuantity = %d, want %d", got.RefundedQuantity, tt.wantRefunded)
			}
			if got.AdjustedConsignorShare != tt.wantShare {
				t.Errorf("AdjustedConsignorShare = %d, want %d", got.AdjustedConsignorShare, tt.wantShare)
			}
			if got.IsFullyRefunded != tt.wantFull {
				t.Errorf("IsFullyRefunded = %v, want %v", got.IsFullyRefunded, tt.wantFull)
			}
			if got.IsPartiallyRefunded != tt.wantPartial {
				t.Errorf("IsPartiallyRefunded = %v, want %v", got.IsPartiallyRefunded, tt.wantPartial)
			}
			if got.Clamped != tt.wantClamped {
				t.Errorf("Clamped = %v, want %v", got.Clamped, tt.wantClamped)
			}
			if got.AdjustedConsignorShare < 0 {
				t.Errorf("AdjustedConsignorShare = %d, must never be negative", got.AdjustedConsignorShare)
			}
		})
	}
}
