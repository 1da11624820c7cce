package service

import (
	"testing"

	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func TestComputeSplit(t *testing.T) {
	feeRate := decimal.NewFromFloat(0.029)

	tests := []struct {
		name       string
		unitPrice  int64
		quantity   int
		split      string
		method     enum.PaymentMethod
		wantGross  int64
		wantStore  int64
		wantFee    int64
	}{
		{
			name:      "cash sale 60/40 split",
			unitPrice: 1000, quantity: 3, split: "0.6",
			method:    enum.PaymentMethodCash,
			wantGross: 1800, wantStore: 1200, wantFee: 0,
		},
		{
			name:      "card sale attracts processor fee",
			unitPrice: 1000, quantity: 3, split: "0.6",
			method:    enum.PaymentMethodCard,
			wantGross: 1800, wantStore: 1200, wantFee: 87, // 3000 * 0.029
		},
		{
			name:      "half cent rounds up",
			unitPrice: 999, quantity: 1, split: "0.5",
			method:    enum.PaymentMethodCash,
			wantGross: 500, wantStore: 499, wantFee: 0,
		},
		{
			name:      "consignor keeps everything at split 1.0",
			unitPrice: 2500, quantity: 2, split: "1.0",
			method:    enum.PaymentMethodCash,
			wantGross: 5000, wantStore: 0, wantFee: 0,
		},
		{
			name:      "single unit card sale",
			unitPrice: 350, quantity: 1, split: "0.7",
			method:    enum.PaymentMethodCard,
			wantGross: 245, wantStore: 105, wantFee: 10, // 350 * 0.029 = 10.15 -> 10
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &entity.SaleLineItem{
				UnitPrice:     tt.unitPrice,
				Quantity:      tt.quantity,
				SplitSnapshot: decimal.RequireFromString(tt.split),
				PaymentMethod: tt.method,
			}

			got := ComputeSplit(item, feeRate)

			if got.ConsignorGross != tt.wantGross {
				t.Errorf("ConsignorGross = %d, want %d", got.ConsignorGross, tt.wantGross)
			}
			if got.StoreShare != tt.wantStore {
				t.Errorf("StoreShare = %d, want %d", got.StoreShare, tt.wantStore)
			}
			if got.CardFee != tt.wantFee {
				t.Errorf("CardFee = %d, want %d", got.CardFee, tt.wantFee)
			}
			// The split must never create or destroy money.
			if got.ConsignorGross+got.StoreShare != got.LineTotal {
				t.Errorf("ConsignorGross + StoreShare = %d, want line total %d",
					got.ConsignorGross+got.StoreShare, got.LineTotal)
			}
		})
	}
}

func TestComputeSplit_UsesSnapshotNotCurrentRate(t *testing.T) {
	// The line item carries its own split; there is no path from the
	// consignor's current rate into the computation.
	item := &entity.SaleLineItem{
		UnitPrice:     1000,
		Quantity:      1,
		SplitSnapshot: decimal.RequireFromString("0.6"),
		PaymentMethod: enum.PaymentMethodCash,
	}

	got := ComputeSplit(item, decimal.Zero)
	if got.ConsignorGross != 600 {
		t.Errorf("ConsignorGross = %d, want 600", got.ConsignorGross)
	}
}
