package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

var testFeeRate = decimal.NewFromFloat(0.029)

func testConsignor() *entity.Consignor {
	return &entity.Consignor{
		ID:              uuid.New(),
		ConsignorNumber: "CSN-0001",
		Name:            "Alice Vendor",
		DefaultSplit:    decimal.RequireFromString("0.6"),
		Active:          true,
	}
}

func testPeriod() Period {
	return Period{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildPayoutSummary_PartialRefund(t *testing.T) {
	consignor := testConsignor()
	period := testPeriod()
	saleID := uuid.New()
	lineID := uuid.New()

	// 3 units at $10.00 on a 60% split, one unit later refunded.
	items := []entity.SaleLineItem{{
		ID:            lineID,
		SaleID:        saleID,
		ConsignorID:   consignor.ID,
		ItemName:      "Vintage Lamp",
		UnitPrice:     1000,
		Quantity:      3,
		SplitSnapshot: decimal.RequireFromString("0.6"),
		TaxCollected:  248,
		PaymentMethod: enum.PaymentMethodCash,
		CompletedAt:   period.Start.AddDate(0, 0, 3),
	}}
	refunds := []entity.RefundItem{{SaleLineItemID: lineID, Quantity: 1}}

	got := BuildPayoutSummary(consignor, period, items, refunds, testFeeRate)

	if got.PendingAmount != 1200 {
		t.Errorf("PendingAmount = %d, want 1200", got.PendingAmount)
	}
	if got.GrossSales != 2000 {
		t.Errorf("GrossSales = %d, want 2000", got.GrossSales)
	}
	if got.StoreShare != 800 {
		t.Errorf("StoreShare = %d, want 800", got.StoreShare)
	}
	if got.TaxCollected != 165 { // 248 * 2/3
		t.Errorf("TaxCollected = %d, want 165", got.TaxCollected)
	}
	if got.ItemsSold != 2 {
		t.Errorf("ItemsSold = %d, want 2", got.ItemsSold)
	}
	if got.SalesCount != 1 {
		t.Errorf("SalesCount = %d, want 1", got.SalesCount)
	}
	if got.HasLedgerWarnings {
		t.Error("HasLedgerWarnings = true, want false")
	}
	if len(got.Items) != 1 || !got.Items[0].IsPartiallyRefunded {
		t.Errorf("Items = %+v, want one partially refunded item", got.Items)
	}
}

func TestBuildPayoutSummary_FullRefundStillChargesCardFee(t *testing.T) {
	consignor := testConsignor()
	period := testPeriod()
	lineID := uuid.New()

	items := []entity.SaleLineItem{{
		ID:            lineID,
		SaleID:        uuid.New(),
		ConsignorID:   consignor.ID,
		ItemName:      "Leather Jacket",
		UnitPrice:     5000,
		Quantity:      1,
		SplitSnapshot: decimal.RequireFromString("0.7"),
		PaymentMethod: enum.PaymentMethodCard,
		CompletedAt:   period.Start.AddDate(0, 0, 1),
	}}
	refunds := []entity.RefundItem{{SaleLineItemID: lineID, Quantity: 1}}

	got := BuildPayoutSummary(consignor, period, items, refunds, testFeeRate)

	// The sale came and went, but the processor kept its fee and the
	// consignor carries it.
	if got.GrossSales != 0 {
		t.Errorf("GrossSales = %d, want 0", got.GrossSales)
	}
	if got.CardFees != 145 { // 5000 * 0.029
		t.Errorf("CardFees = %d, want 145", got.CardFees)
	}
	if got.PendingAmount != -145 {
		t.Errorf("PendingAmount = %d, want -145", got.PendingAmount)
	}
	if got.ItemsSold != 0 {
		t.Errorf("ItemsSold = %d, want 0", got.ItemsSold)
	}
	if !got.Items[0].IsFullyRefunded {
		t.Error("IsFullyRefunded = false, want true")
	}
}

func TestBuildPayoutSummary_MoneyConservation(t *testing.T) {
	consignor := testConsignor()
	period := testPeriod()

	// Awkward prices and splits chosen to stress rounding.
	var items []entity.SaleLineItem
	saleID := uuid.New()
	specs := []struct {
		price int64
		qty   int
		split string
	}{
		{333, 3, "0.6667"},
		{1999, 2, "0.55"},
		{101, 7, "0.333"},
	}
	for i, s := range specs {
		items = append(items, entity.SaleLineItem{
			ID:            uuid.New(),
			SaleID:        saleID,
			ConsignorID:   consignor.ID,
			UnitPrice:     s.price,
			Quantity:      s.qty,
			SplitSnapshot: decimal.RequireFromString(s.split),
			PaymentMethod: enum.PaymentMethodCash,
			CompletedAt:   period.Start.Add(time.Duration(i+1) * time.Hour),
		})
	}

	got := BuildPayoutSummary(consignor, period, items, nil, testFeeRate)

	// Every cent of gross revenue lands with either the store or the
	// consignor (fees are zero on cash).
	if got.StoreShare+got.PendingAmount+got.CardFees != got.GrossSales {
		t.Errorf("StoreShare(%d) + Pending(%d) + Fees(%d) != GrossSales(%d)",
			got.StoreShare, got.PendingAmount, got.CardFees, got.GrossSales)
	}
}

func TestBuildPayoutSummary_Deterministic(t *testing.T) {
	consignor := testConsignor()
	period := testPeriod()
	saleID := uuid.New()

	items := []entity.SaleLineItem{
		{
			ID: uuid.New(), SaleID: saleID, ConsignorID: consignor.ID,
			UnitPrice: 1500, Quantity: 2,
			SplitSnapshot: decimal.RequireFromString("0.6"),
			PaymentMethod: enum.PaymentMethodCard,
			CompletedAt:   period.Start.Add(48 * time.Hour),
		},
		{
			ID: uuid.New(), SaleID: saleID, ConsignorID: consignor.ID,
			UnitPrice: 800, Quantity: 1,
			SplitSnapshot: decimal.RequireFromString("0.6"),
			PaymentMethod: enum.PaymentMethodCash,
			CompletedAt:   period.Start.Add(24 * time.Hour),
		},
	}

	first := BuildPayoutSummary(consignor, period, items, nil, testFeeRate)
	second := BuildPayoutSummary(consignor, period, items, nil, testFeeRate)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("summaries differ between identical computations:\nfirst:  %+v\nsecond: %+v", first, second)
	}

	// Reversing the input order must not change the output.
	reversed := []entity.SaleLineItem{items[1], items[0]}
	third := BuildPayoutSummary(consignor, period, reversed, nil, testFeeRate)
	if !reflect.DeepEqual(first, third) {
		t.Error("summary depends on input order")
	}

	if !third.Items[0].CompletedAt.Before(third.Items[1].CompletedAt) {
		t.Error("items not ordered by completion time")
	}
}

func TestBuildPayoutSummary_DistinctSalesCount(t *testing.T) {
	consignor := testConsignor()
	period := testPeriod()
	saleA := uuid.New()
	saleB := uuid.New()

	items := []entity.SaleLineItem{
		{ID: uuid.New(), SaleID: saleA, UnitPrice: 100, Quantity: 1,
			SplitSnapshot: decimal.RequireFromString("0.5"),
			CompletedAt:   period.Start.Add(time.Hour)},
		{ID: uuid.New(), SaleID: saleA, UnitPrice: 200, Quantity: 1,
			SplitSnapshot: decimal.RequireFromString("0.5"),
			CompletedAt:   period.Start.Add(time.Hour)},
		{ID: uuid.New(), SaleID: saleB, UnitPrice: 300, Quantity: 1,
			SplitSnapshot: decimal.RequireFromString("0.5"),
			CompletedAt:   period.Start.Add(2 * time.Hour)},
	}

	got := BuildPayoutSummary(consignor, period, items, nil, testFeeRate)

	if got.SalesCount != 2 {
		t.Errorf("SalesCount = %d, want 2", got.SalesCount)
	}
	if got.ItemsSold != 3 {
		t.Errorf("ItemsSold = %d, want 3", got.ItemsSold)
	}
}

func TestBuildPayoutSummary_ClampSurfacesWarning(t *testing.T) {
	consignor := testConsignor()
	period := testPeriod()
	lineID := uuid.New()

	items := []entity.SaleLineItem{{
		ID: lineID, SaleID: uuid.New(), UnitPrice: 1000, Quantity: 2,
		SplitSnapshot: decimal.RequireFromString("0.6"),
		CompletedAt:   period.Start.Add(time.Hour),
	}}
	// More units refunded than sold: bad upstream data.
	refunds := []entity.RefundItem{{SaleLineItemID: lineID, Quantity: 5}}

	got := BuildPayoutSummary(consignor, period, items, refunds, testFeeRate)

	if !got.HasLedgerWarnings {
		t.Error("HasLedgerWarnings = false, want true")
	}
	if !got.Items[0].LedgerWarning {
		t.Error("item LedgerWarning = false, want true")
	}
	if got.PendingAmount != 0 {
		t.Errorf("PendingAmount = %d, want 0 after clamping", got.PendingAmount)
	}
}

func TestBuildPayoutSummary_EmptyPeriod(t *testing.T) {
	got := BuildPayoutSummary(testConsignor(), testPeriod(), nil, nil, testFeeRate)

	if got.PendingAmount != 0 || got.GrossSales != 0 || got.SalesCount != 0 {
		t.Errorf("empty period produced nonzero totals: %+v", got)
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Errorf("Items = %v, want empty non-nil slice", got.Items)
	}
}
