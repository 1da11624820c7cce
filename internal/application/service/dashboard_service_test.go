package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/config"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func TestGetDashboardStats_PaidThisMonthWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	consignor := &entity.Consignor{
		ID:              uuid.New(),
		ConsignorNumber: "CSN-0001",
		Name:            "Alice Vendor",
		DefaultSplit:    decimal.RequireFromString("0.6"),
		Active:          true,
	}
	consignors := &fakeConsignorRepo{consignors: map[uuid.UUID]*entity.Consignor{consignor.ID: consignor}}
	sales := &fakeSaleRepo{}
	refunds := &fakeRefundRepo{}
	payouts := &fakePayoutRepo{payouts: []*entity.Payout{
		{
			ID:          uuid.New(),
			ConsignorID: consignor.ID,
			PaidAt:      now.AddDate(0, 0, -10),
			PeriodEnd:   now.AddDate(0, 0, -10),
			Amount:      5000,
		},
		{
			ID:          uuid.New(),
			ConsignorID: consignor.ID,
			PaidAt:      now.AddDate(0, 0, -40),
			PeriodEnd:   now.AddDate(0, 0, -40),
			Amount:      3000,
		},
	}}

	payoutSvc := NewPayoutService(consignors, sales, refunds, payouts, &config.FeesConfig{CardFeePercent: 2.9})
	payoutSvc.now = func() time.Time { return now }

	svc := NewDashboardService(consignors, payouts, payoutSvc)
	svc.now = func() time.Time { return now }

	stats, err := svc.GetDashboardStats(context.Background())
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	// Only the payout inside the trailing month counts.
	if stats.TotalPaidThisMonth != 50.00 {
		t.Errorf("TotalPaidThisMonth = %.2f, want 50.00", stats.TotalPaidThisMonth)
	}
	if stats.TotalConsignors != 1 {
		t.Errorf("TotalConsignors = %d, want 1", stats.TotalConsignors)
	}
	if len(stats.Consignors) != 1 {
		t.Fatalf("Consignors rows = %d, want 1", len(stats.Consignors))
	}
	if stats.Consignors[0].PendingAmount != 0 {
		t.Errorf("PendingAmount = %.2f, want 0 with no unreconciled sales", stats.Consignors[0].PendingAmount)
	}
}
