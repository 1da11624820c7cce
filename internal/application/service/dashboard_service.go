package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/repository"
)

// DashboardService provides the store-wide accounts-payable overview
type DashboardService struct {
	consignorRepo repository.ConsignorRepository
	payoutRepo    repository.PayoutRepository
	payoutService *PayoutService
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	consignorRepo repository.ConsignorRepository,
	payoutRepo repository.PayoutRepository,
	payoutService *PayoutService,
) *DashboardService {
	return &DashboardService{
		consignorRepo: consignorRepo,
		payoutRepo:    payoutRepo,
		payoutService: payoutService,
		now:           time.Now,
	}
}

// DashboardStats represents the payable overview
type DashboardStats struct {
	TotalConsignors    int64           `json:"total_consignors"`
	TotalOwed          float64         `json:"total_owed"`
	TotalPaidThisMonth float64         `json:"total_paid_this_month"`
	Consignors         []ConsignorOwed `json:"consignors"`
}

// ConsignorOwed is one row of the payable overview
type ConsignorOwed struct {
	ConsignorID     uuid.UUID `json:"consignor_id"`
	ConsignorNumber string    `json:"consignor_number"`
	Name            string    `json:"name"`
	PendingAmount   float64   `json:"pending_amount"`
	SalesCount      int       `json:"sales_count"`
	ItemsSold       int       `json:"items_sold"`
}

// GetDashboardStats computes pending amounts for every active
// consignor. Each summary is computed fresh, the same way the payout
// endpoints compute it, so the overview always matches what an
// individual reconciliation would show.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	consignors, err := s.consignorRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalConsignors: int64(len(consignors)),
		Consignors:      make([]ConsignorOwed, 0, len(consignors)),
	}

	var totalOwedCents int64
	for i := range consignors {
		summary, err := s.payoutService.ComputeSummary(ctx, consignors[i].ID)
		if err != nil {
			return nil, err
		}
		totalOwedCents += summary.PendingAmount
		stats.Consignors = append(stats.Consignors, ConsignorOwed{
			ConsignorID:     consignors[i].ID,
			ConsignorNumber: consignors[i].ConsignorNumber,
			Name:            consignors[i].Name,
			PendingAmount:   float64(summary.PendingAmount) / 100,
			SalesCount:      summary.SalesCount,
			ItemsSold:       summary.ItemsSold,
		})
	}
	stats.TotalOwed = float64(totalOwedCents) / 100

	monthAgo := s.now().AddDate(0, -1, 0)
	paid, err := s.payoutRepo.SumPaidSince(ctx, monthAgo)
	if err != nil {
		return nil, err
	}
	stats.TotalPaidThisMonth = float64(paid) / 100

	return stats, nil
}
