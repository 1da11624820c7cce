package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/config"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"github.com/sellbridge/consign-api/internal/domain/repository"
	"github.com/sellbridge/consign-api/pkg/apperror"
	"github.com/sellbridge/consign-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// PayoutService reconciles what a consignor is owed and records
// payouts against it. Summaries are computed fresh on every call and
// never cached: the facts they derive from (sales, refunds, payouts)
// may change between requests.
type PayoutService struct {
	consignorRepo repository.ConsignorRepository
	saleRepo      repository.SaleRepository
	refundRepo    repository.RefundRepository
	payoutRepo    repository.PayoutRepository
	cardFeeRate   decimal.Decimal
	now           func() time.Time
}

// NewPayoutService creates a new payout service
func NewPayoutService(
	consignorRepo repository.ConsignorRepository,
	saleRepo repository.SaleRepository,
	refundRepo repository.RefundRepository,
	payoutRepo repository.PayoutRepository,
	fees *config.FeesConfig,
) *PayoutService {
	return &PayoutService{
		consignorRepo: consignorRepo,
		saleRepo:      saleRepo,
		refundRepo:    refundRepo,
		payoutRepo:    payoutRepo,
		cardFeeRate:   decimal.NewFromFloat(fees.CardFeePercent).Div(decimal.NewFromInt(100)),
		now:           time.Now,
	}
}

// ComputeSummary builds the consignor's payout summary for their open
// period: from their last payout (exclusive) through now (inclusive).
func (s *PayoutService) ComputeSummary(ctx context.Context, consignorID uuid.UUID) (*ConsignorPayoutSummary, error) {
	consignor, err := s.consignorRepo.GetByID(ctx, consignorID)
	if err != nil {
		return nil, err
	}
	if consignor == nil {
		return nil, apperror.NewNotFoundError("Consignor")
	}

	lastPayout, err := s.payoutRepo.GetLatestByConsignor(ctx, consignorID)
	if err != nil {
		return nil, err
	}
	period := ResolvePeriod(lastPayout, s.now())

	items, err := s.saleRepo.ListLineItemsByConsignor(ctx, consignorID, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	var refundItems []entity.RefundItem
	if len(items) > 0 {
		ids := make([]uuid.UUID, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		refundItems, err = s.refundRepo.ListItemsByLineItemIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	return BuildPayoutSummary(consignor, period, items, refundItems, s.cardFeeRate), nil
}

// MarkAsPaidInput represents an operator's payout request. CustomAmount
// is in currency units (not cents); when present the payout is partial
// and PartialReason plus BalanceDisposition are required.
type MarkAsPaidInput struct {
	ConsignorID        uuid.UUID
	Notes              *string
	CustomAmount       *float64
	PartialReason      *string
	BalanceDisposition enum.BalanceDisposition
}

// MarkAsPaid validates and records a payout against a freshly computed
// summary. The recorded period is frozen to the values the summary was
// computed with, and the payout's paid-at time equals the period end,
// so the next reconciliation starts exactly where this one stopped.
//
// This is a single atomic insert with no retry semantics: on failure
// the caller re-submits against a fresh summary. The payout store's
// uniqueness check on (consignor, period end) is what stops two
// concurrent operators from double-paying the same period.
func (s *PayoutService) MarkAsPaid(ctx context.Context, input *MarkAsPaidInput) (*entity.Payout, error) {
	summary, err := s.ComputeSummary(ctx, input.ConsignorID)
	if err != nil {
		return nil, err
	}
	if summary.PendingAmount <= 0 {
		return nil, apperror.ErrNothingPending
	}

	amount := summary.PendingAmount
	isPartial := false
	var originalDue *int64
	var reason *string
	disposition := enum.BalanceDisposition("")

	if input.CustomAmount != nil {
		custom := int64(math.Round(*input.CustomAmount * 100))
		if custom <= 0 || custom > summary.PendingAmount {
			return nil, apperror.ErrInvalidAmount
		}
		if input.PartialReason == nil || *input.PartialReason == "" {
			return nil, apperror.ErrMissingReason
		}
		if !input.BalanceDisposition.Valid() {
			return nil, apperror.NewBadRequestError("Balance disposition must be deferred or forgiven")
		}
		due := summary.PendingAmount
		amount = custom
		isPartial = true
		originalDue = &due
		reason = input.PartialReason
		disposition = input.BalanceDisposition
	} else if input.BalanceDisposition != "" {
		// A full payout has no remainder to disposition.
		return nil, apperror.NewBadRequestError("Balance disposition only applies to partial payouts")
	}

	payout := &entity.Payout{
		ConsignorID:        input.ConsignorID,
		PaidAt:             summary.PeriodEnd,
		PeriodStart:        summary.PeriodStart,
		PeriodEnd:          summary.PeriodEnd,
		Amount:             amount,
		GrossSales:         summary.GrossSales,
		TaxCollected:       summary.TaxCollected,
		StoreShare:         summary.StoreShare,
		CardFees:           summary.CardFees,
		SalesCount:         summary.SalesCount,
		ItemsSold:          summary.ItemsSold,
		IsPartial:          isPartial,
		OriginalAmountDue:  originalDue,
		PartialReason:      reason,
		BalanceDisposition: disposition,
		Notes:              input.Notes,
	}

	if err := s.payoutRepo.Create(ctx, payout); err != nil {
		return nil, err
	}
	return payout, nil
}

// GetPayout retrieves a payout by ID
func (s *PayoutService) GetPayout(ctx context.Context, id uuid.UUID) (*entity.Payout, error) {
	payout, err := s.payoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, apperror.NewNotFoundError("Payout")
	}
	return payout, nil
}

// ListPayouts lists a consignor's payout history, newest first
func (s *PayoutService) ListPayouts(ctx context.Context, consignorID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Payout], error) {
	consignor, err := s.consignorRepo.GetByID(ctx, consignorID)
	if err != nil {
		return nil, err
	}
	if consignor == nil {
		return nil, apperror.NewNotFoundError("Consignor")
	}

	payouts, total, err := s.payoutRepo.ListByConsignor(ctx, consignorID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(payouts, pag), nil
}
