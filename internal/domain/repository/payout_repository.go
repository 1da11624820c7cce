package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/pkg/pagination"
)

// PayoutRepository defines the interface for payout data operations.
// Payouts are immutable once written: the interface deliberately has no
// update or delete.
type PayoutRepository interface {
	// Create appends a payout record. The store enforces uniqueness on
	// (consignor_id, period_end); a violation means another operator
	// already reconciled this period and surfaces as a conflict error.
	Create(ctx context.Context, payout *entity.Payout) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payout, error)

	// GetLatestByConsignor returns the consignor's most recent payout by
	// paid-at time, or nil when the consignor has never been paid.
	GetLatestByConsignor(ctx context.Context, consignorID uuid.UUID) (*entity.Payout, error)
	ListByConsignor(ctx context.Context, consignorID uuid.UUID, params *pagination.PaginationParams) ([]entity.Payout, int64, error)

	// SumPaidSince returns the total amount paid out across all
	// consignors from the given time, for dashboard reporting.
	SumPaidSince(ctx context.Context, since time.Time) (int64, error)
}
