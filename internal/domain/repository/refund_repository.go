package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
)

// RefundRepository defines the interface for refund data operations.
// Refunds are append-only records.
type RefundRepository interface {
	// Create persists a refund together with its item entries in one
	// transaction.
	Create(ctx context.Context, refund *entity.Refund, items []entity.RefundItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Refund, error)
	ListBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.Refund, error)

	// ListItemsByLineItemIDs returns every refund entry referencing any
	// of the given sale line items.
	ListItemsByLineItemIDs(ctx context.Context, lineItemIDs []uuid.UUID) ([]entity.RefundItem, error)

	// SumRefundedQuantities returns, per sale line item, the total
	// quantity already refunded across all refunds. Used to enforce the
	// over-refund invariant at write time.
	SumRefundedQuantities(ctx context.Context, lineItemIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
