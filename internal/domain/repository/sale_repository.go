package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations.
// Completed sales and their line items are immutable; there is no
// update or delete.
type SaleRepository interface {
	// Create persists a sale together with its line items in one
	// transaction.
	Create(ctx context.Context, sale *entity.Sale, items []entity.SaleLineItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)

	// ListLineItemsByConsignor returns the consignor's line items whose
	// completion timestamp falls in (start, end], ordered by completion
	// time. This is the ledger read the payout engine computes over.
	ListLineItemsByConsignor(ctx context.Context, consignorID uuid.UUID, start, end time.Time) ([]entity.SaleLineItem, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
