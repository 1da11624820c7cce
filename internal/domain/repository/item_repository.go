package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/pkg/pagination"
)

// ItemRepository defines the interface for consigned inventory operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ItemFilterParams) ([]entity.Item, int64, error)

	// AtomicDecrementBatch decrements stock for each item id by the given
	// quantity in a single statement per item, failing the item when stock
	// is insufficient. Returns the ids that could not be decremented.
	AtomicDecrementBatch(ctx context.Context, quantities map[uuid.UUID]int) ([]uuid.UUID, error)
	// AtomicIncrementBatch restores stock, used to roll back a failed
	// checkout or to restock refunded units.
	AtomicIncrementBatch(ctx context.Context, quantities map[uuid.UUID]int) error
}

// ItemFilterParams contains filtering parameters for item queries
type ItemFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	ConsignorID *uuid.UUID
	InStockOnly bool
	SortBy      string
	SortOrder   string
}
