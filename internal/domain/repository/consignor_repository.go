package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/pkg/pagination"
)

// ConsignorRepository defines the interface for consignor data operations
type ConsignorRepository interface {
	Create(ctx context.Context, consignor *entity.Consignor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Consignor, error)
	GetByNumber(ctx context.Context, number string) (*entity.Consignor, error)
	Update(ctx context.Context, consignor *entity.Consignor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ConsignorFilterParams) ([]entity.Consignor, int64, error)
	ListActive(ctx context.Context) ([]entity.Consignor, error)
}

// ConsignorFilterParams contains filtering parameters for consignor queries
type ConsignorFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ActiveOnly bool
	SortBy     string
	SortOrder  string
}
