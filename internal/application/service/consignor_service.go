package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/internal/domain/repository"
	"github.com/sellbridge/consign-api/pkg/apperror"
	"github.com/sellbridge/consign-api/pkg/pagination"
	"github.com/sellbridge/consign-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// ConsignorService handles consignor-related operations
type ConsignorService struct {
	consignorRepo repository.ConsignorRepository
}

// NewConsignorService creates a new consignor service
func NewConsignorService(consignorRepo repository.ConsignorRepository) *ConsignorService {
	return &ConsignorService{consignorRepo: consignorRepo}
}

// CreateConsignorInput represents the create consignor input
type CreateConsignorInput struct {
	Name         string
	Email        *string
	Phone        *string
	Address      *string
	DefaultSplit float64
}

// UpdateConsignorInput represents the update consignor input
type UpdateConsignorInput struct {
	Name         *string
	Email        *string
	Phone        *string
	Address      *string
	DefaultSplit *float64
	Active       *bool
}

func validateSplit(split float64) (decimal.Decimal, error) {
	d := decimal.NewFromFloat(split)
	if d.LessThanOrEqual(decimal.Zero) || d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, apperror.NewBadRequestError("Commission split must be greater than 0 and at most 1")
	}
	return d, nil
}

// CreateConsignor creates a new consignor
func (s *ConsignorService) CreateConsignor(ctx context.Context, input *CreateConsignorInput) (*entity.Consignor, error) {
	split, err := validateSplit(input.DefaultSplit)
	if err != nil {
		return nil, err
	}

	consignor := &entity.Consignor{
		ConsignorNumber: utils.GenerateConsignorNumber(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Address:         input.Address,
		DefaultSplit:    split,
		Active:          true,
	}

	if err := s.consignorRepo.Create(ctx, consignor); err != nil {
		return nil, err
	}
	return consignor, nil
}

// GetConsignor retrieves a consignor by ID
func (s *ConsignorService) GetConsignor(ctx context.Context, id uuid.UUID) (*entity.Consignor, error) {
	consignor, err := s.consignorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if consignor == nil {
		return nil, apperror.NewNotFoundError("Consignor")
	}
	return consignor, nil
}

// UpdateConsignor updates a consignor. Changing the default split only
// affects future checkouts: every past line item keeps the snapshot it
// was sold under.
func (s *ConsignorService) UpdateConsignor(ctx context.Context, id uuid.UUID, input *UpdateConsignorInput) (*entity.Consignor, error) {
	consignor, err := s.GetConsignor(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		consignor.Name = *input.Name
	}
	if input.Email != nil {
		consignor.Email = input.Email
	}
	if input.Phone != nil {
		consignor.Phone = input.Phone
	}
	if input.Address != nil {
		consignor.Address = input.Address
	}
	if input.DefaultSplit != nil {
		split, err := validateSplit(*input.DefaultSplit)
		if err != nil {
			return nil, err
		}
		consignor.DefaultSplit = split
	}
	if input.Active != nil {
		consignor.Active = *input.Active
	}

	if err := s.consignorRepo.Update(ctx, consignor); err != nil {
		return nil, err
	}
	return consignor, nil
}

// DeleteConsignor soft-deletes a consignor
func (s *ConsignorService) DeleteConsignor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetConsignor(ctx, id); err != nil {
		return err
	}
	return s.consignorRepo.Delete(ctx, id)
}

// ListConsignors lists consignors with filtering
func (s *ConsignorService) ListConsignors(ctx context.Context, params *repository.ConsignorFilterParams) (*pagination.PaginatedResult[entity.Consignor], error) {
	consignors, total, err := s.consignorRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(consignors, pag), nil
}
