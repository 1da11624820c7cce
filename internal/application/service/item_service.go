package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/internal/domain/repository"
	"github.com/sellbridge/consign-api/pkg/apperror"
	"github.com/sellbridge/consign-api/pkg/pagination"
	"github.com/sellbridge/consign-api/pkg/utils"
)

// ItemService handles consigned inventory operations
type ItemService struct {
	itemRepo      repository.ItemRepository
	consignorRepo repository.ConsignorRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository, consignorRepo repository.ConsignorRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo, consignorRepo: consignorRepo}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	ConsignorID uuid.UUID
	Name        string
	SKU         string
	Price       float64
	Quantity    int
	Notes       *string
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	Name     *string
	Price    *float64
	Quantity *int
	Notes    *string
}

// CreateItem creates a new consigned item
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	consignor, err := s.consignorRepo.GetByID(ctx, input.ConsignorID)
	if err != nil {
		return nil, err
	}
	if consignor == nil {
		return nil, apperror.NewNotFoundError("Consignor")
	}

	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateItemSKU()
	} else {
		existing, err := s.itemRepo.GetBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("An item with this SKU already exists")
		}
	}

	item := &entity.Item{
		ConsignorID: input.ConsignorID,
		Name:        input.Name,
		SKU:         sku,
		Price:       int64(math.Round(input.Price * 100)),
		Quantity:    input.Quantity,
		Notes:       input.Notes,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// UpdateItem updates a consigned item. Price changes only affect future
// sales; completed line items are immutable.
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.Price = int64(math.Round(*input.Price * 100))
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity cannot be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.Notes != nil {
		item.Notes = input.Notes
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem soft-deletes an item
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}

// ListItems lists items with filtering
func (s *ItemService) ListItems(ctx context.Context, params *repository.ItemFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}
