package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/config"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"github.com/sellbridge/consign-api/internal/domain/repository"
	"github.com/sellbridge/consign-api/pkg/apperror"
	"github.com/sellbridge/consign-api/pkg/pagination"
	"github.com/sellbridge/consign-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// SaleService handles point-of-sale checkout
type SaleService struct {
	saleRepo      repository.SaleRepository
	itemRepo      repository.ItemRepository
	consignorRepo repository.ConsignorRepository
	taxRate       decimal.Decimal
	now           func() time.Time
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	itemRepo repository.ItemRepository,
	consignorRepo repository.ConsignorRepository,
	sales *config.SalesConfig,
) *SaleService {
	return &SaleService{
		saleRepo:      saleRepo,
		itemRepo:      itemRepo,
		consignorRepo: consignorRepo,
		taxRate:       decimal.NewFromFloat(sales.TaxPercent).Div(decimal.NewFromInt(100)),
		now:           time.Now,
	}
}

// SaleItemInput represents one line of a checkout
type SaleItemInput struct {
	ItemID   uuid.UUID
	Quantity int
}

// CreateSaleInput represents a checkout request
type CreateSaleInput struct {
	PaymentMethod enum.PaymentMethod
	Items         []SaleItemInput
}

// CreateSale completes a checkout: it decrements stock atomically,
// snapshots each consignor's current commission split onto the line
// items and persists the sale. The snapshots are what the payout
// engine computes over later, so a consignor rate change after this
// point never touches this sale.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A sale requires at least one item")
	}

	// Batch fetch all items in one query (prevents N+1)
	itemIDs := make([]uuid.UUID, len(input.Items))
	for i, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
		itemIDs[i] = line.ItemID
	}

	items, err := s.itemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	itemMap := make(map[uuid.UUID]*entity.Item, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	// Fetch the consignors behind the items for their current splits.
	consignorIDs := make(map[uuid.UUID]struct{})
	for _, item := range itemMap {
		consignorIDs[item.ConsignorID] = struct{}{}
	}
	splits := make(map[uuid.UUID]decimal.Decimal, len(consignorIDs))
	for cid := range consignorIDs {
		consignor, err := s.consignorRepo.GetByID(ctx, cid)
		if err != nil {
			return nil, err
		}
		if consignor == nil {
			return nil, apperror.NewNotFoundError("Consignor")
		}
		splits[cid] = consignor.DefaultSplit
	}

	completedAt := s.now()
	var subTotal, tax int64
	lineItems := make([]entity.SaleLineItem, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int)

	for _, line := range input.Items {
		item, exists := itemMap[line.ItemID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Item %s", line.ItemID))
		}

		lineTotal := item.Price * int64(line.Quantity)
		lineTax := decimal.NewFromInt(lineTotal).Mul(s.taxRate).Round(0).IntPart()
		subTotal += lineTotal
		tax += lineTax

		lineItems = append(lineItems, entity.SaleLineItem{
			ConsignorID:   item.ConsignorID,
			ItemID:        item.ID,
			ItemName:      item.Name,
			SKU:           item.SKU,
			UnitPrice:     item.Price,
			Quantity:      line.Quantity,
			SplitSnapshot: splits[item.ConsignorID],
			TaxCollected:  lineTax,
			PaymentMethod: input.PaymentMethod,
			CompletedAt:   completedAt,
		})

		stockDecrements[item.ID] += line.Quantity
	}

	// Atomically decrement stock; insufficient stock fails the checkout.
	failedIDs, err := s.itemRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if item, exists := itemMap[id]; exists {
				failedNames = append(failedNames, item.Name)
			}
		}
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	sale := &entity.Sale{
		SaleNumber:    utils.GenerateSaleNumber(),
		PaymentMethod: input.PaymentMethod,
		SubTotal:      subTotal,
		Tax:           tax,
		Total:         subTotal + tax,
		CompletedAt:   completedAt,
	}

	if err := s.saleRepo.Create(ctx, sale, lineItems); err != nil {
		// Stock was already decremented; restore it.
		_ = s.itemRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	return s.saleRepo.GetWithItems(ctx, sale.ID)
}

// GetSale retrieves a sale with its line items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}
