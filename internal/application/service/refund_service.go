package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/internal/domain/enum"
	"github.com/sellbridge/consign-api/internal/domain/repository"
	"github.com/sellbridge/consign-api/pkg/apperror"
)

// RefundService records refunds against completed sales
type RefundService struct {
	refundRepo repository.RefundRepository
	saleRepo   repository.SaleRepository
	itemRepo   repository.ItemRepository
	now        func() time.Time
}

// NewRefundService creates a new refund service
func NewRefundService(
	refundRepo repository.RefundRepository,
	saleRepo repository.SaleRepository,
	itemRepo repository.ItemRepository,
) *RefundService {
	return &RefundService{
		refundRepo: refundRepo,
		saleRepo:   saleRepo,
		itemRepo:   itemRepo,
		now:        time.Now,
	}
}

// RefundItemInput represents one refunded line of a sale
type RefundItemInput struct {
	SaleLineItemID uuid.UUID
	Quantity       int
	Restocked      bool
}

// CreateRefundInput represents a refund request
type CreateRefundInput struct {
	SaleID        uuid.UUID
	PaymentMethod enum.PaymentMethod
	Reason        *string
	Items         []RefundItemInput
}

// CreateRefund appends a refund record against a sale. It enforces the
// ledger invariant at the write boundary: across all refunds, the
// refunded quantity for a line item never exceeds what was sold. The
// refund amount returned to the customer includes the line's tax but
// never the card fee, which the processor keeps.
func (s *RefundService) CreateRefund(ctx context.Context, input *CreateRefundInput) (*entity.Refund, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A refund requires at least one item")
	}

	sale, err := s.saleRepo.GetWithItems(ctx, input.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	lineMap := make(map[uuid.UUID]*entity.SaleLineItem, len(sale.Items))
	lineIDs := make([]uuid.UUID, 0, len(sale.Items))
	for i := range sale.Items {
		lineMap[sale.Items[i].ID] = &sale.Items[i]
		lineIDs = append(lineIDs, sale.Items[i].ID)
	}

	alreadyRefunded, err := s.refundRepo.SumRefundedQuantities(ctx, lineIDs)
	if err != nil {
		return nil, err
	}

	var amount int64
	refundItems := make([]entity.RefundItem, 0, len(input.Items))
	restocks := make(map[uuid.UUID]int)

	for _, ri := range input.Items {
		line, exists := lineMap[ri.SaleLineItemID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Line item %s on this sale", ri.SaleLineItemID))
		}
		if ri.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Refund quantity must be positive")
		}
		if alreadyRefunded[line.ID]+ri.Quantity > line.Quantity {
			return nil, apperror.NewBadRequestError(fmt.Sprintf(
				"Cannot refund %d of %q: %d sold, %d already refunded",
				ri.Quantity, line.ItemName, line.Quantity, alreadyRefunded[line.ID]))
		}

		// Refund the sale price plus the proportional tax.
		amount += line.UnitPrice * int64(ri.Quantity)
		amount += proportionalCents(line.TaxCollected, ri.Quantity, line.Quantity)

		refundItems = append(refundItems, entity.RefundItem{
			SaleLineItemID: ri.SaleLineItemID,
			Quantity:       ri.Quantity,
			Restocked:      ri.Restocked,
		})
		if ri.Restocked {
			restocks[line.ItemID] += ri.Quantity
		}
	}

	refund := &entity.Refund{
		SaleID:        input.SaleID,
		Amount:        amount,
		PaymentMethod: input.PaymentMethod,
		Reason:        input.Reason,
		CreatedAt:     s.now(),
	}

	if err := s.refundRepo.Create(ctx, refund, refundItems); err != nil {
		return nil, err
	}

	if len(restocks) > 0 {
		if err := s.itemRepo.AtomicIncrementBatch(ctx, restocks); err != nil {
			// The refund is durably recorded; a failed restock is an
			// inventory problem, not a ledger one. Returning an error
			// would make the client retry a refund that succeeded.
			log.Printf("WARNING: refund %s recorded but restock failed: %v", refund.ID, err)
		}
	}

	return s.refundRepo.GetByID(ctx, refund.ID)
}

// ListRefunds lists the refunds recorded against a sale
func (s *RefundService) ListRefunds(ctx context.Context, saleID uuid.UUID) ([]entity.Refund, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return s.refundRepo.ListBySaleID(ctx, saleID)
}
