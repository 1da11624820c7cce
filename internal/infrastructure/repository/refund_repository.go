package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	domainRepo "github.com/sellbridge/consign-api/internal/domain/repository"
	"gorm.io/gorm"
)

type refundRepository struct {
	db *gorm.DB
}

// NewRefundRepository creates a new refund repository
func NewRefundRepository(db *gorm.DB) domainRepo.RefundRepository {
	return &refundRepository{db: db}
}

func (r *refundRepository) Create(ctx context.Context, refund *entity.Refund, items []entity.RefundItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(refund).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].RefundID = refund.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *refundRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Refund, error) {
	var refund entity.Refund
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&refund, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &refund, err
}

func (r *refundRepository) ListBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.Refund, error) {
	var refunds []entity.Refund
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Preload("Items").
		Order("created_at ASC").
		Find(&refunds).Error
	return refunds, err
}

func (r *refundRepository) ListItemsByLineItemIDs(ctx context.Context, lineItemIDs []uuid.UUID) ([]entity.RefundItem, error) {
	if len(lineItemIDs) == 0 {
		return nil, nil
	}
	var items []entity.RefundItem
	err := r.db.WithContext(ctx).
		Where("sale_line_item_id IN ?", lineItemIDs).
		Find(&items).Error
	return items, err
}

func (r *refundRepository) SumRefundedQuantities(ctx context.Context, lineItemIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	sums := make(map[uuid.UUID]int, len(lineItemIDs))
	if len(lineItemIDs) == 0 {
		return sums, nil
	}

	var rows []struct {
		SaleLineItemID uuid.UUID
		Total          int
	}
	err := r.db.WithContext(ctx).
		Model(&entity.RefundItem{}).
		Select("sale_line_item_id, SUM(quantity) as total").
		Where("sale_line_item_id IN ?", lineItemIDs).
		Group("sale_line_item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		sums[row.SaleLineItemID] = row.Total
	}
	return sums, nil
}
