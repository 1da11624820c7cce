package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	domainRepo "github.com/sellbridge/consign-api/internal/domain/repository"
	"github.com/sellbridge/consign-api/pkg/apperror"
	"github.com/sellbridge/consign-api/pkg/pagination"
	"gorm.io/gorm"
)

type payoutRepository struct {
	db *gorm.DB
}

// NewPayoutRepository creates a new payout repository
func NewPayoutRepository(db *gorm.DB) domainRepo.PayoutRepository {
	return &payoutRepository{db: db}
}

func (r *payoutRepository) Create(ctx context.Context, payout *entity.Payout) error {
	err := r.db.WithContext(ctx).Create(payout).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Another operator recorded a payout covering this period
		// between summary computation and this insert.
		return apperror.NewConflictError("A payout already covers this period; recompute the summary and retry")
	}
	return err
}

func (r *payoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payout, error) {
	var payout entity.Payout
	err := r.db.WithContext(ctx).First(&payout, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payout, err
}

func (r *payoutRepository) GetLatestByConsignor(ctx context.Context, consignorID uuid.UUID) (*entity.Payout, error) {
	var payout entity.Payout
	err := r.db.WithContext(ctx).
		Where("consignor_id = ?", consignorID).
		Order("paid_at DESC").
		First(&payout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payout, err
}

func (r *payoutRepository) ListByConsignor(ctx context.Context, consignorID uuid.UUID, params *pagination.PaginationParams) ([]entity.Payout, int64, error) {
	var payouts []entity.Payout
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Payout{}).
		Where("consignor_id = ?", consignorID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("paid_at DESC").
		Find(&payouts).Error

	return payouts, total, err
}

func (r *payoutRepository) SumPaidSince(ctx context.Context, since time.Time) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).
		Model(&entity.Payout{}).
		Select("SUM(amount)").
		Where("paid_at >= ?", since).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
