package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	domainRepo "github.com/sellbridge/consign-api/internal/domain/repository"
	"gorm.io/gorm"
)

type consignorRepository struct {
	db *gorm.DB
}

// NewConsignorRepository creates a new consignor repository
func NewConsignorRepository(db *gorm.DB) domainRepo.ConsignorRepository {
	return &consignorRepository{db: db}
}

func (r *consignorRepository) Create(ctx context.Context, consignor *entity.Consignor) error {
	return r.db.WithContext(ctx).Create(consignor).Error
}

func (r *consignorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Consignor, error) {
	var consignor entity.Consignor
	err := r.db.WithContext(ctx).First(&consignor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &consignor, err
}

func (r *consignorRepository) GetByNumber(ctx context.Context, number string) (*entity.Consignor, error) {
	var consignor entity.Consignor
	err := r.db.WithContext(ctx).First(&consignor, "consignor_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &consignor, err
}

func (r *consignorRepository) Update(ctx context.Context, consignor *entity.Consignor) error {
	return r.db.WithContext(ctx).Save(consignor).Error
}

func (r *consignorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Consignor{}, "id = ?", id).Error
}

func (r *consignorRepository) List(ctx context.Context, params *domainRepo.ConsignorFilterParams) ([]entity.Consignor, int64, error) {
	var consignors []entity.Consignor
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Consignor{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR consignor_number ILIKE ?", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.ActiveOnly {
		query = query.Where("active = true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&consignors).Error

	return consignors, total, err
}

func (r *consignorRepository) ListActive(ctx context.Context) ([]entity.Consignor, error) {
	var consignors []entity.Consignor
	err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&consignors).Error
	return consignors, err
}
