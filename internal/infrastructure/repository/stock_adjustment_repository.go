package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	domainRepo "github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type stockAdjustmentRepository struct {
	db *gorm.DB
}

// NewStockAdjustmentRepository creates a new stock adjustment repository
func NewStockAdjustmentRepository(db *gorm.DB) domainRepo.StockAdjustmentRepository {
	return &stockAdjustmentRepository{db: db}
}

func (r *stockAdjustmentRepository) Create(ctx context.Context, adjustment *entity.StockAdjustment) error {
	return r.db.WithContext(ctx).Create(adjustment).Error
}

func (r *stockAdjustmentRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.StockAdjustmentFilterParams) ([]entity.StockAdjustment, int64, error) {
	var adjustments []entity.StockAdjustment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockAdjustment{}).Scopes(OwnedBy(userID))

	if params.ItemID != nil {
		query = query.Where("item_id = ?", *params.ItemID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Item").
		Order("created_at DESC").
		Find(&adjustments).Error

	return adjustments, total, err
}
