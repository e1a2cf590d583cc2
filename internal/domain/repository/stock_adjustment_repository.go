package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// StockAdjustmentFilterParams contains filtering parameters for adjustment queries
type StockAdjustmentFilterParams struct {
	Pagination *pagination.Params
	ItemID     *uuid.UUID
}

// StockAdjustmentRepository defines the interface for stock movement records
type StockAdjustmentRepository interface {
	Create(ctx context.Context, adjustment *entity.StockAdjustment) error
	List(ctx context.Context, userID uuid.UUID, params *StockAdjustmentFilterParams) ([]entity.StockAdjustment, int64, error)
}
