package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// ItemFilterParams contains filtering parameters for catalog queries
type ItemFilterParams struct {
	Pagination *pagination.Params
	Search     string
}

// ItemRepository defines the interface for catalog item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ItemFilterParams) ([]entity.Item, int64, error)
	ListLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Item, error)
	// AdjustStock atomically applies a signed delta to the item's stock level.
	AdjustStock(ctx context.Context, id uuid.UUID, delta float64) error
}
