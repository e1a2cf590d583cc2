package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// InventoryService handles stock levels and the adjustment audit trail
type InventoryService struct {
	itemRepo       repository.ItemRepository
	adjustmentRepo repository.StockAdjustmentRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(itemRepo repository.ItemRepository, adjustmentRepo repository.StockAdjustmentRepository) *InventoryService {
	return &InventoryService{
		itemRepo:       itemRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// AdjustStockInput represents the input for a stock adjustment
type AdjustStockInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
	Delta  float64
	Reason enum.AdjustmentReason
	Note   *string
}

// AdjustStock applies a signed delta to an item's stock and records the
// movement. Stock is never allowed to go negative.
func (s *InventoryService) AdjustStock(ctx context.Context, input *AdjustStockInput) (*entity.StockAdjustment, error) {
	if input.Delta == 0 {
		return nil, apperror.NewBadRequestError("Adjustment delta cannot be zero")
	}
	if !input.Reason.Valid() {
		return nil, apperror.NewBadRequestError("Invalid adjustment reason")
	}

	item, err := s.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	if item.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if item.StockQuantity+input.Delta < 0 {
		return nil, apperror.NewBadRequestError("Adjustment would make stock negative")
	}

	if err := s.itemRepo.AdjustStock(ctx, input.ItemID, input.Delta); err != nil {
		return nil, err
	}

	adjustment := &entity.StockAdjustment{
		UserID: input.UserID,
		ItemID: input.ItemID,
		Delta:  input.Delta,
		Reason: input.Reason,
		Note:   input.Note,
	}
	if err := s.adjustmentRepo.Create(ctx, adjustment); err != nil {
		return nil, err
	}
	return adjustment, nil
}

// ListStock lists a user's items with current stock levels
func (s *InventoryService) ListStock(ctx context.Context, userID uuid.UUID, params *pagination.Params, search string) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, userID, &repository.ItemFilterParams{
		Pagination: params,
		Search:     search,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(items, pagination.New(params.Page, params.PerPage, total)), nil
}

// ListAdjustments lists stock adjustments, optionally for a single item
func (s *InventoryService) ListAdjustments(ctx context.Context, userID uuid.UUID, params *pagination.Params, itemID *uuid.UUID) (*pagination.PaginatedResult[entity.StockAdjustment], error) {
	adjustments, total, err := s.adjustmentRepo.List(ctx, userID, &repository.StockAdjustmentFilterParams{
		Pagination: params,
		ItemID:     itemID,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(adjustments, pagination.New(params.Page, params.PerPage, total)), nil
}
