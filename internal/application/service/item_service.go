package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// ItemService handles catalog item business logic
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// ItemInput represents the input for creating or updating a catalog item
type ItemInput struct {
	UserID            uuid.UUID
	Name              string
	Code              string
	Description       *string
	BasePrice         float64
	SellingPrice      float64
	TaxPercent        float64
	IsTaxIncluded     bool
	PrimaryUnit       string
	StockQuantity     float64
	LowStockThreshold float64
}

func (in *ItemInput) validate() error {
	var fieldErrors []apperror.FieldError
	if in.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if in.BasePrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "base_price", Message: "base price cannot be negative"})
	}
	if in.SellingPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "selling_price", Message: "selling price cannot be negative"})
	}
	if in.TaxPercent < 0 || in.TaxPercent > 100 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "tax_percent", Message: "tax percent must be between 0 and 100"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateItem creates a new catalog item
func (s *ItemService) CreateItem(ctx context.Context, input *ItemInput) (*entity.Item, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item := &entity.Item{
		UserID:            input.UserID,
		Name:              input.Name,
		Code:              input.Code,
		Description:       input.Description,
		BasePrice:         input.BasePrice,
		SellingPrice:      input.SellingPrice,
		TaxPercent:        input.TaxPercent,
		IsTaxIncluded:     input.IsTaxIncluded,
		PrimaryUnit:       input.PrimaryUnit,
		StockQuantity:     input.StockQuantity,
		LowStockThreshold: input.LowStockThreshold,
	}
	if item.PrimaryUnit == "" {
		item.PrimaryUnit = "pcs"
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves a catalog item by ID
func (s *ItemService) GetItem(ctx context.Context, userID, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	if item.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return item, nil
}

// ListItems lists a user's catalog items with optional search
func (s *ItemService) ListItems(ctx context.Context, userID uuid.UUID, params *pagination.Params, search string) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, userID, &repository.ItemFilterParams{
		Pagination: params,
		Search:     search,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(items, pagination.New(params.Page, params.PerPage, total)), nil
}

// ListLowStockItems lists items at or below their low stock threshold
func (s *ItemService) ListLowStockItems(ctx context.Context, userID uuid.UUID) ([]entity.Item, error) {
	return s.itemRepo.ListLowStock(ctx, userID)
}

// UpdateItem updates a catalog item. Stock is not updated here; stock moves
// only through inventory adjustments.
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, input *ItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, input.UserID, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Code = input.Code
	item.Description = input.Description
	item.BasePrice = input.BasePrice
	item.SellingPrice = input.SellingPrice
	item.TaxPercent = input.TaxPercent
	item.IsTaxIncluded = input.IsTaxIncluded
	if input.PrimaryUnit != "" {
		item.PrimaryUnit = input.PrimaryUnit
	}
	item.LowStockThreshold = input.LowStockThreshold
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem deletes a catalog item
func (s *ItemService) DeleteItem(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetItem(ctx, userID, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}
