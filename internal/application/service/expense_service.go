package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	vendorRepo  repository.VendorRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, vendorRepo repository.VendorRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		vendorRepo:  vendorRepo,
	}
}

// ExpenseInput represents the input for creating or updating an expense
type ExpenseInput struct {
	UserID      uuid.UUID
	VendorID    *uuid.UUID
	Category    string
	Amount      float64
	ExpenseDate time.Time
	Mode        enum.PaymentMode
	Notes       *string
}

func (s *ExpenseService) validate(ctx context.Context, input *ExpenseInput) error {
	var fieldErrors []apperror.FieldError
	if input.Category == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "category is required"})
	}
	if input.Amount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "amount must be positive"})
	}
	if !input.Mode.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "mode", Message: "invalid payment mode"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}

	if input.VendorID != nil {
		vendor, err := s.vendorRepo.GetByID(ctx, *input.VendorID)
		if err != nil {
			return err
		}
		if vendor == nil || vendor.UserID != input.UserID {
			return apperror.NewNotFoundError("Vendor")
		}
	}
	return nil
}

// CreateExpense creates a new expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *ExpenseInput) (*entity.Expense, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		UserID:      input.UserID,
		VendorID:    input.VendorID,
		Category:    input.Category,
		Amount:      input.Amount,
		ExpenseDate: input.ExpenseDate,
		Mode:        input.Mode,
		Notes:       input.Notes,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	if expense.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return expense, nil
}

// ListExpensesInput represents the input for listing expenses
type ListExpensesInput struct {
	UserID     uuid.UUID
	Pagination *pagination.Params
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListExpenses lists a user's expenses with filtering
func (s *ExpenseService) ListExpenses(ctx context.Context, input *ListExpensesInput) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, input.UserID, &repository.ExpenseFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(expenses, pagination.New(input.Pagination.Page, input.Pagination.PerPage, total)), nil
}

// UpdateExpense updates an expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *ExpenseInput) (*entity.Expense, error) {
	expense, err := s.GetExpense(ctx, input.UserID, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	expense.VendorID = input.VendorID
	expense.Category = input.Category
	expense.Amount = input.Amount
	expense.ExpenseDate = input.ExpenseDate
	expense.Mode = input.Mode
	expense.Notes = input.Notes
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetExpense(ctx, userID, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}
