package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// BankAccountService handles bank account business logic
type BankAccountService struct {
	bankRepo repository.BankAccountRepository
}

// NewBankAccountService creates a new bank account service
func NewBankAccountService(bankRepo repository.BankAccountRepository) *BankAccountService {
	return &BankAccountService{bankRepo: bankRepo}
}

// BankAccountInput represents the input for creating or updating a bank account
type BankAccountInput struct {
	UserID         uuid.UUID
	BankName       string
	AccountNumber  string
	AccountHolder  string
	IFSC           *string
	OpeningBalance float64
	IsDefault      bool
}

// CreateBankAccount creates a new bank account
func (s *BankAccountService) CreateBankAccount(ctx context.Context, input *BankAccountInput) (*entity.BankAccount, error) {
	account := &entity.BankAccount{
		UserID:         input.UserID,
		BankName:       input.BankName,
		AccountNumber:  input.AccountNumber,
		AccountHolder:  input.AccountHolder,
		IFSC:           input.IFSC,
		OpeningBalance: input.OpeningBalance,
		IsDefault:      input.IsDefault,
	}
	if err := s.bankRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if input.IsDefault {
		if err := s.bankRepo.SetDefault(ctx, input.UserID, account.ID); err != nil {
			return nil, err
		}
	}
	return account, nil
}

// GetBankAccount retrieves a bank account by ID
func (s *BankAccountService) GetBankAccount(ctx context.Context, userID, id uuid.UUID) (*entity.BankAccount, error) {
	account, err := s.bankRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Bank account")
	}
	if account.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return account, nil
}

// ListBankAccounts lists a user's bank accounts
func (s *BankAccountService) ListBankAccounts(ctx context.Context, userID uuid.UUID, params *pagination.Params) (*pagination.PaginatedResult[entity.BankAccount], error) {
	accounts, total, err := s.bankRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(accounts, pagination.New(params.Page, params.PerPage, total)), nil
}

// UpdateBankAccount updates a bank account
func (s *BankAccountService) UpdateBankAccount(ctx context.Context, id uuid.UUID, input *BankAccountInput) (*entity.BankAccount, error) {
	account, err := s.GetBankAccount(ctx, input.UserID, id)
	if err != nil {
		return nil, err
	}

	account.BankName = input.BankName
	account.AccountNumber = input.AccountNumber
	account.AccountHolder = input.AccountHolder
	account.IFSC = input.IFSC
	account.OpeningBalance = input.OpeningBalance
	if err := s.bankRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	if input.IsDefault && !account.IsDefault {
		if err := s.bankRepo.SetDefault(ctx, input.UserID, account.ID); err != nil {
			return nil, err
		}
		account.IsDefault = true
	}
	return account, nil
}

// DeleteBankAccount deletes a bank account
func (s *BankAccountService) DeleteBankAccount(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetBankAccount(ctx, userID, id); err != nil {
		return err
	}
	return s.bankRepo.Delete(ctx, id)
}

// SetDefaultBankAccount marks a bank account as the user's default
func (s *BankAccountService) SetDefaultBankAccount(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetBankAccount(ctx, userID, id); err != nil {
		return err
	}
	return s.bankRepo.SetDefault(ctx, userID, id)
}
