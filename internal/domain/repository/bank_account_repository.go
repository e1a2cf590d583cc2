package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// BankAccountRepository defines the interface for bank account data operations
type BankAccountRepository interface {
	Create(ctx context.Context, account *entity.BankAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error)
	Update(ctx context.Context, account *entity.BankAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.Params) ([]entity.BankAccount, int64, error)
	// SetDefault marks the given account as default and clears the flag on the
	// user's other accounts in the same transaction.
	SetDefault(ctx context.Context, userID, id uuid.UUID) error
}
