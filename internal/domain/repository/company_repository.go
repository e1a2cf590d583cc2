package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// CompanyRepository defines the interface for company profile data operations
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	GetDefault(ctx context.Context, userID uuid.UUID) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.Params, search string) ([]entity.Company, int64, error)
	// SetDefault marks the given company as default and clears the flag on the
	// user's other companies in the same transaction.
	SetDefault(ctx context.Context, userID, id uuid.UUID) error
}
