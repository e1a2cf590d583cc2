package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	domainRepo "github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
	"gorm.io/gorm"
)

type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository
func NewBankAccountRepository(db *gorm.DB) domainRepo.BankAccountRepository {
	return &bankAccountRepository{db: db}
}

func (r *bankAccountRepository) Create(ctx context.Context, account *entity.BankAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *bankAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error) {
	var account entity.BankAccount
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *bankAccountRepository) Update(ctx context.Context, account *entity.BankAccount) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *bankAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.BankAccount{}, "id = ?", id).Error
}

func (r *bankAccountRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.Params) ([]entity.BankAccount, int64, error) {
	var accounts []entity.BankAccount
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BankAccount{}).Scopes(OwnedBy(userID))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&accounts).Error

	return accounts, total, err
}

func (r *bankAccountRepository) SetDefault(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.BankAccount{}).
			Where("user_id = ? AND id <> ?", userID, id).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&entity.BankAccount{}).
			Where("user_id = ? AND id = ?", userID, id).
			Update("is_default", true).Error
	})
}
