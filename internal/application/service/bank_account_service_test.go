package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
)

func TestBankAccountService_SetDefault_FlipsPrevious(t *testing.T) {
	repo := newFakeBankAccountRepo()
	svc := service.NewBankAccountService(repo)
	userID := uuid.New()

	first, err := svc.CreateBankAccount(context.Background(), &service.BankAccountInput{
		UserID:        userID,
		BankName:      "State Bank",
		AccountNumber: "000111222",
		AccountHolder: "Asha",
		IsDefault:     true,
	})
	require.NoError(t, err)
	second, err := svc.CreateBankAccount(context.Background(), &service.BankAccountInput{
		UserID:        userID,
		BankName:      "Union Bank",
		AccountNumber: "333444555",
		AccountHolder: "Asha",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetDefaultBankAccount(context.Background(), userID, second.ID))

	got, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	got, err = repo.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
}

func TestBankAccountService_CreateDefault_ClearsSiblings(t *testing.T) {
	repo := newFakeBankAccountRepo()
	svc := service.NewBankAccountService(repo)
	userID := uuid.New()

	first, err := svc.CreateBankAccount(context.Background(), &service.BankAccountInput{
		UserID:        userID,
		BankName:      "State Bank",
		AccountNumber: "000111222",
		AccountHolder: "Asha",
		IsDefault:     true,
	})
	require.NoError(t, err)

	// creating a second default demotes the first
	_, err = svc.CreateBankAccount(context.Background(), &service.BankAccountInput{
		UserID:        userID,
		BankName:      "Union Bank",
		AccountNumber: "333444555",
		AccountHolder: "Asha",
		IsDefault:     true,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
}
