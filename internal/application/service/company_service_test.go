package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
)

func TestCompanyService_FirstCompanyBecomesDefault(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := service.NewCompanyService(repo)
	userID := uuid.New()

	first, err := svc.CreateCompany(context.Background(), &service.CompanyInput{UserID: userID, Name: "Main Traders"})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	// later companies stay non-default unless asked
	second, err := svc.CreateCompany(context.Background(), &service.CompanyInput{UserID: userID, Name: "Side Traders"})
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	got, err := repo.GetDefault(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestCompanyService_SetDefault_FlipsPrevious(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := service.NewCompanyService(repo)
	userID := uuid.New()

	first, err := svc.CreateCompany(context.Background(), &service.CompanyInput{UserID: userID, Name: "Main Traders"})
	require.NoError(t, err)
	second, err := svc.CreateCompany(context.Background(), &service.CompanyInput{UserID: userID, Name: "Side Traders"})
	require.NoError(t, err)

	require.NoError(t, svc.SetDefaultCompany(context.Background(), userID, second.ID))

	got, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	got, err = repo.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)

	// exactly one default survives the flip
	def, err := repo.GetDefault(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)
}

func TestCompanyService_SetDefault_OtherUsersCompany(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := service.NewCompanyService(repo)

	company, err := svc.CreateCompany(context.Background(), &service.CompanyInput{UserID: uuid.New(), Name: "Main Traders"})
	require.NoError(t, err)

	err = svc.SetDefaultCompany(context.Background(), uuid.New(), company.ID)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}
