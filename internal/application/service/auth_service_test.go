package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/utils"
)

func newAuthService() (*service.AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	return service.NewAuthService(users, jwtManager), users
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := newAuthService()

	result, err := svc.Register(context.Background(), &service.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "asha@example.com", result.User.Email)
	// stored password must be a hash, never the plaintext
	assert.NotEqual(t, "s3cret-pass", result.User.Password)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	input := &service.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "s3cret-pass"}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), &service.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	_, err = svc.Login(context.Background(), "asha@example.com", "wrong-pass")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _ := newAuthService()

	registered, err := svc.Register(context.Background(), &service.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _ := newAuthService()

	registered, err := svc.Register(context.Background(), &service.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	userID := registered.User.ID

	err = svc.ChangePassword(context.Background(), userID, "wrong-pass", "new-pass-123")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	require.NoError(t, svc.ChangePassword(context.Background(), userID, "s3cret-pass", "new-pass-123"))

	_, err = svc.Login(context.Background(), "asha@example.com", "new-pass-123")
	assert.NoError(t, err)
	_, err = svc.Login(context.Background(), "asha@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
