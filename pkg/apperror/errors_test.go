package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
)

func TestGetAppError(t *testing.T) {
	appErr := apperror.GetAppError(apperror.NewNotFoundError("Customer"))
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Customer not found", appErr.Message)

	// wrapped AppErrors unwrap to themselves
	wrapped := fmt.Errorf("loading document: %w", apperror.ErrForbidden)
	assert.Equal(t, 403, apperror.GetAppError(wrapped).Code)

	// anything else is a 500
	appErr = apperror.GetAppError(errors.New("pq: connection refused"))
	assert.Equal(t, 500, appErr.Code)
}

func TestNewValidationError(t *testing.T) {
	err := apperror.NewValidationError([]apperror.FieldError{
		{Field: "lines[0].quantity", Message: "quantity cannot be negative"},
	})
	assert.Equal(t, 422, err.Code)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "lines[0].quantity", err.Errors[0].Field)
}

func TestSentinelsMatchWithErrorsIs(t *testing.T) {
	assert.ErrorIs(t, fmt.Errorf("login: %w", apperror.ErrInvalidCredentials), apperror.ErrInvalidCredentials)
	assert.NotErrorIs(t, apperror.ErrInvalidToken, apperror.ErrInvalidCredentials)
}
