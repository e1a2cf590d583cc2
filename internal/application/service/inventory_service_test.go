package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

func newInventoryService(t *testing.T) (*service.InventoryService, *fakeItemRepo, *fakeStockAdjustmentRepo, *entity.Item) {
	t.Helper()
	items := newFakeItemRepo()
	adjustments := newFakeStockAdjustmentRepo()
	svc := service.NewInventoryService(items, adjustments)

	item := &entity.Item{UserID: uuid.New(), Name: "Widget", StockQuantity: 10}
	require.NoError(t, items.Create(context.Background(), item))
	return svc, items, adjustments, item
}

func TestInventoryService_AdjustStock_AppliesDelta(t *testing.T) {
	svc, items, _, item := newInventoryService(t)

	adjustment, err := svc.AdjustStock(context.Background(), &service.AdjustStockInput{
		UserID: item.UserID,
		ItemID: item.ID,
		Delta:  -4,
		Reason: enum.AdjustmentReasonSale,
	})
	require.NoError(t, err)
	assert.Equal(t, -4.0, adjustment.Delta)

	got, err := items.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.StockQuantity)

	// the movement lands in the audit trail
	listed, err := svc.ListAdjustments(context.Background(), item.UserID, &pagination.Params{Page: 1, PerPage: 10}, &item.ID)
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)
	assert.Equal(t, enum.AdjustmentReasonSale, listed.Items[0].Reason)
}

func TestInventoryService_AdjustStock_Rejections(t *testing.T) {
	svc, items, adjustments, item := newInventoryService(t)

	tests := []struct {
		name     string
		input    *service.AdjustStockInput
		wantCode int
	}{
		{
			name:     "zero delta",
			input:    &service.AdjustStockInput{UserID: item.UserID, ItemID: item.ID, Delta: 0, Reason: enum.AdjustmentReasonManual},
			wantCode: 400,
		},
		{
			name:     "invalid reason",
			input:    &service.AdjustStockInput{UserID: item.UserID, ItemID: item.ID, Delta: 1, Reason: enum.AdjustmentReason(99)},
			wantCode: 400,
		},
		{
			name:     "would go negative",
			input:    &service.AdjustStockInput{UserID: item.UserID, ItemID: item.ID, Delta: -11, Reason: enum.AdjustmentReasonSale},
			wantCode: 400,
		},
		{
			name:     "unknown item",
			input:    &service.AdjustStockInput{UserID: item.UserID, ItemID: uuid.New(), Delta: 1, Reason: enum.AdjustmentReasonManual},
			wantCode: 404,
		},
		{
			name:     "another user's item",
			input:    &service.AdjustStockInput{UserID: uuid.New(), ItemID: item.ID, Delta: 1, Reason: enum.AdjustmentReasonManual},
			wantCode: 403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AdjustStock(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperror.GetAppError(err).Code)
		})
	}

	// rejected adjustments leave stock and the audit trail untouched
	got, err := items.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.StockQuantity)
	assert.Empty(t, adjustments.adjustments)
}
