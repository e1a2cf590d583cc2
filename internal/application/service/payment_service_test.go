package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
)

type paymentFixture struct {
	svc       *service.PaymentService
	store     *docStore
	customers *fakeCustomerRepo
	vendors   *fakeVendorRepo
	userID    uuid.UUID
	customer  *entity.Customer
	invoice   *entity.Document
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	store := newDocStore()
	customers := newFakeCustomerRepo()
	vendors := newFakeVendorRepo()
	svc := service.NewPaymentService(newFakePaymentRepo(), store, customers, vendors, newFakeBankAccountRepo())

	userID := uuid.New()
	customer := &entity.Customer{UserID: userID, Name: "Acme"}
	require.NoError(t, customers.Create(context.Background(), customer))

	invoice := &entity.Document{
		UserID:      userID,
		Kind:        enum.KindInvoice,
		Number:      "INV-000001",
		Status:      enum.DocumentStatusSent,
		TotalAmount: 500,
	}
	require.NoError(t, store.Create(context.Background(), invoice))

	return &paymentFixture{
		svc:       svc,
		store:     store,
		customers: customers,
		vendors:   vendors,
		userID:    userID,
		customer:  customer,
		invoice:   invoice,
	}
}

func (f *paymentFixture) invoiceStatus(t *testing.T) enum.DocumentStatus {
	t.Helper()
	document, err := f.store.GetByID(context.Background(), f.invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, document)
	return document.Status
}

func TestPaymentService_CreatePayment_SettlesInvoice(t *testing.T) {
	f := newPaymentFixture(t)

	// partial payment moves the invoice to partially paid
	_, err := f.svc.CreatePayment(context.Background(), &service.PaymentInput{
		UserID:      f.userID,
		CustomerID:  &f.customer.ID,
		DocumentID:  &f.invoice.ID,
		Direction:   enum.PaymentDirectionIn,
		Mode:        enum.PaymentModeUPI,
		Amount:      200,
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusPartiallyPaid, f.invoiceStatus(t))

	// settling the remainder marks it paid
	_, err = f.svc.CreatePayment(context.Background(), &service.PaymentInput{
		UserID:      f.userID,
		CustomerID:  &f.customer.ID,
		DocumentID:  &f.invoice.ID,
		Direction:   enum.PaymentDirectionIn,
		Mode:        enum.PaymentModeCash,
		Amount:      300,
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusPaid, f.invoiceStatus(t))
}

func TestPaymentService_DeletePayment_ReopensInvoice(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.svc.CreatePayment(context.Background(), &service.PaymentInput{
		UserID:      f.userID,
		CustomerID:  &f.customer.ID,
		DocumentID:  &f.invoice.ID,
		Direction:   enum.PaymentDirectionIn,
		Amount:      500,
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusPaid, f.invoiceStatus(t))

	require.NoError(t, f.svc.DeletePayment(context.Background(), f.userID, payment.ID))
	assert.Equal(t, enum.DocumentStatusSent, f.invoiceStatus(t))
}

func TestPaymentService_CreatePayment_Validation(t *testing.T) {
	f := newPaymentFixture(t)

	vendor := &entity.Vendor{UserID: f.userID, Name: "Supplies Inc"}
	require.NoError(t, f.vendors.Create(context.Background(), vendor))

	tests := []struct {
		name     string
		input    *service.PaymentInput
		wantCode int
	}{
		{
			name: "zero amount",
			input: &service.PaymentInput{
				UserID:      f.userID,
				Direction:   enum.PaymentDirectionIn,
				Amount:      0,
				PaymentDate: time.Now(),
			},
			wantCode: 422,
		},
		{
			name: "payment in with vendor",
			input: &service.PaymentInput{
				UserID:      f.userID,
				VendorID:    &vendor.ID,
				Direction:   enum.PaymentDirectionIn,
				Amount:      100,
				PaymentDate: time.Now(),
			},
			wantCode: 422,
		},
		{
			name: "payment out against customer invoice",
			input: &service.PaymentInput{
				UserID:      f.userID,
				DocumentID:  &f.invoice.ID,
				Direction:   enum.PaymentDirectionOut,
				Amount:      100,
				PaymentDate: time.Now(),
			},
			wantCode: 400,
		},
		{
			name: "unknown customer",
			input: &service.PaymentInput{
				UserID:      f.userID,
				CustomerID:  ptrUUID(uuid.New()),
				Direction:   enum.PaymentDirectionIn,
				Amount:      100,
				PaymentDate: time.Now(),
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreatePayment(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperror.GetAppError(err).Code)
		})
	}
}

func TestPaymentService_ReconcileSkipsCancelled(t *testing.T) {
	f := newPaymentFixture(t)

	require.NoError(t, f.store.UpdateStatus(context.Background(), f.invoice.ID, enum.DocumentStatusCancelled))

	_, err := f.svc.CreatePayment(context.Background(), &service.PaymentInput{
		UserID:      f.userID,
		CustomerID:  &f.customer.ID,
		DocumentID:  &f.invoice.ID,
		Direction:   enum.PaymentDirectionIn,
		Amount:      500,
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusCancelled, f.invoiceStatus(t))
}

func ptrUUID(id uuid.UUID) *uuid.UUID {
	return &id
}
