package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// PaymentFilterParams contains filtering parameters for payment queries
type PaymentFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Direction  *enum.PaymentDirection
	CustomerID *uuid.UUID
	VendorID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *PaymentFilterParams) ([]entity.Payment, int64, error)
	// SumForDocument returns the total amount of payments recorded against a
	// document.
	SumForDocument(ctx context.Context, documentID uuid.UUID) (float64, error)
}
