package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
)

// DocumentAggregate holds count and total for one document kind
type DocumentAggregate struct {
	Count int64
	Total float64
}

// AnalyticsRepository defines interface for aggregation queries used by the
// dashboard and the chatbot
type AnalyticsRepository interface {
	// AggregateDocuments returns count and total amount of a user's documents
	// of the given kind, optionally bounded by document date.
	AggregateDocuments(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind, from, to *time.Time) (DocumentAggregate, error)

	// OutstandingReceivables sums unpaid invoice totals minus payments received
	// against them.
	OutstandingReceivables(ctx context.Context, userID uuid.UUID) (float64, error)

	// OutstandingPayables sums unpaid purchase totals minus payments made
	// against them.
	OutstandingPayables(ctx context.Context, userID uuid.UUID) (float64, error)

	// ExpenseTotal sums a user's expenses, optionally bounded by expense date.
	ExpenseTotal(ctx context.Context, userID uuid.UUID, from, to *time.Time) (float64, error)

	// CountCustomers and CountVendors return party counts for a user.
	CountCustomers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountVendors(ctx context.Context, userID uuid.UUID) (int64, error)
	CountItems(ctx context.Context, userID uuid.UUID) (int64, error)
}
