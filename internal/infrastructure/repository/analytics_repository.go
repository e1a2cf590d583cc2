package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	domainRepo "github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) AggregateDocuments(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind, from, to *time.Time) (domainRepo.DocumentAggregate, error) {
	var result struct {
		Count int64
		Total float64
	}

	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Scopes(OwnedBy(userID), DateBetween("document_date", from, to)).
		Where("kind = ?", kind).
		Where("status <> ?", enum.DocumentStatusCancelled).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total").
		Scan(&result).Error

	return domainRepo.DocumentAggregate{Count: result.Count, Total: result.Total}, err
}

func (r *analyticsRepository) OutstandingReceivables(ctx context.Context, userID uuid.UUID) (float64, error) {
	return r.outstanding(ctx, userID, enum.KindInvoice)
}

func (r *analyticsRepository) OutstandingPayables(ctx context.Context, userID uuid.UUID) (float64, error) {
	return r.outstanding(ctx, userID, enum.KindPurchase)
}

// outstanding sums non-cancelled, non-paid document totals minus payments
// recorded against them.
func (r *analyticsRepository) outstanding(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Scopes(OwnedBy(userID)).
		Where("kind = ?", kind).
		Where("status NOT IN ?", []enum.DocumentStatus{enum.DocumentStatusPaid, enum.DocumentStatusCancelled}).
		Select(`COALESCE(SUM(total_amount - (
			SELECT COALESCE(SUM(p.amount), 0) FROM payments p
			WHERE p.document_id = documents.id AND p.deleted_at IS NULL
		)), 0)`).
		Scan(&sum).Error
	return sum, err
}

func (r *analyticsRepository) ExpenseTotal(ctx context.Context, userID uuid.UUID, from, to *time.Time) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Scopes(OwnedBy(userID), DateBetween("expense_date", from, to)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *analyticsRepository) CountCustomers(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, userID, &entity.Customer{})
}

func (r *analyticsRepository) CountVendors(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, userID, &entity.Vendor{})
}

func (r *analyticsRepository) CountItems(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, userID, &entity.Item{})
}

func (r *analyticsRepository) count(ctx context.Context, userID uuid.UUID, model interface{}) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Scopes(OwnedBy(userID)).Count(&count).Error
	return count, err
}
