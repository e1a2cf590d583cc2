package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/totals"
)

// DashboardService aggregates business numbers for the overview screen
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardSummary holds the aggregates shown on the overview screen
type DashboardSummary struct {
	TotalSales             float64 `json:"total_sales"`
	TotalPurchases         float64 `json:"total_purchases"`
	TotalExpenses          float64 `json:"total_expenses"`
	OutstandingReceivables float64 `json:"outstanding_receivables"`
	OutstandingPayables    float64 `json:"outstanding_payables"`
	InvoiceCount           int64   `json:"invoice_count"`
	QuotationCount         int64   `json:"quotation_count"`
	PurchaseCount          int64   `json:"purchase_count"`
	CustomerCount          int64   `json:"customer_count"`
	VendorCount            int64   `json:"vendor_count"`
	ItemCount              int64   `json:"item_count"`
}

// GetSummary builds the dashboard summary, optionally bounded by date
func (s *DashboardService) GetSummary(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*DashboardSummary, error) {
	invoices, err := s.analyticsRepo.AggregateDocuments(ctx, userID, enum.KindInvoice, from, to)
	if err != nil {
		return nil, err
	}
	quotations, err := s.analyticsRepo.AggregateDocuments(ctx, userID, enum.KindQuotation, from, to)
	if err != nil {
		return nil, err
	}
	purchases, err := s.analyticsRepo.AggregateDocuments(ctx, userID, enum.KindPurchase, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.analyticsRepo.ExpenseTotal(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	receivables, err := s.analyticsRepo.OutstandingReceivables(ctx, userID)
	if err != nil {
		return nil, err
	}
	payables, err := s.analyticsRepo.OutstandingPayables(ctx, userID)
	if err != nil {
		return nil, err
	}
	customers, err := s.analyticsRepo.CountCustomers(ctx, userID)
	if err != nil {
		return nil, err
	}
	vendors, err := s.analyticsRepo.CountVendors(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.analyticsRepo.CountItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalSales:             totals.Round2(invoices.Total),
		TotalPurchases:         totals.Round2(purchases.Total),
		TotalExpenses:          totals.Round2(expenses),
		OutstandingReceivables: totals.Round2(receivables),
		OutstandingPayables:    totals.Round2(payables),
		InvoiceCount:           invoices.Count,
		QuotationCount:         quotations.Count,
		PurchaseCount:          purchases.Count,
		CustomerCount:          customers,
		VendorCount:            vendors,
		ItemCount:              items,
	}, nil
}
