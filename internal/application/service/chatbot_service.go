package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/totals"
)

// ChatbotService answers plain-text business questions by matching keywords
// to aggregation queries. It never generates free text; every answer comes
// from the user's own numbers.
type ChatbotService struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewChatbotService creates a new chatbot service
func NewChatbotService(analyticsRepo repository.AnalyticsRepository) *ChatbotService {
	return &ChatbotService{
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// ChatbotAnswer is the response to one chatbot query
type ChatbotAnswer struct {
	Intent string `json:"intent"`
	Answer string `json:"answer"`
}

// Query interprets a question and answers it from aggregates. Unrecognized
// questions get a help answer listing what can be asked.
func (s *ChatbotService) Query(ctx context.Context, userID uuid.UUID, question string) (*ChatbotAnswer, error) {
	q := strings.ToLower(question)
	from, to, period := s.parsePeriod(q)

	switch {
	case containsAny(q, "sale", "sales", "revenue", "invoice"):
		agg, err := s.analyticsRepo.AggregateDocuments(ctx, userID, enum.KindInvoice, from, to)
		if err != nil {
			return nil, err
		}
		return &ChatbotAnswer{
			Intent: "sales",
			Answer: fmt.Sprintf("You have %d invoice(s)%s totalling %.2f.", agg.Count, period, totals.Round2(agg.Total)),
		}, nil

	case containsAny(q, "quotation", "quote", "estimate"):
		agg, err := s.analyticsRepo.AggregateDocuments(ctx, userID, enum.KindQuotation, from, to)
		if err != nil {
			return nil, err
		}
		return &ChatbotAnswer{
			Intent: "quotations",
			Answer: fmt.Sprintf("You have %d quotation(s)%s totalling %.2f.", agg.Count, period, totals.Round2(agg.Total)),
		}, nil

	case containsAny(q, "purchase", "bought", "buying"):
		agg, err := s.analyticsRepo.AggregateDocuments(ctx, userID, enum.KindPurchase, from, to)
		if err != nil {
			return nil, err
		}
		return &ChatbotAnswer{
			Intent: "purchases",
			Answer: fmt.Sprintf("You recorded %d purchase(s)%s totalling %.2f.", agg.Count, period, totals.Round2(agg.Total)),
		}, nil

	case containsAny(q, "expense", "spent", "spending"):
		total, err := s.analyticsRepo.ExpenseTotal(ctx, userID, from, to)
		if err != nil {
			return nil, err
		}
		return &ChatbotAnswer{
			Intent: "expenses",
			Answer: fmt.Sprintf("Your expenses%s total %.2f.", period, totals.Round2(total)),
		}, nil

	case containsAny(q, "receivable", "owed to me", "owe me", "due from"):
		amount, err := s.analyticsRepo.OutstandingReceivables(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &ChatbotAnswer{
			Intent: "receivables",
			Answer: fmt.Sprintf("Customers currently owe you %.2f.", totals.Round2(amount)),
		}, nil

	case containsAny(q, "payable", "i owe", "due to"):
		amount, err := s.analyticsRepo.OutstandingPayables(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &ChatbotAnswer{
			Intent: "payables",
			Answer: fmt.Sprintf("You currently owe vendors %.2f.", totals.Round2(amount)),
		}, nil

	case containsAny(q, "customer", "client"):
		count, err := s.analyticsRepo.CountCustomers(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &ChatbotAnswer{
			Intent: "customers",
			Answer: fmt.Sprintf("You have %d customer(s).", count),
		}, nil

	case containsAny(q, "vendor", "supplier"):
		count, err := s.analyticsRepo.CountVendors(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &ChatbotAnswer{
			Intent: "vendors",
			Answer: fmt.Sprintf("You have %d vendor(s).", count),
		}, nil

	case containsAny(q, "item", "product", "stock", "inventory"):
		count, err := s.analyticsRepo.CountItems(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &ChatbotAnswer{
			Intent: "items",
			Answer: fmt.Sprintf("Your catalog has %d item(s).", count),
		}, nil
	}

	return &ChatbotAnswer{
		Intent: "unknown",
		Answer: "I can answer questions about sales, quotations, purchases, expenses, receivables, payables, customers, vendors and items. Try asking \"what are my sales this month?\".",
	}, nil
}

// parsePeriod extracts a date window from the question. Returns nil bounds
// when no period keyword is present.
func (s *ChatbotService) parsePeriod(q string) (*time.Time, *time.Time, string) {
	now := s.now()
	switch {
	case strings.Contains(q, "today"):
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
		return &start, &end, " today"
	case strings.Contains(q, "this month"):
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return &start, &end, " this month"
	case strings.Contains(q, "last month"):
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return &start, &end, " last month"
	case strings.Contains(q, "this year"):
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)
		return &start, &end, " this year"
	}
	return nil, nil, ""
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
