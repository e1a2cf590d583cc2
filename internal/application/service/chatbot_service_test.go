package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
)

func TestChatbotService_Query_Intents(t *testing.T) {
	analytics := &fakeAnalyticsRepo{
		aggregates: map[enum.DocumentKind]repository.DocumentAggregate{
			enum.KindInvoice:   {Count: 3, Total: 1500.50},
			enum.KindQuotation: {Count: 2, Total: 800},
			enum.KindPurchase:  {Count: 1, Total: 250},
		},
		expenses:    420.75,
		receivables: 1000,
		payables:    300,
		customers:   12,
		vendors:     4,
		items:       27,
	}
	svc := service.NewChatbotService(analytics)
	userID := uuid.New()

	tests := []struct {
		name       string
		question   string
		wantIntent string
		wantAnswer string
	}{
		{
			name:       "sales",
			question:   "What are my total sales?",
			wantIntent: "sales",
			wantAnswer: "You have 3 invoice(s) totalling 1500.50.",
		},
		{
			name:       "quotations",
			question:   "how many quotations did I send",
			wantIntent: "quotations",
			wantAnswer: "You have 2 quotation(s) totalling 800.00.",
		},
		{
			name:       "purchases",
			question:   "show my purchases",
			wantIntent: "purchases",
			wantAnswer: "You recorded 1 purchase(s) totalling 250.00.",
		},
		{
			name:       "expenses",
			question:   "how much have I spent on expenses",
			wantIntent: "expenses",
			wantAnswer: "Your expenses total 420.75.",
		},
		{
			name:       "receivables",
			question:   "what is owed to me",
			wantIntent: "receivables",
			wantAnswer: "Customers currently owe you 1000.00.",
		},
		{
			name:       "payables",
			question:   "how much do i owe",
			wantIntent: "payables",
			wantAnswer: "You currently owe vendors 300.00.",
		},
		{
			name:       "customers",
			question:   "How many customers do I have?",
			wantIntent: "customers",
			wantAnswer: "You have 12 customer(s).",
		},
		{
			name:       "vendors",
			question:   "list my suppliers",
			wantIntent: "vendors",
			wantAnswer: "You have 4 vendor(s).",
		},
		{
			name:       "items",
			question:   "how big is my product catalog",
			wantIntent: "items",
			wantAnswer: "Your catalog has 27 item(s).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := svc.Query(context.Background(), userID, tt.question)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIntent, answer.Intent)
			assert.Equal(t, tt.wantAnswer, answer.Answer)
		})
	}
}

func TestChatbotService_Query_UnknownQuestion(t *testing.T) {
	svc := service.NewChatbotService(&fakeAnalyticsRepo{})

	answer, err := svc.Query(context.Background(), uuid.New(), "tell me a joke")
	require.NoError(t, err)
	assert.Equal(t, "unknown", answer.Intent)
	assert.Contains(t, answer.Answer, "sales, quotations, purchases")
}

func TestChatbotService_Query_PeriodBounds(t *testing.T) {
	analytics := &fakeAnalyticsRepo{
		aggregates: map[enum.DocumentKind]repository.DocumentAggregate{
			enum.KindInvoice: {Count: 1, Total: 100},
		},
	}
	svc := service.NewChatbotService(analytics)

	answer, err := svc.Query(context.Background(), uuid.New(), "what are my sales this month?")
	require.NoError(t, err)
	assert.Contains(t, answer.Answer, "this month")

	require.NotNil(t, analytics.lastFrom)
	require.NotNil(t, analytics.lastTo)
	assert.Equal(t, 1, analytics.lastFrom.Day())
	assert.True(t, analytics.lastTo.After(*analytics.lastFrom))

	// no period keyword means an all-time query
	_, err = svc.Query(context.Background(), uuid.New(), "what are my sales?")
	require.NoError(t, err)
	assert.Nil(t, analytics.lastFrom)
	assert.Nil(t, analytics.lastTo)
}
