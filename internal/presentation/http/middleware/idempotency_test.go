package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/presentation/http/middleware"
)

type memoryIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newMemoryIdempotencyRepo() *memoryIdempotencyRepo {
	return &memoryIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *memoryIdempotencyRepo) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	ikey, ok := r.keys[key+"|"+userID.String()]
	if !ok {
		return nil, nil
	}
	return ikey, nil
}

func (r *memoryIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.keys[ikey.Key+"|"+ikey.UserID.String()] = ikey
	return nil
}

func (r *memoryIdempotencyRepo) DeleteExpired(_ context.Context) error {
	return nil
}

func newIdempotencyRouter(repo *memoryIdempotencyRepo, userID uuid.UUID) (*gin.Engine, *int, *int) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	router.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: repo}))

	invoiceHits, expenseHits := 0, 0
	router.POST("/invoices", func(c *gin.Context) {
		invoiceHits++
		c.JSON(http.StatusCreated, gin.H{"resource": "invoice"})
	})
	router.POST("/expenses", func(c *gin.Context) {
		expenseHits++
		c.JSON(http.StatusCreated, gin.H{"resource": "expense"})
	})
	return router, &invoiceHits, &expenseHits
}

func post(t *testing.T, router *gin.Engine, path, key string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyKeyHeader, key)
	}
	router.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysSameEndpoint(t *testing.T) {
	router, invoiceHits, _ := newIdempotencyRouter(newMemoryIdempotencyRepo(), uuid.New())

	first := post(t, router, "/invoices", "key-1")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get("X-Idempotency-Replayed"))

	second := post(t, router, "/invoices", "key-1")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, *invoiceHits)
}

func TestIdempotency_KeyDoesNotLeakAcrossEndpoints(t *testing.T) {
	router, invoiceHits, expenseHits := newIdempotencyRouter(newMemoryIdempotencyRepo(), uuid.New())

	first := post(t, router, "/invoices", "key-1")
	require.Equal(t, http.StatusCreated, first.Code)

	// same key on a different route must reach that route's handler, not
	// replay the invoice response
	other := post(t, router, "/expenses", "key-1")
	assert.Empty(t, other.Header().Get("X-Idempotency-Replayed"))
	assert.Contains(t, other.Body.String(), "expense")
	assert.Equal(t, 1, *invoiceHits)
	assert.Equal(t, 1, *expenseHits)
}

func TestIdempotency_NoKeyProcessesEveryTime(t *testing.T) {
	router, invoiceHits, _ := newIdempotencyRouter(newMemoryIdempotencyRepo(), uuid.New())

	post(t, router, "/invoices", "")
	post(t, router, "/invoices", "")
	assert.Equal(t, 2, *invoiceHits)
}
