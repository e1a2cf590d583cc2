package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// DocumentFilterParams contains filtering parameters for document queries.
// StartDate/EndDate bound the document date, both inclusive.
type DocumentFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.DocumentStatus
	CustomerID *uuid.UUID
	VendorID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// DocumentRepository defines the interface for document data operations
type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	Update(ctx context.Context, document *entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind, params *DocumentFilterParams) ([]entity.Document, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error
	// NextSequenceNumber returns the next number in the per-user, per-kind
	// numbering sequence.
	NextSequenceNumber(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind) (int, error)
}

// DocumentLineRepository defines the interface for document line data operations
type DocumentLineRepository interface {
	CreateBatch(ctx context.Context, lines []entity.DocumentLine) error
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentLine, error)
	DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error
}
