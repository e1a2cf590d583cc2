package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	domainRepo "github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) domainRepo.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vendor").
		First(&document, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &document, err
}

func (r *documentRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Customer").
		Preload("Vendor").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("document_lines.position ASC")
		}).
		First(&document, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &document, err
}

func (r *documentRepository) Update(ctx context.Context, document *entity.Document) error {
	return r.db.WithContext(ctx).Save(document).Error
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Document{}, "id = ?", id).Error
}

func (r *documentRepository) List(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind, params *domainRepo.DocumentFilterParams) ([]entity.Document, int64, error) {
	var documents []entity.Document
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Document{}).
		Scopes(
			OwnedBy(userID),
			SearchILike(params.Search, "number", "notes"),
			DateBetween("document_date", params.StartDate, params.EndDate),
		).
		Where("kind = ?", kind)

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.VendorID != nil {
		query = query.Where("vendor_id = ?", *params.VendorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Vendor").
		Order(sortBy + " " + sortOrder).
		Find(&documents).Error

	return documents, total, err
}

func (r *documentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *documentRepository) NextSequenceNumber(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Unscoped().
		Scopes(OwnedBy(userID)).
		Where("kind = ?", kind).
		Count(&count).Error
	return int(count) + 1, err
}

type documentLineRepository struct {
	db *gorm.DB
}

// NewDocumentLineRepository creates a new document line repository
func NewDocumentLineRepository(db *gorm.DB) domainRepo.DocumentLineRepository {
	return &documentLineRepository{db: db}
}

func (r *documentLineRepository) CreateBatch(ctx context.Context, lines []entity.DocumentLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

func (r *documentLineRepository) GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentLine, error) {
	var lines []entity.DocumentLine
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("position ASC").
		Find(&lines).Error
	return lines, err
}

func (r *documentLineRepository) DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DocumentLine{}, "document_id = ?", documentID).Error
}
