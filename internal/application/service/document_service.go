package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
	"github.com/swiftbill/swiftbill-api/pkg/totals"
)

// DocumentService handles all commercial document kinds through one engine.
// The stored line nets and document totals are always derived server-side via
// pkg/totals; anything the client computed is discarded.
type DocumentService struct {
	documentRepo repository.DocumentRepository
	lineRepo     repository.DocumentLineRepository
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	vendorRepo   repository.VendorRepository
	companyRepo  repository.CompanyRepository
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documentRepo repository.DocumentRepository,
	lineRepo repository.DocumentLineRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	companyRepo repository.CompanyRepository,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		lineRepo:     lineRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
		companyRepo:  companyRepo,
	}
}

// DocumentLineInput represents one line of a document being submitted
type DocumentLineInput struct {
	ItemID          *uuid.UUID
	Name            string
	Description     *string
	Quantity        float64
	UnitPrice       float64
	DiscountPercent float64
	TaxPercent      float64
}

// CreateDocumentInput represents the input for creating a document
type CreateDocumentInput struct {
	UserID       uuid.UUID
	Kind         enum.DocumentKind
	CompanyID    *uuid.UUID
	CustomerID   *uuid.UUID
	VendorID     *uuid.UUID
	DocumentDate time.Time
	DueDate      *time.Time
	Status       enum.DocumentStatus
	Notes        *string
	Lines        []DocumentLineInput
}

// CreateDocument creates a new document of the given kind, assigns the next
// number in its sequence and computes all totals from the lines.
func (s *DocumentService) CreateDocument(ctx context.Context, input *CreateDocumentInput) (*entity.Document, error) {
	if err := s.validate(ctx, input.UserID, input.Kind, input.CustomerID, input.VendorID, input.Status, input.Lines); err != nil {
		return nil, err
	}

	if input.CompanyID == nil {
		// Fall back to the user's default company profile when none is given.
		company, err := s.companyRepo.GetDefault(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			input.CompanyID = &company.ID
		}
	}

	nextNum, err := s.documentRepo.NextSequenceNumber(ctx, input.UserID, input.Kind)
	if err != nil {
		return nil, err
	}
	number := fmt.Sprintf("%s-%06d", input.Kind.Prefix(), nextNum)

	docTotals := computeTotals(input.Lines)

	document := &entity.Document{
		UserID:        input.UserID,
		CompanyID:     input.CompanyID,
		CustomerID:    input.CustomerID,
		VendorID:      input.VendorID,
		Kind:          input.Kind,
		Number:        number,
		DocumentDate:  input.DocumentDate,
		DueDate:       input.DueDate,
		Status:        input.Status,
		Notes:         input.Notes,
		Subtotal:      totals.Round2(docTotals.Subtotal),
		TotalDiscount: totals.Round2(docTotals.TotalDiscount),
		TaxAmount:     totals.Round2(docTotals.TaxAmount),
		TotalAmount:   totals.Round2(docTotals.TotalAmount),
	}

	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}

	if err := s.lineRepo.CreateBatch(ctx, buildLines(document.ID, input.Lines)); err != nil {
		return nil, err
	}

	return s.documentRepo.GetWithLines(ctx, document.ID)
}

// GetDocument retrieves a document with its lines, enforcing kind and
// ownership so an invoice ID cannot be fetched through the quotations route.
func (s *DocumentService) GetDocument(ctx context.Context, userID, id uuid.UUID, kind enum.DocumentKind) (*entity.Document, error) {
	document, err := s.documentRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if document == nil || document.Kind != kind {
		return nil, apperror.NewNotFoundError(kind.String())
	}
	if document.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return document, nil
}

// ListDocumentsInput represents the input for listing documents of one kind
type ListDocumentsInput struct {
	UserID     uuid.UUID
	Kind       enum.DocumentKind
	Pagination *pagination.Params
	Search     string
	Status     *enum.DocumentStatus
	CustomerID *uuid.UUID
	VendorID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListDocuments lists documents of one kind with filtering
func (s *DocumentService) ListDocuments(ctx context.Context, input *ListDocumentsInput) (*pagination.PaginatedResult[entity.Document], error) {
	params := &repository.DocumentFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		CustomerID: input.CustomerID,
		VendorID:   input.VendorID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	documents, total, err := s.documentRepo.List(ctx, input.UserID, input.Kind, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(documents, pag), nil
}

// UpdateDocumentInput represents the input for updating a document
type UpdateDocumentInput struct {
	UserID       uuid.UUID
	ID           uuid.UUID
	Kind         enum.DocumentKind
	CompanyID    *uuid.UUID
	CustomerID   *uuid.UUID
	VendorID     *uuid.UUID
	DocumentDate time.Time
	DueDate      *time.Time
	Status       enum.DocumentStatus
	Notes        *string
	Lines        []DocumentLineInput
}

// UpdateDocument replaces a document's fields and lines, recomputing totals
// from scratch. The document keeps its number.
func (s *DocumentService) UpdateDocument(ctx context.Context, input *UpdateDocumentInput) (*entity.Document, error) {
	document, err := s.documentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if document == nil || document.Kind != input.Kind {
		return nil, apperror.NewNotFoundError(input.Kind.String())
	}
	if document.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if err := s.validate(ctx, input.UserID, input.Kind, input.CustomerID, input.VendorID, input.Status, input.Lines); err != nil {
		return nil, err
	}

	docTotals := computeTotals(input.Lines)

	document.CompanyID = input.CompanyID
	document.CustomerID = input.CustomerID
	document.VendorID = input.VendorID
	document.DocumentDate = input.DocumentDate
	document.DueDate = input.DueDate
	document.Status = input.Status
	document.Notes = input.Notes
	document.Subtotal = totals.Round2(docTotals.Subtotal)
	document.TotalDiscount = totals.Round2(docTotals.TotalDiscount)
	document.TaxAmount = totals.Round2(docTotals.TaxAmount)
	document.TotalAmount = totals.Round2(docTotals.TotalAmount)

	if err := s.documentRepo.Update(ctx, document); err != nil {
		return nil, err
	}

	// Replace lines wholesale; the totals snapshot above was already derived
	// from the new lines.
	if err := s.lineRepo.DeleteByDocumentID(ctx, document.ID); err != nil {
		return nil, err
	}
	if err := s.lineRepo.CreateBatch(ctx, buildLines(document.ID, input.Lines)); err != nil {
		return nil, err
	}

	return s.documentRepo.GetWithLines(ctx, document.ID)
}

// DeleteDocument deletes a document and its lines
func (s *DocumentService) DeleteDocument(ctx context.Context, userID, id uuid.UUID, kind enum.DocumentKind) error {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if document == nil || document.Kind != kind {
		return apperror.NewNotFoundError(kind.String())
	}
	if document.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.lineRepo.DeleteByDocumentID(ctx, id); err != nil {
		return err
	}
	return s.documentRepo.Delete(ctx, id)
}

// UpdateDocumentStatus transitions a document's status
func (s *DocumentService) UpdateDocumentStatus(ctx context.Context, userID, id uuid.UUID, kind enum.DocumentKind, status enum.DocumentStatus) error {
	if !status.Valid() {
		return apperror.NewBadRequestError("Invalid document status")
	}

	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if document == nil || document.Kind != kind {
		return apperror.NewNotFoundError(kind.String())
	}
	if document.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.documentRepo.UpdateStatus(ctx, id, status)
}

// validate checks kind, party side, status, referenced-record ownership and
// line fields before anything is persisted. Validation failures never reach
// the database.
func (s *DocumentService) validate(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind, customerID, vendorID *uuid.UUID, status enum.DocumentStatus, lines []DocumentLineInput) error {
	if !kind.Valid() {
		return apperror.NewBadRequestError("Invalid document kind")
	}
	if !status.Valid() {
		return apperror.NewBadRequestError("Invalid document status")
	}
	if kind.CustomerSide() && vendorID != nil {
		return apperror.NewBadRequestError(kind.String() + " cannot reference a vendor")
	}
	if !kind.CustomerSide() && customerID != nil {
		return apperror.NewBadRequestError(kind.String() + " cannot reference a customer")
	}

	if customerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *customerID)
		if err != nil {
			return err
		}
		if customer == nil || customer.UserID != userID {
			return apperror.NewNotFoundError("Customer")
		}
	}
	if vendorID != nil {
		vendor, err := s.vendorRepo.GetByID(ctx, *vendorID)
		if err != nil {
			return err
		}
		if vendor == nil || vendor.UserID != userID {
			return apperror.NewNotFoundError("Vendor")
		}
	}

	var fieldErrors []apperror.FieldError
	if len(lines) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "lines", Message: "at least one line is required"})
	}
	for i, line := range lines {
		field := fmt.Sprintf("lines[%d]", i)
		if line.Name == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".name", Message: "name is required"})
		}
		if line.Quantity < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".quantity", Message: "quantity cannot be negative"})
		}
		if line.UnitPrice < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".unit_price", Message: "unit price cannot be negative"})
		}
		if line.DiscountPercent < 0 || line.DiscountPercent > 100 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".discount_percent", Message: "discount percent must be between 0 and 100"})
		}
		if line.TaxPercent < 0 || line.TaxPercent > 100 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".tax_percent", Message: "tax percent must be between 0 and 100"})
		}
		if line.ItemID != nil {
			item, err := s.itemRepo.GetByID(ctx, *line.ItemID)
			if err != nil {
				return err
			}
			if item == nil || item.UserID != userID {
				fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".item_id", Message: "item not found"})
			}
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func computeTotals(lines []DocumentLineInput) totals.DocumentTotals {
	inputs := make([]totals.LineInput, len(lines))
	for i, line := range lines {
		inputs[i] = totals.LineInput{
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			DiscountPercent: line.DiscountPercent,
			TaxPercent:      line.TaxPercent,
		}
	}
	return totals.ComputeDocumentTotals(inputs)
}

func buildLines(documentID uuid.UUID, lines []DocumentLineInput) []entity.DocumentLine {
	built := make([]entity.DocumentLine, len(lines))
	for i, line := range lines {
		built[i] = entity.DocumentLine{
			DocumentID:      documentID,
			ItemID:          line.ItemID,
			Name:            line.Name,
			Description:     line.Description,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			DiscountPercent: line.DiscountPercent,
			TaxPercent:      line.TaxPercent,
			NetAmount:       totals.Round2(totals.ComputeLineNet(line.Quantity, line.UnitPrice, line.DiscountPercent, line.TaxPercent)),
			Position:        i,
		}
	}
	return built
}
