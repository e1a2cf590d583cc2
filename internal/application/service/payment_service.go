package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// PaymentService handles payment business logic. Recording or removing a
// payment against a document moves that document between Paid, PartiallyPaid
// and its prior state based on the settled amount.
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	documentRepo repository.DocumentRepository
	customerRepo repository.CustomerRepository
	vendorRepo   repository.VendorRepository
	bankRepo     repository.BankAccountRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	documentRepo repository.DocumentRepository,
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	bankRepo repository.BankAccountRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		documentRepo: documentRepo,
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
		bankRepo:     bankRepo,
	}
}

// PaymentInput represents the input for creating or updating a payment
type PaymentInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	VendorID      *uuid.UUID
	DocumentID    *uuid.UUID
	BankAccountID *uuid.UUID
	Direction     enum.PaymentDirection
	Mode          enum.PaymentMode
	Amount        float64
	PaymentDate   time.Time
	Reference     *string
	Notes         *string
}

func (s *PaymentService) validate(ctx context.Context, input *PaymentInput) error {
	var fieldErrors []apperror.FieldError
	if input.Amount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "amount must be positive"})
	}
	if !input.Direction.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "direction", Message: "invalid payment direction"})
	}
	if !input.Mode.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "mode", Message: "invalid payment mode"})
	}
	if input.Direction == enum.PaymentDirectionIn && input.VendorID != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vendor_id", Message: "payment in cannot reference a vendor"})
	}
	if input.Direction == enum.PaymentDirectionOut && input.CustomerID != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_id", Message: "payment out cannot reference a customer"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil || customer.UserID != input.UserID {
			return apperror.NewNotFoundError("Customer")
		}
	}
	if input.VendorID != nil {
		vendor, err := s.vendorRepo.GetByID(ctx, *input.VendorID)
		if err != nil {
			return err
		}
		if vendor == nil || vendor.UserID != input.UserID {
			return apperror.NewNotFoundError("Vendor")
		}
	}
	if input.BankAccountID != nil {
		account, err := s.bankRepo.GetByID(ctx, *input.BankAccountID)
		if err != nil {
			return err
		}
		if account == nil || account.UserID != input.UserID {
			return apperror.NewNotFoundError("Bank account")
		}
	}
	if input.DocumentID != nil {
		document, err := s.documentRepo.GetByID(ctx, *input.DocumentID)
		if err != nil {
			return err
		}
		if document == nil || document.UserID != input.UserID {
			return apperror.NewNotFoundError("Document")
		}
		// Money received settles customer-side documents, money paid settles
		// vendor-side ones.
		if input.Direction == enum.PaymentDirectionIn && !document.Kind.CustomerSide() {
			return apperror.NewBadRequestError("Payment in cannot settle a " + document.Kind.String())
		}
		if input.Direction == enum.PaymentDirectionOut && document.Kind.CustomerSide() {
			return apperror.NewBadRequestError("Payment out cannot settle a " + document.Kind.String())
		}
	}
	return nil
}

// CreatePayment records a payment and, if it settles a document, updates the
// document's status.
func (s *PaymentService) CreatePayment(ctx context.Context, input *PaymentInput) (*entity.Payment, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		VendorID:      input.VendorID,
		DocumentID:    input.DocumentID,
		BankAccountID: input.BankAccountID,
		Direction:     input.Direction,
		Mode:          input.Mode,
		Amount:        input.Amount,
		PaymentDate:   input.PaymentDate,
		Reference:     input.Reference,
		Notes:         input.Notes,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if input.DocumentID != nil {
		if err := s.reconcileDocumentStatus(ctx, *input.DocumentID); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, userID, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	if payment.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return payment, nil
}

// ListPaymentsInput represents the input for listing payments
type ListPaymentsInput struct {
	UserID     uuid.UUID
	Pagination *pagination.Params
	Search     string
	Direction  *enum.PaymentDirection
	CustomerID *uuid.UUID
	VendorID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListPayments lists a user's payments with filtering
func (s *PaymentService) ListPayments(ctx context.Context, input *ListPaymentsInput) (*pagination.PaginatedResult[entity.Payment], error) {
	payments, total, err := s.paymentRepo.List(ctx, input.UserID, &repository.PaymentFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Direction:  input.Direction,
		CustomerID: input.CustomerID,
		VendorID:   input.VendorID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(payments, pagination.New(input.Pagination.Page, input.Pagination.PerPage, total)), nil
}

// UpdatePayment updates a payment and reconciles any documents it touched
func (s *PaymentService) UpdatePayment(ctx context.Context, id uuid.UUID, input *PaymentInput) (*entity.Payment, error) {
	payment, err := s.GetPayment(ctx, input.UserID, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	previousDocID := payment.DocumentID

	payment.CustomerID = input.CustomerID
	payment.VendorID = input.VendorID
	payment.DocumentID = input.DocumentID
	payment.BankAccountID = input.BankAccountID
	payment.Direction = input.Direction
	payment.Mode = input.Mode
	payment.Amount = input.Amount
	payment.PaymentDate = input.PaymentDate
	payment.Reference = input.Reference
	payment.Notes = input.Notes
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	if previousDocID != nil && (input.DocumentID == nil || *previousDocID != *input.DocumentID) {
		if err := s.reconcileDocumentStatus(ctx, *previousDocID); err != nil {
			return nil, err
		}
	}
	if input.DocumentID != nil {
		if err := s.reconcileDocumentStatus(ctx, *input.DocumentID); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

// DeletePayment deletes a payment and reconciles the document it settled
func (s *PaymentService) DeletePayment(ctx context.Context, userID, id uuid.UUID) error {
	payment, err := s.GetPayment(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if payment.DocumentID != nil {
		return s.reconcileDocumentStatus(ctx, *payment.DocumentID)
	}
	return nil
}

// reconcileDocumentStatus recomputes a document's payment status from the sum
// of payments recorded against it. Cancelled documents are left alone.
func (s *PaymentService) reconcileDocumentStatus(ctx context.Context, documentID uuid.UUID) error {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document == nil || document.Status == enum.DocumentStatusCancelled {
		return nil
	}

	paid, err := s.paymentRepo.SumForDocument(ctx, documentID)
	if err != nil {
		return err
	}

	var status enum.DocumentStatus
	switch {
	case paid <= 0:
		status = enum.DocumentStatusSent
	case paid >= document.TotalAmount:
		status = enum.DocumentStatusPaid
	default:
		status = enum.DocumentStatusPartiallyPaid
	}
	if status == document.Status {
		return nil
	}
	return s.documentRepo.UpdateStatus(ctx, documentID, status)
}
