package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// CustomerService handles customer business logic
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents the input for creating or updating a customer
type CustomerInput struct {
	UserID          uuid.UUID
	Name            string
	Email           *string
	Phone           *string
	GSTIN           *string
	BillingAddress  *string
	ShippingAddress *string
	OpeningBalance  float64
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		UserID:          input.UserID,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		GSTIN:           input.GSTIN,
		BillingAddress:  input.BillingAddress,
		ShippingAddress: input.ShippingAddress,
		OpeningBalance:  input.OpeningBalance,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, userID, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if customer.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return customer, nil
}

// ListCustomers lists a user's customers with optional search
func (s *CustomerService) ListCustomers(ctx context.Context, userID uuid.UUID, params *pagination.Params, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, userID, &repository.PartyFilterParams{
		Pagination: params,
		Search:     search,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(customers, pagination.New(params.Page, params.PerPage, total)), nil
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, input.UserID, id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.GSTIN = input.GSTIN
	customer.BillingAddress = input.BillingAddress
	customer.ShippingAddress = input.ShippingAddress
	customer.OpeningBalance = input.OpeningBalance
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, userID, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
