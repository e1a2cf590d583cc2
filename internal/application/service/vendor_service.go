package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// VendorService handles vendor business logic
type VendorService struct {
	vendorRepo repository.VendorRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// VendorInput represents the input for creating or updating a vendor
type VendorInput struct {
	UserID         uuid.UUID
	Name           string
	Email          *string
	Phone          *string
	GSTIN          *string
	Address        *string
	OpeningBalance float64
}

// CreateVendor creates a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, input *VendorInput) (*entity.Vendor, error) {
	vendor := &entity.Vendor{
		UserID:         input.UserID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		GSTIN:          input.GSTIN,
		Address:        input.Address,
		OpeningBalance: input.OpeningBalance,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, userID, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	if vendor.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return vendor, nil
}

// ListVendors lists a user's vendors with optional search
func (s *VendorService) ListVendors(ctx context.Context, userID uuid.UUID, params *pagination.Params, search string) (*pagination.PaginatedResult[entity.Vendor], error) {
	vendors, total, err := s.vendorRepo.List(ctx, userID, &repository.PartyFilterParams{
		Pagination: params,
		Search:     search,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(vendors, pagination.New(params.Page, params.PerPage, total)), nil
}

// UpdateVendor updates a vendor
func (s *VendorService) UpdateVendor(ctx context.Context, id uuid.UUID, input *VendorInput) (*entity.Vendor, error) {
	vendor, err := s.GetVendor(ctx, input.UserID, id)
	if err != nil {
		return nil, err
	}

	vendor.Name = input.Name
	vendor.Email = input.Email
	vendor.Phone = input.Phone
	vendor.GSTIN = input.GSTIN
	vendor.Address = input.Address
	vendor.OpeningBalance = input.OpeningBalance
	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor deletes a vendor
func (s *VendorService) DeleteVendor(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetVendor(ctx, userID, id); err != nil {
		return err
	}
	return s.vendorRepo.Delete(ctx, id)
}
