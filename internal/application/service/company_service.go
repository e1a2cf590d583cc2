package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/pkg/apperror"
	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

// CompanyService handles company profile business logic
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// CompanyInput represents the input for creating or updating a company profile
type CompanyInput struct {
	UserID    uuid.UUID
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	GSTIN     *string
	LogoURL   *string
	IsDefault bool
}

// CreateCompany creates a new company profile. The first profile a user
// creates becomes the default automatically.
func (s *CompanyService) CreateCompany(ctx context.Context, input *CompanyInput) (*entity.Company, error) {
	existing, err := s.companyRepo.GetDefault(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	company := &entity.Company{
		UserID:    input.UserID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		GSTIN:     input.GSTIN,
		LogoURL:   input.LogoURL,
		IsDefault: input.IsDefault || existing == nil,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	if company.IsDefault && existing != nil {
		if err := s.companyRepo.SetDefault(ctx, input.UserID, company.ID); err != nil {
			return nil, err
		}
	}
	return company, nil
}

// GetCompany retrieves a company profile by ID
func (s *CompanyService) GetCompany(ctx context.Context, userID, id uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}
	if company.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return company, nil
}

// ListCompanies lists a user's company profiles
func (s *CompanyService) ListCompanies(ctx context.Context, userID uuid.UUID, params *pagination.Params, search string) (*pagination.PaginatedResult[entity.Company], error) {
	companies, total, err := s.companyRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(companies, pagination.New(params.Page, params.PerPage, total)), nil
}

// UpdateCompany updates a company profile
func (s *CompanyService) UpdateCompany(ctx context.Context, id uuid.UUID, input *CompanyInput) (*entity.Company, error) {
	company, err := s.GetCompany(ctx, input.UserID, id)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.Email = input.Email
	company.Phone = input.Phone
	company.Address = input.Address
	company.GSTIN = input.GSTIN
	company.LogoURL = input.LogoURL
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	if input.IsDefault && !company.IsDefault {
		if err := s.companyRepo.SetDefault(ctx, input.UserID, company.ID); err != nil {
			return nil, err
		}
		company.IsDefault = true
	}
	return company, nil
}

// DeleteCompany deletes a company profile
func (s *CompanyService) DeleteCompany(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetCompany(ctx, userID, id); err != nil {
		return err
	}
	return s.companyRepo.Delete(ctx, id)
}

// SetDefaultCompany marks a company profile as the user's default
func (s *CompanyService) SetDefaultCompany(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetCompany(ctx, userID, id); err != nil {
		return err
	}
	return s.companyRepo.SetDefault(ctx, userID, id)
}
