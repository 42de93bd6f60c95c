// Package usecase implements the organization business logic.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/rentguard/blacklist/internal/organization/domain"
	appValidation "github.com/rentguard/blacklist/internal/validation"
)

// CreateOrganizationInput contains the input data for organization creation
type CreateOrganizationInput struct {
	Name string `json:"name"`
}

// UseCase defines the interface for organization business logic operations
type UseCase interface {
	CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*domain.Organization, error)
	GetOrganization(ctx context.Context, id int64) (*domain.Organization, error)
	ListOrganizations(ctx context.Context) ([]*domain.Organization, error)
}

// OrganizationRepository interface defines organization repository operations
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	GetByName(ctx context.Context, name string) (*domain.Organization, error)
	List(ctx context.Context) ([]*domain.Organization, error)
}

// OrganizationUseCase handles organization-related business logic
type OrganizationUseCase struct {
	orgRepo OrganizationRepository
}

// NewOrganizationUseCase creates a new OrganizationUseCase
func NewOrganizationUseCase(orgRepo OrganizationRepository) UseCase {
	return &OrganizationUseCase{
		orgRepo: orgRepo,
	}
}

func (uc *OrganizationUseCase) validateCreateOrganizationInput(input CreateOrganizationInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(3, 255).Error("name must be between 3 and 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// CreateOrganization creates an organization with a freshly generated hash salt
func (uc *OrganizationUseCase) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*domain.Organization, error) {
	if err := uc.validateCreateOrganizationInput(input); err != nil {
		return nil, err
	}

	org, err := domain.NewOrganization(strings.TrimSpace(input.Name))
	if err != nil {
		return nil, err
	}

	if err := uc.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// GetOrganization retrieves an organization by ID
func (uc *OrganizationUseCase) GetOrganization(ctx context.Context, id int64) (*domain.Organization, error) {
	return uc.orgRepo.GetByID(ctx, id)
}

// ListOrganizations retrieves all organizations ordered by ID
func (uc *OrganizationUseCase) ListOrganizations(ctx context.Context) ([]*domain.Organization, error) {
	return uc.orgRepo.List(ctx)
}
