// Package usecase implements the admin business logic.
package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/admin/domain"
	orgDomain "github.com/rentguard/blacklist/internal/organization/domain"
	appValidation "github.com/rentguard/blacklist/internal/validation"
)

// CreateAdminInput contains the input data for admin creation
type CreateAdminInput struct {
	ExternalID int64  `json:"external_id"`
	Role       string `json:"role"`
}

// UseCase defines the interface for admin business logic operations
type UseCase interface {
	CreateAdmin(ctx context.Context, input CreateAdminInput) (*domain.Admin, error)
	GetAdmin(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetAdminByExternalID(ctx context.Context, externalID int64) (*domain.Admin, error)
	AssignToOrganization(ctx context.Context, adminID uuid.UUID, organizationID int64) error
	OrganizationIDs(ctx context.Context, adminID uuid.UUID) ([]int64, error)
}

// AdminRepository interface defines admin repository operations
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Admin, error)
	AddToOrganization(ctx context.Context, adminID uuid.UUID, organizationID int64) error
	OrganizationIDs(ctx context.Context, adminID uuid.UUID) ([]int64, error)
	ListByOrganization(ctx context.Context, organizationID int64) ([]*domain.Admin, error)
}

// OrganizationRepository is the subset of the organization repository needed here
type OrganizationRepository interface {
	GetByID(ctx context.Context, id int64) (*orgDomain.Organization, error)
}

// AdminUseCase handles admin-related business logic
type AdminUseCase struct {
	adminRepo AdminRepository
	orgRepo   OrganizationRepository
}

// NewAdminUseCase creates a new AdminUseCase
func NewAdminUseCase(adminRepo AdminRepository, orgRepo OrganizationRepository) UseCase {
	return &AdminUseCase{
		adminRepo: adminRepo,
		orgRepo:   orgRepo,
	}
}

func (uc *AdminUseCase) validateCreateAdminInput(input CreateAdminInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.ExternalID,
			validation.Required.Error("external_id is required"),
			validation.Min(1).Error("external_id must be positive"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// CreateAdmin creates an admin with the given role
func (uc *AdminUseCase) CreateAdmin(ctx context.Context, input CreateAdminInput) (*domain.Admin, error) {
	if err := uc.validateCreateAdminInput(input); err != nil {
		return nil, err
	}

	role := domain.Role(input.Role)
	if !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	admin := domain.NewAdmin(input.ExternalID, role)
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// GetAdmin retrieves an admin by internal ID
func (uc *AdminUseCase) GetAdmin(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	return uc.adminRepo.GetByID(ctx, id)
}

// GetAdminByExternalID retrieves an admin by external ID
func (uc *AdminUseCase) GetAdminByExternalID(ctx context.Context, externalID int64) (*domain.Admin, error) {
	return uc.adminRepo.GetByExternalID(ctx, externalID)
}

// AssignToOrganization links an admin to an organization after checking both exist
func (uc *AdminUseCase) AssignToOrganization(ctx context.Context, adminID uuid.UUID, organizationID int64) error {
	if _, err := uc.adminRepo.GetByID(ctx, adminID); err != nil {
		return err
	}
	if _, err := uc.orgRepo.GetByID(ctx, organizationID); err != nil {
		return err
	}

	return uc.adminRepo.AddToOrganization(ctx, adminID, organizationID)
}

// OrganizationIDs returns the organizations the admin belongs to
func (uc *AdminUseCase) OrganizationIDs(ctx context.Context, adminID uuid.UUID) ([]int64, error) {
	return uc.adminRepo.OrganizationIDs(ctx, adminID)
}
