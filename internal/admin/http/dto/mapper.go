// Package dto provides data transfer objects for the admin HTTP layer.
package dto

import (
	"github.com/rentguard/blacklist/internal/admin/domain"
	"github.com/rentguard/blacklist/internal/admin/usecase"
)

// ToCreateAdminInput converts a CreateAdminRequest DTO to a use case input
func ToCreateAdminInput(req CreateAdminRequest) usecase.CreateAdminInput {
	return usecase.CreateAdminInput{
		ExternalID: req.ExternalID,
		Role:       req.Role,
	}
}

// ToAdminResponse converts a domain Admin to an AdminResponse DTO
func ToAdminResponse(admin *domain.Admin, organizationIDs []int64) AdminResponse {
	return AdminResponse{
		ID:              admin.ID,
		ExternalID:      admin.ExternalID,
		Role:            string(admin.Role),
		OrganizationIDs: organizationIDs,
		CreatedAt:       admin.Created,
		UpdatedAt:       admin.Updated,
	}
}
