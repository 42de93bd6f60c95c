// Package dto provides data transfer objects for the organization HTTP layer.
package dto

import (
	"github.com/rentguard/blacklist/internal/organization/domain"
	"github.com/rentguard/blacklist/internal/organization/usecase"
)

// ToCreateOrganizationInput converts a CreateOrganizationRequest DTO to a use case input
func ToCreateOrganizationInput(req CreateOrganizationRequest) usecase.CreateOrganizationInput {
	return usecase.CreateOrganizationInput{
		Name: req.Name,
	}
}

// ToOrganizationResponse converts a domain Organization to an OrganizationResponse DTO
func ToOrganizationResponse(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: org.Created,
		UpdatedAt: org.Updated,
	}
}

// ToOrganizationListResponse converts a slice of domain Organizations to a list response DTO
func ToOrganizationListResponse(orgs []*domain.Organization) OrganizationListResponse {
	items := make([]OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		items = append(items, ToOrganizationResponse(org))
	}
	return OrganizationListResponse{Organizations: items}
}
