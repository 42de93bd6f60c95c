// Package dto provides data transfer objects for the organization HTTP layer.
package dto

import (
	"time"
)

// OrganizationResponse represents the API response for an organization.
// The hash salt is deliberately excluded: it never leaves the service.
type OrganizationResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrganizationListResponse represents the API response for an organization list
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}
