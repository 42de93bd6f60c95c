// Package dto provides data transfer objects for the admin HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/rentguard/blacklist/internal/validation"
)

// CreateAdminRequest represents the API request for admin creation
type CreateAdminRequest struct {
	ExternalID int64  `json:"external_id"`
	Role       string `json:"role"`
}

// Validate validates the CreateAdminRequest
func (r *CreateAdminRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.ExternalID,
			validation.Required.Error("external_id is required"),
			validation.Min(1).Error("external_id must be positive"),
		),
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.In("manager", "admin", "super_admin").Error("role must be one of manager, admin, super_admin"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// AssignOrganizationRequest represents the API request for linking an admin
// to an organization
type AssignOrganizationRequest struct {
	OrganizationID int64 `json:"organization_id"`
}

// Validate validates the AssignOrganizationRequest
func (r *AssignOrganizationRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.OrganizationID,
			validation.Required.Error("organization_id is required"),
			validation.Min(1).Error("organization_id must be positive"),
		),
	)
	return appValidation.WrapValidationError(err)
}
