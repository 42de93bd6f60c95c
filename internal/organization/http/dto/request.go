// Package dto provides data transfer objects for the organization HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/rentguard/blacklist/internal/validation"
)

// CreateOrganizationRequest represents the API request for organization creation
type CreateOrganizationRequest struct {
	Name string `json:"name"`
}

// Validate validates the CreateOrganizationRequest
func (r *CreateOrganizationRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(3, 255).Error("name must be between 3 and 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}
