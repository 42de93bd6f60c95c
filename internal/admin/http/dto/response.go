// Package dto provides data transfer objects for the admin HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// AdminResponse represents the API response for an admin
type AdminResponse struct {
	ID              uuid.UUID `json:"id"`
	ExternalID      int64     `json:"external_id"`
	Role            string    `json:"role"`
	OrganizationIDs []int64   `json:"organization_ids,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
