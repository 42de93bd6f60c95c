// Package dto provides data transfer objects for the blacklist HTTP layer.
package dto

import (
	"time"
)

// AddResponse represents the API response for adding a person to the blacklist
type AddResponse struct {
	IdentityID     string    `json:"identity_id"`
	EntryID        string    `json:"entry_id"`
	Status         string    `json:"status"`
	AlreadyExisted bool      `json:"already_existed"`
	CreatedAt      time.Time `json:"created_at"`
}

// SearchResultResponse represents one search result. Salts and digests never
// appear here.
type SearchResultResponse struct {
	IdentityID       string    `json:"identity_id"`
	EntryID          string    `json:"entry_id"`
	OrganizationID   int64     `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	AdminExternalID  int64     `json:"admin_external_id"`
	Reason           string    `json:"reason"`
	Comment          string    `json:"comment,omitempty"`
	Status           string    `json:"status"`
	MatchedFields    []string  `json:"matched_fields"`
	CreatedAt        time.Time `json:"created_at"`
}

// SearchResponse represents the API response for a blacklist search
type SearchResponse struct {
	Results []SearchResultResponse `json:"results"`
	Total   int                    `json:"total"`
}

// HistoryEventResponse represents one entry history event
type HistoryEventResponse struct {
	ID        int64     `json:"id"`
	EntryID   string    `json:"entry_id"`
	Action    string    `json:"action"`
	AdminID   string    `json:"admin_id"`
	OldReason string    `json:"old_reason,omitempty"`
	NewReason string    `json:"new_reason,omitempty"`
	OldStatus string    `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Signature string    `json:"signature"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse represents the API response for an entry's history
type HistoryResponse struct {
	Events []HistoryEventResponse `json:"events"`
}
