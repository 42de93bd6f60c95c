// Package dto provides data transfer objects for the blacklist HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/rentguard/blacklist/internal/validation"
)

// AddRequest represents the API request for adding a person to the blacklist
type AddRequest struct {
	OrganizationID int64  `json:"organization_id"`
	AdminID        string `json:"admin_id"`
	Surname        string `json:"surname"`
	Name           string `json:"name"`
	Patronymic     string `json:"patronymic"`
	Birthdate      string `json:"birthdate"`
	Passport       string `json:"passport"`
	DepartmentCode string `json:"department_code"`
	Phone          string `json:"phone"`
	Reason         string `json:"reason"`
	Comment        string `json:"comment"`
}

// Validate validates the AddRequest. The personal fields are re-validated in
// the use case; here only the request envelope is checked.
func (r *AddRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.OrganizationID,
			validation.Required.Error("organization_id is required"),
			validation.Min(int64(1)).Error("organization_id must be positive"),
		),
		validation.Field(&r.AdminID,
			validation.Required.Error("admin_id is required"),
			appValidation.UUIDString,
		),
		validation.Field(&r.Surname, validation.Required.Error("surname is required"), appValidation.NotBlank),
		validation.Field(&r.Name, validation.Required.Error("name is required"), appValidation.NotBlank),
		validation.Field(&r.Patronymic, validation.Required.Error("patronymic is required"), appValidation.NotBlank),
		validation.Field(&r.Birthdate, validation.Required.Error("birthdate is required")),
		validation.Field(&r.Passport, validation.Required.Error("passport is required")),
		validation.Field(&r.DepartmentCode, validation.Required.Error("department_code is required")),
		validation.Field(&r.Reason, validation.Required.Error("reason is required"), appValidation.NotBlank),
	)
	return appValidation.WrapValidationError(err)
}

// SearchRequest represents the API request for a blacklist search. The
// operator either fills the structured fields or supplies free text, which is
// parsed into criteria server-side. An optional organization filter restricts
// results to entries filed by those organizations.
type SearchRequest struct {
	FIO             string  `json:"fio"`
	Surname         string  `json:"surname"`
	Passport        string  `json:"passport"`
	Birthdate       string  `json:"birthdate"`
	DepartmentCode  string  `json:"department_code"`
	Phone           string  `json:"phone"`
	Text            string  `json:"text"`
	OrganizationIDs []int64 `json:"organization_ids"`
}

// Validate validates the SearchRequest. Every criterion is optional, but a
// supplied one must be well formed: an unparseable value can never match a
// stored digest.
func (r *SearchRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Surname, validation.When(r.Surname != "", appValidation.NameComponent{})),
		validation.Field(&r.Passport, validation.When(r.Passport != "", appValidation.Passport{})),
		validation.Field(&r.Birthdate, validation.When(r.Birthdate != "", appValidation.DefaultBirthdate())),
		validation.Field(&r.DepartmentCode, validation.When(r.DepartmentCode != "", appValidation.DepartmentCode{})),
		validation.Field(&r.Phone, appValidation.Phone{}),
		validation.Field(&r.OrganizationIDs,
			validation.Each(validation.Min(int64(1)).Error("organization id must be positive")),
		),
	)
	return appValidation.WrapValidationError(err)
}

// EntryActionRequest represents the API request for deactivating or
// reactivating an entry
type EntryActionRequest struct {
	AdminID string `json:"admin_id"`
	Comment string `json:"comment"`
}

// Validate validates the EntryActionRequest
func (r *EntryActionRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.AdminID,
			validation.Required.Error("admin_id is required"),
			appValidation.UUIDString,
		),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateReasonRequest represents the API request for changing an entry's reason
type UpdateReasonRequest struct {
	AdminID string `json:"admin_id"`
	Reason  string `json:"reason"`
	Comment string `json:"comment"`
}

// Validate validates the UpdateReasonRequest
func (r *UpdateReasonRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.AdminID,
			validation.Required.Error("admin_id is required"),
			appValidation.UUIDString,
		),
		validation.Field(&r.Reason, validation.Required.Error("reason is required"), appValidation.NotBlank),
	)
	return appValidation.WrapValidationError(err)
}
