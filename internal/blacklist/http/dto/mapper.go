// Package dto provides data transfer objects for the blacklist HTTP layer.
package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
	"github.com/rentguard/blacklist/internal/blacklist/service"
	"github.com/rentguard/blacklist/internal/blacklist/usecase"
)

// ToAddInput converts an AddRequest DTO to a use case input. The admin id is
// validated before this call.
func ToAddInput(req AddRequest) usecase.AddInput {
	return usecase.AddInput{
		OrganizationID: req.OrganizationID,
		AdminID:        uuid.MustParse(req.AdminID),
		Data: domain.PersonalData{
			Surname:        req.Surname,
			Name:           req.Name,
			Patronymic:     req.Patronymic,
			Birthdate:      req.Birthdate,
			Passport:       req.Passport,
			DepartmentCode: req.DepartmentCode,
			Phone:          req.Phone,
		},
		Reason:  req.Reason,
		Comment: req.Comment,
	}
}

// ToSearchCriteria converts a SearchRequest DTO to search criteria. Free text
// is parsed first; explicitly supplied structured fields win over parsed ones.
func ToSearchCriteria(req SearchRequest) domain.SearchCriteria {
	var criteria domain.SearchCriteria
	if strings.TrimSpace(req.Text) != "" {
		criteria = service.ParseSearchText(req.Text)
	}

	if req.FIO != "" {
		criteria.FIO = req.FIO
	}
	if req.Surname != "" {
		criteria.Surname = req.Surname
	}
	if req.Passport != "" {
		criteria.Passport = req.Passport
	}
	if req.Birthdate != "" {
		criteria.Birthdate = req.Birthdate
	}
	if req.DepartmentCode != "" {
		criteria.DepartmentCode = req.DepartmentCode
	}
	if req.Phone != "" {
		criteria.Phone = req.Phone
	}

	return criteria
}

// ToAddResponse converts an add result to an AddResponse DTO
func ToAddResponse(result *domain.AddResult) AddResponse {
	return AddResponse{
		IdentityID:     result.Identity.ID.String(),
		EntryID:        result.Entry.ID.String(),
		Status:         string(result.Entry.Status),
		AlreadyExisted: result.AlreadyExisted,
		CreatedAt:      result.Entry.Created,
	}
}

// ToSearchResponse converts search rows to a SearchResponse DTO
func ToSearchResponse(rows []*domain.SearchRow) SearchResponse {
	results := make([]SearchResultResponse, 0, len(rows))
	for _, row := range rows {
		results = append(results, SearchResultResponse{
			IdentityID:       row.IdentityID.String(),
			EntryID:          row.EntryID.String(),
			OrganizationID:   row.OrganizationID,
			OrganizationName: row.OrganizationName,
			AdminExternalID:  row.AdminExternalID,
			Reason:           row.Reason,
			Comment:          row.Comment,
			Status:           string(row.Status),
			MatchedFields:    row.MatchedFields,
			CreatedAt:        row.Created,
		})
	}
	return SearchResponse{Results: results, Total: len(results)}
}

// ToHistoryResponse converts history events to a HistoryResponse DTO
func ToHistoryResponse(events []*domain.HistoryEvent) HistoryResponse {
	items := make([]HistoryEventResponse, 0, len(events))
	for _, event := range events {
		items = append(items, HistoryEventResponse{
			ID:        event.ID,
			EntryID:   event.EntryID.String(),
			Action:    string(event.Action),
			AdminID:   event.AdminID.String(),
			OldReason: event.OldReason,
			NewReason: event.NewReason,
			OldStatus: string(event.OldStatus),
			NewStatus: string(event.NewStatus),
			Comment:   event.Comment,
			Signature: event.Signature,
			CreatedAt: event.Created,
		})
	}
	return HistoryResponse{Events: items}
}
