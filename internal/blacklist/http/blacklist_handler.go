// Package http provides HTTP handlers for blacklist operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
	"github.com/rentguard/blacklist/internal/blacklist/http/dto"
	"github.com/rentguard/blacklist/internal/blacklist/usecase"
	"github.com/rentguard/blacklist/internal/httputil"
)

// BlacklistHandler handles blacklist-related HTTP requests
type BlacklistHandler struct {
	blacklistUseCase usecase.UseCase
	logger           *slog.Logger
}

// NewBlacklistHandler creates a new BlacklistHandler
func NewBlacklistHandler(blacklistUseCase usecase.UseCase, logger *slog.Logger) *BlacklistHandler {
	return &BlacklistHandler{
		blacklistUseCase: blacklistUseCase,
		logger:           logger,
	}
}

// Add handles adding a person to the blacklist
func (h *BlacklistHandler) Add(c *gin.Context) {
	var req dto.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	result, err := h.blacklistUseCase.Add(c.Request.Context(), dto.ToAddInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAddResponse(result))
}

// Search handles a blacklist search by criteria or free text
func (h *BlacklistHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	criteria := dto.ToSearchCriteria(req)

	var results []*domain.SearchRow
	var err error
	if len(req.OrganizationIDs) > 0 {
		results, err = h.blacklistUseCase.SearchForOrganizations(c.Request.Context(), req.OrganizationIDs, criteria)
	} else {
		results, err = h.blacklistUseCase.Search(c.Request.Context(), criteria)
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResponse(results))
}

// Deactivate handles deactivating a blacklist entry
func (h *BlacklistHandler) Deactivate(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.EntryActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	err = h.blacklistUseCase.Deactivate(c.Request.Context(), entryID, uuid.MustParse(req.AdminID), req.Comment)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "entry deactivated"})
}

// Reactivate handles reactivating a blacklist entry
func (h *BlacklistHandler) Reactivate(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.EntryActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	err = h.blacklistUseCase.Reactivate(c.Request.Context(), entryID, uuid.MustParse(req.AdminID), req.Comment)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "entry reactivated"})
}

// UpdateReason handles changing a blacklist entry's reason
func (h *BlacklistHandler) UpdateReason(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.UpdateReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	err = h.blacklistUseCase.UpdateReason(c.Request.Context(), entryID, uuid.MustParse(req.AdminID), req.Reason, req.Comment)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "reason updated"})
}

// History handles retrieving a blacklist entry's history
func (h *BlacklistHandler) History(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	events, err := h.blacklistUseCase.History(c.Request.Context(), entryID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(events))
}
