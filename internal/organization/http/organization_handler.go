// Package http provides HTTP handlers for organization operations.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rentguard/blacklist/internal/httputil"
	"github.com/rentguard/blacklist/internal/organization/http/dto"
	"github.com/rentguard/blacklist/internal/organization/usecase"
)

// OrganizationHandler handles organization-related HTTP requests
type OrganizationHandler struct {
	orgUseCase usecase.UseCase
	logger     *slog.Logger
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(orgUseCase usecase.UseCase, logger *slog.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		orgUseCase: orgUseCase,
		logger:     logger,
	}
}

// Create handles organization creation
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	org, err := h.orgUseCase.CreateOrganization(c.Request.Context(), dto.ToCreateOrganizationInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

// Get handles organization retrieval by ID
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	org, err := h.orgUseCase.GetOrganization(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// List handles organization listing
func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.orgUseCase.ListOrganizations(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationListResponse(orgs))
}
