// Package http provides HTTP handlers for admin operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/admin/http/dto"
	"github.com/rentguard/blacklist/internal/admin/usecase"
	"github.com/rentguard/blacklist/internal/httputil"
)

// AdminHandler handles admin-related HTTP requests
type AdminHandler struct {
	adminUseCase usecase.UseCase
	logger       *slog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminUseCase usecase.UseCase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// Create handles admin creation
func (h *AdminHandler) Create(c *gin.Context) {
	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	admin, err := h.adminUseCase.CreateAdmin(c.Request.Context(), dto.ToCreateAdminInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdminResponse(admin, nil))
}

// Get handles admin retrieval by internal ID
func (h *AdminHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	admin, err := h.adminUseCase.GetAdmin(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	orgIDs, err := h.adminUseCase.OrganizationIDs(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminResponse(admin, orgIDs))
}

// AssignOrganization links an admin to an organization
func (h *AdminHandler) AssignOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.AssignOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.adminUseCase.AssignToOrganization(c.Request.Context(), id, req.OrganizationID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
