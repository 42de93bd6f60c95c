// Package http provides the HTTP server and request routing.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminHTTP "github.com/rentguard/blacklist/internal/admin/http"
	blacklistHTTP "github.com/rentguard/blacklist/internal/blacklist/http"
	"github.com/rentguard/blacklist/internal/config"
	orgHTTP "github.com/rentguard/blacklist/internal/organization/http"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
	config *config.Config
}

// NewServer creates a new HTTP server and wires all route handlers.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	logger *slog.Logger,
	organizationHandler *orgHTTP.OrganizationHandler,
	adminHandler *adminHTTP.AdminHandler,
	blacklistHandler *blacklistHTTP.BlacklistHandler,
) *Server {
	server := &Server{
		db:     db,
		logger: logger,
		config: cfg,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	server.router = server.setupRouter(organizationHandler, adminHandler, blacklistHandler)
	return server
}

func (s *Server) setupRouter(
	organizationHandler *orgHTTP.OrganizationHandler,
	adminHandler *adminHTTP.AdminHandler,
	blacklistHandler *blacklistHTTP.BlacklistHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.config.CORSEnabled, s.config.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if s.config.RateLimitEnabled {
		router.Use(RateLimitMiddleware(s.config.RateLimitRequestsPerSec, s.config.RateLimitBurst))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	{
		v1.POST("/organizations", organizationHandler.Create)
		v1.GET("/organizations", organizationHandler.List)
		v1.GET("/organizations/:id", organizationHandler.Get)

		v1.POST("/admins", adminHandler.Create)
		v1.GET("/admins/:id", adminHandler.Get)
		v1.POST("/admins/:id/organizations", adminHandler.AssignOrganization)

		v1.POST("/blacklist", blacklistHandler.Add)
		v1.POST("/blacklist/search", blacklistHandler.Search)
		v1.POST("/blacklist/entries/:id/deactivate", blacklistHandler.Deactivate)
		v1.POST("/blacklist/entries/:id/reactivate", blacklistHandler.Reactivate)
		v1.PUT("/blacklist/entries/:id/reason", blacklistHandler.UpdateReason)
		v1.GET("/blacklist/entries/:id/history", blacklistHandler.History)
	}

	return router
}

// Router returns the configured router for testing purposes.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
