// Package api exposes the HTTP surface: job submission, provider callbacks,
// status reads, resume/stitch/check triggers, and read-only system routes.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pixelrelay/upscaled/pkg/config"
	"github.com/pixelrelay/upscaled/pkg/database"
	"github.com/pixelrelay/upscaled/pkg/orchestrator"
	"github.com/pixelrelay/upscaled/pkg/reconciler"
	"github.com/pixelrelay/upscaled/pkg/registry"
	"github.com/pixelrelay/upscaled/pkg/services"
	"github.com/pixelrelay/upscaled/pkg/status"
	"github.com/pixelrelay/upscaled/pkg/stitcher"
)

// Server carries the handlers' dependencies.
type Server struct {
	cfg        *config.Config
	db         *database.Client
	jobs       *services.JobService
	orch       *orchestrator.Orchestrator
	reconciler *reconciler.Service
	stitcher   *stitcher.Stitcher
	statuses   *status.Reader
	registry   *registry.Registry
	logger     *slog.Logger
}

// NewServer creates an API server.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	jobs *services.JobService,
	orch *orchestrator.Orchestrator,
	rec *reconciler.Service,
	st *stitcher.Stitcher,
	statuses *status.Reader,
	reg *registry.Registry,
) *Server {
	return &Server{
		cfg:        cfg,
		db:         db,
		jobs:       jobs,
		orch:       orch,
		reconciler: rec,
		stitcher:   st,
		statuses:   statuses,
		registry:   reg,
		logger:     slog.Default(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/health", s.Health)
	r.GET("/models", s.ListModels)

	r.POST("/submit", s.SubmitJob)
	r.POST("/callback", s.ProviderCallback)
	r.GET("/status", s.JobStatus)
	r.POST("/resume", s.ResumeJob)
	r.POST("/check-all", s.CheckAll)
	r.POST("/stitch", s.StitchJob)

	return r
}

// Health reports service and database health plus the provider configuration
// snapshot.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	providerHealth := gin.H{
		"base_url":   s.cfg.Provider.BaseURL,
		"configured": s.cfg.Provider.Token != "",
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"provider": providerHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
		"provider": providerHealth,
	})
}

// ListModels returns the static model catalog.
func (s *Server) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"models":  s.registry.List(),
	})
}
