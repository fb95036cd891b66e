package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"

	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/core/ports"
)

// ProjectService runs the generation pipeline for one request.
type ProjectService interface {
	Generate(ctx context.Context, req domain.ProjectRequest) ([]byte, error)
	GenerateFile(ctx context.Context, req domain.ProjectRequest, name string) (string, error)
}

// Handler serves the project generation API.
type Handler struct {
	service  ProjectService
	versions ports.VersionSource
	updater  ports.VersionUpdater
	logger   ports.Logger
	metrics  *Metrics
}

// NewHandler creates a Handler for the given collaborators.
func NewHandler(
	service ProjectService,
	versions ports.VersionSource,
	updater ports.VersionUpdater,
	logger ports.Logger,
	metrics *Metrics,
) *Handler {
	return &Handler{
		service:  service,
		versions: versions,
		updater:  updater,
		logger:   logger,
		metrics:  metrics,
	}
}

// DownloadProject renders the full project archive for the posted request.
func (h *Handler) DownloadProject(c *gin.Context) {
	var req domain.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.ObserveGeneration("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	archive, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.metrics.ObserveGeneration("error")
		h.logger.Error(err)
		h.writeError(c, err)
		return
	}
	h.metrics.ObserveGeneration("success")

	artifact := req.Artifact
	if artifact == "" {
		artifact = domain.DefaultArtifact
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact+".zip"))
	c.Header("ETag", fmt.Sprintf("%q", fmt.Sprintf("%016x", xxhash.Sum64(archive))))
	c.Data(http.StatusOK, "application/zip", archive)
}

// GenerateFile renders one named artifact as plain text.
func (h *Handler) GenerateFile(c *gin.Context) {
	var req domain.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	body, err := h.service.GenerateFile(c.Request.Context(), req, c.Param("name"))
	if err != nil {
		h.logger.Error(err)
		h.writeError(c, err)
		return
	}

	c.String(http.StatusOK, body)
}

// ListVersions returns the catalog in its declaration order.
func (h *Handler) ListVersions(c *gin.Context) {
	catalog, err := h.versions.Load(c.Request.Context())
	if err != nil {
		h.logger.Error(err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"starterVersions": catalog.Versions()})
}

// RefreshVersions forces a catalog refresh from the published source.
func (h *Handler) RefreshVersions(c *gin.Context) {
	if err := h.updater.Refresh(c.Request.Context()); err != nil {
		h.logger.Error(err)
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// writeError maps pipeline failures onto HTTP status codes: rejected
// selections are the caller's fault, a missing catalog means the service
// is not ready, anything else is internal.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownModule),
		errors.Is(err, domain.ErrUnknownDatabase),
		errors.Is(err, domain.ErrUnknownStarterVersion),
		errors.Is(err, domain.ErrUnknownFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrVersionsUnavailable),
		errors.Is(err, domain.ErrVersionsParse),
		errors.Is(err, domain.ErrVersionsRefresh),
		errors.Is(err, domain.ErrEmptyCatalog):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "project generation failed"})
	}
}
