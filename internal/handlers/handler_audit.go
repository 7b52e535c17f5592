package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
	"github.com/factoryops/factory_books_app/internal/dto"
	"github.com/factoryops/factory_books_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auditHandler handles HTTP requests for consistency auditing.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

// newAuditHandler creates a new auditHandler.
func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{
		auditService: as,
	}
}

// registerAuditRoutes registers routes for reconciliation and cleanup.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	audit := rg.Group("/audit")
	{
		audit.GET("/diagnose", h.diagnose)
		audit.GET("/report", h.report)
		audit.POST("/cleanup", h.cleanup)
	}
}

func (h *auditHandler) diagnose(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	report, err := h.auditService.Diagnose(c.Request.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to diagnose journal links", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to diagnose journal links"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *auditHandler) report(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	report, err := h.auditService.Audit(c.Request.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to run audit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run audit"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *auditHandler) cleanup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CleanupOrphanedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for cleanup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.auditService.CleanupOrphaned(c.Request.Context(), tenantID, req.DryRun, req.IncludeUnlinked)
	if err != nil {
		logger.Error("Failed to clean up orphaned entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean up orphaned entries"})
		return
	}

	c.JSON(http.StatusOK, result)
}
