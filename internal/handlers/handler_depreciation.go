package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
	"github.com/factoryops/factory_books_app/internal/core/services"
	"github.com/factoryops/factory_books_app/internal/dto"
	"github.com/factoryops/factory_books_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// depreciationHandler handles HTTP requests for the depreciation scheduler.
type depreciationHandler struct {
	depreciationService portssvc.DepreciationSvcFacade
}

// newDepreciationHandler creates a new depreciationHandler.
func newDepreciationHandler(ds portssvc.DepreciationSvcFacade) *depreciationHandler {
	return &depreciationHandler{
		depreciationService: ds,
	}
}

// registerDepreciationRoutes registers routes for the depreciation scheduler.
func registerDepreciationRoutes(rg *gin.RouterGroup, depreciationService portssvc.DepreciationSvcFacade) {
	h := newDepreciationHandler(depreciationService)

	depreciation := rg.Group("/depreciation")
	{
		depreciation.GET("/pending", h.pendingPeriods)
		depreciation.POST("/run", h.runPeriod)
		depreciation.POST("/run-all", h.runAllPending)
	}
}

func (h *depreciationHandler) pendingPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	periods, err := h.depreciationService.GetPendingPeriods(c.Request.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to list pending depreciation periods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending periods"})
		return
	}

	c.JSON(http.StatusOK, dto.PendingPeriodsResponse{PendingPeriods: periods})
}

func (h *depreciationHandler) runPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.RunDepreciationPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for runPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.depreciationService.RunForPeriod(c.Request.Context(), tenantID, req.Period)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPeriodAlreadyProcessed), errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to run depreciation period", slog.String("period", req.Period), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run depreciation period"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *depreciationHandler) runAllPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	result, err := h.depreciationService.RunAllPending(c.Request.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to run pending depreciation periods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run pending depreciation periods"})
		return
	}

	// A partial sweep is still a useful answer; the result names the failed
	// period and the processed prefix.
	status := http.StatusOK
	if result.FailedAt != "" {
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}
