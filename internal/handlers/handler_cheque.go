package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
	"github.com/factoryops/factory_books_app/internal/dto"
	"github.com/factoryops/factory_books_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chequeHandler handles HTTP requests for cheque lifecycle transitions.
type chequeHandler struct {
	chequeService portssvc.ChequeSvcFacade
}

// newChequeHandler creates a new chequeHandler.
func newChequeHandler(cs portssvc.ChequeSvcFacade) *chequeHandler {
	return &chequeHandler{
		chequeService: cs,
	}
}

// RegisterChequeRoutes registers routes for cheque lifecycle transitions.
func RegisterChequeRoutes(rg *gin.RouterGroup, chequeService portssvc.ChequeSvcFacade) {
	h := newChequeHandler(chequeService)

	cheques := rg.Group("/cheques")
	{
		cheques.POST("/:cheque_id/cash", h.markCashed)
		cheques.POST("/:cheque_id/bounce", h.markBounced)
	}
}

func (h *chequeHandler) markCashed(c *gin.Context) {
	h.transition(c, "cash", h.chequeService.MarkCashed)
}

func (h *chequeHandler) markBounced(c *gin.Context) {
	h.transition(c, "bounce", h.chequeService.MarkBounced)
}

type chequeTransition func(ctx context.Context, tenantID, chequeID, userID string) (*domain.Cheque, error)

func (h *chequeHandler) transition(c *gin.Context, action string, apply chequeTransition) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	chequeID := c.Param("cheque_id")
	userID := middleware.GetUserIDFromContext(c)

	cheque, err := apply(c.Request.Context(), tenantID, chequeID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConsistency):
			logger.Error("Cheque entry-count invariant violated",
				slog.String("cheque_id", chequeID), slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to apply cheque transition",
				slog.String("action", action),
				slog.String("cheque_id", chequeID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action + " cheque"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChequeResponse(cheque))
}
