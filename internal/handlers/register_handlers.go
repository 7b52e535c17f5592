package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
	"github.com/factoryops/factory_books_app/internal/middleware"
	"github.com/factoryops/factory_books_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the tenant-scoped /api/v1 group and delegates
// to per-module route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(ipLimiter), middleware.UserIdentityMiddleware())

	tenant := v1.Group("/tenants/:tenant_id", ensureChartMiddleware(services.Reporting))

	RegisterJournalRoutes(tenant, services.Posting)
	registerReportingRoutes(tenant, services.Reporting)
	registerAuditRoutes(tenant, services.Audit)
	registerDepreciationRoutes(tenant, services.Depreciation)
	RegisterChequeRoutes(tenant, services.Cheque)
}

// ensureChartMiddleware lazily seeds the tenant's chart of accounts before
// any accounting operation touches it.
func ensureChartMiddleware(reporting portssvc.ReportingSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.Param("tenant_id")
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "tenant_id is required"})
			return
		}
		if err := reporting.EnsureChartOfAccounts(c.Request.Context(), tenantID); err != nil {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			if errors.Is(err, apperrors.ErrValidation) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to ensure chart of accounts",
				slog.String("tenant_id", tenantID), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize chart of accounts"})
			return
		}
		c.Next()
	}
}
