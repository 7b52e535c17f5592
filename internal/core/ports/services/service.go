package services

import (
	"context"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// ActivitySvcFacade records fire-and-forget activity log entries.
// Implementations must never propagate persistence failures to the caller.
type ActivitySvcFacade interface {
	Record(ctx context.Context, activity domain.Activity)
}

// ServiceContainer bundles every service facade for handler registration.
type ServiceContainer struct {
	Posting      PostingSvcFacade
	Reporting    ReportingSvcFacade
	Audit        AuditSvcFacade
	Depreciation DepreciationSvcFacade
	Cheque       ChequeSvcFacade
	Activity     ActivitySvcFacade
}
