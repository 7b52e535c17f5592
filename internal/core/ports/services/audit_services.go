package services

import (
	"context"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// AuditSvcFacade detects drift between journal entries and the business
// documents they were derived from. It exists because a business-record write
// and its journal write are not one atomic operation.
type AuditSvcFacade interface {
	// Diagnose classifies every journal entry by whether its source reference
	// still resolves.
	Diagnose(ctx context.Context, tenantID string) (*domain.DiagnoseReport, error)
	// Audit cross-checks every cash-leg journal entry against its source
	// document's amount and reports mismatches and duplicated sources.
	Audit(ctx context.Context, tenantID string) (*domain.AuditReport, error)
	// CleanupOrphaned deletes journal entries whose source no longer exists.
	// Unlinked entries are deleted only when includeUnlinked is set.
	CleanupOrphaned(ctx context.Context, tenantID string, dryRun, includeUnlinked bool) (*domain.CleanupResult, error)
}
