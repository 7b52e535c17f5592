package services

import (
	"context"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// DepreciationSvcFacade is the sequential, fail-fast, idempotent per-period
// depreciation batch processor.
type DepreciationSvcFacade interface {
	// GetPendingPeriods returns every unprocessed calendar month from the
	// earliest active asset's purchase month through last month, ascending.
	GetPendingPeriods(ctx context.Context, tenantID string) ([]string, error)
	// RunForPeriod depreciates one period. The records/assets/ledger/fence
	// write-set commits atomically; the journal post follows. When the post
	// fails the committed batch stands, the result reports JournalPosted
	// false and the error carries manual-recovery instructions.
	RunForPeriod(ctx context.Context, tenantID, period string) (*domain.PeriodRunResult, error)
	// RunAllPending processes pending periods strictly in order, halting on
	// the first failure. Safe to re-invoke; it resumes from storage state.
	RunAllPending(ctx context.Context, tenantID string) (*domain.RunAllResult, error)
}
