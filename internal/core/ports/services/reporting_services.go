package services

import (
	"context"
	"time"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// ReportingSvcFacade builds trial balances and balance sheets from the
// journal.
type ReportingSvcFacade interface {
	// EnsureChartOfAccounts seeds the default chart for the tenant if absent.
	// Idempotent; safe to call before every report.
	EnsureChartOfAccounts(ctx context.Context, tenantID string) error
	TrialBalance(ctx context.Context, tenantID string, asOf *time.Time) (*domain.TrialBalanceReport, error)
	BalanceSheet(ctx context.Context, tenantID string, asOf *time.Time) (*domain.BalanceSheetReport, error)
}
