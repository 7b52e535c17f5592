package repositories

import (
	"context"
	"time"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// JournalRepository persists and queries double-entry journal records.
type JournalRepository interface {
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
	FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)
	// ListEntries returns the tenant's entries, optionally filtered to dates
	// at or before asOf, newest first.
	ListEntries(ctx context.Context, tenantID string, asOf *time.Time) ([]domain.JournalEntry, error)
	// ListEntriesByCheque returns every entry posted by a cheque's lifecycle
	// transitions, used to verify the 0/1/2 entry-count invariant.
	ListEntriesByCheque(ctx context.Context, tenantID, chequeID string) ([]domain.JournalEntry, error)
	DeleteEntries(ctx context.Context, tenantID string, entryIDs []string) error
}

// ReportingRepository aggregates journal entries for report generation.
type ReportingRepository interface {
	// GetTrialBalanceData returns per-account debit/credit sums joined with
	// chart metadata. Rows carry raw sums; balances are derived by the service.
	GetTrialBalanceData(ctx context.Context, tenantID string, asOf *time.Time) ([]domain.TrialBalanceRow, error)
}
