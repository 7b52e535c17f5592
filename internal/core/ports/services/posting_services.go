package services

import (
	"context"
	"time"

	"github.com/factoryops/factory_books_app/internal/core/domain"
	"github.com/factoryops/factory_books_app/internal/dto"
)

// PostingSvcFacade is the journal posting engine: template-driven creation of
// balanced journal entries from business events.
type PostingSvcFacade interface {
	// Post validates the request against the template table and persists one
	// balanced journal entry. Balance is guaranteed by construction: the
	// amount is copied identically into the debit and credit fields.
	Post(ctx context.Context, tenantID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
	GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, tenantID string, asOf *time.Time) ([]domain.JournalEntry, error)
}
