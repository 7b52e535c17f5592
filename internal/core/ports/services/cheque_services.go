package services

import (
	"context"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// ChequeSvcFacade governs when a cheque's cash effect becomes a journal
// entry. A cheque accumulates 0, 1 or 2 journal entries over its life; any
// other count is corruption.
type ChequeSvcFacade interface {
	// MarkCashed transitions PENDING -> CASHED and posts the cash-realization
	// entry.
	MarkCashed(ctx context.Context, tenantID, chequeID, userID string) (*domain.Cheque, error)
	// MarkBounced transitions PENDING -> BOUNCED_BEFORE_CASHING (no entry) or
	// CASHED -> BOUNCED_AFTER_CASHING (one reversing entry, outstanding
	// balance reopened).
	MarkBounced(ctx context.Context, tenantID, chequeID, userID string) (*domain.Cheque, error)
}
