package repositories

import (
	"context"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// ChequeRepository persists cheque lifecycle state.
type ChequeRepository interface {
	FindChequeByID(ctx context.Context, tenantID, chequeID string) (*domain.Cheque, error)
	// UpdateChequeStatus transitions a cheque from `from` to `to`. The update
	// is guarded on the current status; ErrNotFound is returned when the
	// cheque is missing or no longer in `from`.
	UpdateChequeStatus(ctx context.Context, tenantID, chequeID string, from, to domain.ChequeStatus, updatedBy string) error
}
