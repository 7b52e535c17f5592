package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// LedgerRepository reads the business transactions and payments that journal
// entries are derived from. These documents are owned by upstream flows; the
// accounting core only resolves and cross-checks them.
type LedgerRepository interface {
	FindLedgerEntryByID(ctx context.Context, tenantID, ledgerEntryID string) (*domain.LedgerEntry, error)
	FindPaymentByID(ctx context.Context, tenantID, paymentID string) (*domain.Payment, error)
	// FilterExistingLedgerEntryIDs returns the subset of ids that still
	// resolve to a ledger entry.
	FilterExistingLedgerEntryIDs(ctx context.Context, tenantID string, ids []string) (map[string]bool, error)
	// FilterExistingPaymentIDs returns the subset of ids that still resolve
	// to a payment.
	FilterExistingPaymentIDs(ctx context.Context, tenantID string, ids []string) (map[string]bool, error)
	// ReopenOutstanding adds amount back onto a ledger entry's remaining
	// balance after a cheque bounce, downgrading its payment status.
	ReopenOutstanding(ctx context.Context, tenantID, ledgerEntryID string, amount decimal.Decimal) error
}
