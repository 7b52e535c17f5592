package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	"github.com/factoryops/factory_books_app/internal/models"
	"github.com/factoryops/factory_books_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger and payment data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// FindLedgerEntryByID retrieves a ledger entry by its ID.
func (r *PgxLedgerRepository) FindLedgerEntryByID(ctx context.Context, tenantID, ledgerEntryID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ledger_entry_id, tenant_id, entry_type, amount, category, sub_category,
			is_ar_ap_entry, payment_status, remaining_balance, total_paid,
			entry_date, description,
			created_at, created_by, last_updated_at, last_updated_by
		FROM ledger_entries
		WHERE tenant_id = $1 AND ledger_entry_id = $2;
	`
	var m models.LedgerEntry
	err := r.Pool.QueryRow(ctx, query, tenantID, ledgerEntryID).Scan(
		&m.LedgerEntryID,
		&m.TenantID,
		&m.Type,
		&m.Amount,
		&m.Category,
		&m.SubCategory,
		&m.IsARAPEntry,
		&m.PaymentStatus,
		&m.RemainingBalance,
		&m.TotalPaid,
		&m.EntryDate,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, ledgerEntryID)
		}
		return nil, fmt.Errorf("%w: failed to find ledger entry %s: %v", apperrors.ErrPersistence, ledgerEntryID, err)
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxLedgerRepository) FindPaymentByID(ctx context.Context, tenantID, paymentID string) (*domain.Payment, error) {
	query := `
		SELECT payment_id, tenant_id, amount, direction, linked_transaction_id,
			no_cash_movement, is_endorsement, payment_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		WHERE tenant_id = $1 AND payment_id = $2;
	`
	var m models.Payment
	err := r.Pool.QueryRow(ctx, query, tenantID, paymentID).Scan(
		&m.PaymentID,
		&m.TenantID,
		&m.Amount,
		&m.Direction,
		&m.LinkedTransactionID,
		&m.NoCashMovement,
		&m.IsEndorsement,
		&m.PaymentDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
		}
		return nil, fmt.Errorf("%w: failed to find payment %s: %v", apperrors.ErrPersistence, paymentID, err)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// FilterExistingLedgerEntryIDs returns which of the given ids resolve to a
// ledger entry.
func (r *PgxLedgerRepository) FilterExistingLedgerEntryIDs(ctx context.Context, tenantID string, ids []string) (map[string]bool, error) {
	return r.filterExisting(ctx, `SELECT ledger_entry_id FROM ledger_entries WHERE tenant_id = $1 AND ledger_entry_id = ANY($2);`, tenantID, ids)
}

// FilterExistingPaymentIDs returns which of the given ids resolve to a payment.
func (r *PgxLedgerRepository) FilterExistingPaymentIDs(ctx context.Context, tenantID string, ids []string) (map[string]bool, error) {
	return r.filterExisting(ctx, `SELECT payment_id FROM payments WHERE tenant_id = $1 AND payment_id = ANY($2);`, tenantID, ids)
}

func (r *PgxLedgerRepository) filterExisting(ctx context.Context, query, tenantID string, ids []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}
	rows, err := r.Pool.Query(ctx, query, tenantID, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to filter existing ids: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: failed to scan id: %v", apperrors.ErrPersistence, err)
		}
		existing[id] = true
	}
	return existing, rows.Err()
}

// ReopenOutstanding adds amount back onto a ledger entry's remaining balance
// after a cheque bounce and downgrades the payment status accordingly.
func (r *PgxLedgerRepository) ReopenOutstanding(ctx context.Context, tenantID, ledgerEntryID string, amount decimal.Decimal) error {
	query := `
		UPDATE ledger_entries
		SET remaining_balance = remaining_balance + $3,
			total_paid = GREATEST(total_paid - $3, 0),
			payment_status = CASE
				WHEN GREATEST(total_paid - $3, 0) = 0 THEN 'UNPAID'
				ELSE 'PARTIAL'
			END,
			last_updated_at = NOW()
		WHERE tenant_id = $1 AND ledger_entry_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, tenantID, ledgerEntryID, amount)
	if err != nil {
		return fmt.Errorf("%w: failed to reopen outstanding balance on %s: %v", apperrors.ErrPersistence, ledgerEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, ledgerEntryID)
	}
	return nil
}
