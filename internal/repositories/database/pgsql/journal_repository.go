package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	"github.com/factoryops/factory_books_app/internal/models"
	"github.com/factoryops/factory_books_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalEntryColumns = `
	entry_id, tenant_id, debit_account_code, credit_account_code,
	debit_amount, credit_amount, entry_date, description, template_id,
	source_type, source_id, cheque_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// SaveEntry inserts one balanced journal entry.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.TenantID,
		m.DebitAccountCode,
		m.CreditAccountCode,
		m.DebitAmount,
		m.CreditAmount,
		m.EntryDate,
		m.Description,
		m.TemplateID,
		m.SourceType,
		m.SourceID,
		m.ChequeID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrDuplicate, m.EntryID)
		}
		return fmt.Errorf("%w: failed to save journal entry %s: %v", apperrors.ErrPersistence, m.EntryID, err)
	}
	return nil
}

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.TenantID,
		&m.DebitAccountCode,
		&m.CreditAccountCode,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.EntryDate,
		&m.Description,
		&m.TemplateID,
		&m.SourceType,
		&m.SourceID,
		&m.ChequeID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindEntryByID retrieves a journal entry by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1 AND entry_id = $2;
	`
	m, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, tenantID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("%w: failed to find journal entry %s: %v", apperrors.ErrPersistence, entryID, err)
	}
	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// ListEntries returns the tenant's entries, newest first, optionally limited
// to entry dates at or before asOf.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, tenantID string, asOf *time.Time) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1 AND ($2::timestamptz IS NULL OR entry_date <= $2)
		ORDER BY entry_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list journal entries: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()
	return collectJournalEntries(rows)
}

// ListEntriesByCheque returns every entry a cheque's lifecycle posted.
func (r *PgxJournalRepository) ListEntriesByCheque(ctx context.Context, tenantID, chequeID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1 AND cheque_id = $2
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, chequeID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list entries for cheque %s: %v", apperrors.ErrPersistence, chequeID, err)
	}
	defer rows.Close()
	return collectJournalEntries(rows)
}

func collectJournalEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan journal entry: %v", apperrors.ErrPersistence, err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	return entries, rows.Err()
}

// DeleteEntries removes the given entries in one transaction. The batch is
// capped; cleanup callers chunk accordingly.
func (r *PgxJournalRepository) DeleteEntries(ctx context.Context, tenantID string, entryIDs []string) error {
	if len(entryIDs) == 0 {
		return nil
	}
	if len(entryIDs) > maxBatchOps {
		return fmt.Errorf("%w: delete batch of %d exceeds %d operations", apperrors.ErrValidation, len(entryIDs), maxBatchOps)
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE tenant_id = $1 AND entry_id = ANY($2);`, tenantID, entryIDs)
	if err != nil {
		return fmt.Errorf("%w: failed to delete journal entries: %v", apperrors.ErrPersistence, err)
	}
	if tag.RowsAffected() != int64(len(entryIDs)) {
		return fmt.Errorf("%w: expected to delete %d entries, deleted %d", apperrors.ErrConsistency, len(entryIDs), tag.RowsAffected())
	}
	return r.Commit(ctx, tx)
}
