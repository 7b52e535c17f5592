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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChequeRepository struct {
	BaseRepository
}

// newPgxChequeRepository creates a new repository for cheque data.
func newPgxChequeRepository(pool *pgxpool.Pool) portsrepo.ChequeRepository {
	return &PgxChequeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxChequeRepository implements portsrepo.ChequeRepository
var _ portsrepo.ChequeRepository = (*PgxChequeRepository)(nil)

// FindChequeByID retrieves a cheque by its ID.
func (r *PgxChequeRepository) FindChequeByID(ctx context.Context, tenantID, chequeID string) (*domain.Cheque, error) {
	query := `
		SELECT cheque_id, tenant_id, amount, direction, status,
			linked_transaction_id, due_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM cheques
		WHERE tenant_id = $1 AND cheque_id = $2;
	`
	var m models.Cheque
	err := r.Pool.QueryRow(ctx, query, tenantID, chequeID).Scan(
		&m.ChequeID,
		&m.TenantID,
		&m.Amount,
		&m.Direction,
		&m.Status,
		&m.LinkedTransactionID,
		&m.DueDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: cheque %s", apperrors.ErrNotFound, chequeID)
		}
		return nil, fmt.Errorf("%w: failed to find cheque %s: %v", apperrors.ErrPersistence, chequeID, err)
	}
	cheque := mapping.ToDomainCheque(m)
	return &cheque, nil
}

// UpdateChequeStatus transitions a cheque from `from` to `to`. The WHERE
// clause guards on the current status, so a concurrent transition makes this
// a no-op and surfaces as ErrNotFound.
func (r *PgxChequeRepository) UpdateChequeStatus(ctx context.Context, tenantID, chequeID string, from, to domain.ChequeStatus, updatedBy string) error {
	query := `
		UPDATE cheques
		SET status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE tenant_id = $1 AND cheque_id = $2 AND status = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, tenantID, chequeID, from, to, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("%w: failed to update cheque %s status: %v", apperrors.ErrPersistence, chequeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: cheque %s not in status %s", apperrors.ErrNotFound, chequeID, from)
	}
	return nil
}
