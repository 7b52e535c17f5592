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
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// SeedDefaultAccounts inserts the default chart for the tenant. Existing
// codes are left untouched, so concurrent seeding is safe.
func (r *PgxAccountRepository) SeedDefaultAccounts(ctx context.Context, tenantID string) error {
	query := `
		INSERT INTO accounts (code, tenant_id, name, account_type, normal_side)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (tenant_id, code) DO NOTHING;
	`
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, account := range domain.DefaultChartOfAccounts {
		m := mapping.ToModelAccount(tenantID, account)
		if _, err := tx.Exec(ctx, query, m.Code, m.TenantID, m.Name, m.Type, m.NormalSide); err != nil {
			return fmt.Errorf("%w: failed to seed account %s: %v", apperrors.ErrPersistence, m.Code, err)
		}
	}
	return r.Commit(ctx, tx)
}

// ListAccounts returns the tenant's chart of accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	query := `
		SELECT code, tenant_id, name, account_type, normal_side
		FROM accounts
		WHERE tenant_id = $1
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list accounts: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.Code, &m.TenantID, &m.Name, &m.Type, &m.NormalSide); err != nil {
			return nil, fmt.Errorf("%w: failed to scan account: %v", apperrors.ErrPersistence, err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	return accounts, rows.Err()
}

// FindAccountByCode retrieves one account of the tenant's chart.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error) {
	query := `
		SELECT code, tenant_id, name, account_type, normal_side
		FROM accounts
		WHERE tenant_id = $1 AND code = $2;
	`
	var m models.Account
	err := r.Pool.QueryRow(ctx, query, tenantID, code).Scan(&m.Code, &m.TenantID, &m.Name, &m.Type, &m.NormalSide)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, code)
		}
		return nil, fmt.Errorf("%w: failed to find account %s: %v", apperrors.ErrPersistence, code, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}
