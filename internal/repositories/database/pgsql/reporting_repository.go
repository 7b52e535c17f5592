package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTrialBalanceData aggregates each account's debit and credit activity.
// Every entry contributes its amount twice: once to its debit account and
// once to its credit account. Accounts with no activity still appear with
// zero sums so reports show the full chart.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, tenantID string, asOf *time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.code,
			a.name,
			a.account_type,
			a.normal_side,
			COALESCE(d.total, 0) AS total_debit,
			COALESCE(c.total, 0) AS total_credit
		FROM accounts a
		LEFT JOIN (
			SELECT debit_account_code AS code, SUM(debit_amount) AS total
			FROM journal_entries
			WHERE tenant_id = $1 AND ($2::timestamptz IS NULL OR entry_date <= $2)
			GROUP BY debit_account_code
		) d ON d.code = a.code
		LEFT JOIN (
			SELECT credit_account_code AS code, SUM(credit_amount) AS total
			FROM journal_entries
			WHERE tenant_id = $1 AND ($2::timestamptz IS NULL OR entry_date <= $2)
			GROUP BY credit_account_code
		) c ON c.code = a.code
		WHERE a.tenant_id = $1
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType, normalSide string

		if err := rows.Scan(
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&normalSide,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		row.NormalSide = domain.NormalSide(normalSide)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.TrialBalanceRow{}, nil
	}
	return result, nil
}
