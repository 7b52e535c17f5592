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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for fixed asset and
// depreciation data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepository {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAssetRepository implements portsrepo.AssetRepository
var _ portsrepo.AssetRepository = (*PgxAssetRepository)(nil)

// ListAssets returns the tenant's fixed assets ordered by purchase date.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, tenantID string) ([]domain.FixedAsset, error) {
	query := `
		SELECT asset_id, tenant_id, name, purchase_cost, salvage_value,
			accumulated_depreciation, book_value, monthly_depreciation,
			purchase_date, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM fixed_assets
		WHERE tenant_id = $1
		ORDER BY purchase_date, asset_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list fixed assets: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	var assets []domain.FixedAsset
	for rows.Next() {
		var m models.FixedAsset
		if err := rows.Scan(
			&m.AssetID,
			&m.TenantID,
			&m.Name,
			&m.PurchaseCost,
			&m.SalvageValue,
			&m.AccumulatedDepreciation,
			&m.BookValue,
			&m.MonthlyDepreciation,
			&m.PurchaseDate,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan fixed asset: %v", apperrors.ErrPersistence, err)
		}
		assets = append(assets, mapping.ToDomainFixedAsset(m))
	}
	return assets, rows.Err()
}

// ListRuns returns the tenant's depreciation run fences ordered by period.
func (r *PgxAssetRepository) ListRuns(ctx context.Context, tenantID string) ([]domain.DepreciationRun, error) {
	query := `
		SELECT run_id, tenant_id, period, assets_count, total_depreciation, ledger_entry_id,
			created_at, created_by, last_updated_at, last_updated_by
		FROM depreciation_runs
		WHERE tenant_id = $1
		ORDER BY period;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list depreciation runs: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	var runs []domain.DepreciationRun
	for rows.Next() {
		var m models.DepreciationRun
		if err := rows.Scan(
			&m.RunID,
			&m.TenantID,
			&m.Period,
			&m.AssetsCount,
			&m.TotalDepreciation,
			&m.LedgerEntryID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan depreciation run: %v", apperrors.ErrPersistence, err)
		}
		runs = append(runs, mapping.ToDomainDepreciationRun(m))
	}
	return runs, rows.Err()
}

// ApplyDepreciationBatch commits one period's records, asset updates, the
// aggregate ledger entry and the run fence in a single transaction. The
// unique (tenant_id, period) index on depreciation_runs turns a racing
// second run into ErrDuplicate, rolling back everything else.
func (r *PgxAssetRepository) ApplyDepreciationBatch(ctx context.Context, batch portsrepo.DepreciationBatch) error {
	if batch.Ops() > maxBatchOps {
		return fmt.Errorf("%w: depreciation batch of %d exceeds %d operations", apperrors.ErrValidation, batch.Ops(), maxBatchOps)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	recordQuery := `
		INSERT INTO depreciation_records (record_id, tenant_id, asset_id, period, amount, book_value_end,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, record := range batch.Records {
		m := mapping.ToModelDepreciationRecord(record)
		if _, err := tx.Exec(ctx, recordQuery,
			m.RecordID, m.TenantID, m.AssetID, m.Period, m.Amount, m.BookValueEnd,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("%w: failed to insert depreciation record for asset %s: %v", apperrors.ErrPersistence, m.AssetID, err)
		}
	}

	assetQuery := `
		UPDATE fixed_assets
		SET accumulated_depreciation = $3, book_value = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE tenant_id = $1 AND asset_id = $2;
	`
	for _, asset := range batch.Assets {
		tag, err := tx.Exec(ctx, assetQuery,
			asset.TenantID, asset.AssetID,
			asset.AccumulatedDepreciation, asset.BookValue,
			asset.LastUpdatedAt, asset.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("%w: failed to update asset %s: %v", apperrors.ErrPersistence, asset.AssetID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: asset %s", apperrors.ErrNotFound, asset.AssetID)
		}
	}

	// Periods with nothing to depreciate carry no ledger entry, only a fence.
	if batch.LedgerEntry.LedgerEntryID != "" {
		m := mapping.ToModelLedgerEntry(batch.LedgerEntry)
		ledgerQuery := `
			INSERT INTO ledger_entries (ledger_entry_id, tenant_id, entry_type, amount, category, sub_category,
				is_ar_ap_entry, payment_status, remaining_balance, total_paid, entry_date, description,
				created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
		`
		if _, err := tx.Exec(ctx, ledgerQuery,
			m.LedgerEntryID, m.TenantID, m.Type, m.Amount, m.Category, m.SubCategory,
			m.IsARAPEntry, m.PaymentStatus, m.RemainingBalance, m.TotalPaid, m.EntryDate, m.Description,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("%w: failed to insert depreciation ledger entry: %v", apperrors.ErrPersistence, err)
		}
	}

	runModel := mapping.ToModelDepreciationRun(batch.Run)
	runQuery := `
		INSERT INTO depreciation_runs (run_id, tenant_id, period, assets_count, total_depreciation, ledger_entry_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	if _, err := tx.Exec(ctx, runQuery,
		runModel.RunID, runModel.TenantID, runModel.Period, runModel.AssetsCount,
		runModel.TotalDepreciation, runModel.LedgerEntryID,
		runModel.CreatedAt, runModel.CreatedBy, runModel.LastUpdatedAt, runModel.LastUpdatedBy,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: depreciation run for period %s already exists", apperrors.ErrDuplicate, runModel.Period)
		}
		return fmt.Errorf("%w: failed to insert depreciation run for period %s: %v", apperrors.ErrPersistence, runModel.Period, err)
	}

	return r.Commit(ctx, tx)
}
