package repositories

import (
	"context"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// DepreciationBatch is the write-set of one depreciation period: per-asset
// records, the updated asset documents, the aggregate expense ledger entry
// and the run fence. The repository applies all four atomically; the
// dependent journal post happens afterwards and is deliberately NOT part of
// this unit.
type DepreciationBatch struct {
	TenantID    string
	Records     []domain.DepreciationRecord
	Assets      []domain.FixedAsset
	LedgerEntry domain.LedgerEntry
	Run         domain.DepreciationRun
}

// Ops counts the individual write operations in the batch.
func (b DepreciationBatch) Ops() int {
	return len(b.Records) + len(b.Assets) + 2 // + ledger entry + run fence
}

// AssetRepository persists fixed assets and the depreciation artifacts
// derived from them.
type AssetRepository interface {
	ListAssets(ctx context.Context, tenantID string) ([]domain.FixedAsset, error)
	ListRuns(ctx context.Context, tenantID string) ([]domain.DepreciationRun, error)
	// ApplyDepreciationBatch commits the whole batch or nothing. A duplicate
	// run fence for the same period surfaces as apperrors.ErrDuplicate so a
	// racing caller can treat the period as already processed.
	ApplyDepreciationBatch(ctx context.Context, batch DepreciationBatch) error
}
