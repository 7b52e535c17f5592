package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of a fixed asset.
type AssetStatus string

// FixedAsset is a depreciable asset row.
type FixedAsset struct {
	AssetID                 string          `db:"asset_id"`
	TenantID                string          `db:"tenant_id"`
	Name                    string          `db:"name"`
	PurchaseCost            decimal.Decimal `db:"purchase_cost"`
	SalvageValue            decimal.Decimal `db:"salvage_value"`
	AccumulatedDepreciation decimal.Decimal `db:"accumulated_depreciation"`
	BookValue               decimal.Decimal `db:"book_value"`
	MonthlyDepreciation     decimal.Decimal `db:"monthly_depreciation"`
	PurchaseDate            time.Time       `db:"purchase_date"`
	Status                  AssetStatus     `db:"status"`
	AuditFields
}

// DepreciationRecord is the per-asset, per-period depreciation row.
type DepreciationRecord struct {
	RecordID     string          `db:"record_id"`
	TenantID     string          `db:"tenant_id"`
	AssetID      string          `db:"asset_id"`
	Period       string          `db:"period"`
	Amount       decimal.Decimal `db:"amount"`
	BookValueEnd decimal.Decimal `db:"book_value_end"`
	AuditFields
}

// DepreciationRun is the per-period idempotency fence row. (tenant_id, period)
// is unique.
type DepreciationRun struct {
	RunID             string          `db:"run_id"`
	TenantID          string          `db:"tenant_id"`
	Period            string          `db:"period"`
	AssetsCount       int             `db:"assets_count"`
	TotalDepreciation decimal.Decimal `db:"total_depreciation"`
	LedgerEntryID     string          `db:"ledger_entry_id"`
	AuditFields
}
