package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of a fixed asset.
type AssetStatus string

const (
	AssetActive   AssetStatus = "ACTIVE"
	AssetDisposed AssetStatus = "DISPOSED"
)

// FixedAsset is a depreciable asset. Invariants: BookValue equals
// PurchaseCost minus AccumulatedDepreciation, and AccumulatedDepreciation
// never exceeds PurchaseCost minus SalvageValue. Once active, the asset is
// mutated exclusively by the depreciation scheduler.
type FixedAsset struct {
	AssetID                 string          `json:"assetID"`
	TenantID                string          `json:"tenantID"`
	Name                    string          `json:"name"`
	PurchaseCost            decimal.Decimal `json:"purchaseCost"`
	SalvageValue            decimal.Decimal `json:"salvageValue"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
	MonthlyDepreciation     decimal.Decimal `json:"monthlyDepreciation"`
	PurchaseDate            time.Time       `json:"purchaseDate"`
	Status                  AssetStatus     `json:"status"`
	AuditFields
}

// DepreciableRemainder is how much depreciation the asset can still absorb
// before hitting salvage value.
func (a FixedAsset) DepreciableRemainder() decimal.Decimal {
	return a.PurchaseCost.Sub(a.SalvageValue).Sub(a.AccumulatedDepreciation)
}

// IsFullyDepreciated reports whether the asset has reached salvage value.
func (a FixedAsset) IsFullyDepreciated() bool {
	return a.DepreciableRemainder().LessThanOrEqual(decimal.Zero)
}

// PeriodDepreciation is the amount to depreciate in one period: the monthly
// figure, clamped so accumulated depreciation never exceeds the depreciable
// base.
func (a FixedAsset) PeriodDepreciation() decimal.Decimal {
	remainder := a.DepreciableRemainder()
	if a.MonthlyDepreciation.LessThan(remainder) {
		return a.MonthlyDepreciation
	}
	return remainder
}

// DepreciationRecord is the per-asset, per-period depreciation line.
type DepreciationRecord struct {
	RecordID     string          `json:"recordID"`
	TenantID     string          `json:"tenantID"`
	AssetID      string          `json:"assetID"`
	Period       string          `json:"period"` // "YYYY-MM"
	Amount       decimal.Decimal `json:"amount"`
	BookValueEnd decimal.Decimal `json:"bookValueEnd"`
	AuditFields
}

// DepreciationRun is the idempotency fence for a period: a period is
// processed iff this record exists.
type DepreciationRun struct {
	RunID             string          `json:"runID"`
	TenantID          string          `json:"tenantID"`
	Period            string          `json:"period"` // "YYYY-MM"
	AssetsCount       int             `json:"assetsCount"`
	TotalDepreciation decimal.Decimal `json:"totalDepreciation"`
	LedgerEntryID     string          `json:"ledgerEntryID"`
	AuditFields
}
