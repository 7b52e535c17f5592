package mapping

import (
	"github.com/factoryops/factory_books_app/internal/core/domain"
	"github.com/factoryops/factory_books_app/internal/models"
)

// ToDomainFixedAsset converts a model FixedAsset to a domain FixedAsset
func ToDomainFixedAsset(m models.FixedAsset) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:                 m.AssetID,
		TenantID:                m.TenantID,
		Name:                    m.Name,
		PurchaseCost:            m.PurchaseCost,
		SalvageValue:            m.SalvageValue,
		AccumulatedDepreciation: m.AccumulatedDepreciation,
		BookValue:               m.BookValue,
		MonthlyDepreciation:     m.MonthlyDepreciation,
		PurchaseDate:            m.PurchaseDate,
		Status:                  domain.AssetStatus(m.Status),
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDepreciationRecord converts a domain DepreciationRecord to its model
func ToModelDepreciationRecord(d domain.DepreciationRecord) models.DepreciationRecord {
	return models.DepreciationRecord{
		RecordID:     d.RecordID,
		TenantID:     d.TenantID,
		AssetID:      d.AssetID,
		Period:       d.Period,
		Amount:       d.Amount,
		BookValueEnd: d.BookValueEnd,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToModelDepreciationRun converts a domain DepreciationRun to its model
func ToModelDepreciationRun(d domain.DepreciationRun) models.DepreciationRun {
	return models.DepreciationRun{
		RunID:             d.RunID,
		TenantID:          d.TenantID,
		Period:            d.Period,
		AssetsCount:       d.AssetsCount,
		TotalDepreciation: d.TotalDepreciation,
		LedgerEntryID:     d.LedgerEntryID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepreciationRun converts a model DepreciationRun to its domain form
func ToDomainDepreciationRun(m models.DepreciationRun) domain.DepreciationRun {
	return domain.DepreciationRun{
		RunID:             m.RunID,
		TenantID:          m.TenantID,
		Period:            m.Period,
		AssetsCount:       m.AssetsCount,
		TotalDepreciation: m.TotalDepreciation,
		LedgerEntryID:     m.LedgerEntryID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
