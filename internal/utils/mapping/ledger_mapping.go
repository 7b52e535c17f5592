package mapping

import (
	"github.com/factoryops/factory_books_app/internal/core/domain"
	"github.com/factoryops/factory_books_app/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		LedgerEntryID:    d.LedgerEntryID,
		TenantID:         d.TenantID,
		Type:             models.LedgerEntryType(d.Type),
		Amount:           d.Amount,
		Category:         d.Category,
		SubCategory:      d.SubCategory,
		IsARAPEntry:      d.IsARAPEntry,
		PaymentStatus:    models.PaymentStatus(d.PaymentStatus),
		RemainingBalance: d.RemainingBalance,
		TotalPaid:        d.TotalPaid,
		EntryDate:        d.EntryDate,
		Description:      d.Description,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		LedgerEntryID:    m.LedgerEntryID,
		TenantID:         m.TenantID,
		Type:             domain.LedgerEntryType(m.Type),
		Amount:           m.Amount,
		Category:         m.Category,
		SubCategory:      m.SubCategory,
		IsARAPEntry:      m.IsARAPEntry,
		PaymentStatus:    domain.PaymentStatus(m.PaymentStatus),
		RemainingBalance: m.RemainingBalance,
		TotalPaid:        m.TotalPaid,
		EntryDate:        m.EntryDate,
		Description:      m.Description,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:           m.PaymentID,
		TenantID:            m.TenantID,
		Amount:              m.Amount,
		Direction:           domain.PaymentDirection(m.Direction),
		LinkedTransactionID: m.LinkedTransactionID,
		NoCashMovement:      m.NoCashMovement,
		IsEndorsement:       m.IsEndorsement,
		PaymentDate:         m.PaymentDate,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
