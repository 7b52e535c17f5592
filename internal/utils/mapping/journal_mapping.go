package mapping

import (
	"github.com/factoryops/factory_books_app/internal/core/domain"
	"github.com/factoryops/factory_books_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:           d.EntryID,
		TenantID:          d.TenantID,
		DebitAccountCode:  d.DebitAccountCode,
		CreditAccountCode: d.CreditAccountCode,
		DebitAmount:       d.DebitAmount,
		CreditAmount:      d.CreditAmount,
		EntryDate:         d.EntryDate,
		Description:       d.Description,
		TemplateID:        string(d.TemplateID),
		SourceType:        string(d.Source.Type),
		SourceID:          d.Source.DocumentID,
		ChequeID:          d.ChequeID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:           m.EntryID,
		TenantID:          m.TenantID,
		DebitAccountCode:  m.DebitAccountCode,
		CreditAccountCode: m.CreditAccountCode,
		DebitAmount:       m.DebitAmount,
		CreditAmount:      m.CreditAmount,
		EntryDate:         m.EntryDate,
		Description:       m.Description,
		TemplateID:        domain.TemplateID(m.TemplateID),
		Source: domain.SourceRef{
			Type:       domain.SourceType(m.SourceType),
			DocumentID: m.SourceID,
		},
		ChequeID:    m.ChequeID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
