package mapping

import (
	"github.com/factoryops/factory_books_app/internal/core/domain"
	"github.com/factoryops/factory_books_app/internal/models"
)

// ToDomainCheque converts a model Cheque to a domain Cheque
func ToDomainCheque(m models.Cheque) domain.Cheque {
	return domain.Cheque{
		ChequeID:            m.ChequeID,
		TenantID:            m.TenantID,
		Amount:              m.Amount,
		Direction:           domain.ChequeDirection(m.Direction),
		Status:              domain.ChequeStatus(m.Status),
		LinkedTransactionID: m.LinkedTransactionID,
		DueDate:             m.DueDate,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
