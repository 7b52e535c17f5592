package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChequeStatus is the lifecycle state of a cheque. Cash is realized in the
// journal only on the PENDING -> CASHED transition.
type ChequeStatus string

const (
	ChequePending             ChequeStatus = "PENDING"
	ChequeCashed              ChequeStatus = "CASHED"
	ChequeBouncedBeforeCashed ChequeStatus = "BOUNCED_BEFORE_CASHING"
	ChequeBouncedAfterCashed  ChequeStatus = "BOUNCED_AFTER_CASHING"
)

// ChequeDirection distinguishes cheques we receive from cheques we issue.
type ChequeDirection string

const (
	ChequeIncoming ChequeDirection = "INCOMING"
	ChequeOutgoing ChequeDirection = "OUTGOING"
)

// Cheque is a deferred cash instrument linked to an AR/AP ledger entry.
type Cheque struct {
	ChequeID            string          `json:"chequeID"`
	TenantID            string          `json:"tenantID"`
	Amount              decimal.Decimal `json:"amount"`
	Direction           ChequeDirection `json:"direction"`
	Status              ChequeStatus    `json:"status"`
	LinkedTransactionID string          `json:"linkedTransactionID"`
	DueDate             time.Time       `json:"dueDate"`
	AuditFields
}

// chequeTransitions holds every legal status transition. BOUNCED_BEFORE_CASHING
// and BOUNCED_AFTER_CASHING are terminal.
var chequeTransitions = map[ChequeStatus][]ChequeStatus{
	ChequePending: {ChequeCashed, ChequeBouncedBeforeCashed},
	ChequeCashed:  {ChequeBouncedAfterCashed},
}

// CanTransition reports whether moving from into to is a legal lifecycle step.
func (c Cheque) CanTransition(to ChequeStatus) bool {
	for _, next := range chequeTransitions[c.Status] {
		if next == to {
			return true
		}
	}
	return false
}

// CashedTemplate returns the posting template realizing this cheque's cash
// effect: incoming cheques collect a receivable, outgoing cheques settle a
// payable.
func (c Cheque) CashedTemplate() TemplateID {
	if c.Direction == ChequeIncoming {
		return TemplateChequeInCashed
	}
	return TemplateChequeOutCashed
}

// BouncedTemplate returns the reversing template for a bounce after cashing.
func (c Cheque) BouncedTemplate() TemplateID {
	if c.Direction == ChequeIncoming {
		return TemplateChequeInBounced
	}
	return TemplateChequeOutBounced
}
