package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChequeStatus is the lifecycle state of a cheque.
type ChequeStatus string

// ChequeDirection distinguishes received cheques from issued ones.
type ChequeDirection string

// Cheque is a deferred cash instrument row.
type Cheque struct {
	ChequeID            string          `db:"cheque_id"`
	TenantID            string          `db:"tenant_id"`
	Amount              decimal.Decimal `db:"amount"`
	Direction           ChequeDirection `db:"direction"`
	Status              ChequeStatus    `db:"status"`
	LinkedTransactionID string          `db:"linked_transaction_id"`
	DueDate             time.Time       `db:"due_date"`
	AuditFields
}
