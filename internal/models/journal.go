package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one balanced double-entry row: a single debit leg and a
// single credit leg of equal amount.
type JournalEntry struct {
	EntryID           string          `db:"entry_id"`
	TenantID          string          `db:"tenant_id"`
	DebitAccountCode  string          `db:"debit_account_code"`
	CreditAccountCode string          `db:"credit_account_code"`
	DebitAmount       decimal.Decimal `db:"debit_amount"`
	CreditAmount      decimal.Decimal `db:"credit_amount"`
	EntryDate         time.Time       `db:"entry_date"`
	Description       string          `db:"description"`
	TemplateID        string          `db:"template_id"`
	SourceType        string          `db:"source_type"` // Empty for unlinked entries
	SourceID          string          `db:"source_id"`
	ChequeID          string          `db:"cheque_id"`
	AuditFields
}
