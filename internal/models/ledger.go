package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryType classifies a recorded business transaction.
type LedgerEntryType string

// PaymentStatus tracks how much of an AR/AP ledger entry has been settled.
type PaymentStatus string

// LedgerEntry is a recorded business transaction row.
type LedgerEntry struct {
	LedgerEntryID    string          `db:"ledger_entry_id"`
	TenantID         string          `db:"tenant_id"`
	Type             LedgerEntryType `db:"entry_type"`
	Amount           decimal.Decimal `db:"amount"`
	Category         string          `db:"category"`
	SubCategory      string          `db:"sub_category"`
	IsARAPEntry      bool            `db:"is_ar_ap_entry"`
	PaymentStatus    PaymentStatus   `db:"payment_status"`
	RemainingBalance decimal.Decimal `db:"remaining_balance"`
	TotalPaid        decimal.Decimal `db:"total_paid"`
	EntryDate        time.Time       `db:"entry_date"`
	Description      string          `db:"description"`
	AuditFields
}

// PaymentDirection distinguishes money received from money paid out.
type PaymentDirection string

// Payment is a settlement row against a ledger entry.
type Payment struct {
	PaymentID           string           `db:"payment_id"`
	TenantID            string           `db:"tenant_id"`
	Amount              decimal.Decimal  `db:"amount"`
	Direction           PaymentDirection `db:"direction"`
	LinkedTransactionID string           `db:"linked_transaction_id"`
	NoCashMovement      bool             `db:"no_cash_movement"`
	IsEndorsement       bool             `db:"is_endorsement"`
	PaymentDate         time.Time        `db:"payment_date"`
	AuditFields
}
