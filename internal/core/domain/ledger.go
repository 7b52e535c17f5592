package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryType classifies a recorded business transaction.
type LedgerEntryType string

const (
	LedgerIncome  LedgerEntryType = "INCOME"
	LedgerExpense LedgerEntryType = "EXPENSE"
	LedgerEquity  LedgerEntryType = "EQUITY"
	LedgerLoan    LedgerEntryType = "LOAN"
)

// PaymentStatus tracks how much of an AR/AP ledger entry has been settled.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
)

// LedgerEntry is a recorded business transaction prior to double-entry
// translation. Created by upstream business flows; the accounting core reads
// them and, for depreciation, writes the per-period aggregate entry.
type LedgerEntry struct {
	LedgerEntryID    string          `json:"ledgerEntryID"`
	TenantID         string          `json:"tenantID"`
	Type             LedgerEntryType `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Category         string          `json:"category"`
	SubCategory      string          `json:"subCategory"`
	IsARAPEntry      bool            `json:"isARAPEntry"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	EntryDate        time.Time       `json:"entryDate"`
	Description      string          `json:"description"`
	AuditFields
}

// PaymentDirection distinguishes money received from money paid out.
type PaymentDirection string

const (
	Receipt      PaymentDirection = "RECEIPT"
	Disbursement PaymentDirection = "DISBURSEMENT"
)

// Payment settles (part of) a linked ledger entry. NoCashMovement and
// IsEndorsement payments are excluded from cash aggregation but still appear
// in the journal.
type Payment struct {
	PaymentID           string           `json:"paymentID"`
	TenantID            string           `json:"tenantID"`
	Amount              decimal.Decimal  `json:"amount"`
	Direction           PaymentDirection `json:"direction"`
	LinkedTransactionID string           `json:"linkedTransactionID"`
	NoCashMovement      bool             `json:"noCashMovement"`
	IsEndorsement       bool             `json:"isEndorsement"`
	PaymentDate         time.Time        `json:"paymentDate"`
	AuditFields
}
