package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies the kind of business document a journal entry was
// derived from. Entries with no source are deliberate manual entries.
type SourceType string

const (
	SourceTransaction SourceType = "TRANSACTION" // ledger entry
	SourcePayment     SourceType = "PAYMENT"
	SourceNone        SourceType = ""
)

// SourceRef is a weak reference to the business document behind a journal
// entry. Existence of the referenced document is not guaranteed; the audit
// engine exists precisely to detect broken references.
type SourceRef struct {
	Type       SourceType `json:"type"`
	DocumentID string     `json:"documentId"`
}

// IsZero reports whether the reference is absent (an unlinked entry).
func (s SourceRef) IsZero() bool {
	return s.Type == SourceNone && s.DocumentID == ""
}

// JournalEntry is a single balanced double-entry record: exactly one debit
// account and one credit account, with identical amounts by construction.
type JournalEntry struct {
	EntryID           string          `json:"entryID"`
	TenantID          string          `json:"tenantID"`
	DebitAccountCode  string          `json:"debitAccountCode"`
	CreditAccountCode string          `json:"creditAccountCode"`
	DebitAmount       decimal.Decimal `json:"debitAmount"`
	CreditAmount      decimal.Decimal `json:"creditAmount"`
	EntryDate         time.Time       `json:"entryDate"`
	Description       string          `json:"description"`
	TemplateID        TemplateID      `json:"templateID"`
	Source            SourceRef       `json:"source"`
	ChequeID          string          `json:"chequeID,omitempty"`
	AuditFields
}

// TouchesCash reports whether either leg of the entry hits the cash account.
func (e JournalEntry) TouchesCash() bool {
	return e.DebitAccountCode == AccountCash || e.CreditAccountCode == AccountCash
}

// CashAmount returns the amount on the cash leg, or zero when no leg touches
// cash.
func (e JournalEntry) CashAmount() decimal.Decimal {
	if e.DebitAccountCode == AccountCash {
		return e.DebitAmount
	}
	if e.CreditAccountCode == AccountCash {
		return e.CreditAmount
	}
	return decimal.Zero
}
