package domain

import "github.com/shopspring/decimal"

// DiagnoseReport classifies every journal entry by whether its source
// reference still resolves to an existing document.
type DiagnoseReport struct {
	TotalEntries          int `json:"totalEntries"`
	LinkedToTransaction   int `json:"linkedToTransaction"`
	LinkedToPayment       int `json:"linkedToPayment"`
	Unlinked              int `json:"unlinked"`
	OrphanedByTransaction int `json:"orphanedByTransaction"`
	OrphanedByPayment     int `json:"orphanedByPayment"`
}

// Mismatch is a journal entry whose cash amount disagrees with its source
// document beyond tolerance.
type Mismatch struct {
	EntryID           string          `json:"entryID"`
	LinkType          SourceType      `json:"linkType"`
	LinkedID          string          `json:"linkedID"`
	JournalCashAmount decimal.Decimal `json:"journalCashAmount"`
	SourceAmount      decimal.Decimal `json:"sourceAmount"`
	Difference        decimal.Decimal `json:"difference"`
}

// Duplicate flags a source document referenced by more than one journal entry.
type Duplicate struct {
	SourceType SourceType `json:"sourceType"`
	SourceID   string     `json:"sourceID"`
	Count      int        `json:"count"`
}

// AuditReport is the result of the cash-leg cross-check.
type AuditReport struct {
	EntriesChecked int         `json:"entriesChecked"`
	Mismatches     []Mismatch  `json:"mismatches"`
	Duplicates     []Duplicate `json:"duplicates"`
}

// CleanupResult lists the journal entries removed (or, on a dry run, the
// candidates) by orphan cleanup.
type CleanupResult struct {
	DryRun  bool           `json:"dryRun"`
	Deleted []JournalEntry `json:"deleted"`
}
