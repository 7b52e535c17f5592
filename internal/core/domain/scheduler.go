package domain

import "github.com/shopspring/decimal"

// PeriodRunResult reports the outcome of depreciating one period.
// JournalPosted is false when the batch committed but the dependent journal
// post failed; the committed batch state stands and the period must be
// recovered manually, never re-run.
type PeriodRunResult struct {
	Period            string          `json:"period"`
	AssetsCount       int             `json:"assetsCount"`
	TotalDepreciation decimal.Decimal `json:"totalDepreciation"`
	LedgerEntryID     string          `json:"ledgerEntryID"`
	JournalEntryID    string          `json:"journalEntryID,omitempty"`
	JournalPosted     bool            `json:"journalPosted"`
}

// RunAllResult reports a fail-fast sweep over all pending periods.
type RunAllResult struct {
	ProcessedPeriods []string `json:"processedPeriods"`
	FailedAt         string   `json:"failedAt,omitempty"`
	Errors           []string `json:"errors,omitempty"`
}
