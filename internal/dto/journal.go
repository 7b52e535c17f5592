package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// CreateJournalEntryRequest is the posting engine's input: one template, one
// amount, an optional weak source reference.
type CreateJournalEntryRequest struct {
	TemplateID  string          `json:"templateID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description"`
	SourceType  string          `json:"sourceType" binding:"omitempty,oneof=TRANSACTION PAYMENT"`
	SourceID    string          `json:"sourceID"`
	ChequeID    string          `json:"chequeID"`
}

// JournalEntryResponse is the API representation of a journal entry.
type JournalEntryResponse struct {
	EntryID           string          `json:"entryID"`
	DebitAccountCode  string          `json:"debitAccountCode"`
	CreditAccountCode string          `json:"creditAccountCode"`
	DebitAmount       decimal.Decimal `json:"debitAmount"`
	CreditAmount      decimal.Decimal `json:"creditAmount"`
	EntryDate         string          `json:"entryDate"`
	Description       string          `json:"description"`
	TemplateID        string          `json:"templateID"`
	SourceType        string          `json:"sourceType,omitempty"`
	SourceID          string          `json:"sourceID,omitempty"`
	ChequeID          string          `json:"chequeID,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToJournalEntryResponse converts a domain journal entry to its DTO.
func ToJournalEntryResponse(e domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:           e.EntryID,
		DebitAccountCode:  e.DebitAccountCode,
		CreditAccountCode: e.CreditAccountCode,
		DebitAmount:       e.DebitAmount,
		CreditAmount:      e.CreditAmount,
		EntryDate:         e.EntryDate.Format("2006-01-02"),
		Description:       e.Description,
		TemplateID:        string(e.TemplateID),
		SourceType:        string(e.Source.Type),
		SourceID:          e.Source.DocumentID,
		ChequeID:          e.ChequeID,
		CreatedAt:         e.CreatedAt,
	}
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToListJournalEntriesResponse converts domain entries to the list DTO.
func ToListJournalEntriesResponse(entries []domain.JournalEntry) ListJournalEntriesResponse {
	resp := ListJournalEntriesResponse{Entries: make([]JournalEntryResponse, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = ToJournalEntryResponse(e)
	}
	return resp
}
