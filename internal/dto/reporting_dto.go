package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// TrialBalanceRowResponse represents a row in the trial balance report response.
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf,omitempty"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit      decimal.Decimal `json:"debit"`
		Credit     decimal.Decimal `json:"credit"`
		Difference decimal.Decimal `json:"difference"`
	} `json:"totals"`
	IsBalanced bool `json:"isBalanced"`
}

// ToTrialBalanceResponse converts a domain trial balance report to a DTO response.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport, asOf *time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Rows:       make([]TrialBalanceRowResponse, len(report.Rows)),
		IsBalanced: report.IsBalanced,
	}
	if asOf != nil {
		response.AsOf = asOf.Format("2006-01-02")
	}

	for i, row := range report.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.TotalDebit,
			Credit:      row.TotalCredit,
			Balance:     row.Balance,
		}
	}

	response.Totals.Debit = report.TotalDebits
	response.Totals.Credit = report.TotalCredits
	response.Totals.Difference = report.Difference
	return response
}

// BalanceSheetLineResponse is one classified balance on the balance sheet.
type BalanceSheetLineResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// BalanceSheetResponse represents the balance sheet report response.
type BalanceSheetResponse struct {
	AsOf        string                     `json:"asOf,omitempty"`
	Assets      []BalanceSheetLineResponse `json:"assets"`
	Liabilities []BalanceSheetLineResponse `json:"liabilities"`
	Equity      []BalanceSheetLineResponse `json:"equity"`
	Summary     struct {
		TotalAssets               decimal.Decimal `json:"totalAssets"`
		TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
		TotalEquity               decimal.Decimal `json:"totalEquity"`
		TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
		Difference                decimal.Decimal `json:"difference"`
	} `json:"summary"`
	IsBalanced bool `json:"isBalanced"`
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, asOf *time.Time) BalanceSheetResponse {
	toLines := func(lines []domain.BalanceSheetLine) []BalanceSheetLineResponse {
		out := make([]BalanceSheetLineResponse, len(lines))
		for i, l := range lines {
			out[i] = BalanceSheetLineResponse{
				AccountCode: l.AccountCode,
				AccountName: l.AccountName,
				Amount:      l.Amount,
			}
		}
		return out
	}

	response := BalanceSheetResponse{
		Assets:      toLines(report.Assets),
		Liabilities: toLines(report.Liabilities),
		Equity:      toLines(report.Equity),
		IsBalanced:  report.IsBalanced,
	}
	if asOf != nil {
		response.AsOf = asOf.Format("2006-01-02")
	}

	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.TotalLiabilitiesAndEquity = report.TotalLiabilitiesAndEquity
	response.Summary.Difference = report.Difference
	return response
}
