package domain

import "github.com/shopspring/decimal"

// RoundingTolerance is the currency tolerance under which report totals are
// considered balanced.
var RoundingTolerance = decimal.RequireFromString("0.01")

// TrialBalanceRow is one account's aggregated debit/credit activity and its
// derived balance on the account's normal side.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	NormalSide  NormalSide      `json:"normalSide"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceReport aggregates all journal entries into per-account totals.
type TrialBalanceReport struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	Difference   decimal.Decimal   `json:"difference"`
	IsBalanced   bool              `json:"isBalanced"`
}

// BalanceSheetLine is one classified account balance on the balance sheet.
type BalanceSheetLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// BalanceSheetReport classifies trial-balance accounts into assets,
// liabilities and equity, with net income injected as a synthetic equity line.
type BalanceSheetReport struct {
	Assets                    []BalanceSheetLine `json:"assets"`
	Liabilities               []BalanceSheetLine `json:"liabilities"`
	Equity                    []BalanceSheetLine `json:"equity"`
	TotalAssets               decimal.Decimal    `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal    `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal    `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal    `json:"totalLiabilitiesAndEquity"`
	Difference                decimal.Decimal    `json:"difference"`
	IsBalanced                bool               `json:"isBalanced"`
}
