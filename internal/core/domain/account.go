package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalSide is the side on which an account's balance normally sits.
type NormalSide string

const (
	DebitNormal  NormalSide = "DEBIT"
	CreditNormal NormalSide = "CREDIT"
)

// Account is immutable chart-of-accounts reference data, seeded once per
// tenant if absent. Balances are never stored on the account; they are
// derived from journal entries at report time.
type Account struct {
	Code       string      `json:"code"` // Primary key within a tenant
	Name       string      `json:"name"`
	Type       AccountType `json:"type"`
	NormalSide NormalSide  `json:"normalSide"`
}

// Well-known account codes referenced by posting templates.
const (
	AccountCash            = "1000"
	AccountAR              = "1100"
	AccountInventory       = "1200"
	AccountFixedAssets     = "1500"
	AccountAccumDeprec     = "1510"
	AccountAP              = "2000"
	AccountLoansPayable    = "2100"
	AccountOwnerCapital    = "3000"
	AccountOwnerDrawings   = "3100"
	AccountSalesRevenue    = "4000"
	AccountCOGS            = "5000"
	AccountOperatingExp    = "5100"
	AccountDepreciationExp = "5200"
)

// DefaultChartOfAccounts is the fixed chart seeded for every tenant.
// Accumulated Depreciation is a contra-asset: asset type, credit normal.
var DefaultChartOfAccounts = []Account{
	{Code: AccountCash, Name: "Cash", Type: Asset, NormalSide: DebitNormal},
	{Code: AccountAR, Name: "Accounts Receivable", Type: Asset, NormalSide: DebitNormal},
	{Code: AccountInventory, Name: "Inventory", Type: Asset, NormalSide: DebitNormal},
	{Code: AccountFixedAssets, Name: "Fixed Assets", Type: Asset, NormalSide: DebitNormal},
	{Code: AccountAccumDeprec, Name: "Accumulated Depreciation", Type: Asset, NormalSide: CreditNormal},
	{Code: AccountAP, Name: "Accounts Payable", Type: Liability, NormalSide: CreditNormal},
	{Code: AccountLoansPayable, Name: "Loans Payable", Type: Liability, NormalSide: CreditNormal},
	{Code: AccountOwnerCapital, Name: "Owner Capital", Type: Equity, NormalSide: CreditNormal},
	{Code: AccountOwnerDrawings, Name: "Owner Drawings", Type: Equity, NormalSide: DebitNormal},
	{Code: AccountSalesRevenue, Name: "Sales Revenue", Type: Revenue, NormalSide: CreditNormal},
	{Code: AccountCOGS, Name: "Cost of Goods Sold", Type: Expense, NormalSide: DebitNormal},
	{Code: AccountOperatingExp, Name: "Operating Expenses", Type: Expense, NormalSide: DebitNormal},
	{Code: AccountDepreciationExp, Name: "Depreciation Expense", Type: Expense, NormalSide: DebitNormal},
}

// LookupDefaultAccount finds an account in the default chart by code.
func LookupDefaultAccount(code string) *Account {
	for i := range DefaultChartOfAccounts {
		if DefaultChartOfAccounts[i].Code == code {
			return &DefaultChartOfAccounts[i]
		}
	}
	return nil
}
