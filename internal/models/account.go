package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// NormalSide is the side on which an account's balance normally sits.
type NormalSide string

// Account is a row of the fixed chart of accounts.
type Account struct {
	Code       string      `db:"code"`
	TenantID   string      `db:"tenant_id"`
	Name       string      `db:"name"`
	Type       AccountType `db:"account_type"`
	NormalSide NormalSide  `db:"normal_side"`
}
