package models

import "github.com/shopspring/decimal"

// Account is the database representation of an account row.
// Balance is the cached column synced from the ledger after completion.
type Account struct {
	AccountID     string
	AccountNumber string
	OwnerID       string
	AccountType   string
	CurrencyCode  string
	Status        string
	Balance       decimal.Decimal
	AuditFields
}
