package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType is the product classification of an account.
type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
	Business AccountType = "BUSINESS"
	Reserve  AccountType = "RESERVE" // system reserve account only
)

// AccountStatus indicates whether an account can participate in postings.
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
	AccountFrozen AccountStatus = "FROZEN"
	AccountClosed AccountStatus = "CLOSED"
)

// Account is an owner's named balance container.
//
// Balance is a read-through cache of the ledger, written only by the balance
// sync step after a completed posting. It is never the source of truth; any
// decision that gates a debit must read the ledger directly.
type Account struct {
	AccountID     string          `json:"accountID"` // Primary Key
	AccountNumber string          `json:"accountNumber"`
	OwnerID       string          `json:"ownerID"` // FK -> owners.owner_id (NOT NULL)
	AccountType   AccountType     `json:"accountType"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        AccountStatus   `json:"status"`
	Balance       decimal.Decimal `json:"balance"` // cached, synced from ledger
	AuditFields
}

// CanPost reports whether the account may be involved in new postings.
func (a Account) CanPost() bool {
	return a.Status == AccountActive
}
