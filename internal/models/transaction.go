package models

import "github.com/shopspring/decimal"

// Transaction is the database representation of a transaction row.
type Transaction struct {
	TransactionID   string
	OwnerID         string
	AccountID       string
	CounterpartyID  string
	Amount          decimal.Decimal
	TransactionType string
	Direction       string
	Status          string
	ReferenceNumber string
	Description     string
	AuditFields
}
