package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of recognized economic events.
type TransactionType string

const (
	Deposit      TransactionType = "deposit"
	Withdrawal   TransactionType = "withdrawal"
	Transfer     TransactionType = "transfer"
	FundTransfer TransactionType = "fund_transfer"
	AdminFund    TransactionType = "admin_fund"
	BulkFund     TransactionType = "bulk_fund"
	Interest     TransactionType = "interest"
	Fee          TransactionType = "fee"
	Reversal     TransactionType = "reversal"
)

// ValidTransactionTypes is the closed enum checked by the transaction gate.
var ValidTransactionTypes = map[TransactionType]struct{}{
	Deposit:      {},
	Withdrawal:   {},
	Transfer:     {},
	FundTransfer: {},
	AdminFund:    {},
	BulkFund:     {},
	Interest:     {},
	Fee:          {},
	Reversal:     {},
}

// TransactionDirection records debit/credit from the owning party's view.
type TransactionDirection string

const (
	DirectionDebit  TransactionDirection = "debit"
	DirectionCredit TransactionDirection = "credit"
)

// TransactionStatus is the gate's lifecycle state.
//
// pending -> completed | blocked | failed
// blocked -> completed (unblock) | failed (reject)
// completed and failed are terminal.
type TransactionStatus string

const (
	TxnPending   TransactionStatus = "pending"
	TxnCompleted TransactionStatus = "completed"
	TxnBlocked   TransactionStatus = "blocked"
	TxnFailed    TransactionStatus = "failed"
)

// Transaction is the business record of an economic event, one level above
// ledger entries. Only completed transactions have ledger entries.
type Transaction struct {
	TransactionID   string               `json:"transactionID"` // Primary Key (UUID)
	OwnerID         string               `json:"ownerID"`       // FK -> owners.owner_id (NOT NULL, never a placeholder)
	AccountID       string               `json:"accountID"`     // FK -> accounts.account_id (NOT NULL)
	CounterpartyID  string               `json:"counterpartyID"`
	Amount          decimal.Decimal      `json:"amount"`
	TransactionType TransactionType      `json:"transactionType"`
	Direction       TransactionDirection `json:"direction"`
	Status          TransactionStatus    `json:"status"`
	ReferenceNumber string               `json:"referenceNumber"` // required audit correlation id
	Description     string               `json:"description"`
	AuditFields
}

// CanTransitionTo reports whether the gate may move the transaction from its
// current status to target.
func (t Transaction) CanTransitionTo(target TransactionStatus) bool {
	switch t.Status {
	case TxnPending:
		return target == TxnCompleted || target == TxnBlocked || target == TxnFailed
	case TxnBlocked:
		return target == TxnCompleted || target == TxnFailed
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (t Transaction) IsTerminal() bool {
	return t.Status == TxnCompleted || t.Status == TxnFailed
}
