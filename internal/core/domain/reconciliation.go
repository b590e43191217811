package domain

import (
	"github.com/shopspring/decimal"
)

// ReconciliationReport is the read-only result of a ledger audit.
type ReconciliationReport struct {
	IsBalanced      bool            `json:"isBalanced"`
	TotalDebits     decimal.Decimal `json:"totalDebits"`
	TotalCredits    decimal.Decimal `json:"totalCredits"`
	Difference      decimal.Decimal `json:"difference"` // abs(debits - credits)
	OrphanedEntries int64           `json:"orphanedEntries"`
	Errors          []string        `json:"errors"`
}

// OwnerBreakdown summarizes one owner's money movements derived from the
// ledger: totals by economic source plus the net balance.
type OwnerBreakdown struct {
	OwnerID           string          `json:"ownerID"`
	Balance           decimal.Decimal `json:"balance"`
	Deposits          decimal.Decimal `json:"deposits"`          // credits from the system owner
	Withdrawals       decimal.Decimal `json:"withdrawals"`       // debits to the system owner
	TransfersReceived decimal.Decimal `json:"transfersReceived"` // credits from non-system owners
}
