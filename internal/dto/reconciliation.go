package dto

import (
	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconciliationResponse is the wire form of a reconciliation report.
type ReconciliationResponse struct {
	IsBalanced      bool            `json:"isBalanced"`
	TotalDebits     decimal.Decimal `json:"totalDebits"`
	TotalCredits    decimal.Decimal `json:"totalCredits"`
	Difference      decimal.Decimal `json:"difference"`
	OrphanedEntries int64           `json:"orphanedEntries"`
	Errors          []string        `json:"errors"`
}

// ToReconciliationResponse converts a domain report to its DTO
func ToReconciliationResponse(r *domain.ReconciliationReport) ReconciliationResponse {
	return ReconciliationResponse{
		IsBalanced:      r.IsBalanced,
		TotalDebits:     r.TotalDebits,
		TotalCredits:    r.TotalCredits,
		Difference:      r.Difference,
		OrphanedEntries: r.OrphanedEntries,
		Errors:          r.Errors,
	}
}
