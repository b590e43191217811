package dto

import (
	"time"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse reports an owner's ledger-derived balance.
type BalanceResponse struct {
	OwnerID string          `json:"ownerID"`
	Balance decimal.Decimal `json:"balance"`
}

// BreakdownResponse reports an owner's money-movement breakdown.
type BreakdownResponse struct {
	OwnerID           string          `json:"ownerID"`
	Balance           decimal.Decimal `json:"balance"`
	Deposits          decimal.Decimal `json:"deposits"`
	Withdrawals       decimal.Decimal `json:"withdrawals"`
	TransfersReceived decimal.Decimal `json:"transfersReceived"`
}

// ToBreakdownResponse converts a domain.OwnerBreakdown to its DTO
func ToBreakdownResponse(b *domain.OwnerBreakdown) BreakdownResponse {
	return BreakdownResponse{
		OwnerID:           b.OwnerID,
		Balance:           b.Balance,
		Deposits:          b.Deposits,
		Withdrawals:       b.Withdrawals,
		TransfersReceived: b.TransfersReceived,
	}
}

// LedgerEntryResponse defines one history line for an owner.
type LedgerEntryResponse struct {
	EntryID            int64           `json:"entryID"`
	EntryType          string          `json:"entryType"`
	Amount             decimal.Decimal `json:"amount"`
	TransactionID      string          `json:"transactionID"`
	SourceOwnerID      string          `json:"sourceOwnerID"`
	DestinationOwnerID string          `json:"destinationOwnerID"`
	Description        string          `json:"description"`
	ReferenceNumber    string          `json:"referenceNumber"`
	Status             string          `json:"status"`
	PostedAt           time.Time       `json:"postedAt"`
}

// ToLedgerEntryResponses converts domain ledger entries to history DTOs
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = LedgerEntryResponse{
			EntryID:            e.EntryID,
			EntryType:          string(e.EntryType),
			Amount:             e.Amount,
			TransactionID:      e.TransactionID,
			SourceOwnerID:      e.SourceOwnerID,
			DestinationOwnerID: e.DestinationOwnerID,
			Description:        e.Description,
			ReferenceNumber:    e.ReferenceNumber,
			Status:             string(e.Status),
			PostedAt:           e.PostedAt,
		}
	}
	return responses
}
