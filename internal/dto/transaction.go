package dto

import (
	"time"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a transaction record.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	OwnerID         string          `json:"ownerID"`
	AccountID       string          `json:"accountID"`
	CounterpartyID  string          `json:"counterpartyID,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	Direction       string          `json:"direction"`
	Status          string          `json:"status"`
	ReferenceNumber string          `json:"referenceNumber"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		OwnerID:         t.OwnerID,
		AccountID:       t.AccountID,
		CounterpartyID:  t.CounterpartyID,
		Amount:          t.Amount,
		TransactionType: string(t.TransactionType),
		Direction:       string(t.Direction),
		Status:          string(t.Status),
		ReferenceNumber: t.ReferenceNumber,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// TransactionActionRequest carries the reason for a block or reject action.
type TransactionActionRequest struct {
	Reason string `json:"reason" binding:"required"`
}
