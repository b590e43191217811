package dto

import (
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines a peer-to-peer transfer submission.
type CreateTransferRequest struct {
	FromOwnerID     string          `json:"fromOwnerID" binding:"required"`
	ToOwnerID       string          `json:"toOwnerID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"referenceNumber"` // generated when absent
}

// FundOwnerRequest defines an admin funding submission from the system reserve.
type FundOwnerRequest struct {
	OwnerID         string          `json:"ownerID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"referenceNumber"`
}

// BulkFundRequest funds several owners from the system reserve in one call.
type BulkFundRequest struct {
	Items []FundOwnerRequest `json:"items" binding:"required,min=1,dive"`
}

// BulkFundResult reports the per-owner outcome of a bulk funding run.
type BulkFundResult struct {
	OwnerID       string `json:"ownerID"`
	TransactionID string `json:"transactionID,omitempty"`
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
}
