package dto

import (
	"time"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOwnerRequest defines the data needed to register an owner.
type CreateOwnerRequest struct {
	Name        string             `json:"name" binding:"required"`
	Email       string             `json:"email" binding:"required,email"`
	AccountType domain.AccountType `json:"accountType" binding:"omitempty,oneof=SAVINGS CHECKING BUSINESS"`
}

// OwnerResponse defines the data returned for an owner.
type OwnerResponse struct {
	OwnerID   string    `json:"ownerID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToOwnerResponse converts a domain.Owner to OwnerResponse DTO
func ToOwnerResponse(o *domain.Owner) OwnerResponse {
	return OwnerResponse{
		OwnerID:   o.OwnerID,
		Name:      o.Name,
		Email:     o.Email,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
	}
}

// AccountResponse defines the data returned for an account. Balance is the
// cached column, synced from the ledger after each completed posting.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	OwnerID       string          `json:"ownerID"`
	AccountType   string          `json:"accountType"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        string          `json:"status"`
	Balance       decimal.Decimal `json:"balance"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		AccountNumber: a.AccountNumber,
		OwnerID:       a.OwnerID,
		AccountType:   string(a.AccountType),
		CurrencyCode:  a.CurrencyCode,
		Status:        string(a.Status),
		Balance:       a.Balance,
	}
}
