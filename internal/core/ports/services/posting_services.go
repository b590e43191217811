package services

import (
	"context"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingSvcFacade is the ledger posting engine: given an economic event it
// creates exactly one balanced debit/credit pair atomically, or nothing.
type PostingSvcFacade interface {
	// PostTransfer creates the pair for a peer-to-peer movement. Preconditions
	// (positive amount, distinct existing owners) are checked before any
	// mutation; violation yields ErrValidation or ErrNotFound with no rows
	// created.
	PostTransfer(ctx context.Context, txn domain.Transaction, fromOwnerID, toOwnerID string, amount decimal.Decimal, description, reference string) (domain.LedgerEntry, domain.LedgerEntry, error)

	// PostSystemFunding is PostTransfer with the source fixed to the system
	// owner, modeling admin credits and bulk funding.
	PostSystemFunding(ctx context.Context, txn domain.Transaction, toOwnerID string, amount decimal.Decimal, description, reference string) (domain.LedgerEntry, domain.LedgerEntry, error)
}
