package services

import (
	"context"
	"time"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingStrategy builds the ledger pair for a transaction being completed.
// The gate invokes it after validation; the returned entries are persisted
// atomically with the status change. A nil strategy means system funding to
// the transaction's owner.
type PostingStrategy func(txn domain.Transaction, now time.Time) (domain.LedgerEntry, domain.LedgerEntry, error)

// GateSvcFacade is the transaction gate: the validation/state-machine layer
// guarding entry into the ledger. No transaction produces ledger postings
// without passing through it.
type GateSvcFacade interface {
	// ValidateLinkage checks the transaction's required linkage fields and
	// returns every violated rule concatenated, not just the first.
	ValidateLinkage(txn domain.Transaction) (bool, string)

	// ValidateTransfer runs pre-creation checks for a peer transfer:
	// both parties exist and are active, and the sender's ledger-derived
	// balance covers the amount (system owner exempt).
	ValidateTransfer(ctx context.Context, senderID, recipientID string, amount decimal.Decimal) (bool, string, error)

	// CreateTransaction persists a new transaction in pending status.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// Complete validates linkage and referenced entities, then atomically
	// completes the transaction: status flip, pair creation via strategy,
	// cached-balance sync, and a reconciliation guard. Any failure rolls the
	// whole unit back and the transaction keeps its prior status.
	Complete(ctx context.Context, transactionID string, strategy PostingStrategy) error

	// Block holds a pending transaction for review. No ledger entries.
	Block(ctx context.Context, transactionID string, reason string) error

	// Reject terminally fails a transaction. No ledger entries, ever.
	Reject(ctx context.Context, transactionID string, reason string) error

	// Unblock re-runs Complete for a transaction currently blocked.
	Unblock(ctx context.Context, transactionID string, strategy PostingStrategy) error

	// GetTransaction retrieves one transaction record.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListOwnerTransactions lists an owner's recent transactions, newest
	// first. When adminView is false the blocked-visibility policy applies:
	// blocked transactions are filtered out unless configuration exposes them.
	ListOwnerTransactions(ctx context.Context, ownerID string, limit int, adminView bool) ([]domain.Transaction, error)
}
