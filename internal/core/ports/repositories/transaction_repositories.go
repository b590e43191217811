package repositories

import (
	"context"
	"time"

	"github.com/bankcore/bankledger/internal/core/domain"
)

// TransactionReader defines read operations for transaction records
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByOwner retrieves the most recent transactions for an
	// owner, newest first, optionally filtered to the given statuses.
	ListTransactionsByOwner(ctx context.Context, ownerID string, statuses []domain.TransactionStatus, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction records
type TransactionWriter interface {
	// SaveTransaction persists a new transaction in its initial status.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionStatus sets the status and appends an audit note to the
	// description. Used by the gate's block/reject paths, which run outside
	// the posting unit of work because they never touch the ledger.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, auditNote string, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction-record repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
