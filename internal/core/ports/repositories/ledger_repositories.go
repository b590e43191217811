package repositories

import (
	"context"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations over the append-only entry store.
// All aggregates consider posted entries only.
type LedgerReader interface {
	// FindEntriesByTransactionID retrieves the entries belonging to a transaction.
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error)

	// ListEntriesByOwner retrieves an owner's most recent entries, newest first.
	ListEntriesByOwner(ctx context.Context, ownerID string, limit int) ([]domain.LedgerEntry, error)

	// OwnerBalance computes posted credits minus posted debits for one owner.
	OwnerBalance(ctx context.Context, ownerID string) (decimal.Decimal, error)

	// AllOwnerBalances computes every owner's balance in a single grouped
	// aggregation. Owners with no posted entries map to zero.
	AllOwnerBalances(ctx context.Context) (map[string]decimal.Decimal, error)

	// OwnerBreakdown computes an owner's deposit, withdrawal and received
	// totals alongside the net balance.
	OwnerBreakdown(ctx context.Context, ownerID string) (*domain.OwnerBreakdown, error)

	// PostedTotals returns the global sums of posted debits and credits.
	PostedTotals(ctx context.Context) (debits decimal.Decimal, credits decimal.Decimal, err error)

	// CountOrphanedDebits counts posted debit entries with no paired entry.
	CountOrphanedDebits(ctx context.Context) (int64, error)
}

// LedgerWriter defines the mutations of the entry store. Entries are
// append-only; both methods perform the two-phase pair insert (debit first,
// credit referencing the debit, debit backfilled with the credit's id)
// inside a single database transaction, so a half-posted pair can never be
// observed or survive a crash.
type LedgerWriter interface {
	// CreatePair atomically persists a balanced debit/credit pair. When the
	// debit owner is not the system owner, the owner's ledger-derived balance
	// is checked against the debit amount inside the same transaction.
	CreatePair(ctx context.Context, debit, credit domain.LedgerEntry) (domain.LedgerEntry, domain.LedgerEntry, error)

	// CompleteTransactionPosting runs the gate's completion unit of work:
	// flip the transaction to completed, create the pair, re-derive the
	// account's cached balance from the ledger, and verify global balance
	// within tolerance. Any failure, including the reconciliation guard,
	// rolls the whole unit back.
	CompleteTransactionPosting(ctx context.Context, txn domain.Transaction, debit, credit domain.LedgerEntry, tolerance decimal.Decimal) (domain.LedgerEntry, domain.LedgerEntry, error)

	// SyncAccountBalance re-derives the account owner's balance from posted
	// entries and writes the cached accounts.balance column, locking the
	// account row for the duration. Returns the derived balance.
	SyncAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
