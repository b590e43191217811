package services

import (
	"context"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReaderSvc is the single source of truth for balances. Every figure
// is derived from posted ledger entries; the cached accounts.balance column
// is never read here.
type BalanceReaderSvc interface {
	// GetBalance computes one owner's balance from the ledger.
	GetBalance(ctx context.Context, ownerID string) (decimal.Decimal, error)

	// GetAllBalances computes every owner's balance in one aggregation.
	GetAllBalances(ctx context.Context) (map[string]decimal.Decimal, error)

	// GetTotalSystemBalance sums all owners' balances. Zero in a balanced
	// ledger; anything else signals a missing or malformed pair.
	GetTotalSystemBalance(ctx context.Context) (decimal.Decimal, error)

	// GetOwnerBreakdown reports an owner's deposits, withdrawals and
	// transfers received alongside the net balance.
	GetOwnerBreakdown(ctx context.Context, ownerID string) (*domain.OwnerBreakdown, error)

	// GetOwnerHistory lists an owner's most recent ledger entries.
	GetOwnerHistory(ctx context.Context, ownerID string, limit int) ([]domain.LedgerEntry, error)
}

// BalanceSyncSvc maintains the cached account balance column.
type BalanceSyncSvc interface {
	// SyncBalanceFromLedger re-derives an owner's balance and writes it to
	// the owner's account row. The only legitimate writer of the cache.
	SyncBalanceFromLedger(ctx context.Context, ownerID string) (decimal.Decimal, error)

	// CheckAccountBalance verifies the cached column against the ledger
	// within the reconciliation tolerance.
	CheckAccountBalance(ctx context.Context, accountID string) (bool, error)
}

// BalanceSvcFacade combines all balance service interfaces
type BalanceSvcFacade interface {
	BalanceReaderSvc
	BalanceSyncSvc
}
