package repositories

import (
	"context"
	"time"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByOwner retrieves an owner's account of the given type, or
	// nil when the owner has no such account.
	FindAccountByOwner(ctx context.Context, ownerID string, accountType domain.AccountType) (*domain.Account, error)

	// ListAccountsByOwner retrieves all accounts held by an owner.
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations used inside a posting unit of work
type AccountTransactionSupport interface {
	// FindAccountForUpdate selects an account and locks its row within tx.
	FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// UpdateAccountBalanceInTx writes the cached balance column within tx.
	// This is the only writer of accounts.balance.
	UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
