package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bankcore/bankledger/internal/apperrors"
	"github.com/bankcore/bankledger/internal/core/domain"
	portsrepo "github.com/bankcore/bankledger/internal/core/ports/repositories"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// balanceService derives every figure from posted ledger entries. The cached
// accounts.balance column is written by the sync methods and verified by
// CheckAccountBalance, but never used as a source of truth.
type balanceService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	tolerance   decimal.Decimal
}

// NewBalanceService creates the balance resolver.
func NewBalanceService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, tolerance decimal.Decimal) portssvc.BalanceSvcFacade {
	return &balanceService{ledgerRepo: ledgerRepo, accountRepo: accountRepo, tolerance: tolerance}
}

func (s *balanceService) GetBalance(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	balance, err := s.ledgerRepo.OwnerBalance(ctx, ownerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve balance for owner %s: %w", ownerID, err)
	}
	return balance, nil
}

func (s *balanceService) GetAllBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	balances, err := s.ledgerRepo.AllOwnerBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve all balances: %w", err)
	}
	return balances, nil
}

// GetTotalSystemBalance sums all owners' balances. A balanced double-entry
// ledger nets to zero; any other figure means a malformed pair exists.
func (s *balanceService) GetTotalSystemBalance(ctx context.Context) (decimal.Decimal, error) {
	debits, credits, err := s.ledgerRepo.PostedTotals(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve system balance: %w", err)
	}
	return credits.Sub(debits), nil
}

func (s *balanceService) GetOwnerBreakdown(ctx context.Context, ownerID string) (*domain.OwnerBreakdown, error) {
	breakdown, err := s.ledgerRepo.OwnerBreakdown(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve breakdown for owner %s: %w", ownerID, err)
	}
	return breakdown, nil
}

func (s *balanceService) GetOwnerHistory(ctx context.Context, ownerID string, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	entries, err := s.ledgerRepo.ListEntriesByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for owner %s: %w", ownerID, err)
	}
	return entries, nil
}

// SyncBalanceFromLedger re-derives an owner's balance and writes it to the
// owner's account rows.
func (s *balanceService) SyncBalanceFromLedger(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, ownerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list accounts for owner %s: %w", ownerID, err)
	}
	if len(accounts) == 0 {
		return decimal.Zero, fmt.Errorf("owner %s has no accounts: %w", ownerID, apperrors.ErrNotFound)
	}

	var balance decimal.Decimal
	for _, account := range accounts {
		balance, err = s.ledgerRepo.SyncAccountBalance(ctx, account.AccountID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to sync account %s: %w", account.AccountID, err)
		}
	}

	s.LogInfo(ctx, "Balance synced from ledger",
		slog.String("owner_id", ownerID),
		slog.String("balance", balance.String()))
	return balance, nil
}

// CheckAccountBalance verifies the cached column against the ledger within
// the reconciliation tolerance.
func (s *balanceService) CheckAccountBalance(ctx context.Context, accountID string) (bool, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	derived, err := s.ledgerRepo.OwnerBalance(ctx, account.OwnerID)
	if err != nil {
		return false, fmt.Errorf("failed to derive balance for owner %s: %w", account.OwnerID, err)
	}

	diff := account.Balance.Sub(derived).Abs()
	if diff.GreaterThan(s.tolerance) {
		s.LogError(ctx, apperrors.ErrReconciliation, "Cached balance disagrees with ledger",
			slog.String("account_id", accountID),
			slog.String("cached", account.Balance.String()),
			slog.String("derived", derived.String()))
		return false, nil
	}
	return true, nil
}
