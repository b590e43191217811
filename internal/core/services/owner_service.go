package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bankcore/bankledger/internal/core/domain"
	portsrepo "github.com/bankcore/bankledger/internal/core/ports/repositories"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ownerService struct {
	BaseService
	ownerRepo   portsrepo.OwnerRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewOwnerService creates the owner directory service.
func NewOwnerService(ownerRepo portsrepo.OwnerRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.OwnerSvcFacade {
	return &ownerService{ownerRepo: ownerRepo, accountRepo: accountRepo}
}

// newAccountNumber derives a human-readable account number from a fresh UUID.
func newAccountNumber() string {
	return "ACCT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func (s *ownerService) GetOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error) {
	owner, err := s.ownerRepo.FindOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner %s: %w", ownerID, err)
	}
	return owner, nil
}

// CreateOwner registers a new owner and opens its default account.
func (s *ownerService) CreateOwner(ctx context.Context, req dto.CreateOwnerRequest) (*domain.Owner, error) {
	now := time.Now().UTC()

	owner := domain.Owner{
		OwnerID:  uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.ownerRepo.SaveOwner(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	accountType := req.AccountType
	if accountType == "" {
		accountType = domain.Savings
	}
	if _, err := s.EnsureAccount(ctx, owner.OwnerID, accountType); err != nil {
		return nil, fmt.Errorf("owner %s created but default account failed: %w", owner.OwnerID, err)
	}

	s.LogInfo(ctx, "Owner registered",
		slog.String("owner_id", owner.OwnerID),
		slog.String("account_type", string(accountType)))
	return &owner, nil
}

// EnsureAccount returns the owner's account of the given type, creating it
// lazily with a zero starting balance when absent.
func (s *ownerService) EnsureAccount(ctx context.Context, ownerID string, accountType domain.AccountType) (*domain.Account, error) {
	existing, err := s.accountRepo.FindAccountByOwner(ctx, ownerID, accountType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account for owner %s: %w", ownerID, err)
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: newAccountNumber(),
		OwnerID:       ownerID,
		AccountType:   accountType,
		CurrencyCode:  "USD",
		Status:        domain.AccountActive,
		Balance:       decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account for owner %s: %w", ownerID, err)
	}

	s.LogDebug(ctx, "Account opened",
		slog.String("owner_id", ownerID),
		slog.String("account_id", account.AccountID))
	return &account, nil
}
