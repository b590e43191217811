package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bankcore/bankledger/internal/apperrors"
	"github.com/bankcore/bankledger/internal/core/domain"
	portsrepo "github.com/bankcore/bankledger/internal/core/ports/repositories"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// gateService is the transaction gate: every transaction passes through it
// before it may touch the ledger. It owns linkage validation, the status
// state machine and the handoff to the atomic completion unit of work.
type gateService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	ownerRepo       portsrepo.OwnerRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	ledgerRepo      portsrepo.LedgerRepositoryFacade
	tolerance       decimal.Decimal
	blockedVisible  bool
}

// NewGateService creates the transaction gate.
func NewGateService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	ownerRepo portsrepo.OwnerRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	tolerance decimal.Decimal,
	blockedVisible bool,
) portssvc.GateSvcFacade {
	return &gateService{
		transactionRepo: transactionRepo,
		ownerRepo:       ownerRepo,
		accountRepo:     accountRepo,
		ledgerRepo:      ledgerRepo,
		tolerance:       tolerance,
		blockedVisible:  blockedVisible,
	}
}

// SystemFundingStrategy builds the default pair: the system owner funds the
// transaction's owner with the transaction amount.
func SystemFundingStrategy() portssvc.PostingStrategy {
	return func(txn domain.Transaction, now time.Time) (domain.LedgerEntry, domain.LedgerEntry, error) {
		posting, err := domain.NewPairedPosting(
			domain.SystemOwnerID, txn.OwnerID, txn.Amount, txn.Description, txn.ReferenceNumber)
		if err != nil {
			return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		debit, credit := posting.Entries(txn.TransactionID, now)
		return debit, credit, nil
	}
}

// PeerTransferStrategy builds the pair for a transfer between two owners.
func PeerTransferStrategy(fromOwnerID, toOwnerID string) portssvc.PostingStrategy {
	return func(txn domain.Transaction, now time.Time) (domain.LedgerEntry, domain.LedgerEntry, error) {
		posting, err := domain.NewPairedPosting(
			fromOwnerID, toOwnerID, txn.Amount, txn.Description, txn.ReferenceNumber)
		if err != nil {
			return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		debit, credit := posting.Entries(txn.TransactionID, now)
		return debit, credit, nil
	}
}

// ValidateLinkage checks the transaction's required linkage fields. All
// violations are reported together so a caller can fix them in one round.
func (s *gateService) ValidateLinkage(txn domain.Transaction) (bool, string) {
	var violations []string

	if txn.TransactionID == "" {
		violations = append(violations, "transaction ID is required")
	}
	if txn.OwnerID == "" {
		violations = append(violations, "owner ID is required")
	}
	if txn.AccountID == "" {
		violations = append(violations, "account ID is required")
	}
	if txn.ReferenceNumber == "" {
		violations = append(violations, "reference number is required")
	}
	if _, ok := domain.ValidTransactionTypes[txn.TransactionType]; !ok {
		violations = append(violations, fmt.Sprintf("unknown transaction type %q", txn.TransactionType))
	}
	if txn.Direction != domain.DirectionDebit && txn.Direction != domain.DirectionCredit {
		violations = append(violations, fmt.Sprintf("unknown direction %q", txn.Direction))
	}
	if !txn.Amount.IsPositive() {
		violations = append(violations, fmt.Sprintf("amount must be positive, got %s", txn.Amount.String()))
	}

	if len(violations) > 0 {
		return false, strings.Join(violations, "; ")
	}
	return true, ""
}

// ValidateTransfer runs pre-creation checks for a peer transfer without
// mutating anything.
func (s *gateService) ValidateTransfer(ctx context.Context, senderID, recipientID string, amount decimal.Decimal) (bool, string, error) {
	if !amount.IsPositive() {
		return false, fmt.Sprintf("amount must be positive, got %s", amount.String()), nil
	}
	if senderID == recipientID {
		return false, "sender and recipient must differ", nil
	}

	for _, ownerID := range []string{senderID, recipientID} {
		owner, err := s.ownerRepo.FindOwnerByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return false, fmt.Sprintf("owner %s does not exist", ownerID), nil
			}
			return false, "", fmt.Errorf("failed to look up owner %s: %w", ownerID, err)
		}
		if !owner.IsActive {
			return false, fmt.Sprintf("owner %s is inactive", ownerID), nil
		}
	}

	// The system owner is the funds source and exempt from overdraft checks.
	if senderID != domain.SystemOwnerID {
		balance, err := s.ledgerRepo.OwnerBalance(ctx, senderID)
		if err != nil {
			return false, "", fmt.Errorf("failed to resolve balance for owner %s: %w", senderID, err)
		}
		if balance.LessThan(amount) {
			return false, fmt.Sprintf("insufficient balance: has %s, needs %s", balance.String(), amount.String()), nil
		}
	}
	return true, "", nil
}

// CreateTransaction persists a new transaction in pending status. No ledger
// entries exist until Complete succeeds.
func (s *gateService) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	txn.Status = domain.TxnPending

	if ok, reason := s.ValidateLinkage(txn); !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, reason)
	}

	if _, err := s.ownerRepo.FindOwnerByID(ctx, txn.OwnerID); err != nil {
		return nil, fmt.Errorf("transaction owner %s: %w", txn.OwnerID, err)
	}
	account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
	if err != nil {
		return nil, fmt.Errorf("transaction account %s: %w", txn.AccountID, err)
	}
	if account.OwnerID != txn.OwnerID {
		return nil, fmt.Errorf("%w: account %s does not belong to owner %s", apperrors.ErrLinkage, txn.AccountID, txn.OwnerID)
	}

	now := time.Now().UTC()
	txn.CreatedAt = now
	txn.LastUpdatedAt = now

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// Complete atomically finishes a transaction: status flip, pair creation via
// strategy, cached-balance sync and the reconciliation guard all commit
// together or not at all.
func (s *gateService) Complete(ctx context.Context, transactionID string, strategy portssvc.PostingStrategy) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", transactionID, err)
	}
	if !txn.CanTransitionTo(domain.TxnCompleted) {
		return fmt.Errorf("%w: transaction %s cannot complete from status %s",
			apperrors.ErrValidation, transactionID, txn.Status)
	}

	if strategy == nil {
		strategy = SystemFundingStrategy()
	}
	debit, credit, err := strategy(*txn, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to build posting for transaction %s: %w", transactionID, err)
	}

	d, c, err := s.ledgerRepo.CompleteTransactionPosting(ctx, *txn, debit, credit, s.tolerance)
	if err != nil {
		s.LogError(ctx, err, "Transaction completion rolled back",
			slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction completed",
		slog.String("transaction_id", transactionID),
		slog.Int64("debit_entry_id", d.EntryID),
		slog.Int64("credit_entry_id", c.EntryID))
	return nil
}

// Block holds a pending transaction for review. No ledger entries are written.
func (s *gateService) Block(ctx context.Context, transactionID string, reason string) error {
	return s.transitionWithoutPosting(ctx, transactionID, domain.TxnBlocked, "BLOCKED: "+reason)
}

// Reject terminally fails a transaction. A rejected transaction never has
// ledger entries and never affects any balance.
func (s *gateService) Reject(ctx context.Context, transactionID string, reason string) error {
	return s.transitionWithoutPosting(ctx, transactionID, domain.TxnFailed, "REJECTED: "+reason)
}

func (s *gateService) transitionWithoutPosting(ctx context.Context, transactionID string, target domain.TransactionStatus, auditNote string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", transactionID, err)
	}
	if !txn.CanTransitionTo(target) {
		return fmt.Errorf("%w: transaction %s cannot move from %s to %s",
			apperrors.ErrValidation, transactionID, txn.Status, target)
	}

	if err := s.transactionRepo.UpdateTransactionStatus(ctx, transactionID, target, auditNote, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction status changed",
		slog.String("transaction_id", transactionID),
		slog.String("from", string(txn.Status)),
		slog.String("to", string(target)))
	return nil
}

// Unblock re-runs the completion path for a blocked transaction.
func (s *gateService) Unblock(ctx context.Context, transactionID string, strategy portssvc.PostingStrategy) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", transactionID, err)
	}
	if txn.Status != domain.TxnBlocked {
		return fmt.Errorf("%w: transaction %s is %s, only blocked transactions can be unblocked",
			apperrors.ErrValidation, transactionID, txn.Status)
	}
	return s.Complete(ctx, transactionID, strategy)
}

// GetTransaction retrieves one transaction record.
func (s *gateService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListOwnerTransactions lists an owner's recent transactions, applying the
// blocked-visibility policy for non-admin views.
func (s *gateService) ListOwnerTransactions(ctx context.Context, ownerID string, limit int, adminView bool) ([]domain.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	var statuses []domain.TransactionStatus
	if !adminView && !s.blockedVisible {
		statuses = []domain.TransactionStatus{domain.TxnPending, domain.TxnCompleted, domain.TxnFailed}
	}

	txns, err := s.transactionRepo.ListTransactionsByOwner(ctx, ownerID, statuses, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for owner %s: %w", ownerID, err)
	}
	return txns, nil
}
