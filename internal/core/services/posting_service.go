package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bankcore/bankledger/internal/apperrors"
	"github.com/bankcore/bankledger/internal/core/domain"
	portsrepo "github.com/bankcore/bankledger/internal/core/ports/repositories"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// postingService creates balanced debit/credit pairs for economic events.
// Every precondition is checked before any mutation; the pair itself is
// written atomically by the ledger repository.
type postingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	ownerRepo  portsrepo.OwnerRepositoryFacade
}

// NewPostingService creates the ledger posting engine.
func NewPostingService(ledgerRepo portsrepo.LedgerRepositoryFacade, ownerRepo portsrepo.OwnerRepositoryFacade) portssvc.PostingSvcFacade {
	return &postingService{ledgerRepo: ledgerRepo, ownerRepo: ownerRepo}
}

// PostTransfer creates the pair for a peer-to-peer movement.
func (s *postingService) PostTransfer(ctx context.Context, txn domain.Transaction, fromOwnerID, toOwnerID string, amount decimal.Decimal, description, reference string) (domain.LedgerEntry, domain.LedgerEntry, error) {
	posting, err := domain.NewPairedPosting(fromOwnerID, toOwnerID, amount, description, reference)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	for _, ownerID := range []string{fromOwnerID, toOwnerID} {
		if _, err := s.ownerRepo.FindOwnerByID(ctx, ownerID); err != nil {
			return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("owner %s: %w", ownerID, err)
		}
	}

	debit, credit := posting.Entries(txn.TransactionID, time.Now().UTC())
	d, c, err := s.ledgerRepo.CreatePair(ctx, debit, credit)
	if err != nil {
		s.LogError(ctx, err, "Pair creation failed",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("from", fromOwnerID),
			slog.String("to", toOwnerID))
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}

	s.LogInfo(ctx, "Pair posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int64("debit_entry_id", d.EntryID),
		slog.Int64("credit_entry_id", c.EntryID),
		slog.String("amount", amount.String()))
	return d, c, nil
}

// PostSystemFunding is PostTransfer with the source fixed to the system owner.
func (s *postingService) PostSystemFunding(ctx context.Context, txn domain.Transaction, toOwnerID string, amount decimal.Decimal, description, reference string) (domain.LedgerEntry, domain.LedgerEntry, error) {
	return s.PostTransfer(ctx, txn, domain.SystemOwnerID, toOwnerID, amount, description, reference)
}
