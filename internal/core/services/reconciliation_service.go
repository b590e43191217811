package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bankcore/bankledger/internal/core/domain"
	portsrepo "github.com/bankcore/bankledger/internal/core/ports/repositories"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reconciliationService audits the posted ledger. All methods are read-only
// and idempotent; running them concurrently with postings is safe because
// every posting commits a complete pair or nothing.
type reconciliationService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	tolerance  decimal.Decimal
}

// NewReconciliationService creates the ledger auditor.
func NewReconciliationService(ledgerRepo portsrepo.LedgerRepositoryFacade, tolerance decimal.Decimal) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{ledgerRepo: ledgerRepo, tolerance: tolerance}
}

// Reconcile audits the whole ledger: posted debits must equal posted credits
// within tolerance, and no posted debit may be unpaired.
func (s *reconciliationService) Reconcile(ctx context.Context) (*domain.ReconciliationReport, error) {
	debits, credits, err := s.ledgerRepo.PostedTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute posted totals: %w", err)
	}

	orphans, err := s.ledgerRepo.CountOrphanedDebits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orphaned debits: %w", err)
	}

	report := &domain.ReconciliationReport{
		TotalDebits:     debits,
		TotalCredits:    credits,
		Difference:      debits.Sub(credits).Abs(),
		OrphanedEntries: orphans,
		Errors:          []string{},
	}

	if report.Difference.GreaterThan(s.tolerance) {
		report.Errors = append(report.Errors,
			fmt.Sprintf("ledger imbalance: total debits %s, total credits %s", debits.String(), credits.String()))
	}
	if orphans > 0 {
		report.Errors = append(report.Errors,
			fmt.Sprintf("%d posted debit entries have no paired credit", orphans))
	}
	report.IsBalanced = len(report.Errors) == 0

	if !report.IsBalanced {
		s.LogError(ctx, fmt.Errorf("%d integrity violations", len(report.Errors)), "Reconciliation found defects",
			slog.String("difference", report.Difference.String()),
			slog.Int64("orphaned_entries", orphans))
	} else {
		s.LogInfo(ctx, "Reconciliation clean",
			slog.String("total_debits", debits.String()),
			slog.String("total_credits", credits.String()))
	}
	return report, nil
}

// VerifyTransactionEntries checks the pairing invariant for one transaction:
// exactly two posted entries, one debit and one credit of equal amount,
// referencing each other.
func (s *reconciliationService) VerifyTransactionEntries(ctx context.Context, transactionID string) (bool, error) {
	entries, err := s.ledgerRepo.FindEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return false, fmt.Errorf("failed to load entries for transaction %s: %w", transactionID, err)
	}

	if len(entries) != 2 {
		return false, nil
	}

	var debit, credit *domain.LedgerEntry
	for i := range entries {
		switch entries[i].EntryType {
		case domain.Debit:
			debit = &entries[i]
		case domain.Credit:
			credit = &entries[i]
		}
	}
	if debit == nil || credit == nil {
		return false, nil
	}
	if !debit.Amount.Equal(credit.Amount) {
		return false, nil
	}
	if debit.PairedEntryID == nil || credit.PairedEntryID == nil {
		return false, nil
	}
	if *debit.PairedEntryID != credit.EntryID || *credit.PairedEntryID != debit.EntryID {
		return false, nil
	}
	return true, nil
}
