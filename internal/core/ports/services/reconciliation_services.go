package services

import (
	"context"

	"github.com/bankcore/bankledger/internal/core/domain"
)

// ReconciliationSvcFacade detects and reports ledger integrity violations.
// All operations are read-only and safe to call concurrently with postings.
type ReconciliationSvcFacade interface {
	// Reconcile audits the posted ledger: total debits vs credits within
	// tolerance, plus orphaned debit detection.
	Reconcile(ctx context.Context) (*domain.ReconciliationReport, error)

	// VerifyTransactionEntries checks the pairing invariant for one
	// transaction: exactly two posted entries, one debit and one credit of
	// equal amount, referencing each other.
	VerifyTransactionEntries(ctx context.Context, transactionID string) (bool, error)
}
