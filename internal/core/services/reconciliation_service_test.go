package services_test

import (
	"context"
	"testing"

	"github.com/bankcore/bankledger/internal/core/domain"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.ReconciliationSvcFacade
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewReconciliationService(suite.mockLedgerRepo, decimal.NewFromFloat(0.01))
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_BalancedLedger() {
	ctx := context.Background()
	total := decimal.NewFromInt(10000)

	suite.mockLedgerRepo.On("PostedTotals", ctx).Return(total, total, nil).Once()
	suite.mockLedgerRepo.On("CountOrphanedDebits", ctx).Return(int64(0), nil).Once()

	report, err := suite.service.Reconcile(ctx)

	suite.Require().NoError(err)
	suite.True(report.IsBalanced)
	suite.Empty(report.Errors)
	suite.True(report.Difference.IsZero())
	suite.Zero(report.OrphanedEntries)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_WithinTolerance() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("PostedTotals", ctx).
		Return(decimal.NewFromFloat(100.00), decimal.NewFromFloat(100.009), nil).Once()
	suite.mockLedgerRepo.On("CountOrphanedDebits", ctx).Return(int64(0), nil).Once()

	report, err := suite.service.Reconcile(ctx)

	suite.Require().NoError(err)
	suite.True(report.IsBalanced)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_Imbalance() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("PostedTotals", ctx).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(150), nil).Once()
	suite.mockLedgerRepo.On("CountOrphanedDebits", ctx).Return(int64(0), nil).Once()

	report, err := suite.service.Reconcile(ctx)

	suite.Require().NoError(err)
	suite.False(report.IsBalanced)
	suite.True(report.Difference.Equal(decimal.NewFromInt(50)))
	suite.Len(report.Errors, 1)
	suite.Contains(report.Errors[0], "imbalance")
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_OrphanedDebits() {
	ctx := context.Background()
	total := decimal.NewFromInt(500)

	suite.mockLedgerRepo.On("PostedTotals", ctx).Return(total, total, nil).Once()
	suite.mockLedgerRepo.On("CountOrphanedDebits", ctx).Return(int64(3), nil).Once()

	report, err := suite.service.Reconcile(ctx)

	suite.Require().NoError(err)
	suite.False(report.IsBalanced)
	suite.Equal(int64(3), report.OrphanedEntries)
	suite.Len(report.Errors, 1)
	suite.Contains(report.Errors[0], "no paired credit")
}

// Reconcile never mutates anything, so running it twice yields the same report.
func (suite *ReconciliationServiceTestSuite) TestReconcile_Idempotent() {
	ctx := context.Background()
	total := decimal.NewFromInt(42)

	suite.mockLedgerRepo.On("PostedTotals", ctx).Return(total, total, nil).Twice()
	suite.mockLedgerRepo.On("CountOrphanedDebits", ctx).Return(int64(0), nil).Twice()

	first, err := suite.service.Reconcile(ctx)
	suite.Require().NoError(err)
	second, err := suite.service.Reconcile(ctx)
	suite.Require().NoError(err)

	suite.Equal(first.IsBalanced, second.IsBalanced)
	suite.True(first.TotalDebits.Equal(second.TotalDebits))
	suite.Equal(first.OrphanedEntries, second.OrphanedEntries)
}

func pairedEntries(transactionID string, amount decimal.Decimal) []domain.LedgerEntry {
	debitID, creditID := int64(10), int64(11)
	return []domain.LedgerEntry{
		{EntryID: debitID, EntryType: domain.Debit, Amount: amount, TransactionID: transactionID, PairedEntryID: &creditID},
		{EntryID: creditID, EntryType: domain.Credit, Amount: amount, TransactionID: transactionID, PairedEntryID: &debitID},
	}
}

func (suite *ReconciliationServiceTestSuite) TestVerifyTransactionEntries_ValidPair() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockLedgerRepo.On("FindEntriesByTransactionID", ctx, txnID).
		Return(pairedEntries(txnID, decimal.NewFromInt(100)), nil).Once()

	ok, err := suite.service.VerifyTransactionEntries(ctx, txnID)

	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *ReconciliationServiceTestSuite) TestVerifyTransactionEntries_WrongCount() {
	ctx := context.Background()
	txnID := uuid.NewString()
	entries := pairedEntries(txnID, decimal.NewFromInt(100))[:1]

	suite.mockLedgerRepo.On("FindEntriesByTransactionID", ctx, txnID).Return(entries, nil).Once()

	ok, err := suite.service.VerifyTransactionEntries(ctx, txnID)

	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *ReconciliationServiceTestSuite) TestVerifyTransactionEntries_AmountMismatch() {
	ctx := context.Background()
	txnID := uuid.NewString()
	entries := pairedEntries(txnID, decimal.NewFromInt(100))
	entries[1].Amount = decimal.NewFromInt(99)

	suite.mockLedgerRepo.On("FindEntriesByTransactionID", ctx, txnID).Return(entries, nil).Once()

	ok, err := suite.service.VerifyTransactionEntries(ctx, txnID)

	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *ReconciliationServiceTestSuite) TestVerifyTransactionEntries_BrokenCrossReference() {
	ctx := context.Background()
	txnID := uuid.NewString()
	entries := pairedEntries(txnID, decimal.NewFromInt(100))
	wrongID := int64(999)
	entries[0].PairedEntryID = &wrongID

	suite.mockLedgerRepo.On("FindEntriesByTransactionID", ctx, txnID).Return(entries, nil).Once()

	ok, err := suite.service.VerifyTransactionEntries(ctx, txnID)

	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *ReconciliationServiceTestSuite) TestVerifyTransactionEntries_TwoDebits() {
	ctx := context.Background()
	txnID := uuid.NewString()
	entries := pairedEntries(txnID, decimal.NewFromInt(100))
	entries[1].EntryType = domain.Debit

	suite.mockLedgerRepo.On("FindEntriesByTransactionID", ctx, txnID).Return(entries, nil).Once()

	ok, err := suite.service.VerifyTransactionEntries(ctx, txnID)

	suite.Require().NoError(err)
	suite.False(ok)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
