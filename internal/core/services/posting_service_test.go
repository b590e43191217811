package services_test

import (
	"context"
	"testing"

	"github.com/bankcore/bankledger/internal/apperrors"
	"github.com/bankcore/bankledger/internal/core/domain"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PostingServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockOwnerRepo  *MockOwnerRepository
	service        portssvc.PostingSvcFacade
	sender         domain.Owner
	recipient      domain.Owner
	txn            domain.Transaction
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockOwnerRepo = new(MockOwnerRepository)
	suite.service = services.NewPostingService(suite.mockLedgerRepo, suite.mockOwnerRepo)

	suite.sender = domain.Owner{OwnerID: uuid.NewString(), IsActive: true}
	suite.recipient = domain.Owner{OwnerID: uuid.NewString(), IsActive: true}
	suite.txn = domain.Transaction{
		TransactionID:   uuid.NewString(),
		OwnerID:         suite.sender.OwnerID,
		TransactionType: domain.Transfer,
		Amount:          decimal.NewFromInt(100),
	}
}

func (suite *PostingServiceTestSuite) TestPostTransfer_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, suite.sender.OwnerID).Return(&suite.sender, nil).Once()
	suite.mockOwnerRepo.On("FindOwnerByID", ctx, suite.recipient.OwnerID).Return(&suite.recipient, nil).Once()

	pairedID := int64(2)
	suite.mockLedgerRepo.On("CreatePair", ctx,
		mock.MatchedBy(func(d domain.LedgerEntry) bool {
			return d.EntryType == domain.Debit &&
				d.OwnerID == suite.sender.OwnerID &&
				d.Amount.Equal(amount) &&
				d.TransactionID == suite.txn.TransactionID &&
				d.SourceOwnerID == suite.sender.OwnerID &&
				d.DestinationOwnerID == suite.recipient.OwnerID
		}),
		mock.MatchedBy(func(c domain.LedgerEntry) bool {
			return c.EntryType == domain.Credit &&
				c.OwnerID == suite.recipient.OwnerID &&
				c.Amount.Equal(amount)
		}),
	).Return(
		domain.LedgerEntry{EntryID: 1, PairedEntryID: &pairedID},
		domain.LedgerEntry{EntryID: 2},
		nil,
	).Once()

	d, c, err := suite.service.PostTransfer(ctx, suite.txn, suite.sender.OwnerID, suite.recipient.OwnerID, amount, "rent", "REF-9")

	suite.Require().NoError(err)
	suite.Equal(int64(1), d.EntryID)
	suite.Equal(int64(2), c.EntryID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostTransfer_NonPositiveAmount() {
	ctx := context.Background()

	_, _, err := suite.service.PostTransfer(ctx, suite.txn, suite.sender.OwnerID, suite.recipient.OwnerID, decimal.Zero, "noop", "REF-0")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "CreatePair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransfer_SameOwner() {
	ctx := context.Background()

	_, _, err := suite.service.PostTransfer(ctx, suite.txn, suite.sender.OwnerID, suite.sender.OwnerID, decimal.NewFromInt(10), "self", "REF-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "CreatePair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransfer_MissingOwnerCreatesNothing() {
	ctx := context.Background()

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, suite.sender.OwnerID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.PostTransfer(ctx, suite.txn, suite.sender.OwnerID, suite.recipient.OwnerID, decimal.NewFromInt(10), "ghost", "REF-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "CreatePair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostSystemFunding_DebitsSystemOwner() {
	ctx := context.Background()
	amount := decimal.NewFromInt(250)
	systemOwner := domain.Owner{OwnerID: domain.SystemOwnerID, IsActive: true}

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, domain.SystemOwnerID).Return(&systemOwner, nil).Once()
	suite.mockOwnerRepo.On("FindOwnerByID", ctx, suite.recipient.OwnerID).Return(&suite.recipient, nil).Once()

	suite.mockLedgerRepo.On("CreatePair", ctx,
		mock.MatchedBy(func(d domain.LedgerEntry) bool {
			return d.OwnerID == domain.SystemOwnerID && d.EntryType == domain.Debit
		}),
		mock.MatchedBy(func(c domain.LedgerEntry) bool {
			return c.OwnerID == suite.recipient.OwnerID && c.EntryType == domain.Credit && c.Amount.Equal(amount)
		}),
	).Return(domain.LedgerEntry{EntryID: 1}, domain.LedgerEntry{EntryID: 2}, nil).Once()

	_, _, err := suite.service.PostSystemFunding(ctx, suite.txn, suite.recipient.OwnerID, amount, "admin credit", "REF-3")

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
