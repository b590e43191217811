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

type BalanceServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo  *MockLedgerRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.BalanceSvcFacade
	ownerID         string
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewBalanceService(suite.mockLedgerRepo, suite.mockAccountRepo, decimal.NewFromFloat(0.01))
	suite.ownerID = uuid.NewString()
}

func (suite *BalanceServiceTestSuite) TestGetBalance_DerivedFromLedger() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("OwnerBalance", ctx, suite.ownerID).Return(decimal.NewFromFloat(123.45), nil).Once()

	balance, err := suite.service.GetBalance(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromFloat(123.45)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetTotalSystemBalance_ZeroWhenBalanced() {
	ctx := context.Background()
	total := decimal.NewFromInt(5000)
	suite.mockLedgerRepo.On("PostedTotals", ctx).Return(total, total, nil).Once()

	sum, err := suite.service.GetTotalSystemBalance(ctx)

	suite.Require().NoError(err)
	suite.True(sum.IsZero())
}

func (suite *BalanceServiceTestSuite) TestGetTotalSystemBalance_ExposesImbalance() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("PostedTotals", ctx).
		Return(decimal.NewFromInt(5000), decimal.NewFromInt(5100), nil).Once()

	sum, err := suite.service.GetTotalSystemBalance(ctx)

	suite.Require().NoError(err)
	suite.True(sum.Equal(decimal.NewFromInt(100)))
}

func (suite *BalanceServiceTestSuite) TestGetAllBalances() {
	ctx := context.Background()
	expected := map[string]decimal.Decimal{
		suite.ownerID:        decimal.NewFromInt(75),
		domain.SystemOwnerID: decimal.NewFromInt(-75),
	}
	suite.mockLedgerRepo.On("AllOwnerBalances", ctx).Return(expected, nil).Once()

	balances, err := suite.service.GetAllBalances(ctx)

	suite.Require().NoError(err)
	suite.Len(balances, 2)
	suite.True(balances[suite.ownerID].Equal(decimal.NewFromInt(75)))
}

func (suite *BalanceServiceTestSuite) TestGetOwnerHistory_DefaultsLimit() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("ListEntriesByOwner", ctx, suite.ownerID, 50).
		Return([]domain.LedgerEntry{}, nil).Once()

	_, err := suite.service.GetOwnerHistory(ctx, suite.ownerID, -3)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestSyncBalanceFromLedger() {
	ctx := context.Background()
	account := domain.Account{AccountID: uuid.NewString(), OwnerID: suite.ownerID}

	suite.mockAccountRepo.On("ListAccountsByOwner", ctx, suite.ownerID).
		Return([]domain.Account{account}, nil).Once()
	suite.mockLedgerRepo.On("SyncAccountBalance", ctx, account.AccountID).
		Return(decimal.NewFromInt(300), nil).Once()

	balance, err := suite.service.SyncBalanceFromLedger(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(300)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestCheckAccountBalance_AgreesWithinTolerance() {
	ctx := context.Background()
	account := domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   suite.ownerID,
		Balance:   decimal.NewFromFloat(100.005),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()
	suite.mockLedgerRepo.On("OwnerBalance", ctx, suite.ownerID).Return(decimal.NewFromInt(100), nil).Once()

	ok, err := suite.service.CheckAccountBalance(ctx, account.AccountID)

	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *BalanceServiceTestSuite) TestCheckAccountBalance_DetectsDrift() {
	ctx := context.Background()
	account := domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   suite.ownerID,
		Balance:   decimal.NewFromInt(90),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()
	suite.mockLedgerRepo.On("OwnerBalance", ctx, suite.ownerID).Return(decimal.NewFromInt(100), nil).Once()

	ok, err := suite.service.CheckAccountBalance(ctx, account.AccountID)

	suite.Require().NoError(err)
	suite.False(ok)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
