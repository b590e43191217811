package services_test

import (
	"context"
	"testing"

	"github.com/bankcore/bankledger/internal/apperrors"
	"github.com/bankcore/bankledger/internal/core/domain"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/core/services"
	"github.com/bankcore/bankledger/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OwnerServiceTestSuite struct {
	suite.Suite
	mockOwnerRepo   *MockOwnerRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.OwnerSvcFacade
}

func (suite *OwnerServiceTestSuite) SetupTest() {
	suite.mockOwnerRepo = new(MockOwnerRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewOwnerService(suite.mockOwnerRepo, suite.mockAccountRepo)
}

func (suite *OwnerServiceTestSuite) TestCreateOwner_OpensDefaultAccount() {
	ctx := context.Background()
	req := dto.CreateOwnerRequest{Name: "Ada", Email: "ada@example.com"}

	suite.mockOwnerRepo.On("SaveOwner", ctx, mock.MatchedBy(func(o domain.Owner) bool {
		return o.Name == "Ada" && o.IsActive && o.OwnerID != ""
	})).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByOwner", ctx, mock.AnythingOfType("string"), domain.Savings).
		Return(nil, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountType == domain.Savings && a.Status == domain.AccountActive && a.Balance.IsZero()
	})).Return(nil).Once()

	owner, err := suite.service.CreateOwner(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(owner)
	suite.NotEmpty(owner.OwnerID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *OwnerServiceTestSuite) TestCreateOwner_DuplicateEmailSurfaces() {
	ctx := context.Background()
	req := dto.CreateOwnerRequest{Name: "Ada", Email: "ada@example.com"}

	suite.mockOwnerRepo.On("SaveOwner", ctx, mock.AnythingOfType("domain.Owner")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateOwner(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *OwnerServiceTestSuite) TestEnsureAccount_ReturnsExisting() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	existing := domain.Account{AccountID: uuid.NewString(), OwnerID: ownerID, AccountType: domain.Checking}

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID, domain.Checking).
		Return(&existing, nil).Once()

	account, err := suite.service.EnsureAccount(ctx, ownerID, domain.Checking)

	suite.Require().NoError(err)
	suite.Equal(existing.AccountID, account.AccountID)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *OwnerServiceTestSuite) TestGetOwnerByID_NotFound() {
	ctx := context.Background()
	missing := uuid.NewString()

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, missing).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetOwnerByID(ctx, missing)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestOwnerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OwnerServiceTestSuite))
}
