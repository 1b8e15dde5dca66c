package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/core/services"
	"github.com/Omerhrr/Booklet/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo     *MockAccountRepository
	bankAccountRepo *MockBankAccountRepository
	service         portssvc.AccountSvc
	ctx             context.Context
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.bankAccountRepo = new(MockBankAccountRepository)
	s.service = services.NewAccountService(s.accountRepo, s.bankAccountRepo)
	s.ctx = context.Background()
}

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	var saved domain.Account
	s.accountRepo.On("SaveAccount", s.ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Account)
		}).
		Return(nil)

	account, err := s.service.CreateAccount(s.ctx, "biz-1", dto.CreateAccountRequest{
		Name:        "Marketing Expense",
		AccountType: domain.Expense,
		Description: "Campaigns and ads",
	})

	s.NoError(err)
	s.NotEmpty(account.AccountID)
	s.Equal("biz-1", saved.BusinessID)
	s.False(saved.IsSystemAccount)
	s.True(saved.IsActive)
}

func (s *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	_, err := s.service.CreateAccount(s.ctx, "biz-1", dto.CreateAccountRequest{
		Name:        "Mystery",
		AccountType: domain.AccountType("CONTRA"),
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestListAccounts_GroupsByType() {
	s.accountRepo.On("ListAccounts", s.ctx, "biz-1").Return([]domain.Account{
		{AccountID: "a1", Name: "Cash", AccountType: domain.Asset},
		{AccountID: "a2", Name: "Inventory", AccountType: domain.Asset},
		{AccountID: "a3", Name: "Sales Revenue", AccountType: domain.Revenue},
	}, nil)

	grouped, err := s.service.ListAccounts(s.ctx, "biz-1")

	s.NoError(err)
	s.Len(grouped[domain.Asset], 2)
	s.Len(grouped[domain.Revenue], 1)
	s.NotContains(grouped, domain.Liability)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_RenameSystemAccountForbidden() {
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-cash").Return(&domain.Account{
		AccountID: "acc-cash", Name: "Cash", AccountType: domain.Asset, IsSystemAccount: true,
	}, nil)

	_, err := s.service.UpdateAccount(s.ctx, "biz-1", "acc-cash", dto.UpdateAccountRequest{
		Name: strPtr("Petty Cash"),
	})

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.accountRepo.AssertNotCalled(s.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_DescribeSystemAccountAllowed() {
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-cash").Return(&domain.Account{
		AccountID: "acc-cash", Name: "Cash", AccountType: domain.Asset, IsSystemAccount: true,
	}, nil)
	s.accountRepo.On("UpdateAccount", s.ctx, mock.AnythingOfType("domain.Account")).Return(nil)

	account, err := s.service.UpdateAccount(s.ctx, "biz-1", "acc-cash", dto.UpdateAccountRequest{
		Description: strPtr("Till and petty cash"),
	})

	s.NoError(err)
	s.Equal("Till and petty cash", account.Description)
	s.Equal("Cash", account.Name)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_DeactivateSystemAccountForbidden() {
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-cash").Return(&domain.Account{
		AccountID: "acc-cash", Name: "Cash", IsSystemAccount: true,
	}, nil)

	_, err := s.service.UpdateAccount(s.ctx, "biz-1", "acc-cash", dto.UpdateAccountRequest{
		IsActive: boolPtr(false),
	})

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *AccountServiceTestSuite) TestDeleteAccount_Success() {
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-1").Return(&domain.Account{
		AccountID: "acc-1", Name: "Old Expense",
	}, nil)
	s.accountRepo.On("HasPostings", s.ctx, "acc-1").Return(false, nil)
	s.accountRepo.On("DeleteAccount", s.ctx, "biz-1", "acc-1").Return(nil)

	err := s.service.DeleteAccount(s.ctx, "biz-1", "acc-1")

	s.NoError(err)
	s.accountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestDeleteAccount_WithPostingsForbidden() {
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-1").Return(&domain.Account{
		AccountID: "acc-1", Name: "Old Expense",
	}, nil)
	s.accountRepo.On("HasPostings", s.ctx, "acc-1").Return(true, nil)

	err := s.service.DeleteAccount(s.ctx, "biz-1", "acc-1")

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.accountRepo.AssertNotCalled(s.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestDeleteAccount_SystemAccountForbidden() {
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-cash").Return(&domain.Account{
		AccountID: "acc-cash", Name: "Cash", IsSystemAccount: true,
	}, nil)

	err := s.service.DeleteAccount(s.ctx, "biz-1", "acc-cash")

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.accountRepo.AssertNotCalled(s.T(), "HasPostings", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestListPaymentAccounts() {
	cash := domain.Account{AccountID: "acc-cash", Name: "Cash", AccountType: domain.Asset}
	s.accountRepo.On("FindAccountByName", s.ctx, "biz-1", domain.AccountCash).Return(&cash, nil)
	s.bankAccountRepo.On("ListBankAccountsByBranch", s.ctx, "biz-1", "branch-1").
		Return([]domain.BankAccount{{BankAccountID: "ba-1", AccountID: "acc-bank"}}, nil)
	s.accountRepo.On("FindAccountsByIDs", s.ctx, "biz-1", []string{"acc-bank"}).
		Return(map[string]domain.Account{
			"acc-bank": {AccountID: "acc-bank", Name: "Main Checking", AccountType: domain.Asset},
		}, nil)

	accounts, err := s.service.ListPaymentAccounts(s.ctx, "biz-1", "branch-1")

	s.NoError(err)
	s.Len(accounts, 2)
	s.Equal("Cash", accounts[0].Name)
	s.Equal("Main Checking", accounts[1].Name)
}

func (s *AccountServiceTestSuite) TestListPaymentAccounts_MissingCashAccount() {
	s.accountRepo.On("FindAccountByName", s.ctx, "biz-1", domain.AccountCash).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.ListPaymentAccounts(s.ctx, "biz-1", "branch-1")

	s.ErrorIs(err, apperrors.ErrMissingCoreAccount)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
