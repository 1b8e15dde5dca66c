package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/core/services"
	"github.com/Omerhrr/Booklet/internal/dto"
)

type BankingServiceTestSuite struct {
	suite.Suite
	accountRepo        *MockAccountRepository
	bankAccountRepo    *MockBankAccountRepository
	postingRepo        *MockPostingRepository
	expenseRepo        *MockExpenseRepository
	reconciliationRepo *MockReconciliationRepository
	txManager          *MockTxManager
	service            portssvc.BankingSvc
	ctx                context.Context

	savedPostings []domain.Posting
}

func (s *BankingServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.bankAccountRepo = new(MockBankAccountRepository)
	s.postingRepo = new(MockPostingRepository)
	s.expenseRepo = new(MockExpenseRepository)
	s.reconciliationRepo = new(MockReconciliationRepository)
	s.txManager = new(MockTxManager)
	s.savedPostings = nil

	ledgerSvc := services.NewLedgerService(s.accountRepo, s.postingRepo, new(MockSequenceRepository), s.txManager)
	s.service = services.NewBankingService(s.accountRepo, s.bankAccountRepo, s.postingRepo,
		s.expenseRepo, s.reconciliationRepo, ledgerSvc, s.txManager)
	s.ctx = context.Background()
}

func (s *BankingServiceTestSuite) capturePostings() {
	s.postingRepo.On("SavePostingsTx", s.ctx, mock.Anything, mock.AnythingOfType("[]domain.Posting")).
		Run(func(args mock.Arguments) {
			s.savedPostings = append(s.savedPostings, args.Get(2).([]domain.Posting)...)
		}).
		Return(nil)
}

func (s *BankingServiceTestSuite) postingFor(accountID string) domain.Posting {
	for _, p := range s.savedPostings {
		if p.AccountID == accountID {
			return p
		}
	}
	s.FailNowf("posting not found", "no posting for account %s", accountID)
	return domain.Posting{}
}

func (s *BankingServiceTestSuite) stubAccountsByID(accounts ...domain.Account) {
	byID := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		a := account
		s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", a.AccountID).Return(&a, nil).Maybe()
		if a.Name != "" {
			s.accountRepo.On("FindAccountByName", s.ctx, "biz-1", a.Name).Return(&a, nil).Maybe()
		}
		byID[a.AccountID] = a
	}
	s.accountRepo.On("FindAccountsByIDs", s.ctx, "biz-1", mock.Anything).Return(byID, nil).Maybe()
}

func (s *BankingServiceTestSuite) TestCreateBankAccount_Success() {
	expectTx(s.txManager, true)
	var savedAccount domain.Account
	s.accountRepo.On("SaveAccountTx", s.ctx, mock.Anything, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			savedAccount = args.Get(2).(domain.Account)
		}).
		Return(nil)
	s.bankAccountRepo.On("SaveBankAccountTx", s.ctx, mock.Anything, mock.AnythingOfType("domain.BankAccount")).Return(nil)

	bankAccount, err := s.service.CreateBankAccount(s.ctx, "biz-1", dto.CreateBankAccountRequest{
		BranchID:      "branch-1",
		AccountName:   "Main Checking",
		BankName:      "First Bank",
		AccountNumber: "0123456789",
	})

	s.NoError(err)
	s.Equal(savedAccount.AccountID, bankAccount.AccountID)
	s.Equal(domain.Asset, savedAccount.AccountType)
	s.True(savedAccount.IsSystemAccount)
	s.Equal("First Bank", bankAccount.BankName)
	s.txManager.AssertCalled(s.T(), "Commit", s.ctx, mock.Anything)
}

func (s *BankingServiceTestSuite) TestTransferFunds_Success() {
	s.stubAccountsByID(
		domain.Account{AccountID: "acc-cash", Name: "Cash", AccountType: domain.Asset},
		domain.Account{AccountID: "acc-bank", Name: "Main Checking", AccountType: domain.Asset},
	)
	expectTx(s.txManager, true)
	s.expenseRepo.On("SaveFundTransferTx", s.ctx, mock.Anything, mock.AnythingOfType("domain.FundTransfer")).Return(nil)
	s.capturePostings()

	transfer, err := s.service.TransferFunds(s.ctx, "biz-1", dto.FundTransferRequest{
		BranchID:      "branch-1",
		FromAccountID: "acc-cash",
		ToAccountID:   "acc-bank",
		Amount:        decimal.NewFromInt(500),
		TransferDate:  time.Now(),
	})

	s.NoError(err)
	s.True(transfer.Amount.Equal(decimal.NewFromInt(500)))
	s.Len(s.savedPostings, 2)
	s.True(s.postingFor("acc-bank").Debit.Equal(decimal.NewFromInt(500)))
	s.True(s.postingFor("acc-cash").Credit.Equal(decimal.NewFromInt(500)))
	s.Equal(domain.SourceFundTransfer, s.savedPostings[0].Source.Kind)
	s.Equal(transfer.TransferID, s.savedPostings[0].Source.DocumentID)
}

func (s *BankingServiceTestSuite) TestTransferFunds_SameAccount() {
	_, err := s.service.TransferFunds(s.ctx, "biz-1", dto.FundTransferRequest{
		BranchID:      "branch-1",
		FromAccountID: "acc-cash",
		ToAccountID:   "acc-cash",
		Amount:        decimal.NewFromInt(100),
		TransferDate:  time.Now(),
	})

	s.ErrorIs(err, apperrors.ErrInvalidTransferTarget)
	s.txManager.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *BankingServiceTestSuite) TestTransferFunds_NonAssetAccount() {
	s.stubAccountsByID(
		domain.Account{AccountID: "acc-cash", Name: "Cash", AccountType: domain.Asset},
		domain.Account{AccountID: "acc-rev", Name: "Sales Revenue", AccountType: domain.Revenue},
	)

	_, err := s.service.TransferFunds(s.ctx, "biz-1", dto.FundTransferRequest{
		BranchID:      "branch-1",
		FromAccountID: "acc-cash",
		ToAccountID:   "acc-rev",
		Amount:        decimal.NewFromInt(100),
		TransferDate:  time.Now(),
	})

	s.ErrorIs(err, apperrors.ErrInvalidTransferTarget)
	s.expenseRepo.AssertNotCalled(s.T(), "SaveFundTransferTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BankingServiceTestSuite) TestTransferFunds_NonPositiveAmount() {
	_, err := s.service.TransferFunds(s.ctx, "biz-1", dto.FundTransferRequest{
		BranchID:      "branch-1",
		FromAccountID: "acc-cash",
		ToAccountID:   "acc-bank",
		Amount:        decimal.Zero,
		TransferDate:  time.Now(),
	})

	s.ErrorIs(err, apperrors.ErrInvalidTransferTarget)
	s.txManager.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *BankingServiceTestSuite) TestSettleVAT_Success() {
	s.stubAccountsByID(
		domain.Account{AccountID: "acc-ovat", Name: domain.AccountOutputVAT, AccountType: domain.Liability},
		domain.Account{AccountID: "acc-ivat", Name: domain.AccountInputVAT, AccountType: domain.Asset},
		domain.Account{AccountID: "acc-bank", Name: "Main Checking", AccountType: domain.Asset},
	)
	paymentDate := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	cutoff := paymentDate.AddDate(0, 0, 1)
	// Output VAT net is a 500 credit balance, input VAT a 200 debit balance.
	s.postingRepo.On("SumAccountBefore", s.ctx, "biz-1", "acc-ovat", cutoff).Return(decimal.NewFromInt(-500), nil)
	s.postingRepo.On("SumAccountBefore", s.ctx, "biz-1", "acc-ivat", cutoff).Return(decimal.NewFromInt(200), nil)
	expectTx(s.txManager, true)
	s.capturePostings()

	postings, err := s.service.SettleVAT(s.ctx, "biz-1", dto.VATSettlementRequest{
		BranchID:          "branch-1",
		PaymentDate:       paymentDate,
		PaidFromAccountID: "acc-bank",
	})

	s.NoError(err)
	s.Len(postings, 3)
	s.True(s.postingFor("acc-ovat").Debit.Equal(decimal.NewFromInt(500)))
	s.True(s.postingFor("acc-bank").Credit.Equal(decimal.NewFromInt(300)))
	s.True(s.postingFor("acc-ivat").Credit.Equal(decimal.NewFromInt(200)))
}

func (s *BankingServiceTestSuite) TestSettleVAT_NothingOwed() {
	s.stubAccountsByID(
		domain.Account{AccountID: "acc-ovat", Name: domain.AccountOutputVAT, AccountType: domain.Liability},
		domain.Account{AccountID: "acc-ivat", Name: domain.AccountInputVAT, AccountType: domain.Asset},
		domain.Account{AccountID: "acc-bank", Name: "Main Checking", AccountType: domain.Asset},
	)
	// Input VAT exceeds output VAT, nothing to pay.
	s.postingRepo.On("SumAccountBefore", s.ctx, "biz-1", "acc-ovat", mock.Anything).Return(decimal.NewFromInt(-100), nil)
	s.postingRepo.On("SumAccountBefore", s.ctx, "biz-1", "acc-ivat", mock.Anything).Return(decimal.NewFromInt(250), nil)

	_, err := s.service.SettleVAT(s.ctx, "biz-1", dto.VATSettlementRequest{
		BranchID:          "branch-1",
		PaymentDate:       time.Now(),
		PaidFromAccountID: "acc-bank",
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.txManager.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *BankingServiceTestSuite) TestReconcile_Success() {
	s.stubAccountsByID(domain.Account{AccountID: "acc-bank", Name: "Main Checking", AccountType: domain.Asset})
	expectTx(s.txManager, true)
	postingIDs := []string{"p-1", "p-2", "p-3"}
	var savedBatch domain.ReconciliationBatch
	s.reconciliationRepo.On("SaveBatchTx", s.ctx, mock.Anything, mock.AnythingOfType("domain.ReconciliationBatch")).
		Run(func(args mock.Arguments) {
			savedBatch = args.Get(2).(domain.ReconciliationBatch)
		}).
		Return(nil)
	s.reconciliationRepo.On("FlagPostingsTx", s.ctx, mock.Anything, mock.Anything, postingIDs).Return(int64(3), nil)
	s.bankAccountRepo.On("StampReconciliationTx", s.ctx, mock.Anything, "acc-bank", mock.Anything).Return(nil)

	batch, err := s.service.Reconcile(s.ctx, "biz-1", dto.ReconcileRequest{
		BranchID:         "branch-1",
		AccountID:        "acc-bank",
		StatementDate:    time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		StatementBalance: decimal.NewFromInt(12500),
		PostingIDs:       postingIDs,
	})

	s.NoError(err)
	s.Equal(savedBatch.ReconciliationID, batch.ReconciliationID)
	s.Equal("acc-bank", batch.AccountID)
	s.True(batch.StatementBalance.Equal(decimal.NewFromInt(12500)))
	s.bankAccountRepo.AssertExpectations(s.T())
	s.txManager.AssertCalled(s.T(), "Commit", s.ctx, mock.Anything)
}

func (s *BankingServiceTestSuite) TestReconcile_AlreadyClaimedPosting() {
	s.stubAccountsByID(domain.Account{AccountID: "acc-bank", Name: "Main Checking", AccountType: domain.Asset})
	expectTx(s.txManager, false)
	postingIDs := []string{"p-1", "p-2"}
	s.reconciliationRepo.On("SaveBatchTx", s.ctx, mock.Anything, mock.Anything).Return(nil)
	// One of the two postings was claimed by an earlier batch.
	s.reconciliationRepo.On("FlagPostingsTx", s.ctx, mock.Anything, mock.Anything, postingIDs).Return(int64(1), nil)

	_, err := s.service.Reconcile(s.ctx, "biz-1", dto.ReconcileRequest{
		BranchID:      "branch-1",
		AccountID:     "acc-bank",
		StatementDate: time.Now(),
		PostingIDs:    postingIDs,
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.bankAccountRepo.AssertNotCalled(s.T(), "StampReconciliationTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.txManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *BankingServiceTestSuite) TestGetReconciliationOpeningBalance() {
	s.reconciliationRepo.On("SumReconciled", s.ctx, "biz-1", "acc-bank").Return(decimal.NewFromInt(4200), nil)

	balance, err := s.service.GetReconciliationOpeningBalance(s.ctx, "biz-1", "acc-bank")

	s.NoError(err)
	s.True(balance.Equal(decimal.NewFromInt(4200)))
}

func (s *BankingServiceTestSuite) TestListUnreconciledPostings() {
	expected := []domain.Posting{{PostingID: "p-1"}, {PostingID: "p-2"}}
	s.reconciliationRepo.On("ListUnreconciledPostings", s.ctx, "biz-1", "acc-bank").Return(expected, nil)

	postings, err := s.service.ListUnreconciledPostings(s.ctx, "biz-1", "acc-bank")

	s.NoError(err)
	s.Equal(expected, postings)
}

func (s *BankingServiceTestSuite) TestGetReconciliationReport() {
	statementDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	batch := domain.ReconciliationBatch{
		ReconciliationID: "rec-2", BusinessID: "biz-1", BranchID: "branch-1", AccountID: "acc-bank",
		StatementDate: statementDate, StatementBalance: decimal.NewFromInt(900),
		ReconciledAt: time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
	}
	s.reconciliationRepo.On("FindBatchByID", s.ctx, "biz-1", "rec-2").Return(&batch, nil)
	s.reconciliationRepo.On("ListBatchPostings", s.ctx, "biz-1", "rec-2").Return([]domain.Posting{
		{PostingID: "p-1", AccountID: "acc-bank", Debit: decimal.NewFromInt(500), Credit: decimal.Zero},
		{PostingID: "p-2", AccountID: "acc-bank", Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
	}, nil)
	s.reconciliationRepo.On("ListUnreconciledPostings", s.ctx, "biz-1", "acc-bank").Return([]domain.Posting{
		{PostingID: "p-3", TransactionDate: statementDate.AddDate(0, 0, -5)},
		{PostingID: "p-4", TransactionDate: statementDate.AddDate(0, 0, 3)},
	}, nil)
	s.reconciliationRepo.On("ListBatchesByAccount", s.ctx, "biz-1", "acc-bank").Return([]domain.ReconciliationBatch{
		batch,
		{ReconciliationID: "rec-1", AccountID: "acc-bank",
			StatementDate:    time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
			StatementBalance: decimal.NewFromInt(500)},
	}, nil)

	report, err := s.service.GetReconciliationReport(s.ctx, "biz-1", "rec-2")

	s.Require().NoError(err)
	s.Equal("rec-2", report.Batch.ReconciliationID)
	s.True(report.PreviousBalance.Equal(decimal.NewFromInt(500)))
	s.True(report.ClearedNet.Equal(decimal.NewFromInt(400)))
	s.Len(report.ClearedPostings, 2)
	// Only the posting dated within the statement period is still outstanding.
	s.Len(report.UnclearedPostings, 1)
	s.Equal("p-3", report.UnclearedPostings[0].PostingID)
}

func (s *BankingServiceTestSuite) TestGetReconciliationReport_FirstBatch() {
	batch := domain.ReconciliationBatch{
		ReconciliationID: "rec-1", BusinessID: "biz-1", AccountID: "acc-bank",
		StatementDate:    time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
		StatementBalance: decimal.NewFromInt(500),
		ReconciledAt:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	s.reconciliationRepo.On("FindBatchByID", s.ctx, "biz-1", "rec-1").Return(&batch, nil)
	s.reconciliationRepo.On("ListBatchPostings", s.ctx, "biz-1", "rec-1").Return([]domain.Posting{}, nil)
	s.reconciliationRepo.On("ListUnreconciledPostings", s.ctx, "biz-1", "acc-bank").Return([]domain.Posting{}, nil)
	s.reconciliationRepo.On("ListBatchesByAccount", s.ctx, "biz-1", "acc-bank").
		Return([]domain.ReconciliationBatch{batch}, nil)

	report, err := s.service.GetReconciliationReport(s.ctx, "biz-1", "rec-1")

	s.Require().NoError(err)
	s.True(report.PreviousBalance.IsZero())
	s.True(report.ClearedNet.IsZero())
	s.Empty(report.UnclearedPostings)
}

func TestBankingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankingServiceTestSuite))
}
