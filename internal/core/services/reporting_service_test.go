package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	reportingRepo   *MockReportingRepository
	postingRepo     *MockPostingRepository
	accountRepo     *MockAccountRepository
	bankAccountRepo *MockBankAccountRepository
	partyRepo       *MockPartyRepository
	service         portssvc.ReportingSvc
	ctx             context.Context
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.reportingRepo = new(MockReportingRepository)
	s.postingRepo = new(MockPostingRepository)
	s.accountRepo = new(MockAccountRepository)
	s.bankAccountRepo = new(MockBankAccountRepository)
	s.partyRepo = new(MockPartyRepository)
	s.service = services.NewReportingService(s.reportingRepo, s.postingRepo, s.accountRepo, s.bankAccountRepo, s.partyRepo)
	s.ctx = context.Background()
}

func totals(id, name string, t domain.AccountType, debit, credit int64) domain.AccountTotals {
	return domain.AccountTotals{
		AccountID:   id,
		AccountName: name,
		AccountType: t,
		TotalDebit:  decimal.NewFromInt(debit),
		TotalCredit: decimal.NewFromInt(credit),
	}
}

func (s *ReportingServiceTestSuite) TestGetTrialBalance() {
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	s.reportingRepo.On("AccountTotalsInRange", s.ctx, "biz-1", (*string)(nil), time.Time{}, asOf).
		Return([]domain.AccountTotals{
			totals("acc-cash", "Cash", domain.Asset, 1500, 400),
			totals("acc-ap", "Accounts Payable", domain.Liability, 100, 700),
			totals("acc-equity", "Owner's Equity", domain.Equity, 0, 300),
			totals("acc-rev", "Sales Revenue", domain.Revenue, 0, 500),
			totals("acc-rent", "Rent Expense", domain.Expense, 300, 0),
		}, nil)

	tb, err := s.service.GetTrialBalance(s.ctx, "biz-1", nil, asOf)

	s.NoError(err)
	// Net balances land in the normal column: cash 1100 debit, payables 600
	// credit and so on. Grand totals agree when the ledger balances.
	s.True(tb.GrandTotalDebit.Equal(decimal.NewFromInt(1400)))
	s.True(tb.GrandTotalCredit.Equal(decimal.NewFromInt(1400)))
	s.Len(tb.Groups, 5)
	s.Equal(domain.Asset, tb.Groups[0].AccountType)
	s.True(tb.Groups[0].Rows[0].Debit.Equal(decimal.NewFromInt(1100)))
	s.True(tb.Groups[1].Rows[0].Credit.Equal(decimal.NewFromInt(600)))
}

func (s *ReportingServiceTestSuite) TestGetTrialBalance_ContraBalanceFlipsColumn() {
	asOf := time.Now()
	// An asset account driven negative reports in the credit column.
	s.reportingRepo.On("AccountTotalsInRange", s.ctx, "biz-1", (*string)(nil), time.Time{}, asOf).
		Return([]domain.AccountTotals{
			totals("acc-bank", "Main Checking", domain.Asset, 100, 250),
			totals("acc-equity", "Owner's Equity", domain.Equity, 150, 0),
		}, nil)

	tb, err := s.service.GetTrialBalance(s.ctx, "biz-1", nil, asOf)

	s.NoError(err)
	s.True(tb.Groups[0].Rows[0].Credit.Equal(decimal.NewFromInt(150)))
	s.True(tb.Groups[0].Rows[0].Debit.IsZero())
	s.True(tb.Groups[1].Rows[0].Debit.Equal(decimal.NewFromInt(150)))
}

func (s *ReportingServiceTestSuite) TestGetTrialBalance_SkipsSettledAccounts() {
	asOf := time.Now()
	// An account whose debits and credits cancel out is left off the report.
	s.reportingRepo.On("AccountTotalsInRange", s.ctx, "biz-1", (*string)(nil), time.Time{}, asOf).
		Return([]domain.AccountTotals{
			totals("acc-cash", "Cash", domain.Asset, 900, 900),
			totals("acc-equity", "Owner's Equity", domain.Equity, 0, 200),
			totals("acc-bank", "Main Checking", domain.Asset, 200, 0),
		}, nil)

	tb, err := s.service.GetTrialBalance(s.ctx, "biz-1", nil, asOf)

	s.NoError(err)
	s.Len(tb.Groups, 2)
	s.Len(tb.Groups[0].Rows, 1)
	s.Equal("acc-bank", tb.Groups[0].Rows[0].AccountID)
	s.True(tb.GrandTotalDebit.Equal(decimal.NewFromInt(200)))
	s.True(tb.GrandTotalCredit.Equal(decimal.NewFromInt(200)))
}

func (s *ReportingServiceTestSuite) TestGetProfitAndLoss() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	branch := "branch-1"
	s.reportingRepo.On("AccountTotalsInRange", s.ctx, "biz-1", &branch, from, to).
		Return([]domain.AccountTotals{
			totals("acc-rev", "Sales Revenue", domain.Revenue, 50, 2050),
			totals("acc-cogs", domain.AccountCOGS, domain.Expense, 800, 0),
			totals("acc-rent", "Rent Expense", domain.Expense, 400, 0),
			totals("acc-cash", "Cash", domain.Asset, 9999, 0), // ignored
		}, nil)

	pl, err := s.service.GetProfitAndLoss(s.ctx, "biz-1", &branch, from, to)

	s.NoError(err)
	s.True(pl.TotalRevenue.Equal(decimal.NewFromInt(2000)))
	s.True(pl.TotalCOGS.Equal(decimal.NewFromInt(800)))
	s.True(pl.GrossProfit.Equal(decimal.NewFromInt(1200)))
	s.True(pl.TotalExpenses.Equal(decimal.NewFromInt(400)))
	s.True(pl.NetProfit.Equal(decimal.NewFromInt(800)))
	s.Len(pl.COGS, 1)
	s.Len(pl.Expenses, 1)
}

func (s *ReportingServiceTestSuite) TestGetBalanceSheet_BalancesWithRetainedEarnings() {
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	fiscalStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.AccountTotals{
		totals("acc-cash", "Cash", domain.Asset, 1500, 200),
		totals("acc-ap", "Accounts Payable", domain.Liability, 0, 500),
		totals("acc-equity", "Owner's Equity", domain.Equity, 0, 400),
		totals("acc-rev", "Sales Revenue", domain.Revenue, 0, 600),
		totals("acc-rent", "Rent Expense", domain.Expense, 200, 0),
	}
	s.reportingRepo.On("AccountTotalsInRange", s.ctx, "biz-1", (*string)(nil), time.Time{}, asOf).Return(rows, nil)
	s.reportingRepo.On("AccountTotalsInRange", s.ctx, "biz-1", (*string)(nil), fiscalStart, asOf).Return(rows, nil)

	bs, err := s.service.GetBalanceSheet(s.ctx, "biz-1", nil, asOf)

	s.NoError(err)
	s.True(bs.TotalAssets.Equal(decimal.NewFromInt(1300)))
	s.True(bs.TotalLiabilities.Equal(decimal.NewFromInt(500)))
	s.True(bs.TotalEquity.Equal(decimal.NewFromInt(800)))
	s.True(bs.TotalAssets.Equal(bs.TotalLiabilities.Add(bs.TotalEquity)))

	last := bs.Equity[len(bs.Equity)-1]
	s.Equal(domain.RetainedEarningsCurrentPeriod, last.AccountName)
	s.True(last.Amount.Equal(decimal.NewFromInt(400)))
}

func (s *ReportingServiceTestSuite) TestGetReceivablesAging_Buckets() {
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	open := []domain.OpenDocument{
		{DocumentID: "inv-1", DueDate: asOf.AddDate(0, 0, 10), TotalAmount: decimal.NewFromInt(100)},
		{DocumentID: "inv-2", DueDate: asOf, TotalAmount: decimal.NewFromInt(200)},
		{DocumentID: "inv-3", DueDate: asOf.AddDate(0, 0, -30), TotalAmount: decimal.NewFromInt(300)},
		{DocumentID: "inv-4", DueDate: asOf.AddDate(0, 0, -31), TotalAmount: decimal.NewFromInt(400)},
		{DocumentID: "inv-5", DueDate: asOf.AddDate(0, 0, -90), TotalAmount: decimal.NewFromInt(500)},
		{DocumentID: "inv-6", DueDate: asOf.AddDate(0, 0, -91), TotalAmount: decimal.NewFromInt(600)},
		// Fully settled documents stay out of the report.
		{DocumentID: "inv-7", DueDate: asOf, TotalAmount: decimal.NewFromInt(50), PaidAmount: decimal.NewFromInt(50)},
		// Partially paid documents age on the open balance only.
		{DocumentID: "inv-8", DueDate: asOf.AddDate(0, 0, -5), TotalAmount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(70)},
	}
	s.reportingRepo.On("OpenReceivables", s.ctx, "biz-1", (*string)(nil), asOf).Return(open, nil)

	report, err := s.service.GetReceivablesAging(s.ctx, "biz-1", nil, asOf)

	s.NoError(err)
	s.Len(report.Rows, 7)
	s.True(report.BucketTotals[domain.BucketCurrent].Equal(decimal.NewFromInt(300)))
	s.True(report.BucketTotals[domain.Bucket1To30].Equal(decimal.NewFromInt(330)))
	s.True(report.BucketTotals[domain.Bucket31To60].Equal(decimal.NewFromInt(400)))
	s.True(report.BucketTotals[domain.Bucket61To90].Equal(decimal.NewFromInt(500)))
	s.True(report.BucketTotals[domain.BucketOver90].Equal(decimal.NewFromInt(600)))
	s.True(report.Total.Equal(decimal.NewFromInt(2130)))
}

func (s *ReportingServiceTestSuite) TestGetAccountStatement_DebitNormal() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-cash").
		Return(&domain.Account{AccountID: "acc-cash", Name: "Cash", AccountType: domain.Asset}, nil)
	s.postingRepo.On("SumAccountBefore", s.ctx, "biz-1", "acc-cash", from).Return(decimal.NewFromInt(1000), nil)
	s.postingRepo.On("FindPostingsByAccount", s.ctx, "biz-1", "acc-cash", from, to).
		Return([]domain.Posting{
			{PostingID: "p-1", Debit: decimal.NewFromInt(400), Credit: decimal.Zero},
			{PostingID: "p-2", Debit: decimal.Zero, Credit: decimal.NewFromInt(150)},
		}, nil)

	statement, err := s.service.GetAccountStatement(s.ctx, "biz-1", "acc-cash", from, to)

	s.NoError(err)
	s.True(statement.OpeningBalance.Equal(decimal.NewFromInt(1000)))
	s.Len(statement.Lines, 2)
	s.True(statement.Lines[0].Balance.Equal(decimal.NewFromInt(1400)))
	s.True(statement.Lines[1].Balance.Equal(decimal.NewFromInt(1250)))
	s.True(statement.ClosingBalance.Equal(decimal.NewFromInt(1250)))
}

func (s *ReportingServiceTestSuite) TestGetAccountStatement_CreditNormalNegatesOpening() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-ap").
		Return(&domain.Account{AccountID: "acc-ap", Name: "Accounts Payable", AccountType: domain.Liability}, nil)
	// Raw debit-minus-credit net is -800; the payable balance owed is 800.
	s.postingRepo.On("SumAccountBefore", s.ctx, "biz-1", "acc-ap", from).Return(decimal.NewFromInt(-800), nil)
	s.postingRepo.On("FindPostingsByAccount", s.ctx, "biz-1", "acc-ap", from, to).
		Return([]domain.Posting{
			{PostingID: "p-1", Debit: decimal.Zero, Credit: decimal.NewFromInt(200)},
			{PostingID: "p-2", Debit: decimal.NewFromInt(500), Credit: decimal.Zero},
		}, nil)

	statement, err := s.service.GetAccountStatement(s.ctx, "biz-1", "acc-ap", from, to)

	s.NoError(err)
	s.True(statement.OpeningBalance.Equal(decimal.NewFromInt(800)))
	s.True(statement.Lines[0].Balance.Equal(decimal.NewFromInt(1000)))
	s.True(statement.ClosingBalance.Equal(decimal.NewFromInt(500)))
}

func (s *ReportingServiceTestSuite) TestGetCashbook() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	s.accountRepo.On("FindAccountByName", s.ctx, "biz-1", domain.AccountCash).
		Return(&domain.Account{AccountID: "acc-cash", Name: "Cash", AccountType: domain.Asset}, nil)
	s.bankAccountRepo.On("ListBankAccountsByBranch", s.ctx, "biz-1", "branch-1").
		Return([]domain.BankAccount{{BankAccountID: "ba-1", AccountID: "acc-bank"}}, nil)
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-cash").
		Return(&domain.Account{AccountID: "acc-cash", Name: "Cash", AccountType: domain.Asset}, nil)
	s.accountRepo.On("FindAccountByID", s.ctx, "biz-1", "acc-bank").
		Return(&domain.Account{AccountID: "acc-bank", Name: "Main Checking", AccountType: domain.Asset}, nil)
	s.postingRepo.On("SumAccountBefore", s.ctx, "biz-1", mock.Anything, from).Return(decimal.Zero, nil)
	s.postingRepo.On("FindPostingsByAccount", s.ctx, "biz-1", "acc-cash", from, to).
		Return([]domain.Posting{{PostingID: "p-1", Debit: decimal.NewFromInt(100)}}, nil)
	s.postingRepo.On("FindPostingsByAccount", s.ctx, "biz-1", "acc-bank", from, to).
		Return([]domain.Posting{}, nil)

	book, err := s.service.GetCashbook(s.ctx, "biz-1", "branch-1", from, to)

	s.NoError(err)
	s.Len(book.Accounts, 2)
	s.Equal("Cash", book.Accounts[0].AccountName)
	s.True(book.Accounts[0].ClosingBalance.Equal(decimal.NewFromInt(100)))
	s.Equal("Main Checking", book.Accounts[1].AccountName)
	s.True(book.Accounts[1].ClosingBalance.IsZero())
}

func (s *ReportingServiceTestSuite) TestGetCustomerStatement_OpeningBalanceSplit() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	s.partyRepo.On("FindCustomerByID", s.ctx, "biz-1", "cust-1").
		Return(&domain.Customer{CustomerID: "cust-1", Name: "Acme Ltd"}, nil)
	s.reportingRepo.On("FindPostingsForCustomer", s.ctx, "biz-1", "cust-1", time.Time{}, to).
		Return([]domain.Posting{
			{PostingID: "p-0", TransactionDate: from.AddDate(0, -1, 0), Debit: decimal.NewFromInt(500)},
			{PostingID: "p-1", TransactionDate: from.AddDate(0, 0, 3), Debit: decimal.NewFromInt(300)},
			{PostingID: "p-2", TransactionDate: from.AddDate(0, 0, 10), Credit: decimal.NewFromInt(200)},
		}, nil)

	statement, err := s.service.GetCustomerStatement(s.ctx, "biz-1", "cust-1", from, to)

	s.NoError(err)
	s.Equal("Acme Ltd", statement.AccountName)
	s.True(statement.OpeningBalance.Equal(decimal.NewFromInt(500)))
	s.Len(statement.Lines, 2)
	s.True(statement.Lines[0].Balance.Equal(decimal.NewFromInt(800)))
	s.True(statement.Lines[1].Balance.Equal(decimal.NewFromInt(600)))
	s.True(statement.ClosingBalance.Equal(decimal.NewFromInt(600)))
}

func (s *ReportingServiceTestSuite) TestGetVendorStatement_CreditNormal() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	s.partyRepo.On("FindVendorByID", s.ctx, "biz-1", "vend-1").
		Return(&domain.Vendor{VendorID: "vend-1", Name: "Supplies Co"}, nil)
	s.reportingRepo.On("FindPostingsForVendor", s.ctx, "biz-1", "vend-1", time.Time{}, to).
		Return([]domain.Posting{
			{PostingID: "p-1", TransactionDate: from.AddDate(0, 0, 1), Credit: decimal.NewFromInt(400)},
			{PostingID: "p-2", TransactionDate: from.AddDate(0, 0, 5), Debit: decimal.NewFromInt(150)},
		}, nil)

	statement, err := s.service.GetVendorStatement(s.ctx, "biz-1", "vend-1", from, to)

	s.NoError(err)
	// Payables are credit normal: the bill raises what is owed, the payment
	// lowers it.
	s.True(statement.Lines[0].Balance.Equal(decimal.NewFromInt(400)))
	s.True(statement.ClosingBalance.Equal(decimal.NewFromInt(250)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
