package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/utils/accounting"
)

// reportingService derives statements from postings at read time. Nothing in
// this service writes; every figure is recomputed from the ledger on demand.
type reportingService struct {
	BaseService
	reportingRepo   portsrepo.ReportingRepository
	postingRepo     portsrepo.PostingReader
	accountRepo     portsrepo.AccountReader
	bankAccountRepo portsrepo.BankAccountRepository
	partyRepo       portsrepo.PartyRepository
}

// NewReportingService creates a new ReportingSvc.
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	postingRepo portsrepo.PostingReader,
	accountRepo portsrepo.AccountReader,
	bankAccountRepo portsrepo.BankAccountRepository,
	partyRepo portsrepo.PartyRepository,
) portssvc.ReportingSvc {
	return &reportingService{
		reportingRepo:   reportingRepo,
		postingRepo:     postingRepo,
		accountRepo:     accountRepo,
		bankAccountRepo: bankAccountRepo,
		partyRepo:       partyRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// trialBalanceOrder fixes the group order of the trial balance.
var trialBalanceOrder = []domain.AccountType{domain.Asset, domain.Liability, domain.Equity, domain.Revenue, domain.Expense}

func isDebitNormal(t domain.AccountType) bool {
	return t == domain.Asset || t == domain.Expense
}

// GetTrialBalance builds the trial balance as of a date. Each account's net
// lands in its normal-balance column; a correct ledger always grand-totals
// to equal debits and credits.
func (s *reportingService) GetTrialBalance(ctx context.Context, businessID string, branchID *string, asOf time.Time) (*domain.TrialBalance, error) {
	totals, err := s.reportingRepo.AccountTotalsInRange(ctx, businessID, branchID, time.Time{}, asOf)
	if err != nil {
		return nil, err
	}

	groups := make(map[domain.AccountType]*domain.TrialBalanceGroup, len(trialBalanceOrder))
	for _, t := range trialBalanceOrder {
		groups[t] = &domain.TrialBalanceGroup{AccountType: t}
	}

	tb := &domain.TrialBalance{AsOf: asOf}
	for _, at := range totals {
		net := at.TotalDebit.Sub(at.TotalCredit)
		if net.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:   at.AccountID,
			AccountName: at.AccountName,
			AccountType: at.AccountType,
		}
		if net.IsNegative() {
			row.Credit = net.Neg()
		} else {
			row.Debit = net
		}

		group, ok := groups[at.AccountType]
		if !ok {
			continue
		}
		group.Rows = append(group.Rows, row)
		group.TotalDebit = group.TotalDebit.Add(row.Debit)
		group.TotalCredit = group.TotalCredit.Add(row.Credit)
		tb.GrandTotalDebit = tb.GrandTotalDebit.Add(row.Debit)
		tb.GrandTotalCredit = tb.GrandTotalCredit.Add(row.Credit)
	}

	for _, t := range trialBalanceOrder {
		if len(groups[t].Rows) > 0 {
			tb.Groups = append(tb.Groups, *groups[t])
		}
	}
	return tb, nil
}

// GetProfitAndLoss builds the income statement for a date range. Cost of
// goods sold is split out of expenses so gross profit can be shown.
func (s *reportingService) GetProfitAndLoss(ctx context.Context, businessID string, branchID *string, from, to time.Time) (*domain.ProfitAndLoss, error) {
	totals, err := s.reportingRepo.AccountTotalsInRange(ctx, businessID, branchID, from, to)
	if err != nil {
		return nil, err
	}

	pl := &domain.ProfitAndLoss{From: from, To: to}
	for _, at := range totals {
		switch at.AccountType {
		case domain.Revenue:
			amount := at.TotalCredit.Sub(at.TotalDebit)
			pl.Revenue = append(pl.Revenue, domain.ReportLine{AccountID: at.AccountID, AccountName: at.AccountName, Amount: amount})
			pl.TotalRevenue = pl.TotalRevenue.Add(amount)
		case domain.Expense:
			amount := at.TotalDebit.Sub(at.TotalCredit)
			if at.AccountName == domain.AccountCOGS {
				pl.COGS = append(pl.COGS, domain.ReportLine{AccountID: at.AccountID, AccountName: at.AccountName, Amount: amount})
				pl.TotalCOGS = pl.TotalCOGS.Add(amount)
			} else {
				pl.Expenses = append(pl.Expenses, domain.ReportLine{AccountID: at.AccountID, AccountName: at.AccountName, Amount: amount})
				pl.TotalExpenses = pl.TotalExpenses.Add(amount)
			}
		}
	}
	pl.GrossProfit = pl.TotalRevenue.Sub(pl.TotalCOGS)
	pl.NetProfit = pl.GrossProfit.Sub(pl.TotalExpenses)
	return pl, nil
}

// GetBalanceSheet builds the statement of financial position as of a date.
// Net profit for the fiscal year to date appears as a synthetic retained
// earnings line under equity, which keeps the statement balanced without a
// closing-entries process.
func (s *reportingService) GetBalanceSheet(ctx context.Context, businessID string, branchID *string, asOf time.Time) (*domain.BalanceSheet, error) {
	totals, err := s.reportingRepo.AccountTotalsInRange(ctx, businessID, branchID, time.Time{}, asOf)
	if err != nil {
		return nil, err
	}

	bs := &domain.BalanceSheet{AsOf: asOf}
	for _, at := range totals {
		switch at.AccountType {
		case domain.Asset:
			amount := at.TotalDebit.Sub(at.TotalCredit)
			bs.Assets = append(bs.Assets, domain.ReportLine{AccountID: at.AccountID, AccountName: at.AccountName, Amount: amount})
			bs.TotalAssets = bs.TotalAssets.Add(amount)
		case domain.Liability:
			amount := at.TotalCredit.Sub(at.TotalDebit)
			bs.Liabilities = append(bs.Liabilities, domain.ReportLine{AccountID: at.AccountID, AccountName: at.AccountName, Amount: amount})
			bs.TotalLiabilities = bs.TotalLiabilities.Add(amount)
		case domain.Equity:
			amount := at.TotalCredit.Sub(at.TotalDebit)
			bs.Equity = append(bs.Equity, domain.ReportLine{AccountID: at.AccountID, AccountName: at.AccountName, Amount: amount})
			bs.TotalEquity = bs.TotalEquity.Add(amount)
		}
	}

	fiscalStart := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	pl, err := s.GetProfitAndLoss(ctx, businessID, branchID, fiscalStart, asOf)
	if err != nil {
		return nil, err
	}
	bs.Equity = append(bs.Equity, domain.ReportLine{
		AccountName: domain.RetainedEarningsCurrentPeriod,
		Amount:      pl.NetProfit,
	})
	bs.TotalEquity = bs.TotalEquity.Add(pl.NetProfit)
	return bs, nil
}

// GetReceivablesAging buckets open sales invoices by days overdue.
func (s *reportingService) GetReceivablesAging(ctx context.Context, businessID string, branchID *string, asOf time.Time) (*domain.AgingReport, error) {
	open, err := s.reportingRepo.OpenReceivables(ctx, businessID, branchID, asOf)
	if err != nil {
		return nil, err
	}
	return buildAgingReport(open, asOf), nil
}

// GetPayablesAging buckets open purchase bills by days overdue.
func (s *reportingService) GetPayablesAging(ctx context.Context, businessID string, branchID *string, asOf time.Time) (*domain.AgingReport, error) {
	open, err := s.reportingRepo.OpenPayables(ctx, businessID, branchID, asOf)
	if err != nil {
		return nil, err
	}
	return buildAgingReport(open, asOf), nil
}

// agingBucketFor places a due date relative to the report date. A document
// due today or later is current.
func agingBucketFor(dueDate, asOf time.Time) domain.AgingBucket {
	daysOverdue := int(asOf.Sub(dueDate).Hours() / 24)
	switch {
	case daysOverdue <= 0:
		return domain.BucketCurrent
	case daysOverdue <= 30:
		return domain.Bucket1To30
	case daysOverdue <= 60:
		return domain.Bucket31To60
	case daysOverdue <= 90:
		return domain.Bucket61To90
	default:
		return domain.BucketOver90
	}
}

func buildAgingReport(open []domain.OpenDocument, asOf time.Time) *domain.AgingReport {
	report := &domain.AgingReport{
		AsOf: asOf,
		BucketTotals: map[domain.AgingBucket]decimal.Decimal{
			domain.BucketCurrent: decimal.Zero,
			domain.Bucket1To30:   decimal.Zero,
			domain.Bucket31To60:  decimal.Zero,
			domain.Bucket61To90:  decimal.Zero,
			domain.BucketOver90:  decimal.Zero,
		},
	}
	for _, doc := range open {
		balance := doc.TotalAmount.Sub(doc.PaidAmount)
		if !balance.IsPositive() {
			continue
		}
		bucket := agingBucketFor(doc.DueDate, asOf)
		report.Rows = append(report.Rows, domain.AgingRow{
			DocumentID:     doc.DocumentID,
			DocumentNumber: doc.DocumentNumber,
			PartyID:        doc.PartyID,
			PartyName:      doc.PartyName,
			DueDate:        doc.DueDate,
			BalanceDue:     balance,
			Bucket:         bucket,
		})
		report.BucketTotals[bucket] = report.BucketTotals[bucket].Add(balance)
		report.Total = report.Total.Add(balance)
	}
	return report
}

// GetAccountStatement builds one account's ledger with opening and running
// balances. Balances follow the account's normal-balance convention.
func (s *reportingService) GetAccountStatement(ctx context.Context, businessID, accountID string, from, to time.Time) (*domain.AccountStatement, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return nil, err
	}

	openingNet, err := s.postingRepo.SumAccountBefore(ctx, businessID, accountID, from)
	if err != nil {
		return nil, err
	}
	opening := openingNet
	if !isDebitNormal(account.AccountType) {
		opening = opening.Neg()
	}

	postings, err := s.postingRepo.FindPostingsByAccount(ctx, businessID, accountID, from, to)
	if err != nil {
		return nil, err
	}

	statement := &domain.AccountStatement{
		AccountID:      account.AccountID,
		AccountName:    account.Name,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		ClosingBalance: opening,
	}
	for _, p := range postings {
		signed, err := accounting.SignedAmount(p.Debit, p.Credit, account.AccountType)
		if err != nil {
			return nil, err
		}
		statement.ClosingBalance = statement.ClosingBalance.Add(signed)
		statement.Lines = append(statement.Lines, domain.LedgerLine{
			PostingID:       p.PostingID,
			TransactionDate: p.TransactionDate,
			Description:     p.Description,
			Source:          p.Source,
			Debit:           p.Debit,
			Credit:          p.Credit,
			Balance:         statement.ClosingBalance,
		})
	}
	return statement, nil
}

// GetCashbook builds the combined statement of a branch's payment accounts:
// the business Cash account plus the branch's bank accounts.
func (s *reportingService) GetCashbook(ctx context.Context, businessID, branchID string, from, to time.Time) (*domain.Cashbook, error) {
	cash, err := s.accountRepo.FindAccountByName(ctx, businessID, domain.AccountCash)
	if err != nil {
		return nil, err
	}
	bankAccounts, err := s.bankAccountRepo.ListBankAccountsByBranch(ctx, businessID, branchID)
	if err != nil {
		return nil, err
	}

	accountIDs := []string{cash.AccountID}
	for _, ba := range bankAccounts {
		accountIDs = append(accountIDs, ba.AccountID)
	}

	book := &domain.Cashbook{BranchID: branchID, From: from, To: to}
	for _, accountID := range accountIDs {
		statement, err := s.GetAccountStatement(ctx, businessID, accountID, from, to)
		if err != nil {
			return nil, err
		}
		book.Accounts = append(book.Accounts, domain.CashbookAccount{
			AccountID:      statement.AccountID,
			AccountName:    statement.AccountName,
			OpeningBalance: statement.OpeningBalance,
			Lines:          statement.Lines,
			ClosingBalance: statement.ClosingBalance,
		})
	}
	return book, nil
}

// GetCustomerStatement builds a customer's receivable ledger: the slice of
// Accounts Receivable driven by the customer's invoices, credit notes and
// payments. Receivables are debit normal so the balance is what the customer
// owes.
func (s *reportingService) GetCustomerStatement(ctx context.Context, businessID, customerID string, from, to time.Time) (*domain.AccountStatement, error) {
	customer, err := s.partyRepo.FindCustomerByID(ctx, businessID, customerID)
	if err != nil {
		return nil, err
	}
	postings, err := s.reportingRepo.FindPostingsForCustomer(ctx, businessID, customerID, time.Time{}, to)
	if err != nil {
		return nil, err
	}
	return buildPartyStatement(customer.CustomerID, customer.Name, postings, from, to, true), nil
}

// GetVendorStatement builds a vendor's payable ledger. Payables are credit
// normal so the balance is what the business owes the vendor.
func (s *reportingService) GetVendorStatement(ctx context.Context, businessID, vendorID string, from, to time.Time) (*domain.AccountStatement, error) {
	vendor, err := s.partyRepo.FindVendorByID(ctx, businessID, vendorID)
	if err != nil {
		return nil, err
	}
	postings, err := s.reportingRepo.FindPostingsForVendor(ctx, businessID, vendorID, time.Time{}, to)
	if err != nil {
		return nil, err
	}
	return buildPartyStatement(vendor.VendorID, vendor.Name, postings, from, to, false), nil
}

// buildPartyStatement splits postings up to the report end into the opening
// balance (dated before the range) and running ledger lines.
func buildPartyStatement(partyID, partyName string, postings []domain.Posting, from, to time.Time, debitNormal bool) *domain.AccountStatement {
	statement := &domain.AccountStatement{
		AccountID:   partyID,
		AccountName: partyName,
		From:        from,
		To:          to,
	}
	for _, p := range postings {
		signed := p.Debit.Sub(p.Credit)
		if !debitNormal {
			signed = signed.Neg()
		}
		if p.TransactionDate.Before(from) {
			statement.OpeningBalance = statement.OpeningBalance.Add(signed)
			continue
		}
		statement.ClosingBalance = statement.ClosingBalance.Add(signed)
		statement.Lines = append(statement.Lines, domain.LedgerLine{
			PostingID:       p.PostingID,
			TransactionDate: p.TransactionDate,
			Description:     p.Description,
			Source:          p.Source,
			Debit:           p.Debit,
			Credit:          p.Credit,
			Balance:         statement.OpeningBalance.Add(statement.ClosingBalance),
		})
	}
	statement.ClosingBalance = statement.OpeningBalance.Add(statement.ClosingBalance)
	return statement
}
