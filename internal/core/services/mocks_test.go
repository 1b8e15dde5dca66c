package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
)

// --- Mock TransactionManager ---

type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// expectTx wires the usual Begin/Rollback pair plus an optional Commit on a
// transaction manager mock. The returned tx is nil; repository mocks accept
// it via mock.Anything.
func expectTx(txm *MockTxManager, commits bool) {
	txm.On("Begin", mock.Anything).Return(nil, nil)
	txm.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	if commits {
		txm.On("Commit", mock.Anything, mock.Anything).Return(nil)
	}
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, businessID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, businessID, name string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) HasPostings(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccountTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, businessID, accountID string) error {
	args := m.Called(ctx, businessID, accountID)
	return args.Error(0)
}

// --- Mock PostingRepository ---

type MockPostingRepository struct {
	mock.Mock
}

var _ portsrepo.PostingRepositoryFacade = (*MockPostingRepository)(nil)

func (m *MockPostingRepository) SavePostingsTx(ctx context.Context, tx pgx.Tx, postings []domain.Posting) error {
	args := m.Called(ctx, tx, postings)
	return args.Error(0)
}

func (m *MockPostingRepository) FindPostingsByAccount(ctx context.Context, businessID, accountID string, from, to time.Time) ([]domain.Posting, error) {
	args := m.Called(ctx, businessID, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockPostingRepository) FindPostingsBySource(ctx context.Context, businessID string, source domain.SourceRef) ([]domain.Posting, error) {
	args := m.Called(ctx, businessID, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockPostingRepository) SumAccountBefore(ctx context.Context, businessID, accountID string, before time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID, accountID, before)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock SequenceRepository ---

type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextNumberTx(ctx context.Context, tx pgx.Tx, businessID string, kind domain.DocumentKind) (string, error) {
	args := m.Called(ctx, tx, businessID, kind)
	return args.String(0), args.Error(1)
}

// --- Mock BusinessRepository ---

type MockBusinessRepository struct {
	mock.Mock
}

var _ portsrepo.BusinessRepositoryFacade = (*MockBusinessRepository)(nil)

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindBranchByID(ctx context.Context, businessID, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBusinessRepository) ListBranches(ctx context.Context, businessID string) ([]domain.Branch, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

func (m *MockBusinessRepository) SaveBusinessTx(ctx context.Context, tx pgx.Tx, business domain.Business) error {
	args := m.Called(ctx, tx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) SaveBranchTx(ctx context.Context, tx pgx.Tx, branch domain.Branch) error {
	args := m.Called(ctx, tx, branch)
	return args.Error(0)
}

func (m *MockBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

// --- Mock ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, branchID, productID string) (*domain.Product, error) {
	args := m.Called(ctx, branchID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, branchID string) ([]domain.Product, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) LockProductsTx(ctx context.Context, tx pgx.Tx, branchID string, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, tx, branchID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustStockTx(ctx context.Context, tx pgx.Tx, productID string, delta decimal.Decimal) error {
	args := m.Called(ctx, tx, productID, delta)
	return args.Error(0)
}

// --- Mock PartyRepository ---

type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepository = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockPartyRepository) FindCustomerByID(ctx context.Context, businessID, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, businessID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockPartyRepository) ListCustomersByBranch(ctx context.Context, businessID, branchID string) ([]domain.Customer, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockPartyRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockPartyRepository) FindVendorByID(ctx context.Context, businessID, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, businessID, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockPartyRepository) ListVendorsByBranch(ctx context.Context, businessID, branchID string) ([]domain.Vendor, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

// --- Mock SalesRepository ---

type MockSalesRepository struct {
	mock.Mock
}

var _ portsrepo.SalesRepository = (*MockSalesRepository)(nil)

func (m *MockSalesRepository) SaveInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.SalesInvoice) error {
	args := m.Called(ctx, tx, invoice)
	return args.Error(0)
}

func (m *MockSalesRepository) FindInvoiceByID(ctx context.Context, businessID, invoiceID string) (*domain.SalesInvoice, error) {
	args := m.Called(ctx, businessID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesInvoice), args.Error(1)
}

func (m *MockSalesRepository) ListInvoicesByBranch(ctx context.Context, businessID, branchID string) ([]domain.SalesInvoice, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesInvoice), args.Error(1)
}

func (m *MockSalesRepository) FindInvoiceForUpdateTx(ctx context.Context, tx pgx.Tx, businessID, invoiceID string) (*domain.SalesInvoice, error) {
	args := m.Called(ctx, tx, businessID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesInvoice), args.Error(1)
}

func (m *MockSalesRepository) UpdateInvoicePaymentTx(ctx context.Context, tx pgx.Tx, invoiceID string, total, paid decimal.Decimal, status domain.PaymentStatus) error {
	args := m.Called(ctx, tx, invoiceID, total, paid, status)
	return args.Error(0)
}

func (m *MockSalesRepository) AddReturnedQuantityTx(ctx context.Context, tx pgx.Tx, itemID string, quantity decimal.Decimal) error {
	args := m.Called(ctx, tx, itemID, quantity)
	return args.Error(0)
}

func (m *MockSalesRepository) SaveCreditNoteTx(ctx context.Context, tx pgx.Tx, note domain.CreditNote) error {
	args := m.Called(ctx, tx, note)
	return args.Error(0)
}

func (m *MockSalesRepository) FindCreditNoteByID(ctx context.Context, businessID, creditNoteID string) (*domain.CreditNote, error) {
	args := m.Called(ctx, businessID, creditNoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditNote), args.Error(1)
}

func (m *MockSalesRepository) ListCreditNotesByBranch(ctx context.Context, businessID, branchID string) ([]domain.CreditNote, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditNote), args.Error(1)
}

// --- Mock PayrollRepository ---

type MockPayrollRepository struct {
	mock.Mock
}

var _ portsrepo.PayrollRepository = (*MockPayrollRepository)(nil)

func (m *MockPayrollRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockPayrollRepository) FindEmployeeByID(ctx context.Context, businessID, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, businessID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockPayrollRepository) ListEmployeesByBranch(ctx context.Context, businessID, branchID string) ([]domain.Employee, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockPayrollRepository) SavePayrollConfig(ctx context.Context, config domain.PayrollConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockPayrollRepository) FindPayrollConfigByEmployee(ctx context.Context, employeeID string) (*domain.PayrollConfig, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollConfig), args.Error(1)
}

func (m *MockPayrollRepository) SavePayslipTx(ctx context.Context, tx pgx.Tx, payslip domain.Payslip) error {
	args := m.Called(ctx, tx, payslip)
	return args.Error(0)
}

func (m *MockPayrollRepository) FindPayslipByID(ctx context.Context, businessID, payslipID string) (*domain.Payslip, error) {
	args := m.Called(ctx, businessID, payslipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payslip), args.Error(1)
}

func (m *MockPayrollRepository) ListPayslipsByBranch(ctx context.Context, businessID, branchID string) ([]domain.Payslip, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payslip), args.Error(1)
}

// --- Mock BankAccountRepository ---

type MockBankAccountRepository struct {
	mock.Mock
}

var _ portsrepo.BankAccountRepository = (*MockBankAccountRepository)(nil)

func (m *MockBankAccountRepository) SaveBankAccountTx(ctx context.Context, tx pgx.Tx, bankAccount domain.BankAccount) error {
	args := m.Called(ctx, tx, bankAccount)
	return args.Error(0)
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, businessID, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, businessID, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) FindBankAccountByAccountID(ctx context.Context, businessID, accountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ListBankAccountsByBranch(ctx context.Context, businessID, branchID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) StampReconciliationTx(ctx context.Context, tx pgx.Tx, accountID string, batch domain.ReconciliationBatch) error {
	args := m.Called(ctx, tx, accountID, batch)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepository = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) SaveExpenseTx(ctx context.Context, tx pgx.Tx, expense domain.ExpenseRecord) error {
	args := m.Called(ctx, tx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, businessID, expenseID string) (*domain.ExpenseRecord, error) {
	args := m.Called(ctx, businessID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseRecord), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByBranch(ctx context.Context, businessID, branchID string) ([]domain.ExpenseRecord, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseRecord), args.Error(1)
}

func (m *MockExpenseRepository) SaveOtherIncomeTx(ctx context.Context, tx pgx.Tx, income domain.OtherIncome) error {
	args := m.Called(ctx, tx, income)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListOtherIncomeByBranch(ctx context.Context, businessID, branchID string) ([]domain.OtherIncome, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OtherIncome), args.Error(1)
}

func (m *MockExpenseRepository) SaveFundTransferTx(ctx context.Context, tx pgx.Tx, transfer domain.FundTransfer) error {
	args := m.Called(ctx, tx, transfer)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListFundTransfersByBranch(ctx context.Context, businessID, branchID string) ([]domain.FundTransfer, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundTransfer), args.Error(1)
}

// --- Mock ReconciliationRepository ---

type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepository = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) SaveBatchTx(ctx context.Context, tx pgx.Tx, batch domain.ReconciliationBatch) error {
	args := m.Called(ctx, tx, batch)
	return args.Error(0)
}

func (m *MockReconciliationRepository) FlagPostingsTx(ctx context.Context, tx pgx.Tx, batch domain.ReconciliationBatch, postingIDs []string) (int64, error) {
	args := m.Called(ctx, tx, batch, postingIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReconciliationRepository) FindBatchByID(ctx context.Context, businessID, reconciliationID string) (*domain.ReconciliationBatch, error) {
	args := m.Called(ctx, businessID, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationBatch), args.Error(1)
}

func (m *MockReconciliationRepository) ListBatchesByAccount(ctx context.Context, businessID, accountID string) ([]domain.ReconciliationBatch, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationBatch), args.Error(1)
}

func (m *MockReconciliationRepository) ListBatchPostings(ctx context.Context, businessID, reconciliationID string) ([]domain.Posting, error) {
	args := m.Called(ctx, businessID, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockReconciliationRepository) ListUnreconciledPostings(ctx context.Context, businessID, accountID string) ([]domain.Posting, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockReconciliationRepository) SumReconciled(ctx context.Context, businessID, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) AccountTotalsInRange(ctx context.Context, businessID string, branchID *string, from, to time.Time) ([]domain.AccountTotals, error) {
	args := m.Called(ctx, businessID, branchID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotals), args.Error(1)
}

func (m *MockReportingRepository) OpenReceivables(ctx context.Context, businessID string, branchID *string, asOf time.Time) ([]domain.OpenDocument, error) {
	args := m.Called(ctx, businessID, branchID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpenDocument), args.Error(1)
}

func (m *MockReportingRepository) OpenPayables(ctx context.Context, businessID string, branchID *string, asOf time.Time) ([]domain.OpenDocument, error) {
	args := m.Called(ctx, businessID, branchID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpenDocument), args.Error(1)
}

func (m *MockReportingRepository) FindPostingsForCustomer(ctx context.Context, businessID, customerID string, from, to time.Time) ([]domain.Posting, error) {
	args := m.Called(ctx, businessID, customerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockReportingRepository) FindPostingsForVendor(ctx context.Context, businessID, vendorID string, from, to time.Time) ([]domain.Posting, error) {
	args := m.Called(ctx, businessID, vendorID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepository = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) SaveBillTx(ctx context.Context, tx pgx.Tx, bill domain.PurchaseBill) error {
	args := m.Called(ctx, tx, bill)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindBillByID(ctx context.Context, businessID, billID string) (*domain.PurchaseBill, error) {
	args := m.Called(ctx, businessID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseBill), args.Error(1)
}

func (m *MockPurchaseRepository) ListBillsByBranch(ctx context.Context, businessID, branchID string) ([]domain.PurchaseBill, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseBill), args.Error(1)
}

func (m *MockPurchaseRepository) FindBillForUpdateTx(ctx context.Context, tx pgx.Tx, businessID, billID string) (*domain.PurchaseBill, error) {
	args := m.Called(ctx, tx, businessID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseBill), args.Error(1)
}

func (m *MockPurchaseRepository) UpdateBillPaymentTx(ctx context.Context, tx pgx.Tx, billID string, total, paid decimal.Decimal, status domain.PaymentStatus) error {
	args := m.Called(ctx, tx, billID, total, paid, status)
	return args.Error(0)
}

func (m *MockPurchaseRepository) AddReturnedQuantityTx(ctx context.Context, tx pgx.Tx, itemID string, quantity decimal.Decimal) error {
	args := m.Called(ctx, tx, itemID, quantity)
	return args.Error(0)
}

func (m *MockPurchaseRepository) SaveDebitNoteTx(ctx context.Context, tx pgx.Tx, note domain.DebitNote) error {
	args := m.Called(ctx, tx, note)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindDebitNoteByID(ctx context.Context, businessID, debitNoteID string) (*domain.DebitNote, error) {
	args := m.Called(ctx, businessID, debitNoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebitNote), args.Error(1)
}

func (m *MockPurchaseRepository) ListDebitNotesByBranch(ctx context.Context, businessID, branchID string) ([]domain.DebitNote, error) {
	args := m.Called(ctx, businessID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebitNote), args.Error(1)
}
