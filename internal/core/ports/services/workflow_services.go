package services

import (
	"context"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/shopspring/decimal"
)

// SalesSvc covers the customer-facing document workflows.
type SalesSvc interface {
	// CreateInvoice numbers the invoice, decrements stock and writes the sale
	// posting group in one transaction.
	CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest) (*domain.SalesInvoice, error)

	GetInvoiceByID(ctx context.Context, businessID, invoiceID string) (*domain.SalesInvoice, error)
	ListInvoices(ctx context.Context, businessID, branchID string) ([]domain.SalesInvoice, error)

	// RecordInvoicePayment applies a payment to an invoice, advancing its
	// status and posting cash against receivables.
	RecordInvoicePayment(ctx context.Context, businessID, invoiceID string, req dto.RecordPaymentRequest) (*domain.SalesInvoice, error)

	// CreateCreditNote processes a customer return against an invoice:
	// restores stock, reduces the invoice and reverses the sale postings for
	// the returned lines.
	CreateCreditNote(ctx context.Context, businessID string, req dto.CreateCreditNoteRequest) (*domain.CreditNote, error)

	GetCreditNoteByID(ctx context.Context, businessID, creditNoteID string) (*domain.CreditNote, error)
}

// PurchaseSvc covers the vendor-facing document workflows.
type PurchaseSvc interface {
	// CreateBill numbers the bill, increments stock and writes the purchase
	// posting group in one transaction.
	CreateBill(ctx context.Context, businessID string, req dto.CreateBillRequest) (*domain.PurchaseBill, error)

	GetBillByID(ctx context.Context, businessID, billID string) (*domain.PurchaseBill, error)
	ListBills(ctx context.Context, businessID, branchID string) ([]domain.PurchaseBill, error)

	// RecordBillPayment applies a payment to a bill.
	RecordBillPayment(ctx context.Context, businessID, billID string, req dto.RecordPaymentRequest) (*domain.PurchaseBill, error)

	// CreateDebitNote processes a return to a vendor against a bill.
	CreateDebitNote(ctx context.Context, businessID string, req dto.CreateDebitNoteRequest) (*domain.DebitNote, error)

	GetDebitNoteByID(ctx context.Context, businessID, debitNoteID string) (*domain.DebitNote, error)
}

// ExpenseSvc covers direct spend and non-sales income.
type ExpenseSvc interface {
	// CreateExpense numbers and posts an immediately-paid expense.
	CreateExpense(ctx context.Context, businessID string, req dto.CreateExpenseRequest) (*domain.ExpenseRecord, error)

	ListExpenses(ctx context.Context, businessID, branchID string) ([]domain.ExpenseRecord, error)

	// CreateOtherIncome numbers and posts income deposited outside the sales flow.
	CreateOtherIncome(ctx context.Context, businessID string, req dto.CreateOtherIncomeRequest) (*domain.OtherIncome, error)

	ListOtherIncome(ctx context.Context, businessID, branchID string) ([]domain.OtherIncome, error)
}

// PayrollSvc computes and posts payroll.
type PayrollSvc interface {
	CreateEmployee(ctx context.Context, businessID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	ListEmployees(ctx context.Context, businessID, branchID string) ([]domain.Employee, error)

	// SetPayrollConfig creates or replaces an employee's salary configuration.
	SetPayrollConfig(ctx context.Context, businessID, employeeID string, req dto.PayrollConfigRequest) (*domain.PayrollConfig, error)

	// RunPayroll computes payslips for the given employees and posts the
	// payroll group per employee, all in one transaction.
	RunPayroll(ctx context.Context, businessID string, req dto.RunPayrollRequest) ([]domain.Payslip, error)

	GetPayslipByID(ctx context.Context, businessID, payslipID string) (*domain.Payslip, error)
	ListPayslips(ctx context.Context, businessID, branchID string) ([]domain.Payslip, error)
}

// BankingSvc covers bank accounts, transfers, VAT settlement and reconciliation.
type BankingSvc interface {
	// CreateBankAccount creates the chart account and its bank detail record together.
	CreateBankAccount(ctx context.Context, businessID string, req dto.CreateBankAccountRequest) (*domain.BankAccount, error)

	ListBankAccounts(ctx context.Context, businessID, branchID string) ([]domain.BankAccount, error)

	// TransferFunds moves money between two payment accounts of the business.
	TransferFunds(ctx context.Context, businessID string, req dto.FundTransferRequest) (*domain.FundTransfer, error)

	ListFundTransfers(ctx context.Context, businessID, branchID string) ([]domain.FundTransfer, error)

	// SettleVAT posts a VAT payment voucher clearing output VAT against input
	// VAT, the remainder paid from a payment account.
	SettleVAT(ctx context.Context, businessID string, req dto.VATSettlementRequest) ([]domain.Posting, error)

	// ListUnreconciledPostings retrieves postings of a payment account not yet
	// claimed by any reconciliation batch.
	ListUnreconciledPostings(ctx context.Context, businessID, accountID string) ([]domain.Posting, error)

	// GetReconciliationOpeningBalance returns the net of all reconciled
	// postings on the account, the starting point for the next statement.
	GetReconciliationOpeningBalance(ctx context.Context, businessID, accountID string) (decimal.Decimal, error)

	// Reconcile records a statement sign-off: creates the immutable batch,
	// flags the chosen postings and stamps the bank account checkpoint.
	Reconcile(ctx context.Context, businessID string, req dto.ReconcileRequest) (*domain.ReconciliationBatch, error)

	ListReconciliations(ctx context.Context, businessID, accountID string) ([]domain.ReconciliationBatch, error)

	// GetReconciliationReport rebuilds one batch's statement view: cleared
	// postings, what was still open at the statement date and the balance
	// carried over from the previous statement.
	GetReconciliationReport(ctx context.Context, businessID, reconciliationID string) (*domain.ReconciliationReport, error)
}
