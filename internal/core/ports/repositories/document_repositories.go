package repositories

import (
	"context"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SalesRepository defines persistence for sales invoices and credit notes.
type SalesRepository interface {
	SaveInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.SalesInvoice) error
	FindInvoiceByID(ctx context.Context, businessID, invoiceID string) (*domain.SalesInvoice, error)
	ListInvoicesByBranch(ctx context.Context, businessID, branchID string) ([]domain.SalesInvoice, error)

	// FindInvoiceForUpdateTx loads an invoice and its items with a row lock so
	// payments and credit notes serialise per invoice.
	FindInvoiceForUpdateTx(ctx context.Context, tx pgx.Tx, businessID, invoiceID string) (*domain.SalesInvoice, error)

	// UpdateInvoicePaymentTx sets paid amount, total and status.
	UpdateInvoicePaymentTx(ctx context.Context, tx pgx.Tx, invoiceID string, total, paid decimal.Decimal, status domain.PaymentStatus) error

	// AddReturnedQuantityTx bumps the returned quantity of one invoice item.
	AddReturnedQuantityTx(ctx context.Context, tx pgx.Tx, itemID string, quantity decimal.Decimal) error

	SaveCreditNoteTx(ctx context.Context, tx pgx.Tx, note domain.CreditNote) error
	FindCreditNoteByID(ctx context.Context, businessID, creditNoteID string) (*domain.CreditNote, error)
	ListCreditNotesByBranch(ctx context.Context, businessID, branchID string) ([]domain.CreditNote, error)
}

// PurchaseRepository defines persistence for purchase bills and debit notes.
type PurchaseRepository interface {
	SaveBillTx(ctx context.Context, tx pgx.Tx, bill domain.PurchaseBill) error
	FindBillByID(ctx context.Context, businessID, billID string) (*domain.PurchaseBill, error)
	ListBillsByBranch(ctx context.Context, businessID, branchID string) ([]domain.PurchaseBill, error)

	FindBillForUpdateTx(ctx context.Context, tx pgx.Tx, businessID, billID string) (*domain.PurchaseBill, error)
	UpdateBillPaymentTx(ctx context.Context, tx pgx.Tx, billID string, total, paid decimal.Decimal, status domain.PaymentStatus) error
	AddReturnedQuantityTx(ctx context.Context, tx pgx.Tx, itemID string, quantity decimal.Decimal) error

	SaveDebitNoteTx(ctx context.Context, tx pgx.Tx, note domain.DebitNote) error
	FindDebitNoteByID(ctx context.Context, businessID, debitNoteID string) (*domain.DebitNote, error)
	ListDebitNotesByBranch(ctx context.Context, businessID, branchID string) ([]domain.DebitNote, error)
}

// ExpenseRepository defines persistence for expenses, other income and fund transfers.
type ExpenseRepository interface {
	SaveExpenseTx(ctx context.Context, tx pgx.Tx, expense domain.ExpenseRecord) error
	FindExpenseByID(ctx context.Context, businessID, expenseID string) (*domain.ExpenseRecord, error)
	ListExpensesByBranch(ctx context.Context, businessID, branchID string) ([]domain.ExpenseRecord, error)

	SaveOtherIncomeTx(ctx context.Context, tx pgx.Tx, income domain.OtherIncome) error
	ListOtherIncomeByBranch(ctx context.Context, businessID, branchID string) ([]domain.OtherIncome, error)

	SaveFundTransferTx(ctx context.Context, tx pgx.Tx, transfer domain.FundTransfer) error
	ListFundTransfersByBranch(ctx context.Context, businessID, branchID string) ([]domain.FundTransfer, error)
}

// PayrollRepository defines persistence for employees and payslips.
type PayrollRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, businessID, employeeID string) (*domain.Employee, error)
	ListEmployeesByBranch(ctx context.Context, businessID, branchID string) ([]domain.Employee, error)

	SavePayrollConfig(ctx context.Context, config domain.PayrollConfig) error
	FindPayrollConfigByEmployee(ctx context.Context, employeeID string) (*domain.PayrollConfig, error)

	SavePayslipTx(ctx context.Context, tx pgx.Tx, payslip domain.Payslip) error
	FindPayslipByID(ctx context.Context, businessID, payslipID string) (*domain.Payslip, error)
	ListPayslipsByBranch(ctx context.Context, businessID, branchID string) ([]domain.Payslip, error)
}

// ReconciliationRepository defines persistence for reconciliation batches.
type ReconciliationRepository interface {
	SaveBatchTx(ctx context.Context, tx pgx.Tx, batch domain.ReconciliationBatch) error

	// FlagPostingsTx marks the given postings reconciled under the batch.
	// Returns the number of postings actually flagged.
	FlagPostingsTx(ctx context.Context, tx pgx.Tx, batch domain.ReconciliationBatch, postingIDs []string) (int64, error)

	FindBatchByID(ctx context.Context, businessID, reconciliationID string) (*domain.ReconciliationBatch, error)
	ListBatchesByAccount(ctx context.Context, businessID, accountID string) ([]domain.ReconciliationBatch, error)

	// ListBatchPostings retrieves the postings cleared under one batch.
	ListBatchPostings(ctx context.Context, businessID, reconciliationID string) ([]domain.Posting, error)

	// ListUnreconciledPostings retrieves an account's postings not yet claimed
	// by any batch.
	ListUnreconciledPostings(ctx context.Context, businessID, accountID string) ([]domain.Posting, error)

	// SumReconciled returns net (debit - credit) over the account's reconciled postings.
	SumReconciled(ctx context.Context, businessID, accountID string) (decimal.Decimal, error)
}
