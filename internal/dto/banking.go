package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the payload for recording a paid expense.
// When ApplyVAT is set and the business is VAT registered, input VAT is
// computed on top of the subtotal at the business rate.
type CreateExpenseRequest struct {
	BranchID          string          `json:"branchID" binding:"required"`
	ExpenseDate       time.Time       `json:"expenseDate" binding:"required"`
	ExpenseAccountID  string          `json:"expenseAccountID" binding:"required"`
	PaidFromAccountID string          `json:"paidFromAccountID" binding:"required"`
	SubTotal          decimal.Decimal `json:"subTotal" binding:"required"`
	ApplyVAT          bool            `json:"applyVAT"`
	Description       string          `json:"description"`
	VendorID          *string         `json:"vendorID"`
}

// CreateOtherIncomeRequest defines the payload for recording non-sales income.
type CreateOtherIncomeRequest struct {
	BranchID             string          `json:"branchID" binding:"required"`
	IncomeDate           time.Time       `json:"incomeDate" binding:"required"`
	IncomeAccountID      string          `json:"incomeAccountID" binding:"required"`
	DepositedToAccountID string          `json:"depositedToAccountID" binding:"required"`
	Amount               decimal.Decimal `json:"amount" binding:"required"`
	Description          string          `json:"description"`
}

// FundTransferRequest defines the payload for moving money between two
// payment accounts.
type FundTransferRequest struct {
	BranchID      string          `json:"branchID" binding:"required"`
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	TransferDate  time.Time       `json:"transferDate" binding:"required"`
	Description   string          `json:"description"`
}

// VATSettlementRequest defines the payload for a VAT payment voucher.
type VATSettlementRequest struct {
	BranchID          string    `json:"branchID" binding:"required"`
	PaymentDate       time.Time `json:"paymentDate" binding:"required"`
	PaidFromAccountID string    `json:"paidFromAccountID" binding:"required"`
	Description       string    `json:"description"`
}

// ReconcileRequest defines the payload for signing off a bank statement.
type ReconcileRequest struct {
	BranchID         string          `json:"branchID" binding:"required"`
	AccountID        string          `json:"accountID" binding:"required"`
	StatementDate    time.Time       `json:"statementDate" binding:"required"`
	StatementBalance decimal.Decimal `json:"statementBalance"`
	PostingIDs       []string        `json:"postingIDs" binding:"required,min=1"`
}
