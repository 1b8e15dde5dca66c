package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesInvoice maps the sales_invoices table.
type SalesInvoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	BusinessID    string          `db:"business_id"`
	BranchID      string          `db:"branch_id"`
	CustomerID    string          `db:"customer_id"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	DueDate       time.Time       `db:"due_date"`
	SubTotal      decimal.Decimal `db:"sub_total"`
	VATAmount     decimal.Decimal `db:"vat_amount"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	Status        string          `db:"status"`
	AuditFields
}

// SalesInvoiceItem maps the sales_invoice_items table.
type SalesInvoiceItem struct {
	ItemID           string          `db:"item_id"`
	InvoiceID        string          `db:"invoice_id"`
	ProductID        string          `db:"product_id"`
	Quantity         decimal.Decimal `db:"quantity"`
	Price            decimal.Decimal `db:"price"`
	ReturnedQuantity decimal.Decimal `db:"returned_quantity"`
}

// PurchaseBill maps the purchase_bills table.
type PurchaseBill struct {
	BillID      string          `db:"bill_id"`
	BillNumber  string          `db:"bill_number"`
	BusinessID  string          `db:"business_id"`
	BranchID    string          `db:"branch_id"`
	VendorID    string          `db:"vendor_id"`
	BillDate    time.Time       `db:"bill_date"`
	DueDate     time.Time       `db:"due_date"`
	SubTotal    decimal.Decimal `db:"sub_total"`
	VATAmount   decimal.Decimal `db:"vat_amount"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	PaidAmount  decimal.Decimal `db:"paid_amount"`
	Status      string          `db:"status"`
	AuditFields
}

// PurchaseBillItem maps the purchase_bill_items table.
type PurchaseBillItem struct {
	ItemID           string          `db:"item_id"`
	BillID           string          `db:"bill_id"`
	ProductID        string          `db:"product_id"`
	Quantity         decimal.Decimal `db:"quantity"`
	Price            decimal.Decimal `db:"price"`
	ReturnedQuantity decimal.Decimal `db:"returned_quantity"`
}

// Expense maps the expenses table.
type Expense struct {
	ExpenseID         string          `db:"expense_id"`
	ExpenseNumber     string          `db:"expense_number"`
	BusinessID        string          `db:"business_id"`
	BranchID          string          `db:"branch_id"`
	ExpenseDate       time.Time       `db:"expense_date"`
	Category          string          `db:"category"`
	Description       string          `db:"description"`
	SubTotal          decimal.Decimal `db:"sub_total"`
	VATAmount         decimal.Decimal `db:"vat_amount"`
	Amount            decimal.Decimal `db:"amount"`
	ExpenseAccountID  string          `db:"expense_account_id"`
	PaidFromAccountID string          `db:"paid_from_account_id"`
	VendorID          *string         `db:"vendor_id"`
	AuditFields
}

// OtherIncome maps the other_incomes table.
type OtherIncome struct {
	OtherIncomeID        string          `db:"other_income_id"`
	IncomeNumber         string          `db:"income_number"`
	BusinessID           string          `db:"business_id"`
	BranchID             string          `db:"branch_id"`
	IncomeDate           time.Time       `db:"income_date"`
	Description          string          `db:"description"`
	Amount               decimal.Decimal `db:"amount"`
	IncomeAccountID      string          `db:"income_account_id"`
	DepositedToAccountID string          `db:"deposited_to_account_id"`
	AuditFields
}

// FundTransfer maps the fund_transfers table.
type FundTransfer struct {
	TransferID    string          `db:"transfer_id"`
	BusinessID    string          `db:"business_id"`
	BranchID      string          `db:"branch_id"`
	TransferDate  time.Time       `db:"transfer_date"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	FromAccountID string          `db:"from_account_id"`
	ToAccountID   string          `db:"to_account_id"`
	AuditFields
}

// CreditNote maps the credit_notes table.
type CreditNote struct {
	CreditNoteID     string          `db:"credit_note_id"`
	CreditNoteNumber string          `db:"credit_note_number"`
	BusinessID       string          `db:"business_id"`
	BranchID         string          `db:"branch_id"`
	CustomerID       string          `db:"customer_id"`
	InvoiceID        string          `db:"invoice_id"`
	NoteDate         time.Time       `db:"note_date"`
	Reason           string          `db:"reason"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	AuditFields
}

// CreditNoteItem maps the credit_note_items table.
type CreditNoteItem struct {
	ItemID       string          `db:"item_id"`
	CreditNoteID string          `db:"credit_note_id"`
	ProductID    string          `db:"product_id"`
	Quantity     decimal.Decimal `db:"quantity"`
	Price        decimal.Decimal `db:"price"`
}

// DebitNote maps the debit_notes table.
type DebitNote struct {
	DebitNoteID     string          `db:"debit_note_id"`
	DebitNoteNumber string          `db:"debit_note_number"`
	BusinessID      string          `db:"business_id"`
	BranchID        string          `db:"branch_id"`
	VendorID        string          `db:"vendor_id"`
	BillID          string          `db:"bill_id"`
	NoteDate        time.Time       `db:"note_date"`
	Reason          string          `db:"reason"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	AuditFields
}

// DebitNoteItem maps the debit_note_items table.
type DebitNoteItem struct {
	ItemID      string          `db:"item_id"`
	DebitNoteID string          `db:"debit_note_id"`
	ProductID   string          `db:"product_id"`
	Quantity    decimal.Decimal `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
}
