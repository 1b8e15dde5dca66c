package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind names a numbered document series. Each business holds an
// independent counter per kind.
type DocumentKind string

const (
	KindSalesInvoice DocumentKind = "SALES_INVOICE"
	KindPurchaseBill DocumentKind = "PURCHASE_BILL"
	KindExpense      DocumentKind = "EXPENSE"
	KindJournal      DocumentKind = "JOURNAL_VOUCHER"
	KindCreditNote   DocumentKind = "CREDIT_NOTE"
	KindDebitNote    DocumentKind = "DEBIT_NOTE"
	KindOtherIncome  DocumentKind = "OTHER_INCOME"
)

// Prefix returns the document number prefix for the kind, e.g. "INV" for
// sales invoices. Numbers render as PREFIX-0001.
func (k DocumentKind) Prefix() string {
	switch k {
	case KindSalesInvoice:
		return "INV"
	case KindPurchaseBill:
		return "PB"
	case KindExpense:
		return "EXP"
	case KindJournal:
		return "JV"
	case KindCreditNote:
		return "CN"
	case KindDebitNote:
		return "DN"
	case KindOtherIncome:
		return "INC"
	}
	return ""
}

// PaymentStatus tracks how much of a document's total has been settled.
type PaymentStatus string

const (
	StatusUnpaid        PaymentStatus = "Unpaid"
	StatusPartiallyPaid PaymentStatus = "Partially Paid"
	StatusPaid          PaymentStatus = "Paid"
)

// SalesInvoiceItem is one product line on a sales invoice.
type SalesInvoiceItem struct {
	ItemID           string          `json:"itemID"` // Primary Key (UUID)
	InvoiceID        string          `json:"invoiceID"`
	ProductID        string          `json:"productID"`
	Quantity         decimal.Decimal `json:"quantity"`
	Price            decimal.Decimal `json:"price"` // Unit price at time of sale
	ReturnedQuantity decimal.Decimal `json:"returnedQuantity"`
}

// SalesInvoice is a customer-facing sale document. Paid amount and status are
// maintained by the payment and credit note workflows.
type SalesInvoice struct {
	InvoiceID     string             `json:"invoiceID"` // Primary Key (UUID)
	InvoiceNumber string             `json:"invoiceNumber"` // e.g. INV-0001, unique per business
	BusinessID    string             `json:"businessID"`
	BranchID      string             `json:"branchID"`
	CustomerID    string             `json:"customerID"`
	InvoiceDate   time.Time          `json:"invoiceDate"`
	DueDate       time.Time          `json:"dueDate"`
	SubTotal      decimal.Decimal    `json:"subTotal"`
	VATAmount     decimal.Decimal    `json:"vatAmount"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	PaidAmount    decimal.Decimal    `json:"paidAmount"`
	Status        PaymentStatus      `json:"status"`
	Items         []SalesInvoiceItem `json:"items"`
	AuditFields
}

// PurchaseBillItem is one product line on a purchase bill.
type PurchaseBillItem struct {
	ItemID           string          `json:"itemID"` // Primary Key (UUID)
	BillID           string          `json:"billID"`
	ProductID        string          `json:"productID"`
	Quantity         decimal.Decimal `json:"quantity"`
	Price            decimal.Decimal `json:"price"` // Unit cost at time of purchase
	ReturnedQuantity decimal.Decimal `json:"returnedQuantity"`
}

// PurchaseBill is a vendor-facing purchase document.
type PurchaseBill struct {
	BillID      string             `json:"billID"` // Primary Key (UUID)
	BillNumber  string             `json:"billNumber"` // e.g. PB-0001, unique per business
	BusinessID  string             `json:"businessID"`
	BranchID    string             `json:"branchID"`
	VendorID    string             `json:"vendorID"`
	BillDate    time.Time          `json:"billDate"`
	DueDate     time.Time          `json:"dueDate"`
	SubTotal    decimal.Decimal    `json:"subTotal"`
	VATAmount   decimal.Decimal    `json:"vatAmount"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	PaidAmount  decimal.Decimal    `json:"paidAmount"`
	Status      PaymentStatus      `json:"status"`
	Items       []PurchaseBillItem `json:"items"`
	AuditFields
}

// ExpenseRecord is a direct spend against an expense account, paid immediately
// from a payment account.
type ExpenseRecord struct {
	ExpenseID          string          `json:"expenseID"` // Primary Key (UUID)
	ExpenseNumber      string          `json:"expenseNumber"` // e.g. EXP-0001
	BusinessID         string          `json:"businessID"`
	BranchID           string          `json:"branchID"`
	ExpenseDate        time.Time       `json:"expenseDate"`
	Category           string          `json:"category"` // Name of the expense account charged
	Description        string          `json:"description"`
	SubTotal           decimal.Decimal `json:"subTotal"`
	VATAmount          decimal.Decimal `json:"vatAmount"`
	Amount             decimal.Decimal `json:"amount"` // Grand total incl. VAT
	ExpenseAccountID   string          `json:"expenseAccountID"`
	PaidFromAccountID  string          `json:"paidFromAccountID"`
	VendorID           *string         `json:"vendorID"` // Nullable
	AuditFields
}

// OtherIncome records non-sales income deposited straight into a payment account.
type OtherIncome struct {
	OtherIncomeID        string          `json:"otherIncomeID"` // Primary Key (UUID)
	IncomeNumber         string          `json:"incomeNumber"` // e.g. INC-0001
	BusinessID           string          `json:"businessID"`
	BranchID             string          `json:"branchID"`
	IncomeDate           time.Time       `json:"incomeDate"`
	Description          string          `json:"description"`
	Amount               decimal.Decimal `json:"amount"`
	IncomeAccountID      string          `json:"incomeAccountID"`
	DepositedToAccountID string          `json:"depositedToAccountID"`
	AuditFields
}

// FundTransfer moves money between two payment accounts of one business.
type FundTransfer struct {
	TransferID    string          `json:"transferID"` // Primary Key (UUID)
	BusinessID    string          `json:"businessID"`
	BranchID      string          `json:"branchID"`
	TransferDate  time.Time       `json:"transferDate"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	AuditFields
}

// CreditNoteItem is one returned product line on a credit note.
type CreditNoteItem struct {
	ItemID       string          `json:"itemID"` // Primary Key (UUID)
	CreditNoteID string          `json:"creditNoteID"`
	ProductID    string          `json:"productID"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"` // Unit price credited
}

// CreditNote reverses part of a sales invoice when a customer returns goods.
type CreditNote struct {
	CreditNoteID     string           `json:"creditNoteID"` // Primary Key (UUID)
	CreditNoteNumber string           `json:"creditNoteNumber"` // e.g. CN-0001
	BusinessID       string           `json:"businessID"`
	BranchID         string           `json:"branchID"`
	CustomerID       string           `json:"customerID"`
	InvoiceID        string           `json:"invoiceID"` // FK -> sales_invoices
	NoteDate         time.Time        `json:"noteDate"`
	Reason           string           `json:"reason"`
	TotalAmount      decimal.Decimal  `json:"totalAmount"`
	Items            []CreditNoteItem `json:"items"`
	AuditFields
}

// DebitNoteItem is one returned product line on a debit note.
type DebitNoteItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	DebitNoteID string          `json:"debitNoteID"`
	ProductID   string          `json:"productID"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"` // Unit cost debited back to the vendor
}

// DebitNote reverses part of a purchase bill when goods are returned to a vendor.
type DebitNote struct {
	DebitNoteID     string          `json:"debitNoteID"` // Primary Key (UUID)
	DebitNoteNumber string          `json:"debitNoteNumber"` // e.g. DN-0001
	BusinessID      string          `json:"businessID"`
	BranchID        string          `json:"branchID"`
	VendorID        string          `json:"vendorID"`
	BillID          string          `json:"billID"` // FK -> purchase_bills
	NoteDate        time.Time       `json:"noteDate"`
	Reason          string          `json:"reason"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Items           []DebitNoteItem `json:"items"`
	AuditFields
}
