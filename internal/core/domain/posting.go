package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceKind identifies the document type a posting originated from.
type SourceKind string

const (
	SourceSalesInvoice   SourceKind = "SALES_INVOICE"
	SourcePurchaseBill   SourceKind = "PURCHASE_BILL"
	SourceExpense        SourceKind = "EXPENSE"
	SourcePayslip        SourceKind = "PAYSLIP"
	SourceJournalVoucher SourceKind = "JOURNAL_VOUCHER"
	SourceFundTransfer   SourceKind = "FUND_TRANSFER"
	SourceOtherIncome    SourceKind = "OTHER_INCOME"
	SourceCreditNote     SourceKind = "CREDIT_NOTE"
	SourceDebitNote      SourceKind = "DEBIT_NOTE"
)

// SourceRef links a posting to its originating document. The zero value means
// the posting has no document link.
type SourceRef struct {
	Kind       SourceKind `json:"kind"`
	DocumentID string     `json:"documentID"`
}

// IsZero reports whether the ref carries no document link.
func (r SourceRef) IsZero() bool {
	return r.Kind == "" && r.DocumentID == ""
}

// Posting is one immutable ledger line. A balanced set of postings written
// together forms a posting group; only the reconciliation flag may change
// after the group is committed.
type Posting struct {
	PostingID        string          `json:"postingID"` // Primary Key (UUID)
	BusinessID       string          `json:"businessID"`
	BranchID         string          `json:"branchID"`
	AccountID        string          `json:"accountID"` // FK -> accounts.account_id (Not Null)
	TransactionDate  time.Time       `json:"transactionDate"`
	Description      string          `json:"description"`
	Debit            decimal.Decimal `json:"debit"`  // >= 0
	Credit           decimal.Decimal `json:"credit"` // >= 0
	Source           SourceRef       `json:"source"`
	IsReconciled     bool            `json:"isReconciled"`
	ReconciliationID *string         `json:"reconciliationID"` // FK -> reconciliations; nil until reconciled
	CreatedAt        time.Time       `json:"createdAt"`
}

// DraftLine is one line of a posting group before it is written.
type DraftLine struct {
	AccountID   string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Source      SourceRef
}
