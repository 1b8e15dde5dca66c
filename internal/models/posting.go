package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting maps the postings table. SourceKind and SourceID are both null for
// postings with no document link.
type Posting struct {
	PostingID        string          `db:"posting_id"`
	BusinessID       string          `db:"business_id"`
	BranchID         string          `db:"branch_id"`
	AccountID        string          `db:"account_id"`
	TransactionDate  time.Time       `db:"transaction_date"`
	Description      string          `db:"description"`
	Debit            decimal.Decimal `db:"debit"`
	Credit           decimal.Decimal `db:"credit"`
	SourceKind       *string         `db:"source_kind"`
	SourceID         *string         `db:"source_id"`
	IsReconciled     bool            `db:"is_reconciled"`
	ReconciliationID *string         `db:"reconciliation_id"`
	CreatedAt        time.Time       `db:"created_at"`
}

// DocumentSequence maps the document_sequences counter table.
type DocumentSequence struct {
	BusinessID string `db:"business_id"`
	Kind       string `db:"kind"`
	LastValue  int64  `db:"last_value"`
}
