package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationBatch captures one bank statement sign-off: which postings
// were matched against the statement and the balance the statement showed.
// Batches are immutable once created.
type ReconciliationBatch struct {
	ReconciliationID string          `json:"reconciliationID"` // Primary Key (UUID)
	BusinessID       string          `json:"businessID"`
	BranchID         string          `json:"branchID"`
	AccountID        string          `json:"accountID"` // The payment account reconciled
	StatementDate    time.Time       `json:"statementDate"`
	StatementBalance decimal.Decimal `json:"statementBalance"`
	ReconciledAt     time.Time       `json:"reconciledAt"`
}

// ReconciliationReport reproduces one statement sign-off: the postings the
// batch cleared, what was still outstanding at the statement date and the
// balance carried over from the previous statement.
type ReconciliationReport struct {
	Batch             ReconciliationBatch `json:"batch"`
	PreviousBalance   decimal.Decimal     `json:"previousBalance"` // Statement balance of the prior batch, zero for the first
	ClearedNet        decimal.Decimal     `json:"clearedNet"`      // Net (debit - credit) of the cleared postings
	ClearedPostings   []Posting           `json:"clearedPostings"`
	UnclearedPostings []Posting           `json:"unclearedPostings"` // Open postings dated on or before the statement date
}
