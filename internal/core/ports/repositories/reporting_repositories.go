package repositories

import (
	"context"
	"time"

	"github.com/Omerhrr/Booklet/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries behind the
// statement engine. All amounts are derived from postings at query time; no
// cached aggregates exist to drift.
type ReportingRepository interface {
	// AccountTotalsInRange sums debits and credits per account over postings
	// in [from, to]. A nil branchID spans the whole business. Accounts with
	// no activity in the range are omitted.
	AccountTotalsInRange(ctx context.Context, businessID string, branchID *string, from, to time.Time) ([]domain.AccountTotals, error)

	// OpenReceivables lists unpaid and partially paid sales invoices dated on
	// or before asOf.
	OpenReceivables(ctx context.Context, businessID string, branchID *string, asOf time.Time) ([]domain.OpenDocument, error)

	// OpenPayables lists unpaid and partially paid purchase bills dated on or
	// before asOf.
	OpenPayables(ctx context.Context, businessID string, branchID *string, asOf time.Time) ([]domain.OpenDocument, error)

	// FindPostingsForCustomer retrieves receivable postings whose source
	// documents belong to the customer, ordered by date.
	FindPostingsForCustomer(ctx context.Context, businessID, customerID string, from, to time.Time) ([]domain.Posting, error)

	// FindPostingsForVendor retrieves payable postings whose source documents
	// belong to the vendor, ordered by date.
	FindPostingsForVendor(ctx context.Context, businessID, vendorID string, from, to time.Time) ([]domain.Posting, error)
}
