package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository implements the ReportingRepository interface
type PgxReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// AccountTotalsInRange sums debits and credits per account over postings in
// [from, to]. Accounts with no activity in the range are omitted.
func (r *PgxReportingRepository) AccountTotalsInRange(ctx context.Context, businessID string, branchID *string, from, to time.Time) ([]domain.AccountTotals, error) {
	query := `
		SELECT
			a.account_id,
			a.name AS account_name,
			a.account_type,
			SUM(p.debit) AS total_debit,
			SUM(p.credit) AS total_credit
		FROM postings p
		JOIN accounts a ON p.account_id = a.account_id
		WHERE p.business_id = $1
			AND p.transaction_date >= $2
			AND p.transaction_date <= $3
			AND ($4::text IS NULL OR p.branch_id = $4)
		GROUP BY a.account_id, a.name, a.account_type
		ORDER BY a.account_type, a.name;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, from, to, branchID)
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}
	defer rows.Close()

	result := []domain.AccountTotals{}
	for rows.Next() {
		var row domain.AccountTotals
		var accountType string
		if err := rows.Scan(
			&row.AccountID,
			&row.AccountName,
			&accountType,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning account totals row: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", err)
	}
	return result, nil
}

// OpenReceivables lists unpaid and partially paid sales invoices dated on or before asOf.
func (r *PgxReportingRepository) OpenReceivables(ctx context.Context, businessID string, branchID *string, asOf time.Time) ([]domain.OpenDocument, error) {
	query := `
		SELECT i.invoice_id, i.invoice_number, c.customer_id, c.name, i.due_date, i.total_amount, i.paid_amount
		FROM sales_invoices i
		JOIN customers c ON i.customer_id = c.customer_id
		WHERE i.business_id = $1
			AND i.invoice_date <= $2
			AND i.status <> 'Paid'
			AND ($3::text IS NULL OR i.branch_id = $3)
		ORDER BY i.due_date, i.invoice_number;
	`
	return r.queryOpenDocuments(ctx, query, businessID, asOf, branchID)
}

// OpenPayables lists unpaid and partially paid purchase bills dated on or before asOf.
func (r *PgxReportingRepository) OpenPayables(ctx context.Context, businessID string, branchID *string, asOf time.Time) ([]domain.OpenDocument, error) {
	query := `
		SELECT b.bill_id, b.bill_number, v.vendor_id, v.name, b.due_date, b.total_amount, b.paid_amount
		FROM purchase_bills b
		JOIN vendors v ON b.vendor_id = v.vendor_id
		WHERE b.business_id = $1
			AND b.bill_date <= $2
			AND b.status <> 'Paid'
			AND ($3::text IS NULL OR b.branch_id = $3)
		ORDER BY b.due_date, b.bill_number;
	`
	return r.queryOpenDocuments(ctx, query, businessID, asOf, branchID)
}

func (r *PgxReportingRepository) queryOpenDocuments(ctx context.Context, query, businessID string, asOf time.Time, branchID *string) ([]domain.OpenDocument, error) {
	rows, err := r.Pool.Query(ctx, query, businessID, asOf, branchID)
	if err != nil {
		return nil, fmt.Errorf("error querying open documents: %w", err)
	}
	defer rows.Close()

	result := []domain.OpenDocument{}
	for rows.Next() {
		var doc domain.OpenDocument
		if err := rows.Scan(
			&doc.DocumentID,
			&doc.DocumentNumber,
			&doc.PartyID,
			&doc.PartyName,
			&doc.DueDate,
			&doc.TotalAmount,
			&doc.PaidAmount,
		); err != nil {
			return nil, fmt.Errorf("error scanning open document row: %w", err)
		}
		result = append(result, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating open document rows: %w", err)
	}
	return result, nil
}

const prefixedPostingColumns = `p.posting_id, p.business_id, p.branch_id, p.account_id, p.transaction_date, COALESCE(p.description, ''), p.debit, p.credit, p.source_kind, p.source_id, p.is_reconciled, p.reconciliation_id, p.created_at`

// FindPostingsForCustomer retrieves receivable postings whose source
// documents belong to the customer, ordered by date.
func (r *PgxReportingRepository) FindPostingsForCustomer(ctx context.Context, businessID, customerID string, from, to time.Time) ([]domain.Posting, error) {
	query := `
		SELECT ` + prefixedPostingColumns + `
		FROM postings p
		JOIN accounts a ON p.account_id = a.account_id
		WHERE p.business_id = $1
			AND a.name = $4
			AND p.transaction_date >= $2 AND p.transaction_date <= $3
			AND (
				(p.source_kind = 'SALES_INVOICE' AND p.source_id IN (SELECT invoice_id FROM sales_invoices WHERE customer_id = $5))
				OR (p.source_kind = 'CREDIT_NOTE' AND p.source_id IN (SELECT credit_note_id FROM credit_notes WHERE customer_id = $5))
			)
		ORDER BY p.transaction_date, p.created_at, p.posting_id;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, from, to, domain.AccountAccountsReceivable, customerID)
	if err != nil {
		return nil, fmt.Errorf("error querying customer postings: %w", err)
	}
	return collectPostings(rows)
}

// FindPostingsForVendor retrieves payable postings whose source documents
// belong to the vendor, ordered by date. Expenses are settled immediately
// and never reach payables, so only bills and debit notes appear.
func (r *PgxReportingRepository) FindPostingsForVendor(ctx context.Context, businessID, vendorID string, from, to time.Time) ([]domain.Posting, error) {
	query := `
		SELECT ` + prefixedPostingColumns + `
		FROM postings p
		JOIN accounts a ON p.account_id = a.account_id
		WHERE p.business_id = $1
			AND a.name = $4
			AND p.transaction_date >= $2 AND p.transaction_date <= $3
			AND (
				(p.source_kind = 'PURCHASE_BILL' AND p.source_id IN (SELECT bill_id FROM purchase_bills WHERE vendor_id = $5))
				OR (p.source_kind = 'DEBIT_NOTE' AND p.source_id IN (SELECT debit_note_id FROM debit_notes WHERE vendor_id = $5))
			)
		ORDER BY p.transaction_date, p.created_at, p.posting_id;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, from, to, domain.AccountAccountsPayable, vendorID)
	if err != nil {
		return nil, fmt.Errorf("error querying vendor postings: %w", err)
	}
	return collectPostings(rows)
}
