package pgsql

import (
	"context"
	"time"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	"github.com/Omerhrr/Booklet/internal/models"
	"github.com/Omerhrr/Booklet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPostingRepository struct {
	BaseRepository
}

// newPgxPostingRepository creates a new repository for ledger postings.
func newPgxPostingRepository(pool *pgxpool.Pool) *PgxPostingRepository {
	return &PgxPostingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PostingRepositoryWithTx = (*PgxPostingRepository)(nil)

const postingColumns = `posting_id, business_id, branch_id, account_id, transaction_date, COALESCE(description, ''), debit, credit, source_kind, source_id, is_reconciled, reconciliation_id, created_at`

func scanPosting(row pgx.Row) (*models.Posting, error) {
	var m models.Posting
	err := row.Scan(
		&m.PostingID,
		&m.BusinessID,
		&m.BranchID,
		&m.AccountID,
		&m.TransactionDate,
		&m.Description,
		&m.Debit,
		&m.Credit,
		&m.SourceKind,
		&m.SourceID,
		&m.IsReconciled,
		&m.ReconciliationID,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectPostings(rows pgx.Rows) ([]domain.Posting, error) {
	defer rows.Close()
	var ms []models.Posting
	for rows.Next() {
		m, err := scanPosting(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan posting row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate posting rows", err)
	}
	return mapping.ToDomainPostingSlice(ms), nil
}

// SavePostingsTx batch-inserts a validated posting group inside the caller's transaction.
func (r *PgxPostingRepository) SavePostingsTx(ctx context.Context, tx pgx.Tx, postings []domain.Posting) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO postings (posting_id, business_id, branch_id, account_id, transaction_date, description, debit, credit, source_kind, source_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11);
	`
	for _, p := range postings {
		m := mapping.ToModelPosting(p)
		batch.Queue(query,
			m.PostingID,
			m.BusinessID,
			m.BranchID,
			m.AccountID,
			m.TransactionDate,
			m.Description,
			m.Debit,
			m.Credit,
			m.SourceKind,
			m.SourceID,
			m.CreatedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range postings {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert posting group", err)
		}
	}
	return nil
}

// FindPostingsByAccount retrieves an account's postings in [from, to] ordered
// by date then insertion order.
func (r *PgxPostingRepository) FindPostingsByAccount(ctx context.Context, businessID, accountID string, from, to time.Time) ([]domain.Posting, error) {
	query := `
		SELECT ` + postingColumns + `
		FROM postings
		WHERE business_id = $1 AND account_id = $2 AND transaction_date >= $3 AND transaction_date <= $4
		ORDER BY transaction_date, created_at, posting_id;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, accountID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query postings for account "+accountID, err)
	}
	return collectPostings(rows)
}

// FindPostingsBySource retrieves the posting group written for a document.
func (r *PgxPostingRepository) FindPostingsBySource(ctx context.Context, businessID string, source domain.SourceRef) ([]domain.Posting, error) {
	query := `
		SELECT ` + postingColumns + `
		FROM postings
		WHERE business_id = $1 AND source_kind = $2 AND source_id = $3
		ORDER BY created_at, posting_id;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, string(source.Kind), source.DocumentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query postings for document "+source.DocumentID, err)
	}
	return collectPostings(rows)
}

// SumAccountBefore returns net (debit - credit) over postings dated strictly
// before the given date.
func (r *PgxPostingRepository) SumAccountBefore(ctx context.Context, businessID, accountID string, before time.Time) (decimal.Decimal, error) {
	var net decimal.Decimal
	query := `
		SELECT COALESCE(SUM(debit - credit), 0)
		FROM postings
		WHERE business_id = $1 AND account_id = $2 AND transaction_date < $3;
	`
	if err := r.Pool.QueryRow(ctx, query, businessID, accountID, before).Scan(&net); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum postings for account "+accountID, err)
	}
	return net, nil
}
