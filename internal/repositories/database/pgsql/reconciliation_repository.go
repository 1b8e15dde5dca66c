package pgsql

import (
	"context"
	"errors"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	"github.com/Omerhrr/Booklet/internal/models"
	"github.com/Omerhrr/Booklet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReconciliationRepository struct {
	BaseRepository
}

// newPgxReconciliationRepository creates a new repository for reconciliation batches.
func newPgxReconciliationRepository(pool *pgxpool.Pool) *PgxReconciliationRepository {
	return &PgxReconciliationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReconciliationRepository = (*PgxReconciliationRepository)(nil)

// SaveBatchTx persists a reconciliation batch inside the caller's transaction.
func (r *PgxReconciliationRepository) SaveBatchTx(ctx context.Context, tx pgx.Tx, batch domain.ReconciliationBatch) error {
	query := `
		INSERT INTO reconciliations (reconciliation_id, business_id, branch_id, account_id, statement_date, statement_balance, reconciled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		batch.ReconciliationID, batch.BusinessID, batch.BranchID, batch.AccountID,
		batch.StatementDate, batch.StatementBalance, batch.ReconciledAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert reconciliation batch "+batch.ReconciliationID, err)
	}
	return nil
}

// FlagPostingsTx marks the given postings reconciled under the batch. Only
// postings of the batch's account that are still unreconciled are flagged, so
// a posting can never belong to two batches.
func (r *PgxReconciliationRepository) FlagPostingsTx(ctx context.Context, tx pgx.Tx, batch domain.ReconciliationBatch, postingIDs []string) (int64, error) {
	query := `
		UPDATE postings
		SET is_reconciled = TRUE, reconciliation_id = $1
		WHERE business_id = $2 AND account_id = $3 AND posting_id = ANY($4) AND is_reconciled = FALSE;
	`
	tag, err := tx.Exec(ctx, query, batch.ReconciliationID, batch.BusinessID, batch.AccountID, postingIDs)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to flag postings for batch "+batch.ReconciliationID, err)
	}
	return tag.RowsAffected(), nil
}

// FindBatchByID retrieves one reconciliation batch.
func (r *PgxReconciliationRepository) FindBatchByID(ctx context.Context, businessID, reconciliationID string) (*domain.ReconciliationBatch, error) {
	var m models.ReconciliationBatch
	query := `
		SELECT reconciliation_id, business_id, branch_id, account_id, statement_date, statement_balance, reconciled_at
		FROM reconciliations WHERE business_id = $1 AND reconciliation_id = $2;
	`
	err := r.Pool.QueryRow(ctx, query, businessID, reconciliationID).Scan(
		&m.ReconciliationID, &m.BusinessID, &m.BranchID, &m.AccountID,
		&m.StatementDate, &m.StatementBalance, &m.ReconciledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query reconciliation batch "+reconciliationID, err)
	}
	d := mapping.ToDomainReconciliationBatch(m)
	return &d, nil
}

// ListBatchesByAccount retrieves an account's reconciliation history, newest first.
func (r *PgxReconciliationRepository) ListBatchesByAccount(ctx context.Context, businessID, accountID string) ([]domain.ReconciliationBatch, error) {
	query := `
		SELECT reconciliation_id, business_id, branch_id, account_id, statement_date, statement_balance, reconciled_at
		FROM reconciliations WHERE business_id = $1 AND account_id = $2 ORDER BY statement_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list reconciliation batches", err)
	}
	defer rows.Close()

	var result []domain.ReconciliationBatch
	for rows.Next() {
		var m models.ReconciliationBatch
		if err := rows.Scan(
			&m.ReconciliationID, &m.BusinessID, &m.BranchID, &m.AccountID,
			&m.StatementDate, &m.StatementBalance, &m.ReconciledAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reconciliation batch row", err)
		}
		result = append(result, mapping.ToDomainReconciliationBatch(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate reconciliation batch rows", err)
	}
	return result, nil
}

// ListBatchPostings retrieves the postings cleared under one batch.
func (r *PgxReconciliationRepository) ListBatchPostings(ctx context.Context, businessID, reconciliationID string) ([]domain.Posting, error) {
	query := `
		SELECT ` + postingColumns + `
		FROM postings
		WHERE business_id = $1 AND reconciliation_id = $2
		ORDER BY transaction_date, created_at, posting_id;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, reconciliationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query postings for batch "+reconciliationID, err)
	}
	return collectPostings(rows)
}

// ListUnreconciledPostings retrieves an account's postings not yet claimed by any batch.
func (r *PgxReconciliationRepository) ListUnreconciledPostings(ctx context.Context, businessID, accountID string) ([]domain.Posting, error) {
	query := `
		SELECT ` + postingColumns + `
		FROM postings
		WHERE business_id = $1 AND account_id = $2 AND is_reconciled = FALSE
		ORDER BY transaction_date, created_at, posting_id;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query unreconciled postings for account "+accountID, err)
	}
	return collectPostings(rows)
}

// SumReconciled returns net (debit - credit) over the account's reconciled postings.
func (r *PgxReconciliationRepository) SumReconciled(ctx context.Context, businessID, accountID string) (decimal.Decimal, error) {
	var net decimal.Decimal
	query := `
		SELECT COALESCE(SUM(debit - credit), 0)
		FROM postings
		WHERE business_id = $1 AND account_id = $2 AND is_reconciled = TRUE;
	`
	if err := r.Pool.QueryRow(ctx, query, businessID, accountID).Scan(&net); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum reconciled postings for account "+accountID, err)
	}
	return net, nil
}
