package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	"github.com/Omerhrr/Booklet/internal/models"
	"github.com/Omerhrr/Booklet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for bank account details.
func newPgxBankAccountRepository(pool *pgxpool.Pool) *PgxBankAccountRepository {
	return &PgxBankAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BankAccountRepository = (*PgxBankAccountRepository)(nil)

const bankAccountColumns = `bank_account_id, account_id, business_id, branch_id, bank_name, account_number, last_reconciliation_date, last_reconciliation_balance, created_at, updated_at`

func scanBankAccount(row pgx.Row) (*models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.BankAccountID,
		&m.AccountID,
		&m.BusinessID,
		&m.BranchID,
		&m.BankName,
		&m.AccountNumber,
		&m.LastReconciliationDate,
		&m.LastReconciliationBalance,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveBankAccountTx persists a new bank account inside an existing transaction.
func (r *PgxBankAccountRepository) SaveBankAccountTx(ctx context.Context, tx pgx.Tx, bankAccount domain.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (bank_account_id, account_id, business_id, branch_id, bank_name, account_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		bankAccount.BankAccountID,
		bankAccount.AccountID,
		bankAccount.BusinessID,
		bankAccount.BranchID,
		bankAccount.BankName,
		bankAccount.AccountNumber,
		bankAccount.CreatedAt,
		bankAccount.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bank account for chart account %s: %w", bankAccount.AccountID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert bank account "+bankAccount.BankAccountID, err)
	}
	return nil
}

// FindBankAccountByID retrieves a bank account scoped to a business.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, businessID, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE business_id = $1 AND bank_account_id = $2;`
	m, err := scanBankAccount(r.Pool.QueryRow(ctx, query, businessID, bankAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query bank account "+bankAccountID, err)
	}
	d := mapping.ToDomainBankAccount(*m)
	return &d, nil
}

// FindBankAccountByAccountID retrieves the bank detail record behind a chart account.
func (r *PgxBankAccountRepository) FindBankAccountByAccountID(ctx context.Context, businessID, accountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE business_id = $1 AND account_id = $2;`
	m, err := scanBankAccount(r.Pool.QueryRow(ctx, query, businessID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query bank account for chart account "+accountID, err)
	}
	d := mapping.ToDomainBankAccount(*m)
	return &d, nil
}

// ListBankAccountsByBranch retrieves a branch's bank accounts.
func (r *PgxBankAccountRepository) ListBankAccountsByBranch(ctx context.Context, businessID, branchID string) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE business_id = $1 AND branch_id = $2 ORDER BY bank_name;`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list bank accounts", err)
	}
	defer rows.Close()

	var ms []models.BankAccount
	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank account row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate bank account rows", err)
	}
	return mapping.ToDomainBankAccountSlice(ms), nil
}

// StampReconciliationTx records the latest statement checkpoint on the bank account row.
func (r *PgxBankAccountRepository) StampReconciliationTx(ctx context.Context, tx pgx.Tx, accountID string, batch domain.ReconciliationBatch) error {
	query := `
		UPDATE bank_accounts
		SET last_reconciliation_date = $2, last_reconciliation_balance = $3, updated_at = $4
		WHERE account_id = $1;
	`
	tag, err := tx.Exec(ctx, query, accountID, batch.StatementDate, batch.StatementBalance, batch.ReconciledAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to stamp reconciliation on account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		// The system Cash account has no bank detail row; nothing to stamp.
		return nil
	}
	return nil
}
