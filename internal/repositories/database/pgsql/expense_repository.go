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

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expenses, other income
// and fund transfers.
func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, expense_number, business_id, branch_id, expense_date, category, COALESCE(description, ''), sub_total, vat_amount, amount, expense_account_id, paid_from_account_id, vendor_id, created_at, updated_at`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.ExpenseNumber,
		&m.BusinessID,
		&m.BranchID,
		&m.ExpenseDate,
		&m.Category,
		&m.Description,
		&m.SubTotal,
		&m.VATAmount,
		&m.Amount,
		&m.ExpenseAccountID,
		&m.PaidFromAccountID,
		&m.VendorID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveExpenseTx persists an expense inside the caller's transaction.
func (r *PgxExpenseRepository) SaveExpenseTx(ctx context.Context, tx pgx.Tx, expense domain.ExpenseRecord) error {
	query := `
		INSERT INTO expenses (expense_id, expense_number, business_id, branch_id, expense_date, category, description, sub_total, vat_amount, amount, expense_account_id, paid_from_account_id, vendor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		expense.ExpenseID, expense.ExpenseNumber, expense.BusinessID, expense.BranchID,
		expense.ExpenseDate, expense.Category, expense.Description,
		expense.SubTotal, expense.VATAmount, expense.Amount,
		expense.ExpenseAccountID, expense.PaidFromAccountID, expense.VendorID,
		expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("expense %s: %w", expense.ExpenseNumber, apperrors.ErrDuplicateDocumentNumber)
		}
		return apperrors.NewAppError(500, "failed to insert expense "+expense.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense scoped to a business.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, businessID, expenseID string) (*domain.ExpenseRecord, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE business_id = $1 AND expense_id = $2;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, businessID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query expense "+expenseID, err)
	}
	d := mapping.ToDomainExpense(*m)
	return &d, nil
}

// ListExpensesByBranch retrieves a branch's expenses, newest first.
func (r *PgxExpenseRepository) ListExpensesByBranch(ctx context.Context, businessID, branchID string) ([]domain.ExpenseRecord, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE business_id = $1 AND branch_id = $2 ORDER BY expense_date DESC, expense_number DESC;`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list expenses", err)
	}
	defer rows.Close()

	var result []domain.ExpenseRecord
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense row", err)
		}
		result = append(result, mapping.ToDomainExpense(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate expense rows", err)
	}
	return result, nil
}

// SaveOtherIncomeTx persists an other income record inside the caller's transaction.
func (r *PgxExpenseRepository) SaveOtherIncomeTx(ctx context.Context, tx pgx.Tx, income domain.OtherIncome) error {
	query := `
		INSERT INTO other_incomes (other_income_id, income_number, business_id, branch_id, income_date, description, amount, income_account_id, deposited_to_account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		income.OtherIncomeID, income.IncomeNumber, income.BusinessID, income.BranchID,
		income.IncomeDate, income.Description, income.Amount,
		income.IncomeAccountID, income.DepositedToAccountID,
		income.CreatedAt, income.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("other income %s: %w", income.IncomeNumber, apperrors.ErrDuplicateDocumentNumber)
		}
		return apperrors.NewAppError(500, "failed to insert other income "+income.OtherIncomeID, err)
	}
	return nil
}

// ListOtherIncomeByBranch retrieves a branch's other income records, newest first.
func (r *PgxExpenseRepository) ListOtherIncomeByBranch(ctx context.Context, businessID, branchID string) ([]domain.OtherIncome, error) {
	query := `
		SELECT other_income_id, income_number, business_id, branch_id, income_date, COALESCE(description, ''), amount, income_account_id, deposited_to_account_id, created_at, updated_at
		FROM other_incomes WHERE business_id = $1 AND branch_id = $2 ORDER BY income_date DESC, income_number DESC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list other income", err)
	}
	defer rows.Close()

	var result []domain.OtherIncome
	for rows.Next() {
		var m models.OtherIncome
		if err := rows.Scan(
			&m.OtherIncomeID, &m.IncomeNumber, &m.BusinessID, &m.BranchID,
			&m.IncomeDate, &m.Description, &m.Amount,
			&m.IncomeAccountID, &m.DepositedToAccountID,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan other income row", err)
		}
		result = append(result, mapping.ToDomainOtherIncome(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate other income rows", err)
	}
	return result, nil
}

// SaveFundTransferTx persists a fund transfer inside the caller's transaction.
func (r *PgxExpenseRepository) SaveFundTransferTx(ctx context.Context, tx pgx.Tx, transfer domain.FundTransfer) error {
	query := `
		INSERT INTO fund_transfers (transfer_id, business_id, branch_id, transfer_date, description, amount, from_account_id, to_account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		transfer.TransferID, transfer.BusinessID, transfer.BranchID,
		transfer.TransferDate, transfer.Description, transfer.Amount,
		transfer.FromAccountID, transfer.ToAccountID,
		transfer.CreatedAt, transfer.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert fund transfer "+transfer.TransferID, err)
	}
	return nil
}

// ListFundTransfersByBranch retrieves a branch's fund transfers, newest first.
func (r *PgxExpenseRepository) ListFundTransfersByBranch(ctx context.Context, businessID, branchID string) ([]domain.FundTransfer, error) {
	query := `
		SELECT transfer_id, business_id, branch_id, transfer_date, COALESCE(description, ''), amount, from_account_id, to_account_id, created_at, updated_at
		FROM fund_transfers WHERE business_id = $1 AND branch_id = $2 ORDER BY transfer_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list fund transfers", err)
	}
	defer rows.Close()

	var result []domain.FundTransfer
	for rows.Next() {
		var m models.FundTransfer
		if err := rows.Scan(
			&m.TransferID, &m.BusinessID, &m.BranchID,
			&m.TransferDate, &m.Description, &m.Amount,
			&m.FromAccountID, &m.ToAccountID,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fund transfer row", err)
		}
		result = append(result, mapping.ToDomainFundTransfer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate fund transfer rows", err)
	}
	return result, nil
}
