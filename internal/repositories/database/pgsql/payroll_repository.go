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

type PgxPayrollRepository struct {
	BaseRepository
}

// newPgxPayrollRepository creates a new repository for employees and payslips.
func newPgxPayrollRepository(pool *pgxpool.Pool) *PgxPayrollRepository {
	return &PgxPayrollRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PayrollRepository = (*PgxPayrollRepository)(nil)

const employeeColumns = `employee_id, business_id, branch_id, name, COALESCE(email, ''), COALESCE(role, ''), created_at, updated_at`

// SaveEmployee persists a new employee.
func (r *PgxPayrollRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (employee_id, business_id, branch_id, name, email, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query, m.EmployeeID, m.BusinessID, m.BranchID, m.Name, m.Email, m.Role, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee %q: %w", employee.Name, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert employee "+m.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee scoped to a business.
func (r *PgxPayrollRepository) FindEmployeeByID(ctx context.Context, businessID, employeeID string) (*domain.Employee, error) {
	var m models.Employee
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE business_id = $1 AND employee_id = $2;`
	err := r.Pool.QueryRow(ctx, query, businessID, employeeID).Scan(
		&m.EmployeeID, &m.BusinessID, &m.BranchID, &m.Name, &m.Email, &m.Role, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query employee "+employeeID, err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

// ListEmployeesByBranch retrieves a branch's employees.
func (r *PgxPayrollRepository) ListEmployeesByBranch(ctx context.Context, businessID, branchID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE business_id = $1 AND branch_id = $2 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list employees", err)
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var m models.Employee
		if err := rows.Scan(&m.EmployeeID, &m.BusinessID, &m.BranchID, &m.Name, &m.Email, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		result = append(result, mapping.ToDomainEmployee(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate employee rows", err)
	}
	return result, nil
}

// SavePayrollConfig creates or replaces an employee's salary configuration.
func (r *PgxPayrollRepository) SavePayrollConfig(ctx context.Context, config domain.PayrollConfig) error {
	query := `
		INSERT INTO payroll_configs (config_id, employee_id, gross_salary, pay_frequency, paye_rate, pension_employee_rate, pension_employer_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id)
		DO UPDATE SET gross_salary = EXCLUDED.gross_salary,
			pay_frequency = EXCLUDED.pay_frequency,
			paye_rate = EXCLUDED.paye_rate,
			pension_employee_rate = EXCLUDED.pension_employee_rate,
			pension_employer_rate = EXCLUDED.pension_employer_rate,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		config.ConfigID, config.EmployeeID, config.GrossSalary, string(config.PayFrequency),
		config.PAYERate, config.PensionEmployeeRate, config.PensionEmployerRate,
		config.CreatedAt, config.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save payroll config for employee "+config.EmployeeID, err)
	}
	return nil
}

// FindPayrollConfigByEmployee retrieves an employee's salary configuration.
func (r *PgxPayrollRepository) FindPayrollConfigByEmployee(ctx context.Context, employeeID string) (*domain.PayrollConfig, error) {
	var m models.PayrollConfig
	query := `
		SELECT config_id, employee_id, gross_salary, pay_frequency, paye_rate, pension_employee_rate, pension_employer_rate, created_at, updated_at
		FROM payroll_configs WHERE employee_id = $1;
	`
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&m.ConfigID, &m.EmployeeID, &m.GrossSalary, &m.PayFrequency,
		&m.PAYERate, &m.PensionEmployeeRate, &m.PensionEmployerRate,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query payroll config for employee "+employeeID, err)
	}
	d := mapping.ToDomainPayrollConfig(m)
	return &d, nil
}

// SavePayslipTx persists a payslip and its addition and deduction lines
// inside the caller's transaction.
func (r *PgxPayrollRepository) SavePayslipTx(ctx context.Context, tx pgx.Tx, payslip domain.Payslip) error {
	query := `
		INSERT INTO payslips (payslip_id, business_id, branch_id, employee_id, period_start, period_end, pay_date, gross_salary, paye, pension_employee, pension_employer, total_deductions, net_pay, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		payslip.PayslipID, payslip.BusinessID, payslip.BranchID, payslip.EmployeeID,
		payslip.PeriodStart, payslip.PeriodEnd, payslip.PayDate,
		payslip.GrossSalary, payslip.PAYE, payslip.PensionEmployee, payslip.PensionEmployer,
		payslip.TotalDeductions, payslip.NetPay,
		payslip.CreatedAt, payslip.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payslip "+payslip.PayslipID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO payslip_lines (line_id, payslip_id, line_type, name, amount)
		VALUES ($1, $2, $3, $4, $5);
	`
	lineCount := 0
	for _, line := range payslip.Additions {
		batch.Queue(lineQuery, line.LineID, line.PayslipID, mapping.PayslipLineAddition, line.Name, line.Amount)
		lineCount++
	}
	for _, line := range payslip.Deductions {
		batch.Queue(lineQuery, line.LineID, line.PayslipID, mapping.PayslipLineDeduction, line.Name, line.Amount)
		lineCount++
	}
	if lineCount == 0 {
		return nil
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < lineCount; i++ {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert payslip lines for "+payslip.PayslipID, err)
		}
	}
	return nil
}

func (r *PgxPayrollRepository) findPayslipLines(ctx context.Context, payslipID string) ([]models.PayslipLine, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT line_id, payslip_id, line_type, name, amount FROM payslip_lines WHERE payslip_id = $1 ORDER BY line_id;`,
		payslipID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payslip lines for "+payslipID, err)
	}
	defer rows.Close()

	var lines []models.PayslipLine
	for rows.Next() {
		var l models.PayslipLine
		if err := rows.Scan(&l.LineID, &l.PayslipID, &l.LineType, &l.Name, &l.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payslip line row", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate payslip line rows", err)
	}
	return lines, nil
}

const payslipColumns = `payslip_id, business_id, branch_id, employee_id, period_start, period_end, pay_date, gross_salary, paye, pension_employee, pension_employer, total_deductions, net_pay, created_at, updated_at`

func scanPayslip(row pgx.Row) (*models.Payslip, error) {
	var m models.Payslip
	err := row.Scan(
		&m.PayslipID, &m.BusinessID, &m.BranchID, &m.EmployeeID,
		&m.PeriodStart, &m.PeriodEnd, &m.PayDate,
		&m.GrossSalary, &m.PAYE, &m.PensionEmployee, &m.PensionEmployer,
		&m.TotalDeductions, &m.NetPay,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindPayslipByID retrieves a payslip and its lines.
func (r *PgxPayrollRepository) FindPayslipByID(ctx context.Context, businessID, payslipID string) (*domain.Payslip, error) {
	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE business_id = $1 AND payslip_id = $2;`
	m, err := scanPayslip(r.Pool.QueryRow(ctx, query, businessID, payslipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query payslip "+payslipID, err)
	}
	lines, err := r.findPayslipLines(ctx, payslipID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainPayslip(*m, lines)
	return &d, nil
}

// ListPayslipsByBranch retrieves a branch's payslips without lines, newest first.
func (r *PgxPayrollRepository) ListPayslipsByBranch(ctx context.Context, businessID, branchID string) ([]domain.Payslip, error) {
	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE business_id = $1 AND branch_id = $2 ORDER BY pay_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payslips", err)
	}
	defer rows.Close()

	var result []domain.Payslip
	for rows.Next() {
		m, err := scanPayslip(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payslip row", err)
		}
		result = append(result, mapping.ToDomainPayslip(*m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate payslip rows", err)
	}
	return result, nil
}
