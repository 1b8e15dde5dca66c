package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee maps the employees table.
type Employee struct {
	EmployeeID string `db:"employee_id"`
	BusinessID string `db:"business_id"`
	BranchID   string `db:"branch_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Role       string `db:"role"`
	AuditFields
}

// PayrollConfig maps the payroll_configs table.
type PayrollConfig struct {
	ConfigID            string          `db:"config_id"`
	EmployeeID          string          `db:"employee_id"`
	GrossSalary         decimal.Decimal `db:"gross_salary"`
	PayFrequency        string          `db:"pay_frequency"`
	PAYERate            decimal.Decimal `db:"paye_rate"`
	PensionEmployeeRate decimal.Decimal `db:"pension_employee_rate"`
	PensionEmployerRate decimal.Decimal `db:"pension_employer_rate"`
	AuditFields
}

// Payslip maps the payslips table.
type Payslip struct {
	PayslipID       string          `db:"payslip_id"`
	BusinessID      string          `db:"business_id"`
	BranchID        string          `db:"branch_id"`
	EmployeeID      string          `db:"employee_id"`
	PeriodStart     time.Time       `db:"period_start"`
	PeriodEnd       time.Time       `db:"period_end"`
	PayDate         time.Time       `db:"pay_date"`
	GrossSalary     decimal.Decimal `db:"gross_salary"`
	PAYE            decimal.Decimal `db:"paye"`
	PensionEmployee decimal.Decimal `db:"pension_employee"`
	PensionEmployer decimal.Decimal `db:"pension_employer"`
	TotalDeductions decimal.Decimal `db:"total_deductions"`
	NetPay          decimal.Decimal `db:"net_pay"`
	AuditFields
}

// PayslipLine maps the payslip_lines table. LineType is ADDITION or DEDUCTION.
type PayslipLine struct {
	LineID    string          `db:"line_id"`
	PayslipID string          `db:"payslip_id"`
	LineType  string          `db:"line_type"`
	Name      string          `db:"name"`
	Amount    decimal.Decimal `db:"amount"`
}

// ReconciliationBatch maps the reconciliations table.
type ReconciliationBatch struct {
	ReconciliationID string          `db:"reconciliation_id"`
	BusinessID       string          `db:"business_id"`
	BranchID         string          `db:"branch_id"`
	AccountID        string          `db:"account_id"`
	StatementDate    time.Time       `db:"statement_date"`
	StatementBalance decimal.Decimal `db:"statement_balance"`
	ReconciledAt     time.Time       `db:"reconciled_at"`
}
