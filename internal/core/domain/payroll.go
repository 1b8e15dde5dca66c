package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayFrequency is how often an employee is paid.
type PayFrequency string

const (
	PayMonthly PayFrequency = "Monthly"
	PayWeekly  PayFrequency = "Weekly"
)

// Employee is a payroll subject attached to one branch.
type Employee struct {
	EmployeeID string `json:"employeeID"` // Primary Key (UUID)
	BusinessID string `json:"businessID"`
	BranchID   string `json:"branchID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	AuditFields
}

// PayrollConfig holds an employee's salary and statutory rates. Rates are
// percentages, e.g. 10 for 10%.
type PayrollConfig struct {
	ConfigID            string          `json:"configID"` // Primary Key (UUID)
	EmployeeID          string          `json:"employeeID"` // Unique FK -> employees.employee_id
	GrossSalary         decimal.Decimal `json:"grossSalary"`
	PayFrequency        PayFrequency    `json:"payFrequency"`
	PAYERate            decimal.Decimal `json:"payeRate"`
	PensionEmployeeRate decimal.Decimal `json:"pensionEmployeeRate"`
	PensionEmployerRate decimal.Decimal `json:"pensionEmployerRate"`
	AuditFields
}

// PayslipLine is a named addition or deduction applied to one payslip.
type PayslipLine struct {
	LineID    string          `json:"lineID"` // Primary Key (UUID)
	PayslipID string          `json:"payslipID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// Payslip is the computed pay record for one employee and period. Statutory
// amounts are rounded up to whole currency units when computed.
type Payslip struct {
	PayslipID       string          `json:"payslipID"` // Primary Key (UUID)
	BusinessID      string          `json:"businessID"`
	BranchID        string          `json:"branchID"`
	EmployeeID      string          `json:"employeeID"`
	PeriodStart     time.Time       `json:"periodStart"`
	PeriodEnd       time.Time       `json:"periodEnd"`
	PayDate         time.Time       `json:"payDate"`
	GrossSalary     decimal.Decimal `json:"grossSalary"`
	PAYE            decimal.Decimal `json:"paye"`
	PensionEmployee decimal.Decimal `json:"pensionEmployee"`
	PensionEmployer decimal.Decimal `json:"pensionEmployer"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetPay          decimal.Decimal `json:"netPay"`
	Additions       []PayslipLine   `json:"additions"`
	Deductions      []PayslipLine   `json:"deductions"`
	AuditFields
}
