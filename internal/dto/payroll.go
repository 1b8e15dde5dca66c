package dto

import (
	"time"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the payload for adding an employee.
type CreateEmployeeRequest struct {
	BranchID string `json:"branchID" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role"`
}

// PayrollConfigRequest defines the payload for setting an employee's salary
// configuration. Rates are percentages.
type PayrollConfigRequest struct {
	GrossSalary         decimal.Decimal `json:"grossSalary" binding:"required"`
	PayFrequency        string          `json:"payFrequency" binding:"required,oneof=Monthly Weekly"`
	PAYERate            decimal.Decimal `json:"payeRate"`
	PensionEmployeeRate decimal.Decimal `json:"pensionEmployeeRate"`
	PensionEmployerRate decimal.Decimal `json:"pensionEmployerRate"`
}

// PayrollLineRequest defines one named addition or deduction on a payslip.
type PayrollLineRequest struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PayrollEntryRequest selects one employee for a payroll run with any
// one-off additions and deductions.
type PayrollEntryRequest struct {
	EmployeeID string               `json:"employeeID" binding:"required"`
	Additions  []PayrollLineRequest `json:"additions" binding:"dive"`
	Deductions []PayrollLineRequest `json:"deductions" binding:"dive"`
}

// RunPayrollRequest defines the payload for running payroll over a period.
type RunPayrollRequest struct {
	BranchID    string                `json:"branchID" binding:"required"`
	PeriodStart time.Time             `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time             `json:"periodEnd" binding:"required"`
	PayDate     time.Time             `json:"payDate" binding:"required"`
	Entries     []PayrollEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// PayslipResponse defines the data returned for a payslip.
type PayslipResponse struct {
	PayslipID       string          `json:"payslipID"`
	EmployeeID      string          `json:"employeeID"`
	BranchID        string          `json:"branchID"`
	PeriodStart     time.Time       `json:"periodStart"`
	PeriodEnd       time.Time       `json:"periodEnd"`
	PayDate         time.Time       `json:"payDate"`
	GrossSalary     decimal.Decimal `json:"grossSalary"`
	PAYE            decimal.Decimal `json:"paye"`
	PensionEmployee decimal.Decimal `json:"pensionEmployee"`
	PensionEmployer decimal.Decimal `json:"pensionEmployer"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetPay          decimal.Decimal `json:"netPay"`
}

// ToPayslipResponse converts a domain.Payslip to PayslipResponse DTO.
func ToPayslipResponse(p *domain.Payslip) PayslipResponse {
	return PayslipResponse{
		PayslipID:       p.PayslipID,
		EmployeeID:      p.EmployeeID,
		BranchID:        p.BranchID,
		PeriodStart:     p.PeriodStart,
		PeriodEnd:       p.PeriodEnd,
		PayDate:         p.PayDate,
		GrossSalary:     p.GrossSalary,
		PAYE:            p.PAYE,
		PensionEmployee: p.PensionEmployee,
		PensionEmployer: p.PensionEmployer,
		TotalDeductions: p.TotalDeductions,
		NetPay:          p.NetPay,
	}
}

// ToPayslipResponses converts a slice of domain.Payslip to []PayslipResponse.
func ToPayslipResponses(ps []domain.Payslip) []PayslipResponse {
	responses := make([]PayslipResponse, len(ps))
	for i, p := range ps {
		responses[i] = ToPayslipResponse(&p)
	}
	return responses
}
