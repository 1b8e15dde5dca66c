package mapping

import (
	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/Omerhrr/Booklet/internal/models"
)

// Line type discriminators for payslip_lines rows.
const (
	PayslipLineAddition  = "ADDITION"
	PayslipLineDeduction = "DEDUCTION"
)

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		BusinessID:  m.BusinessID,
		BranchID:    m.BranchID,
		Name:        m.Name,
		Email:       m.Email,
		Role:        m.Role,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:  d.EmployeeID,
		BusinessID:  d.BusinessID,
		BranchID:    d.BranchID,
		Name:        d.Name,
		Email:       d.Email,
		Role:        d.Role,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayrollConfig converts a model PayrollConfig to a domain PayrollConfig
func ToDomainPayrollConfig(m models.PayrollConfig) domain.PayrollConfig {
	return domain.PayrollConfig{
		ConfigID:            m.ConfigID,
		EmployeeID:          m.EmployeeID,
		GrossSalary:         m.GrossSalary,
		PayFrequency:        domain.PayFrequency(m.PayFrequency),
		PAYERate:            m.PAYERate,
		PensionEmployeeRate: m.PensionEmployeeRate,
		PensionEmployerRate: m.PensionEmployerRate,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPayslip converts a model Payslip plus its lines to a domain Payslip
func ToDomainPayslip(m models.Payslip, lines []models.PayslipLine) domain.Payslip {
	d := domain.Payslip{
		PayslipID:       m.PayslipID,
		BusinessID:      m.BusinessID,
		BranchID:        m.BranchID,
		EmployeeID:      m.EmployeeID,
		PeriodStart:     m.PeriodStart,
		PeriodEnd:       m.PeriodEnd,
		PayDate:         m.PayDate,
		GrossSalary:     m.GrossSalary,
		PAYE:            m.PAYE,
		PensionEmployee: m.PensionEmployee,
		PensionEmployer: m.PensionEmployer,
		TotalDeductions: m.TotalDeductions,
		NetPay:          m.NetPay,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	for _, line := range lines {
		dl := domain.PayslipLine{
			LineID:    line.LineID,
			PayslipID: line.PayslipID,
			Name:      line.Name,
			Amount:    line.Amount,
		}
		if line.LineType == PayslipLineAddition {
			d.Additions = append(d.Additions, dl)
		} else {
			d.Deductions = append(d.Deductions, dl)
		}
	}
	return d
}

// ToDomainReconciliationBatch converts a model ReconciliationBatch to its domain form
func ToDomainReconciliationBatch(m models.ReconciliationBatch) domain.ReconciliationBatch {
	return domain.ReconciliationBatch{
		ReconciliationID: m.ReconciliationID,
		BusinessID:       m.BusinessID,
		BranchID:         m.BranchID,
		AccountID:        m.AccountID,
		StatementDate:    m.StatementDate,
		StatementBalance: m.StatementBalance,
		ReconciledAt:     m.ReconciledAt,
	}
}
