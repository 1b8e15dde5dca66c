package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/Omerhrr/Booklet/internal/utils/accounting"
)

// payrollService computes and posts payroll.
type payrollService struct {
	BaseService
	payrollRepo portsrepo.PayrollRepository
	accountRepo portsrepo.AccountReader
	ledgerSvc   portssvc.LedgerSvc
	txManager   portsrepo.TransactionManager
}

// NewPayrollService creates a new PayrollSvc.
func NewPayrollService(payrollRepo portsrepo.PayrollRepository, accountRepo portsrepo.AccountReader, ledgerSvc portssvc.LedgerSvc, txManager portsrepo.TransactionManager) portssvc.PayrollSvc {
	return &payrollService{
		payrollRepo: payrollRepo,
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
		txManager:   txManager,
	}
}

var _ portssvc.PayrollSvc = (*payrollService)(nil)

func (s *payrollService) CreateEmployee(ctx context.Context, businessID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	now := time.Now()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		BusinessID: businessID,
		BranchID:   req.BranchID,
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.payrollRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "failed to save employee", slog.String("business_id", businessID))
		return nil, err
	}
	return &employee, nil
}

func (s *payrollService) ListEmployees(ctx context.Context, businessID, branchID string) ([]domain.Employee, error) {
	return s.payrollRepo.ListEmployeesByBranch(ctx, businessID, branchID)
}

// SetPayrollConfig creates or replaces an employee's salary configuration.
func (s *payrollService) SetPayrollConfig(ctx context.Context, businessID, employeeID string, req dto.PayrollConfigRequest) (*domain.PayrollConfig, error) {
	if !req.GrossSalary.IsPositive() {
		return nil, fmt.Errorf("%w: gross salary must be positive", apperrors.ErrValidation)
	}
	if req.PAYERate.IsNegative() || req.PensionEmployeeRate.IsNegative() || req.PensionEmployerRate.IsNegative() {
		return nil, fmt.Errorf("%w: statutory rates must not be negative", apperrors.ErrValidation)
	}
	if _, err := s.payrollRepo.FindEmployeeByID(ctx, businessID, employeeID); err != nil {
		return nil, err
	}

	now := time.Now()
	config := domain.PayrollConfig{
		ConfigID:            uuid.NewString(),
		EmployeeID:          employeeID,
		GrossSalary:         req.GrossSalary,
		PayFrequency:        domain.PayFrequency(req.PayFrequency),
		PAYERate:            req.PAYERate,
		PensionEmployeeRate: req.PensionEmployeeRate,
		PensionEmployerRate: req.PensionEmployerRate,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.payrollRepo.SavePayrollConfig(ctx, config); err != nil {
		s.LogError(ctx, err, "failed to save payroll config", slog.String("employee_id", employeeID))
		return nil, err
	}
	return &config, nil
}

// RunPayroll computes payslips for the given employees and posts the payroll
// group per employee, all in one transaction. Statutory amounts round up to
// whole currency units; PAYE is computed on gross plus additions, pensions on
// gross alone.
func (s *payrollService) RunPayroll(ctx context.Context, businessID string, req dto.RunPayrollRequest) ([]domain.Payslip, error) {
	names := []string{domain.AccountSalaryExpense, domain.AccountPayrollLiabilities, domain.AccountPAYEPayable, domain.AccountPensionPayable}
	accounts, err := findSystemAccounts(ctx, s.accountRepo, businessID, names...)
	if err != nil {
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	now := time.Now()
	payslips := make([]domain.Payslip, 0, len(req.Entries))
	for _, entry := range req.Entries {
		employee, err := s.payrollRepo.FindEmployeeByID(ctx, businessID, entry.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee.BranchID != req.BranchID {
			return nil, fmt.Errorf("%w: employee %s belongs to another branch", apperrors.ErrBranchMismatch, employee.EmployeeID)
		}
		config, err := s.payrollRepo.FindPayrollConfigByEmployee(ctx, entry.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("employee %s has no payroll config: %w", entry.EmployeeID, err)
		}

		additionsTotal := decimal.Zero
		additions := make([]domain.PayslipLine, 0, len(entry.Additions))
		for _, line := range entry.Additions {
			if !line.Amount.IsPositive() {
				return nil, fmt.Errorf("%w: addition %q must be positive", apperrors.ErrValidation, line.Name)
			}
			additionsTotal = additionsTotal.Add(line.Amount)
			additions = append(additions, domain.PayslipLine{
				LineID: uuid.NewString(),
				Name:   line.Name,
				Amount: line.Amount,
			})
		}
		otherDeductions := decimal.Zero
		deductions := make([]domain.PayslipLine, 0, len(entry.Deductions))
		for _, line := range entry.Deductions {
			if !line.Amount.IsPositive() {
				return nil, fmt.Errorf("%w: deduction %q must be positive", apperrors.ErrValidation, line.Name)
			}
			otherDeductions = otherDeductions.Add(line.Amount)
			deductions = append(deductions, domain.PayslipLine{
				LineID: uuid.NewString(),
				Name:   line.Name,
				Amount: line.Amount,
			})
		}

		taxable := config.GrossSalary.Add(additionsTotal)
		paye := accounting.ApplyRateCeil(taxable, config.PAYERate)
		pensionEmployee := accounting.ApplyRateCeil(config.GrossSalary, config.PensionEmployeeRate)
		pensionEmployer := accounting.ApplyRateCeil(config.GrossSalary, config.PensionEmployerRate)
		totalDeductions := paye.Add(pensionEmployee).Add(otherDeductions)
		netPay := taxable.Sub(totalDeductions)
		if netPay.IsNegative() {
			return nil, fmt.Errorf("%w: deductions exceed pay for employee %s", apperrors.ErrValidation, employee.EmployeeID)
		}

		payslip := domain.Payslip{
			PayslipID:       uuid.NewString(),
			BusinessID:      businessID,
			BranchID:        req.BranchID,
			EmployeeID:      employee.EmployeeID,
			PeriodStart:     req.PeriodStart,
			PeriodEnd:       req.PeriodEnd,
			PayDate:         req.PayDate,
			GrossSalary:     config.GrossSalary,
			PAYE:            paye,
			PensionEmployee: pensionEmployee,
			PensionEmployer: pensionEmployer,
			TotalDeductions: totalDeductions,
			NetPay:          netPay,
			Additions:       additions,
			Deductions:      deductions,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		for i := range payslip.Additions {
			payslip.Additions[i].PayslipID = payslip.PayslipID
		}
		for i := range payslip.Deductions {
			payslip.Deductions[i].PayslipID = payslip.PayslipID
		}

		if err := s.payrollRepo.SavePayslipTx(ctx, tx, payslip); err != nil {
			return nil, err
		}

		// Employer cost is gross pay, one-off additions and the employer
		// pension contribution. Withheld amounts sit in their liability
		// accounts until remitted; everything else is owed to the employee.
		source := domain.SourceRef{Kind: domain.SourcePayslip, DocumentID: payslip.PayslipID}
		description := fmt.Sprintf("Payroll for %s", employee.Name)
		salaryCost := taxable.Add(pensionEmployer)
		lines := []domain.DraftLine{
			{AccountID: accounts[domain.AccountSalaryExpense].AccountID, Description: description, Debit: salaryCost, Source: source},
		}
		if paye.IsPositive() {
			lines = append(lines, domain.DraftLine{
				AccountID: accounts[domain.AccountPAYEPayable].AccountID, Description: description, Credit: paye, Source: source,
			})
		}
		pensionTotal := pensionEmployee.Add(pensionEmployer)
		if pensionTotal.IsPositive() {
			lines = append(lines, domain.DraftLine{
				AccountID: accounts[domain.AccountPensionPayable].AccountID, Description: description, Credit: pensionTotal, Source: source,
			})
		}
		owedToEmployee := netPay.Add(otherDeductions)
		if owedToEmployee.IsPositive() {
			lines = append(lines, domain.DraftLine{
				AccountID: accounts[domain.AccountPayrollLiabilities].AccountID, Description: description, Credit: owedToEmployee, Source: source,
			})
		}
		if _, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, req.BranchID, req.PayDate, lines); err != nil {
			return nil, err
		}

		payslips = append(payslips, payslip)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "payroll run completed",
		slog.String("business_id", businessID),
		slog.Int("payslips", len(payslips)))
	return payslips, nil
}

func (s *payrollService) GetPayslipByID(ctx context.Context, businessID, payslipID string) (*domain.Payslip, error) {
	return s.payrollRepo.FindPayslipByID(ctx, businessID, payslipID)
}

func (s *payrollService) ListPayslips(ctx context.Context, businessID, branchID string) ([]domain.Payslip, error) {
	return s.payrollRepo.ListPayslipsByBranch(ctx, businessID, branchID)
}
