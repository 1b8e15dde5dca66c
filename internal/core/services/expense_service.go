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

// expenseService covers direct spend and non-sales income.
type expenseService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepository
	sequenceRepo portsrepo.SequenceRepository
	accountRepo  portsrepo.AccountReader
	businessRepo portsrepo.BusinessReader
	ledgerSvc    portssvc.LedgerSvc
	txManager    portsrepo.TransactionManager
}

// NewExpenseService creates a new ExpenseSvc.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepository,
	sequenceRepo portsrepo.SequenceRepository,
	accountRepo portsrepo.AccountReader,
	businessRepo portsrepo.BusinessReader,
	ledgerSvc portssvc.LedgerSvc,
	txManager portsrepo.TransactionManager,
) portssvc.ExpenseSvc {
	return &expenseService{
		expenseRepo:  expenseRepo,
		sequenceRepo: sequenceRepo,
		accountRepo:  accountRepo,
		businessRepo: businessRepo,
		ledgerSvc:    ledgerSvc,
		txManager:    txManager,
	}
}

var _ portssvc.ExpenseSvc = (*expenseService)(nil)

// CreateExpense numbers and posts an immediately-paid expense. Input VAT is
// added on top of the subtotal when requested and the business is registered.
func (s *expenseService) CreateExpense(ctx context.Context, businessID string, req dto.CreateExpenseRequest) (*domain.ExpenseRecord, error) {
	if !req.SubTotal.IsPositive() {
		return nil, fmt.Errorf("%w: expense subtotal must be positive", apperrors.ErrValidation)
	}

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	expenseAccount, err := s.accountRepo.FindAccountByID(ctx, businessID, req.ExpenseAccountID)
	if err != nil {
		return nil, err
	}
	if expenseAccount.AccountType != domain.Expense {
		return nil, fmt.Errorf("%w: account %q is not an expense account", apperrors.ErrValidation, expenseAccount.Name)
	}
	paidFromAccount, err := s.accountRepo.FindAccountByID(ctx, businessID, req.PaidFromAccountID)
	if err != nil {
		return nil, err
	}

	vatAmount := decimal.Zero
	if req.ApplyVAT && business.IsVATRegistered {
		vatAmount = accounting.ApplyRate(req.SubTotal, business.VATRate)
	}
	total := req.SubTotal.Add(vatAmount)

	var inputVAT domain.Account
	if vatAmount.IsPositive() {
		accounts, err := findSystemAccounts(ctx, s.accountRepo, businessID, domain.AccountInputVAT)
		if err != nil {
			return nil, err
		}
		inputVAT = accounts[domain.AccountInputVAT]
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	number, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.KindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate expense number: %w", err)
	}

	now := time.Now()
	expense := domain.ExpenseRecord{
		ExpenseID:         uuid.NewString(),
		ExpenseNumber:     number,
		BusinessID:        businessID,
		BranchID:          req.BranchID,
		ExpenseDate:       req.ExpenseDate,
		Category:          expenseAccount.Name,
		Description:       req.Description,
		SubTotal:          req.SubTotal,
		VATAmount:         vatAmount,
		Amount:            total,
		ExpenseAccountID:  req.ExpenseAccountID,
		PaidFromAccountID: req.PaidFromAccountID,
		VendorID:          req.VendorID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.expenseRepo.SaveExpenseTx(ctx, tx, expense); err != nil {
		s.LogError(ctx, err, "failed to save expense", slog.String("business_id", businessID))
		return nil, err
	}

	source := domain.SourceRef{Kind: domain.SourceExpense, DocumentID: expense.ExpenseID}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Expense %s (%s)", number, expenseAccount.Name)
	}
	lines := []domain.DraftLine{
		{AccountID: expenseAccount.AccountID, Description: description, Debit: req.SubTotal, Source: source},
		{AccountID: paidFromAccount.AccountID, Description: description, Credit: total, Source: source},
	}
	if vatAmount.IsPositive() {
		lines = append(lines, domain.DraftLine{
			AccountID: inputVAT.AccountID, Description: description, Debit: vatAmount, Source: source,
		})
	}
	if _, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, req.BranchID, req.ExpenseDate, lines); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "expense created",
		slog.String("business_id", businessID),
		slog.String("expense_number", number),
		slog.String("amount", total.String()))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, businessID, branchID string) ([]domain.ExpenseRecord, error) {
	return s.expenseRepo.ListExpensesByBranch(ctx, businessID, branchID)
}

// CreateOtherIncome numbers and posts income deposited outside the sales flow.
func (s *expenseService) CreateOtherIncome(ctx context.Context, businessID string, req dto.CreateOtherIncomeRequest) (*domain.OtherIncome, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: income amount must be positive", apperrors.ErrValidation)
	}

	incomeAccount, err := s.accountRepo.FindAccountByID(ctx, businessID, req.IncomeAccountID)
	if err != nil {
		return nil, err
	}
	if incomeAccount.AccountType != domain.Revenue {
		return nil, fmt.Errorf("%w: account %q is not a revenue account", apperrors.ErrValidation, incomeAccount.Name)
	}
	depositAccount, err := s.accountRepo.FindAccountByID(ctx, businessID, req.DepositedToAccountID)
	if err != nil {
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	number, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.KindOtherIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate income number: %w", err)
	}

	now := time.Now()
	income := domain.OtherIncome{
		OtherIncomeID:        uuid.NewString(),
		IncomeNumber:         number,
		BusinessID:           businessID,
		BranchID:             req.BranchID,
		IncomeDate:           req.IncomeDate,
		Description:          req.Description,
		Amount:               req.Amount,
		IncomeAccountID:      req.IncomeAccountID,
		DepositedToAccountID: req.DepositedToAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.expenseRepo.SaveOtherIncomeTx(ctx, tx, income); err != nil {
		return nil, err
	}

	source := domain.SourceRef{Kind: domain.SourceOtherIncome, DocumentID: income.OtherIncomeID}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Other income %s", number)
	}
	lines := []domain.DraftLine{
		{AccountID: depositAccount.AccountID, Description: description, Debit: req.Amount, Source: source},
		{AccountID: incomeAccount.AccountID, Description: description, Credit: req.Amount, Source: source},
	}
	if _, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, req.BranchID, req.IncomeDate, lines); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "other income recorded",
		slog.String("business_id", businessID),
		slog.String("income_number", number),
		slog.String("amount", req.Amount.String()))
	return &income, nil
}

func (s *expenseService) ListOtherIncome(ctx context.Context, businessID, branchID string) ([]domain.OtherIncome, error) {
	return s.expenseRepo.ListOtherIncomeByBranch(ctx, businessID, branchID)
}
