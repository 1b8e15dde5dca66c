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
)

// bankingService covers bank accounts, transfers, VAT settlement and
// reconciliation.
type bankingService struct {
	BaseService
	accountRepo        portsrepo.AccountRepositoryFacade
	bankAccountRepo    portsrepo.BankAccountRepository
	postingRepo        portsrepo.PostingReader
	expenseRepo        portsrepo.ExpenseRepository
	reconciliationRepo portsrepo.ReconciliationRepository
	ledgerSvc          portssvc.LedgerSvc
	txManager          portsrepo.TransactionManager
}

// NewBankingService creates a new BankingSvc.
func NewBankingService(
	accountRepo portsrepo.AccountRepositoryFacade,
	bankAccountRepo portsrepo.BankAccountRepository,
	postingRepo portsrepo.PostingReader,
	expenseRepo portsrepo.ExpenseRepository,
	reconciliationRepo portsrepo.ReconciliationRepository,
	ledgerSvc portssvc.LedgerSvc,
	txManager portsrepo.TransactionManager,
) portssvc.BankingSvc {
	return &bankingService{
		accountRepo:        accountRepo,
		bankAccountRepo:    bankAccountRepo,
		postingRepo:        postingRepo,
		expenseRepo:        expenseRepo,
		reconciliationRepo: reconciliationRepo,
		ledgerSvc:          ledgerSvc,
		txManager:          txManager,
	}
}

var _ portssvc.BankingSvc = (*bankingService)(nil)

// CreateBankAccount creates the chart account and its bank detail record
// together. The chart account is a system asset account so it cannot be
// renamed or deleted out from under the bank record.
func (s *bankingService) CreateBankAccount(ctx context.Context, businessID string, req dto.CreateBankAccountRequest) (*domain.BankAccount, error) {
	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		BusinessID:      businessID,
		Name:            req.AccountName,
		AccountType:     domain.Asset,
		Description:     fmt.Sprintf("%s account %s", req.BankName, req.AccountNumber),
		IsSystemAccount: true,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	bankAccount := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		AccountID:     account.AccountID,
		BusinessID:    businessID,
		BranchID:      req.BranchID,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	if err := s.accountRepo.SaveAccountTx(ctx, tx, account); err != nil {
		s.LogError(ctx, err, "failed to save bank chart account", slog.String("business_id", businessID))
		return nil, err
	}
	if err := s.bankAccountRepo.SaveBankAccountTx(ctx, tx, bankAccount); err != nil {
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "bank account created",
		slog.String("business_id", businessID),
		slog.String("account_name", req.AccountName))
	return &bankAccount, nil
}

func (s *bankingService) ListBankAccounts(ctx context.Context, businessID, branchID string) ([]domain.BankAccount, error) {
	return s.bankAccountRepo.ListBankAccountsByBranch(ctx, businessID, branchID)
}

// TransferFunds moves money between two payment accounts of the business.
func (s *bankingService) TransferFunds(ctx context.Context, businessID string, req dto.FundTransferRequest) (*domain.FundTransfer, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrInvalidTransferTarget)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: cannot transfer an account to itself", apperrors.ErrInvalidTransferTarget)
	}

	fromAccount, err := s.accountRepo.FindAccountByID(ctx, businessID, req.FromAccountID)
	if err != nil {
		return nil, err
	}
	toAccount, err := s.accountRepo.FindAccountByID(ctx, businessID, req.ToAccountID)
	if err != nil {
		return nil, err
	}
	if fromAccount.AccountType != domain.Asset || toAccount.AccountType != domain.Asset {
		return nil, fmt.Errorf("%w: transfers move money between asset accounts", apperrors.ErrInvalidTransferTarget)
	}

	now := time.Now()
	transfer := domain.FundTransfer{
		TransferID:    uuid.NewString(),
		BusinessID:    businessID,
		BranchID:      req.BranchID,
		TransferDate:  req.TransferDate,
		Description:   req.Description,
		Amount:        req.Amount,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	if err := s.expenseRepo.SaveFundTransferTx(ctx, tx, transfer); err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Transfer from %s to %s", fromAccount.Name, toAccount.Name)
	}
	source := domain.SourceRef{Kind: domain.SourceFundTransfer, DocumentID: transfer.TransferID}
	lines := []domain.DraftLine{
		{AccountID: toAccount.AccountID, Description: description, Debit: req.Amount, Source: source},
		{AccountID: fromAccount.AccountID, Description: description, Credit: req.Amount, Source: source},
	}
	if _, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, req.BranchID, req.TransferDate, lines); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "funds transferred",
		slog.String("business_id", businessID),
		slog.String("amount", req.Amount.String()))
	return &transfer, nil
}

func (s *bankingService) ListFundTransfers(ctx context.Context, businessID, branchID string) ([]domain.FundTransfer, error) {
	return s.expenseRepo.ListFundTransfersByBranch(ctx, businessID, branchID)
}

// SettleVAT posts a VAT payment voucher clearing output VAT against input
// VAT, the remainder paid from a payment account.
func (s *bankingService) SettleVAT(ctx context.Context, businessID string, req dto.VATSettlementRequest) ([]domain.Posting, error) {
	accounts, err := findSystemAccounts(ctx, s.accountRepo, businessID, domain.AccountOutputVAT, domain.AccountInputVAT)
	if err != nil {
		return nil, err
	}
	outputVAT := accounts[domain.AccountOutputVAT]
	inputVAT := accounts[domain.AccountInputVAT]
	paymentAccount, err := s.accountRepo.FindAccountByID(ctx, businessID, req.PaidFromAccountID)
	if err != nil {
		return nil, err
	}

	// Balances up to and including the payment date.
	cutoff := req.PaymentDate.AddDate(0, 0, 1)
	outputNet, err := s.postingRepo.SumAccountBefore(ctx, businessID, outputVAT.AccountID, cutoff)
	if err != nil {
		return nil, err
	}
	inputNet, err := s.postingRepo.SumAccountBefore(ctx, businessID, inputVAT.AccountID, cutoff)
	if err != nil {
		return nil, err
	}

	// Output VAT carries a credit balance, so its net is negative when VAT
	// is owed.
	owed := outputNet.Neg()
	payable := owed.Sub(inputNet)
	if !payable.IsPositive() {
		return nil, fmt.Errorf("%w: no VAT payable, net position is %s", apperrors.ErrValidation, payable)
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	description := req.Description
	if description == "" {
		description = "VAT settlement"
	}
	source := domain.SourceRef{Kind: domain.SourceJournalVoucher, DocumentID: uuid.NewString()}
	lines := []domain.DraftLine{
		{AccountID: outputVAT.AccountID, Description: description, Debit: owed, Source: source},
		{AccountID: paymentAccount.AccountID, Description: description, Credit: payable, Source: source},
	}
	if inputNet.IsPositive() {
		lines = append(lines, domain.DraftLine{
			AccountID: inputVAT.AccountID, Description: description, Credit: inputNet, Source: source,
		})
	}
	postings, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, req.BranchID, req.PaymentDate, lines)
	if err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "VAT settled",
		slog.String("business_id", businessID),
		slog.String("payable", payable.String()))
	return postings, nil
}

// ListUnreconciledPostings retrieves postings of a payment account not yet
// claimed by any reconciliation batch.
func (s *bankingService) ListUnreconciledPostings(ctx context.Context, businessID, accountID string) ([]domain.Posting, error) {
	return s.reconciliationRepo.ListUnreconciledPostings(ctx, businessID, accountID)
}

// GetReconciliationOpeningBalance returns the net of all reconciled postings
// on the account, the starting point for the next statement.
func (s *bankingService) GetReconciliationOpeningBalance(ctx context.Context, businessID, accountID string) (decimal.Decimal, error) {
	return s.reconciliationRepo.SumReconciled(ctx, businessID, accountID)
}

// Reconcile records a statement sign-off: creates the immutable batch, flags
// the chosen postings and stamps the bank account checkpoint. A posting
// already claimed by an earlier batch fails the whole request.
func (s *bankingService) Reconcile(ctx context.Context, businessID string, req dto.ReconcileRequest) (*domain.ReconciliationBatch, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, businessID, req.AccountID); err != nil {
		return nil, err
	}

	batch := domain.ReconciliationBatch{
		ReconciliationID: uuid.NewString(),
		BusinessID:       businessID,
		BranchID:         req.BranchID,
		AccountID:        req.AccountID,
		StatementDate:    req.StatementDate,
		StatementBalance: req.StatementBalance,
		ReconciledAt:     time.Now(),
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	if err := s.reconciliationRepo.SaveBatchTx(ctx, tx, batch); err != nil {
		return nil, err
	}
	flagged, err := s.reconciliationRepo.FlagPostingsTx(ctx, tx, batch, req.PostingIDs)
	if err != nil {
		return nil, err
	}
	if flagged != int64(len(req.PostingIDs)) {
		return nil, fmt.Errorf("%w: %d of %d postings could not be reconciled, they may belong to another account or an earlier batch",
			apperrors.ErrValidation, int64(len(req.PostingIDs))-flagged, len(req.PostingIDs))
	}
	if err := s.bankAccountRepo.StampReconciliationTx(ctx, tx, req.AccountID, batch); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "reconciliation recorded",
		slog.String("account_id", req.AccountID),
		slog.Int("postings", len(req.PostingIDs)))
	return &batch, nil
}

func (s *bankingService) ListReconciliations(ctx context.Context, businessID, accountID string) ([]domain.ReconciliationBatch, error) {
	return s.reconciliationRepo.ListBatchesByAccount(ctx, businessID, accountID)
}

// GetReconciliationReport rebuilds one batch's statement view: the cleared
// postings with their net, open postings dated on or before the statement
// date and the balance carried over from the previous batch.
func (s *bankingService) GetReconciliationReport(ctx context.Context, businessID, reconciliationID string) (*domain.ReconciliationReport, error) {
	batch, err := s.reconciliationRepo.FindBatchByID(ctx, businessID, reconciliationID)
	if err != nil {
		return nil, err
	}

	cleared, err := s.reconciliationRepo.ListBatchPostings(ctx, businessID, reconciliationID)
	if err != nil {
		return nil, err
	}
	clearedNet := decimal.Zero
	for _, p := range cleared {
		clearedNet = clearedNet.Add(p.Debit).Sub(p.Credit)
	}

	open, err := s.reconciliationRepo.ListUnreconciledPostings(ctx, businessID, batch.AccountID)
	if err != nil {
		return nil, err
	}
	var uncleared []domain.Posting
	for _, p := range open {
		if !p.TransactionDate.After(batch.StatementDate) {
			uncleared = append(uncleared, p)
		}
	}

	history, err := s.reconciliationRepo.ListBatchesByAccount(ctx, businessID, batch.AccountID)
	if err != nil {
		return nil, err
	}
	// The previous statement's closing balance is the starting point of this
	// one; zero when this is the account's first reconciliation.
	previousBalance := decimal.Zero
	var previousDate time.Time
	for _, b := range history {
		if b.StatementDate.Before(batch.StatementDate) && b.StatementDate.After(previousDate) {
			previousBalance = b.StatementBalance
			previousDate = b.StatementDate
		}
	}

	return &domain.ReconciliationReport{
		Batch:             *batch,
		PreviousBalance:   previousBalance,
		ClearedNet:        clearedNet,
		ClearedPostings:   cleared,
		UnclearedPostings: uncleared,
	}, nil
}
