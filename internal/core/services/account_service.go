package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
)

// accountService manages the chart of accounts of a business.
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	bankAccountRepo portsrepo.BankAccountRepository
}

// NewAccountService creates a new AccountSvc.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, bankAccountRepo portsrepo.BankAccountRepository) portssvc.AccountSvc {
	return &accountService{
		accountRepo:     accountRepo,
		bankAccountRepo: bankAccountRepo,
	}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

// CreateAccount adds a user-defined account to the chart.
func (s *accountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %s", apperrors.ErrValidation, req.AccountType)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  businessID,
		Name:        req.Name,
		AccountType: req.AccountType,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to create account",
			slog.String("business_id", businessID),
			slog.String("name", req.Name))
		return nil, err
	}
	return &account, nil
}

// GetAccountByID retrieves one account.
func (s *accountService) GetAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, businessID, accountID)
}

// ListAccounts retrieves the chart of accounts grouped by account type.
func (s *accountService) ListAccounts(ctx context.Context, businessID string) (map[domain.AccountType][]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, businessID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[domain.AccountType][]domain.Account, len(domain.ValidAccountTypes))
	for _, account := range accounts {
		grouped[account.AccountType] = append(grouped[account.AccountType], account)
	}
	return grouped, nil
}

// UpdateAccount renames or describes an account. System accounts cannot be renamed.
func (s *accountService) UpdateAccount(ctx context.Context, businessID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != account.Name {
		if account.IsSystemAccount {
			return nil, fmt.Errorf("%w: system account %q cannot be renamed", apperrors.ErrForbidden, account.Name)
		}
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		if account.IsSystemAccount && !*req.IsActive {
			return nil, fmt.Errorf("%w: system account %q cannot be deactivated", apperrors.ErrForbidden, account.Name)
		}
		account.IsActive = *req.IsActive
	}
	account.UpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes an account that is not a system account and has no postings.
func (s *accountService) DeleteAccount(ctx context.Context, businessID, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return err
	}
	if account.IsSystemAccount {
		return fmt.Errorf("%w: system account %q cannot be deleted", apperrors.ErrForbidden, account.Name)
	}

	hasPostings, err := s.accountRepo.HasPostings(ctx, accountID)
	if err != nil {
		return err
	}
	if hasPostings {
		return fmt.Errorf("%w: account %q has postings", apperrors.ErrForbidden, account.Name)
	}

	return s.accountRepo.DeleteAccount(ctx, businessID, accountID)
}

// ListPaymentAccounts retrieves the accounts money can be paid from or into
// for a branch: the business Cash account plus the branch's bank accounts.
func (s *accountService) ListPaymentAccounts(ctx context.Context, businessID, branchID string) ([]domain.Account, error) {
	cash, err := s.accountRepo.FindAccountByName(ctx, businessID, domain.AccountCash)
	if err != nil {
		s.LogError(ctx, err, "cash account missing", slog.String("business_id", businessID))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingCoreAccount, domain.AccountCash)
	}

	bankAccounts, err := s.bankAccountRepo.ListBankAccountsByBranch(ctx, businessID, branchID)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(bankAccounts))
	for _, ba := range bankAccounts {
		accountIDs = append(accountIDs, ba.AccountID)
	}
	bankCharts, err := s.accountRepo.FindAccountsByIDs(ctx, businessID, accountIDs)
	if err != nil {
		return nil, err
	}

	result := []domain.Account{*cash}
	for _, ba := range bankAccounts {
		if account, ok := bankCharts[ba.AccountID]; ok {
			result = append(result, account)
		}
	}
	return result, nil
}
