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

// seededAccount is one row of the default chart created at onboarding.
type seededAccount struct {
	name        string
	accountType domain.AccountType
	system      bool
}

// defaultChart is the chart of accounts every new business starts with. The
// system rows are the accounts workflows post against; the rest are a useful
// starter set the user may rename or delete.
var defaultChart = []seededAccount{
	{domain.AccountCash, domain.Asset, true},
	{domain.AccountAccountsReceivable, domain.Asset, true},
	{domain.AccountInventory, domain.Asset, true},
	{domain.AccountInputVAT, domain.Asset, true},
	{domain.AccountAccountsPayable, domain.Liability, true},
	{domain.AccountPayrollLiabilities, domain.Liability, true},
	{domain.AccountPAYEPayable, domain.Liability, true},
	{domain.AccountPensionPayable, domain.Liability, true},
	{domain.AccountOutputVAT, domain.Liability, true},
	{domain.AccountOwnersEquity, domain.Equity, true},
	{domain.AccountSalesRevenue, domain.Revenue, true},
	{domain.AccountOtherIncome, domain.Revenue, true},
	{domain.AccountCOGS, domain.Expense, true},
	{domain.AccountSalaryExpense, domain.Expense, true},
	{"Rent Expense", domain.Expense, false},
	{"Utilities Expense", domain.Expense, false},
}

// businessService handles tenant onboarding.
type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	txManager    portsrepo.TransactionManager
}

// NewBusinessService creates a new BusinessSvc.
func NewBusinessService(businessRepo portsrepo.BusinessRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager) portssvc.BusinessSvc {
	return &businessService{
		businessRepo: businessRepo,
		accountRepo:  accountRepo,
		txManager:    txManager,
	}
}

var _ portssvc.BusinessSvc = (*businessService)(nil)

// CreateBusiness creates the business, its default branch and the seeded
// system chart of accounts in one transaction.
func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest) (*domain.Business, error) {
	if req.VATRate.IsNegative() {
		return nil, fmt.Errorf("%w: VAT rate must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	business := domain.Business{
		BusinessID:      uuid.NewString(),
		Name:            req.Name,
		IsVATRegistered: req.IsVATRegistered,
		VATRate:         req.VATRate,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	branch := domain.Branch{
		BranchID:   uuid.NewString(),
		BusinessID: business.BusinessID,
		Name:       req.BranchName,
		Currency:   req.Currency,
		IsDefault:  true,
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

	if err := s.businessRepo.SaveBusinessTx(ctx, tx, business); err != nil {
		s.LogError(ctx, err, "failed to save business", slog.String("name", req.Name))
		return nil, err
	}
	if err := s.businessRepo.SaveBranchTx(ctx, tx, branch); err != nil {
		s.LogError(ctx, err, "failed to save default branch", slog.String("business_id", business.BusinessID))
		return nil, err
	}

	for _, seed := range defaultChart {
		account := domain.Account{
			AccountID:       uuid.NewString(),
			BusinessID:      business.BusinessID,
			Name:            seed.name,
			AccountType:     seed.accountType,
			IsSystemAccount: seed.system,
			IsActive:        true,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if err := s.accountRepo.SaveAccountTx(ctx, tx, account); err != nil {
			s.LogError(ctx, err, "failed to seed account",
				slog.String("business_id", business.BusinessID),
				slog.String("account_name", seed.name))
			return nil, fmt.Errorf("failed to seed account %q: %w", seed.name, err)
		}
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "business created",
		slog.String("business_id", business.BusinessID),
		slog.String("name", business.Name))
	return &business, nil
}

// GetBusinessByID retrieves one business.
func (s *businessService) GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	return s.businessRepo.FindBusinessByID(ctx, businessID)
}

// CreateBranch adds a branch to an existing business.
func (s *businessService) CreateBranch(ctx context.Context, businessID string, req dto.CreateBranchRequest) (*domain.Branch, error) {
	if _, err := s.businessRepo.FindBusinessByID(ctx, businessID); err != nil {
		return nil, err
	}

	now := time.Now()
	branch := domain.Branch{
		BranchID:   uuid.NewString(),
		BusinessID: businessID,
		Name:       req.Name,
		Currency:   req.Currency,
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

	if err := s.businessRepo.SaveBranchTx(ctx, tx, branch); err != nil {
		s.LogError(ctx, err, "failed to save branch", slog.String("business_id", businessID))
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &branch, nil
}

// ListBranches retrieves the branches of a business.
func (s *businessService) ListBranches(ctx context.Context, businessID string) ([]domain.Branch, error) {
	return s.businessRepo.ListBranches(ctx, businessID)
}
