package services

import (
	"context"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/Omerhrr/Booklet/internal/dto"
)

// AccountSvc manages the chart of accounts of a business.
type AccountSvc interface {
	// CreateAccount adds a user-defined account to the chart.
	CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves one account.
	GetAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts grouped by account type.
	ListAccounts(ctx context.Context, businessID string) (map[domain.AccountType][]domain.Account, error)

	// UpdateAccount renames or describes an account. System accounts cannot be renamed.
	UpdateAccount(ctx context.Context, businessID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account that is not a system account and has no postings.
	DeleteAccount(ctx context.Context, businessID, accountID string) error

	// ListPaymentAccounts retrieves the accounts money can be paid from or
	// into for a branch: the business Cash account plus the branch's bank accounts.
	ListPaymentAccounts(ctx context.Context, businessID, branchID string) ([]domain.Account, error)
}

// BusinessSvc handles tenant onboarding.
type BusinessSvc interface {
	// CreateBusiness creates the business, its default branch and the seeded
	// system chart of accounts in one transaction.
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest) (*domain.Business, error)

	// GetBusinessByID retrieves one business.
	GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// CreateBranch adds a branch to an existing business.
	CreateBranch(ctx context.Context, businessID string, req dto.CreateBranchRequest) (*domain.Branch, error)

	// ListBranches retrieves the branches of a business.
	ListBranches(ctx context.Context, businessID string) ([]domain.Branch, error)
}
