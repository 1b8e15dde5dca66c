package repositories

import (
	"context"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for chart-of-accounts data
type AccountReader interface {
	// FindAccountByID retrieves an account scoped to a business.
	FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves several accounts of a business keyed by ID.
	// IDs that do not resolve are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountByName retrieves an account by its exact name within a business.
	FindAccountByName(ctx context.Context, businessID, name string) (*domain.Account, error)

	// ListAccounts retrieves the full chart of accounts for a business.
	ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error)

	// HasPostings reports whether any posting references the account.
	HasPostings(ctx context.Context, accountID string) (bool, error)
}

// AccountWriter defines write operations for chart-of-accounts data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccountTx persists a new account inside an existing transaction.
	SaveAccountTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// UpdateAccount updates an account's name, description and active flag.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Callers must have verified it has no
	// postings and is not a system account.
	DeleteAccount(ctx context.Context, businessID, accountID string) error
}

// BankAccountRepository defines persistence for bank account details.
type BankAccountRepository interface {
	SaveBankAccountTx(ctx context.Context, tx pgx.Tx, bankAccount domain.BankAccount) error
	FindBankAccountByID(ctx context.Context, businessID, bankAccountID string) (*domain.BankAccount, error)
	FindBankAccountByAccountID(ctx context.Context, businessID, accountID string) (*domain.BankAccount, error)
	ListBankAccountsByBranch(ctx context.Context, businessID, branchID string) ([]domain.BankAccount, error)

	// StampReconciliationTx records the statement date and balance of the
	// latest reconciliation on the bank account row.
	StampReconciliationTx(ctx context.Context, tx pgx.Tx, accountID string, batch domain.ReconciliationBatch) error
}

// AccountRepositoryFacade combines account reader and writer interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
