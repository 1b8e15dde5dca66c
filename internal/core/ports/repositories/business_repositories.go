package repositories

import (
	"context"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BusinessReader defines read operations for tenant data
type BusinessReader interface {
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
	FindBranchByID(ctx context.Context, businessID, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context, businessID string) ([]domain.Branch, error)
}

// BusinessWriter defines write operations for tenant data
type BusinessWriter interface {
	SaveBusinessTx(ctx context.Context, tx pgx.Tx, business domain.Business) error
	SaveBranchTx(ctx context.Context, tx pgx.Tx, branch domain.Branch) error
	UpdateBusiness(ctx context.Context, business domain.Business) error
}

// BusinessRepositoryFacade combines business reader and writer interfaces
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}

// BusinessRepositoryWithTx extends BusinessRepositoryFacade with transaction capabilities
type BusinessRepositoryWithTx interface {
	BusinessRepositoryFacade
	TransactionManager
}
