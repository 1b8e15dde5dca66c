package repositories

import (
	"context"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	FindProductByID(ctx context.Context, branchID, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, branchID string) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error

	// LockProductsTx reads the given products FOR UPDATE so stock stays
	// consistent under concurrent workflows. Returned map is keyed by product ID.
	LockProductsTx(ctx context.Context, tx pgx.Tx, branchID string, productIDs []string) (map[string]domain.Product, error)

	// AdjustStockTx applies a signed stock delta to a product already locked
	// in this transaction.
	AdjustStockTx(ctx context.Context, tx pgx.Tx, productID string, delta decimal.Decimal) error
}

// PartyRepository defines persistence for customers and vendors.
type PartyRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, businessID, customerID string) (*domain.Customer, error)
	ListCustomersByBranch(ctx context.Context, businessID, branchID string) ([]domain.Customer, error)

	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	FindVendorByID(ctx context.Context, businessID, vendorID string) (*domain.Vendor, error)
	ListVendorsByBranch(ctx context.Context, businessID, branchID string) ([]domain.Vendor, error)
}

// ProductRepositoryFacade combines product reader and writer interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

// ProductRepositoryWithTx extends ProductRepositoryFacade with transaction capabilities
type ProductRepositoryWithTx interface {
	ProductRepositoryFacade
	TransactionManager
}
