package services

import (
	"context"
	"time"

	"github.com/Omerhrr/Booklet/internal/core/domain"
)

// ReportingSvc derives statements from postings at read time. A nil branchID
// spans the whole business.
type ReportingSvc interface {
	// GetTrialBalance builds the trial balance as of a date.
	GetTrialBalance(ctx context.Context, businessID string, branchID *string, asOf time.Time) (*domain.TrialBalance, error)

	// GetProfitAndLoss builds the income statement for a date range.
	GetProfitAndLoss(ctx context.Context, businessID string, branchID *string, from, to time.Time) (*domain.ProfitAndLoss, error)

	// GetBalanceSheet builds the statement of financial position as of a date,
	// including the synthetic retained earnings line for the fiscal year to date.
	GetBalanceSheet(ctx context.Context, businessID string, branchID *string, asOf time.Time) (*domain.BalanceSheet, error)

	// GetReceivablesAging buckets open sales invoices by days overdue.
	GetReceivablesAging(ctx context.Context, businessID string, branchID *string, asOf time.Time) (*domain.AgingReport, error)

	// GetPayablesAging buckets open purchase bills by days overdue.
	GetPayablesAging(ctx context.Context, businessID string, branchID *string, asOf time.Time) (*domain.AgingReport, error)

	// GetAccountStatement builds one account's ledger with opening and running balances.
	GetAccountStatement(ctx context.Context, businessID, accountID string, from, to time.Time) (*domain.AccountStatement, error)

	// GetCashbook builds the combined statement of a branch's payment accounts.
	GetCashbook(ctx context.Context, businessID, branchID string, from, to time.Time) (*domain.Cashbook, error)

	// GetCustomerStatement builds a customer's receivable ledger.
	GetCustomerStatement(ctx context.Context, businessID, customerID string, from, to time.Time) (*domain.AccountStatement, error)

	// GetVendorStatement builds a vendor's payable ledger.
	GetVendorStatement(ctx context.Context, businessID, vendorID string, from, to time.Time) (*domain.AccountStatement, error)
}

// ProductSvc manages products and stock metadata.
type ProductSvc interface {
	CreateProduct(ctx context.Context, branchID string, product domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, branchID, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, branchID string) ([]domain.Product, error)
}

// PartySvc manages customers and vendors.
type PartySvc interface {
	CreateCustomer(ctx context.Context, businessID string, customer domain.Customer) (*domain.Customer, error)
	ListCustomers(ctx context.Context, businessID, branchID string) ([]domain.Customer, error)

	CreateVendor(ctx context.Context, businessID string, vendor domain.Vendor) (*domain.Vendor, error)
	ListVendors(ctx context.Context, businessID, branchID string) ([]domain.Vendor, error)
}
