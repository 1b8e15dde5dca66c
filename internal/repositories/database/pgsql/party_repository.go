package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	"github.com/Omerhrr/Booklet/internal/models"
	"github.com/Omerhrr/Booklet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for customers and vendors.
func newPgxPartyRepository(pool *pgxpool.Pool) *PgxPartyRepository {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

const partyColumns = `business_id, branch_id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''), created_at, updated_at`

// SaveCustomer persists a new customer.
func (r *PgxPartyRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, business_id, branch_id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query, m.CustomerID, m.BusinessID, m.BranchID, m.Name, m.Email, m.Phone, m.Address, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("customer %q: %w", customer.Name, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert customer "+m.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer scoped to a business.
func (r *PgxPartyRepository) FindCustomerByID(ctx context.Context, businessID, customerID string) (*domain.Customer, error) {
	var m models.Customer
	query := `SELECT customer_id, ` + partyColumns + ` FROM customers WHERE business_id = $1 AND customer_id = $2;`
	err := r.Pool.QueryRow(ctx, query, businessID, customerID).Scan(
		&m.CustomerID, &m.BusinessID, &m.BranchID, &m.Name, &m.Email, &m.Phone, &m.Address, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query customer "+customerID, err)
	}
	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

// ListCustomersByBranch retrieves a branch's customers.
func (r *PgxPartyRepository) ListCustomersByBranch(ctx context.Context, businessID, branchID string) ([]domain.Customer, error) {
	query := `SELECT customer_id, ` + partyColumns + ` FROM customers WHERE business_id = $1 AND branch_id = $2 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list customers", err)
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var m models.Customer
		if err := rows.Scan(&m.CustomerID, &m.BusinessID, &m.BranchID, &m.Name, &m.Email, &m.Phone, &m.Address, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan customer row", err)
		}
		result = append(result, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate customer rows", err)
	}
	return result, nil
}

// SaveVendor persists a new vendor.
func (r *PgxPartyRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	query := `
		INSERT INTO vendors (vendor_id, business_id, branch_id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query, m.VendorID, m.BusinessID, m.BranchID, m.Name, m.Email, m.Phone, m.Address, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("vendor %q: %w", vendor.Name, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert vendor "+m.VendorID, err)
	}
	return nil
}

// FindVendorByID retrieves a vendor scoped to a business.
func (r *PgxPartyRepository) FindVendorByID(ctx context.Context, businessID, vendorID string) (*domain.Vendor, error) {
	var m models.Vendor
	query := `SELECT vendor_id, ` + partyColumns + ` FROM vendors WHERE business_id = $1 AND vendor_id = $2;`
	err := r.Pool.QueryRow(ctx, query, businessID, vendorID).Scan(
		&m.VendorID, &m.BusinessID, &m.BranchID, &m.Name, &m.Email, &m.Phone, &m.Address, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query vendor "+vendorID, err)
	}
	d := mapping.ToDomainVendor(m)
	return &d, nil
}

// ListVendorsByBranch retrieves a branch's vendors.
func (r *PgxPartyRepository) ListVendorsByBranch(ctx context.Context, businessID, branchID string) ([]domain.Vendor, error) {
	query := `SELECT vendor_id, ` + partyColumns + ` FROM vendors WHERE business_id = $1 AND branch_id = $2 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list vendors", err)
	}
	defer rows.Close()

	var result []domain.Vendor
	for rows.Next() {
		var m models.Vendor
		if err := rows.Scan(&m.VendorID, &m.BusinessID, &m.BranchID, &m.Name, &m.Email, &m.Phone, &m.Address, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan vendor row", err)
		}
		result = append(result, mapping.ToDomainVendor(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate vendor rows", err)
	}
	return result, nil
}
