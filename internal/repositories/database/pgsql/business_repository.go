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

type PgxBusinessRepository struct {
	BaseRepository
}

// newPgxBusinessRepository creates a new repository for tenant data.
func newPgxBusinessRepository(pool *pgxpool.Pool) *PgxBusinessRepository {
	return &PgxBusinessRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BusinessRepositoryWithTx = (*PgxBusinessRepository)(nil)

// SaveBusinessTx persists a new business inside an existing transaction.
func (r *PgxBusinessRepository) SaveBusinessTx(ctx context.Context, tx pgx.Tx, business domain.Business) error {
	m := mapping.ToModelBusiness(business)
	query := `
		INSERT INTO businesses (business_id, name, is_vat_registered, vat_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query, m.BusinessID, m.Name, m.IsVATRegistered, m.VATRate, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("business %q: %w", business.Name, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert business "+m.BusinessID, err)
	}
	return nil
}

// SaveBranchTx persists a new branch inside an existing transaction.
func (r *PgxBusinessRepository) SaveBranchTx(ctx context.Context, tx pgx.Tx, branch domain.Branch) error {
	m := mapping.ToModelBranch(branch)
	query := `
		INSERT INTO branches (branch_id, business_id, name, currency, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query, m.BranchID, m.BusinessID, m.Name, m.Currency, m.IsDefault, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("branch %q: %w", branch.Name, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert branch "+m.BranchID, err)
	}
	return nil
}

// UpdateBusiness updates a business's name and VAT settings.
func (r *PgxBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	m := mapping.ToModelBusiness(business)
	query := `
		UPDATE businesses
		SET name = $2, is_vat_registered = $3, vat_rate = $4, updated_at = $5
		WHERE business_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.BusinessID, m.Name, m.IsVATRegistered, m.VATRate, m.UpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update business "+m.BusinessID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindBusinessByID retrieves one business.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	var m models.Business
	query := `SELECT business_id, name, is_vat_registered, vat_rate, created_at, updated_at FROM businesses WHERE business_id = $1;`
	err := r.Pool.QueryRow(ctx, query, businessID).Scan(
		&m.BusinessID, &m.Name, &m.IsVATRegistered, &m.VATRate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query business "+businessID, err)
	}
	d := mapping.ToDomainBusiness(m)
	return &d, nil
}

// FindBranchByID retrieves one branch scoped to a business.
func (r *PgxBusinessRepository) FindBranchByID(ctx context.Context, businessID, branchID string) (*domain.Branch, error) {
	var m models.Branch
	query := `SELECT branch_id, business_id, name, currency, is_default, created_at, updated_at FROM branches WHERE business_id = $1 AND branch_id = $2;`
	err := r.Pool.QueryRow(ctx, query, businessID, branchID).Scan(
		&m.BranchID, &m.BusinessID, &m.Name, &m.Currency, &m.IsDefault, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query branch "+branchID, err)
	}
	d := mapping.ToDomainBranch(m)
	return &d, nil
}

// ListBranches retrieves the branches of a business.
func (r *PgxBusinessRepository) ListBranches(ctx context.Context, businessID string) ([]domain.Branch, error) {
	query := `SELECT branch_id, business_id, name, currency, is_default, created_at, updated_at FROM branches WHERE business_id = $1 ORDER BY is_default DESC, name;`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list branches", err)
	}
	defer rows.Close()

	var ms []models.Branch
	for rows.Next() {
		var m models.Branch
		if err := rows.Scan(&m.BranchID, &m.BusinessID, &m.Name, &m.Currency, &m.IsDefault, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan branch row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate branch rows", err)
	}
	return mapping.ToDomainBranchSlice(ms), nil
}
