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
	"github.com/shopspring/decimal"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product and stock data.
func newPgxProductRepository(pool *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryWithTx = (*PgxProductRepository)(nil)

const productColumns = `product_id, branch_id, category_id, name, COALESCE(sku, ''), COALESCE(unit, ''), purchase_price, sales_price, opening_stock, stock_quantity, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.BranchID,
		&m.CategoryID,
		&m.Name,
		&m.SKU,
		&m.Unit,
		&m.PurchasePrice,
		&m.SalesPrice,
		&m.OpeningStock,
		&m.StockQuantity,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveProduct persists a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (product_id, branch_id, category_id, name, sku, unit, purchase_price, sales_price, opening_stock, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.BranchID, m.CategoryID, m.Name, m.SKU, m.Unit,
		m.PurchasePrice, m.SalesPrice, m.OpeningStock, m.StockQuantity,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product %q: %w", product.Name, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert product "+m.ProductID, err)
	}
	return nil
}

// UpdateProduct updates product metadata and prices. Stock moves only through AdjustStockTx.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET name = $2, sku = NULLIF($3, ''), unit = NULLIF($4, ''), category_id = $5,
			purchase_price = $6, sales_price = $7, updated_at = $8
		WHERE product_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ProductID, m.Name, m.SKU, m.Unit, m.CategoryID, m.PurchasePrice, m.SalesPrice, m.UpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update product "+m.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindProductByID retrieves a product scoped to a branch.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, branchID, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE branch_id = $1 AND product_id = $2;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, branchID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query product "+productID, err)
	}
	d := mapping.ToDomainProduct(*m)
	return &d, nil
}

// ListProducts retrieves a branch's products.
func (r *PgxProductRepository) ListProducts(ctx context.Context, branchID string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE branch_id = $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list products", err)
	}
	defer rows.Close()

	var ms []models.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate product rows", err)
	}
	return mapping.ToDomainProductSlice(ms), nil
}

// LockProductsTx reads the given products FOR UPDATE, keyed by product ID.
// Products are locked in sorted ID order by the query to keep lock
// acquisition deterministic across concurrent workflows.
func (r *PgxProductRepository) LockProductsTx(ctx context.Context, tx pgx.Tx, branchID string, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE branch_id = $1 AND product_id = ANY($2)
		ORDER BY product_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, branchID, productIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock products", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Product, len(productIDs))
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked product row", err)
		}
		result[m.ProductID] = mapping.ToDomainProduct(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate locked product rows", err)
	}
	return result, nil
}

// AdjustStockTx applies a signed stock delta to a product already locked in
// this transaction.
func (r *PgxProductRepository) AdjustStockTx(ctx context.Context, tx pgx.Tx, productID string, delta decimal.Decimal) error {
	query := `UPDATE products SET stock_quantity = stock_quantity + $2, updated_at = now() WHERE product_id = $1;`
	tag, err := tx.Exec(ctx, query, productID, delta)
	if err != nil {
		return apperrors.NewAppError(500, "failed to adjust stock for product "+productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
