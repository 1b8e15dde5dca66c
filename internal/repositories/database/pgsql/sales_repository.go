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

type PgxSalesRepository struct {
	BaseRepository
}

// newPgxSalesRepository creates a new repository for sales invoices and credit notes.
func newPgxSalesRepository(pool *pgxpool.Pool) *PgxSalesRepository {
	return &PgxSalesRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SalesRepository = (*PgxSalesRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, business_id, branch_id, customer_id, invoice_date, due_date, sub_total, vat_amount, total_amount, paid_amount, status, created_at, updated_at`

func scanInvoice(row pgx.Row) (*models.SalesInvoice, error) {
	var m models.SalesInvoice
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.BusinessID,
		&m.BranchID,
		&m.CustomerID,
		&m.InvoiceDate,
		&m.DueDate,
		&m.SubTotal,
		&m.VATAmount,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxSalesRepository) findInvoiceItems(ctx context.Context, q querier, invoiceID string) ([]models.SalesInvoiceItem, error) {
	query := `
		SELECT item_id, invoice_id, product_id, quantity, price, returned_quantity
		FROM sales_invoice_items WHERE invoice_id = $1 ORDER BY item_id;
	`
	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice items for "+invoiceID, err)
	}
	defer rows.Close()

	var items []models.SalesInvoiceItem
	for rows.Next() {
		var it models.SalesInvoiceItem
		if err := rows.Scan(&it.ItemID, &it.InvoiceID, &it.ProductID, &it.Quantity, &it.Price, &it.ReturnedQuantity); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate invoice item rows", err)
	}
	return items, nil
}

// SaveInvoiceTx persists an invoice and its items inside the caller's transaction.
func (r *PgxSalesRepository) SaveInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.SalesInvoice) error {
	m := mapping.ToModelSalesInvoice(invoice)
	query := `
		INSERT INTO sales_invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.InvoiceID, m.InvoiceNumber, m.BusinessID, m.BranchID, m.CustomerID,
		m.InvoiceDate, m.DueDate, m.SubTotal, m.VATAmount, m.TotalAmount,
		m.PaidAmount, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, apperrors.ErrDuplicateDocumentNumber)
		}
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO sales_invoice_items (item_id, invoice_id, product_id, quantity, price, returned_quantity)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, it := range invoice.Items {
		batch.Queue(itemQuery, it.ItemID, it.InvoiceID, it.ProductID, it.Quantity, it.Price, it.ReturnedQuantity)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range invoice.Items {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert invoice items for "+m.InvoiceID, err)
		}
	}
	return nil
}

// FindInvoiceByID retrieves an invoice and its items.
func (r *PgxSalesRepository) FindInvoiceByID(ctx context.Context, businessID, invoiceID string) (*domain.SalesInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM sales_invoices WHERE business_id = $1 AND invoice_id = $2;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, businessID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query invoice "+invoiceID, err)
	}
	items, err := r.findInvoiceItems(ctx, r.Pool, invoiceID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainSalesInvoice(*m, items)
	return &d, nil
}

// FindInvoiceForUpdateTx loads an invoice and its items with a row lock.
func (r *PgxSalesRepository) FindInvoiceForUpdateTx(ctx context.Context, tx pgx.Tx, businessID, invoiceID string) (*domain.SalesInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM sales_invoices WHERE business_id = $1 AND invoice_id = $2 FOR UPDATE;`
	m, err := scanInvoice(tx.QueryRow(ctx, query, businessID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock invoice "+invoiceID, err)
	}
	items, err := r.findInvoiceItems(ctx, tx, invoiceID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainSalesInvoice(*m, items)
	return &d, nil
}

// ListInvoicesByBranch retrieves a branch's invoices without items, newest first.
func (r *PgxSalesRepository) ListInvoicesByBranch(ctx context.Context, businessID, branchID string) ([]domain.SalesInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM sales_invoices WHERE business_id = $1 AND branch_id = $2 ORDER BY invoice_date DESC, invoice_number DESC;`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoices", err)
	}
	defer rows.Close()

	var result []domain.SalesInvoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		result = append(result, mapping.ToDomainSalesInvoice(*m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate invoice rows", err)
	}
	return result, nil
}

// UpdateInvoicePaymentTx sets total, paid amount and status.
func (r *PgxSalesRepository) UpdateInvoicePaymentTx(ctx context.Context, tx pgx.Tx, invoiceID string, total, paid decimal.Decimal, status domain.PaymentStatus) error {
	query := `UPDATE sales_invoices SET total_amount = $2, paid_amount = $3, status = $4, updated_at = now() WHERE invoice_id = $1;`
	tag, err := tx.Exec(ctx, query, invoiceID, total, paid, string(status))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice payment "+invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddReturnedQuantityTx bumps the returned quantity on one invoice item.
func (r *PgxSalesRepository) AddReturnedQuantityTx(ctx context.Context, tx pgx.Tx, itemID string, quantity decimal.Decimal) error {
	query := `UPDATE sales_invoice_items SET returned_quantity = returned_quantity + $2 WHERE item_id = $1;`
	tag, err := tx.Exec(ctx, query, itemID, quantity)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update returned quantity on item "+itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveCreditNoteTx persists a credit note and its items inside the caller's transaction.
func (r *PgxSalesRepository) SaveCreditNoteTx(ctx context.Context, tx pgx.Tx, note domain.CreditNote) error {
	query := `
		INSERT INTO credit_notes (credit_note_id, credit_note_number, business_id, branch_id, customer_id, invoice_id, note_date, reason, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		note.CreditNoteID, note.CreditNoteNumber, note.BusinessID, note.BranchID,
		note.CustomerID, note.InvoiceID, note.NoteDate, note.Reason, note.TotalAmount,
		note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("credit note %s: %w", note.CreditNoteNumber, apperrors.ErrDuplicateDocumentNumber)
		}
		return apperrors.NewAppError(500, "failed to insert credit note "+note.CreditNoteID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO credit_note_items (item_id, credit_note_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, it := range note.Items {
		batch.Queue(itemQuery, it.ItemID, it.CreditNoteID, it.ProductID, it.Quantity, it.Price)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range note.Items {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert credit note items for "+note.CreditNoteID, err)
		}
	}
	return nil
}

// FindCreditNoteByID retrieves a credit note and its items.
func (r *PgxSalesRepository) FindCreditNoteByID(ctx context.Context, businessID, creditNoteID string) (*domain.CreditNote, error) {
	var m models.CreditNote
	query := `
		SELECT credit_note_id, credit_note_number, business_id, branch_id, customer_id, invoice_id, note_date, COALESCE(reason, ''), total_amount, created_at, updated_at
		FROM credit_notes WHERE business_id = $1 AND credit_note_id = $2;
	`
	err := r.Pool.QueryRow(ctx, query, businessID, creditNoteID).Scan(
		&m.CreditNoteID, &m.CreditNoteNumber, &m.BusinessID, &m.BranchID,
		&m.CustomerID, &m.InvoiceID, &m.NoteDate, &m.Reason, &m.TotalAmount,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query credit note "+creditNoteID, err)
	}

	itemRows, err := r.Pool.Query(ctx,
		`SELECT item_id, credit_note_id, product_id, quantity, price FROM credit_note_items WHERE credit_note_id = $1 ORDER BY item_id;`,
		creditNoteID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query credit note items for "+creditNoteID, err)
	}
	defer itemRows.Close()

	var items []models.CreditNoteItem
	for itemRows.Next() {
		var it models.CreditNoteItem
		if err := itemRows.Scan(&it.ItemID, &it.CreditNoteID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan credit note item row", err)
		}
		items = append(items, it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate credit note item rows", err)
	}

	d := mapping.ToDomainCreditNote(m, items)
	return &d, nil
}

// ListCreditNotesByBranch retrieves a branch's credit notes without items, newest first.
func (r *PgxSalesRepository) ListCreditNotesByBranch(ctx context.Context, businessID, branchID string) ([]domain.CreditNote, error) {
	query := `
		SELECT credit_note_id, credit_note_number, business_id, branch_id, customer_id, invoice_id, note_date, COALESCE(reason, ''), total_amount, created_at, updated_at
		FROM credit_notes WHERE business_id = $1 AND branch_id = $2 ORDER BY note_date DESC, credit_note_number DESC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list credit notes", err)
	}
	defer rows.Close()

	var result []domain.CreditNote
	for rows.Next() {
		var m models.CreditNote
		if err := rows.Scan(
			&m.CreditNoteID, &m.CreditNoteNumber, &m.BusinessID, &m.BranchID,
			&m.CustomerID, &m.InvoiceID, &m.NoteDate, &m.Reason, &m.TotalAmount,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan credit note row", err)
		}
		result = append(result, mapping.ToDomainCreditNote(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate credit note rows", err)
	}
	return result, nil
}
