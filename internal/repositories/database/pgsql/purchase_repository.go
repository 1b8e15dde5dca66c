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

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase bills and debit notes.
func newPgxPurchaseRepository(pool *pgxpool.Pool) *PgxPurchaseRepository {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PurchaseRepository = (*PgxPurchaseRepository)(nil)

const billColumns = `bill_id, bill_number, business_id, branch_id, vendor_id, bill_date, due_date, sub_total, vat_amount, total_amount, paid_amount, status, created_at, updated_at`

func scanBill(row pgx.Row) (*models.PurchaseBill, error) {
	var m models.PurchaseBill
	err := row.Scan(
		&m.BillID,
		&m.BillNumber,
		&m.BusinessID,
		&m.BranchID,
		&m.VendorID,
		&m.BillDate,
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

func (r *PgxPurchaseRepository) findBillItems(ctx context.Context, q querier, billID string) ([]models.PurchaseBillItem, error) {
	query := `
		SELECT item_id, bill_id, product_id, quantity, price, returned_quantity
		FROM purchase_bill_items WHERE bill_id = $1 ORDER BY item_id;
	`
	rows, err := q.Query(ctx, query, billID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bill items for "+billID, err)
	}
	defer rows.Close()

	var items []models.PurchaseBillItem
	for rows.Next() {
		var it models.PurchaseBillItem
		if err := rows.Scan(&it.ItemID, &it.BillID, &it.ProductID, &it.Quantity, &it.Price, &it.ReturnedQuantity); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill item row", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate bill item rows", err)
	}
	return items, nil
}

// SaveBillTx persists a bill and its items inside the caller's transaction.
func (r *PgxPurchaseRepository) SaveBillTx(ctx context.Context, tx pgx.Tx, bill domain.PurchaseBill) error {
	m := mapping.ToModelPurchaseBill(bill)
	query := `
		INSERT INTO purchase_bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.BillID, m.BillNumber, m.BusinessID, m.BranchID, m.VendorID,
		m.BillDate, m.DueDate, m.SubTotal, m.VATAmount, m.TotalAmount,
		m.PaidAmount, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bill %s: %w", bill.BillNumber, apperrors.ErrDuplicateDocumentNumber)
		}
		return apperrors.NewAppError(500, "failed to insert bill "+m.BillID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO purchase_bill_items (item_id, bill_id, product_id, quantity, price, returned_quantity)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, it := range bill.Items {
		batch.Queue(itemQuery, it.ItemID, it.BillID, it.ProductID, it.Quantity, it.Price, it.ReturnedQuantity)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range bill.Items {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert bill items for "+m.BillID, err)
		}
	}
	return nil
}

// FindBillByID retrieves a bill and its items.
func (r *PgxPurchaseRepository) FindBillByID(ctx context.Context, businessID, billID string) (*domain.PurchaseBill, error) {
	query := `SELECT ` + billColumns + ` FROM purchase_bills WHERE business_id = $1 AND bill_id = $2;`
	m, err := scanBill(r.Pool.QueryRow(ctx, query, businessID, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query bill "+billID, err)
	}
	items, err := r.findBillItems(ctx, r.Pool, billID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainPurchaseBill(*m, items)
	return &d, nil
}

// FindBillForUpdateTx loads a bill and its items with a row lock.
func (r *PgxPurchaseRepository) FindBillForUpdateTx(ctx context.Context, tx pgx.Tx, businessID, billID string) (*domain.PurchaseBill, error) {
	query := `SELECT ` + billColumns + ` FROM purchase_bills WHERE business_id = $1 AND bill_id = $2 FOR UPDATE;`
	m, err := scanBill(tx.QueryRow(ctx, query, businessID, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock bill "+billID, err)
	}
	items, err := r.findBillItems(ctx, tx, billID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainPurchaseBill(*m, items)
	return &d, nil
}

// ListBillsByBranch retrieves a branch's bills without items, newest first.
func (r *PgxPurchaseRepository) ListBillsByBranch(ctx context.Context, businessID, branchID string) ([]domain.PurchaseBill, error) {
	query := `SELECT ` + billColumns + ` FROM purchase_bills WHERE business_id = $1 AND branch_id = $2 ORDER BY bill_date DESC, bill_number DESC;`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list bills", err)
	}
	defer rows.Close()

	var result []domain.PurchaseBill
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill row", err)
		}
		result = append(result, mapping.ToDomainPurchaseBill(*m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate bill rows", err)
	}
	return result, nil
}

// UpdateBillPaymentTx sets total, paid amount and status.
func (r *PgxPurchaseRepository) UpdateBillPaymentTx(ctx context.Context, tx pgx.Tx, billID string, total, paid decimal.Decimal, status domain.PaymentStatus) error {
	query := `UPDATE purchase_bills SET total_amount = $2, paid_amount = $3, status = $4, updated_at = now() WHERE bill_id = $1;`
	tag, err := tx.Exec(ctx, query, billID, total, paid, string(status))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update bill payment "+billID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddReturnedQuantityTx bumps the returned quantity on one bill item.
func (r *PgxPurchaseRepository) AddReturnedQuantityTx(ctx context.Context, tx pgx.Tx, itemID string, quantity decimal.Decimal) error {
	query := `UPDATE purchase_bill_items SET returned_quantity = returned_quantity + $2 WHERE item_id = $1;`
	tag, err := tx.Exec(ctx, query, itemID, quantity)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update returned quantity on item "+itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveDebitNoteTx persists a debit note and its items inside the caller's transaction.
func (r *PgxPurchaseRepository) SaveDebitNoteTx(ctx context.Context, tx pgx.Tx, note domain.DebitNote) error {
	query := `
		INSERT INTO debit_notes (debit_note_id, debit_note_number, business_id, branch_id, vendor_id, bill_id, note_date, reason, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		note.DebitNoteID, note.DebitNoteNumber, note.BusinessID, note.BranchID,
		note.VendorID, note.BillID, note.NoteDate, note.Reason, note.TotalAmount,
		note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("debit note %s: %w", note.DebitNoteNumber, apperrors.ErrDuplicateDocumentNumber)
		}
		return apperrors.NewAppError(500, "failed to insert debit note "+note.DebitNoteID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO debit_note_items (item_id, debit_note_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, it := range note.Items {
		batch.Queue(itemQuery, it.ItemID, it.DebitNoteID, it.ProductID, it.Quantity, it.Price)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range note.Items {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert debit note items for "+note.DebitNoteID, err)
		}
	}
	return nil
}

// FindDebitNoteByID retrieves a debit note and its items.
func (r *PgxPurchaseRepository) FindDebitNoteByID(ctx context.Context, businessID, debitNoteID string) (*domain.DebitNote, error) {
	var m models.DebitNote
	query := `
		SELECT debit_note_id, debit_note_number, business_id, branch_id, vendor_id, bill_id, note_date, COALESCE(reason, ''), total_amount, created_at, updated_at
		FROM debit_notes WHERE business_id = $1 AND debit_note_id = $2;
	`
	err := r.Pool.QueryRow(ctx, query, businessID, debitNoteID).Scan(
		&m.DebitNoteID, &m.DebitNoteNumber, &m.BusinessID, &m.BranchID,
		&m.VendorID, &m.BillID, &m.NoteDate, &m.Reason, &m.TotalAmount,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query debit note "+debitNoteID, err)
	}

	itemRows, err := r.Pool.Query(ctx,
		`SELECT item_id, debit_note_id, product_id, quantity, price FROM debit_note_items WHERE debit_note_id = $1 ORDER BY item_id;`,
		debitNoteID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query debit note items for "+debitNoteID, err)
	}
	defer itemRows.Close()

	var items []models.DebitNoteItem
	for itemRows.Next() {
		var it models.DebitNoteItem
		if err := itemRows.Scan(&it.ItemID, &it.DebitNoteID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan debit note item row", err)
		}
		items = append(items, it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate debit note item rows", err)
	}

	d := mapping.ToDomainDebitNote(m, items)
	return &d, nil
}

// ListDebitNotesByBranch retrieves a branch's debit notes without items, newest first.
func (r *PgxPurchaseRepository) ListDebitNotesByBranch(ctx context.Context, businessID, branchID string) ([]domain.DebitNote, error) {
	query := `
		SELECT debit_note_id, debit_note_number, business_id, branch_id, vendor_id, bill_id, note_date, COALESCE(reason, ''), total_amount, created_at, updated_at
		FROM debit_notes WHERE business_id = $1 AND branch_id = $2 ORDER BY note_date DESC, debit_note_number DESC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list debit notes", err)
	}
	defer rows.Close()

	var result []domain.DebitNote
	for rows.Next() {
		var m models.DebitNote
		if err := rows.Scan(
			&m.DebitNoteID, &m.DebitNoteNumber, &m.BusinessID, &m.BranchID,
			&m.VendorID, &m.BillID, &m.NoteDate, &m.Reason, &m.TotalAmount,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan debit note row", err)
		}
		result = append(result, mapping.ToDomainDebitNote(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate debit note rows", err)
	}
	return result, nil
}
