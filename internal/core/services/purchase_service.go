package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/Omerhrr/Booklet/internal/utils/accounting"
)

// purchaseService covers the vendor-facing document workflows: bills,
// payments and debit notes.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepository
	sequenceRepo portsrepo.SequenceRepository
	productRepo  portsrepo.ProductRepositoryFacade
	partyRepo    portsrepo.PartyRepository
	accountRepo  portsrepo.AccountReader
	businessRepo portsrepo.BusinessReader
	ledgerSvc    portssvc.LedgerSvc
	txManager    portsrepo.TransactionManager
}

// NewPurchaseService creates a new PurchaseSvc.
func NewPurchaseService(
	purchaseRepo portsrepo.PurchaseRepository,
	sequenceRepo portsrepo.SequenceRepository,
	productRepo portsrepo.ProductRepositoryFacade,
	partyRepo portsrepo.PartyRepository,
	accountRepo portsrepo.AccountReader,
	businessRepo portsrepo.BusinessReader,
	ledgerSvc portssvc.LedgerSvc,
	txManager portsrepo.TransactionManager,
) portssvc.PurchaseSvc {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		sequenceRepo: sequenceRepo,
		productRepo:  productRepo,
		partyRepo:    partyRepo,
		accountRepo:  accountRepo,
		businessRepo: businessRepo,
		ledgerSvc:    ledgerSvc,
		txManager:    txManager,
	}
}

var _ portssvc.PurchaseSvc = (*purchaseService)(nil)

// CreateBill numbers the bill, increments stock and writes the purchase
// posting group in one transaction.
func (s *purchaseService) CreateBill(ctx context.Context, businessID string, req dto.CreateBillRequest) (*domain.PurchaseBill, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.partyRepo.FindVendorByID(ctx, businessID, req.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor.BranchID != req.BranchID {
		return nil, fmt.Errorf("%w: vendor %s belongs to another branch", apperrors.ErrBranchMismatch, vendor.VendorID)
	}

	subTotal := decimal.Zero
	productIDs := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		if !item.Quantity.IsPositive() || item.Price.IsNegative() {
			return nil, fmt.Errorf("%w: item quantity must be positive and price non-negative", apperrors.ErrValidation)
		}
		subTotal = subTotal.Add(item.Quantity.Mul(item.Price))
		productIDs = append(productIDs, item.ProductID)
	}
	vatAmount := decimal.Zero
	if business.IsVATRegistered {
		vatAmount = accounting.ApplyRate(subTotal, business.VATRate)
	}
	total := subTotal.Add(vatAmount)

	names := []string{domain.AccountInventory, domain.AccountAccountsPayable}
	if vatAmount.IsPositive() {
		names = append(names, domain.AccountInputVAT)
	}
	accounts, err := findSystemAccounts(ctx, s.accountRepo, businessID, names...)
	if err != nil {
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	products, err := s.productRepo.LockProductsTx(ctx, tx, req.BranchID, productIDs)
	if err != nil {
		return nil, err
	}
	for _, item := range req.Items {
		if _, ok := products[item.ProductID]; !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, item.ProductID)
		}
	}

	number, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.KindPurchaseBill)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate bill number: %w", err)
	}

	now := time.Now()
	bill := domain.PurchaseBill{
		BillID:      uuid.NewString(),
		BillNumber:  number,
		BusinessID:  businessID,
		BranchID:    req.BranchID,
		VendorID:    req.VendorID,
		BillDate:    req.BillDate,
		DueDate:     req.DueDate,
		SubTotal:    subTotal,
		VATAmount:   vatAmount,
		TotalAmount: total,
		PaidAmount:  decimal.Zero,
		Status:      domain.StatusUnpaid,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, item := range req.Items {
		bill.Items = append(bill.Items, domain.PurchaseBillItem{
			ItemID:    uuid.NewString(),
			BillID:    bill.BillID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := s.purchaseRepo.SaveBillTx(ctx, tx, bill); err != nil {
		s.LogError(ctx, err, "failed to save bill", slog.String("business_id", businessID))
		return nil, err
	}
	for _, item := range req.Items {
		if err := s.productRepo.AdjustStockTx(ctx, tx, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	source := domain.SourceRef{Kind: domain.SourcePurchaseBill, DocumentID: bill.BillID}
	description := fmt.Sprintf("Purchase bill %s", number)
	lines := []domain.DraftLine{
		{AccountID: accounts[domain.AccountInventory].AccountID, Description: description, Debit: subTotal, Source: source},
		{AccountID: accounts[domain.AccountAccountsPayable].AccountID, Description: description, Credit: total, Source: source},
	}
	if vatAmount.IsPositive() {
		lines = append(lines, domain.DraftLine{
			AccountID: accounts[domain.AccountInputVAT].AccountID, Description: description, Debit: vatAmount, Source: source,
		})
	}
	if _, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, req.BranchID, req.BillDate, lines); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "bill created",
		slog.String("business_id", businessID),
		slog.String("bill_number", number),
		slog.String("total", total.String()))
	return &bill, nil
}

func (s *purchaseService) GetBillByID(ctx context.Context, businessID, billID string) (*domain.PurchaseBill, error) {
	return s.purchaseRepo.FindBillByID(ctx, businessID, billID)
}

func (s *purchaseService) ListBills(ctx context.Context, businessID, branchID string) ([]domain.PurchaseBill, error) {
	return s.purchaseRepo.ListBillsByBranch(ctx, businessID, branchID)
}

// RecordBillPayment applies a payment to a bill, advancing its status and
// posting payables against the payment account.
func (s *purchaseService) RecordBillPayment(ctx context.Context, businessID, billID string, req dto.RecordPaymentRequest) (*domain.PurchaseBill, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	paymentAccount, err := s.accountRepo.FindAccountByID(ctx, businessID, req.AccountID)
	if err != nil {
		return nil, err
	}
	apAccounts, err := findSystemAccounts(ctx, s.accountRepo, businessID, domain.AccountAccountsPayable)
	if err != nil {
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	bill, err := s.purchaseRepo.FindBillForUpdateTx(ctx, tx, businessID, billID)
	if err != nil {
		return nil, err
	}
	newPaid := bill.PaidAmount.Add(req.Amount)
	if newPaid.GreaterThan(bill.TotalAmount) {
		return nil, fmt.Errorf("%w: payment of %s exceeds outstanding balance %s",
			apperrors.ErrValidation, req.Amount, bill.TotalAmount.Sub(bill.PaidAmount))
	}
	status := accounting.ResolvePaymentStatus(bill.TotalAmount, newPaid)

	if err := s.purchaseRepo.UpdateBillPaymentTx(ctx, tx, billID, bill.TotalAmount, newPaid, status); err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Payment for %s", bill.BillNumber)
	}
	source := domain.SourceRef{Kind: domain.SourcePurchaseBill, DocumentID: bill.BillID}
	lines := []domain.DraftLine{
		{AccountID: apAccounts[domain.AccountAccountsPayable].AccountID, Description: description, Debit: req.Amount, Source: source},
		{AccountID: paymentAccount.AccountID, Description: description, Credit: req.Amount, Source: source},
	}
	if _, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, bill.BranchID, req.PaymentDate, lines); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	bill.PaidAmount = newPaid
	bill.Status = status
	s.LogInfo(ctx, "bill payment recorded",
		slog.String("bill_number", bill.BillNumber),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(status)))
	return bill, nil
}

// CreateDebitNote processes a return to a vendor against a bill: removes the
// returned goods from stock, reduces the bill and reverses the purchase
// postings for the returned lines.
func (s *purchaseService) CreateDebitNote(ctx context.Context, businessID string, req dto.CreateDebitNoteRequest) (*domain.DebitNote, error) {
	names := []string{domain.AccountInventory, domain.AccountAccountsPayable, domain.AccountInputVAT}
	accounts, err := findSystemAccounts(ctx, s.accountRepo, businessID, names...)
	if err != nil {
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	bill, err := s.purchaseRepo.FindBillForUpdateTx(ctx, tx, businessID, req.BillID)
	if err != nil {
		return nil, err
	}

	itemsByID := make(map[string]domain.PurchaseBillItem, len(bill.Items))
	for _, item := range bill.Items {
		itemsByID[item.ItemID] = item
	}

	subTotal := decimal.Zero
	productIDs := make([]string, 0, len(req.Items))
	returns := make([]domain.PurchaseBillItem, 0, len(req.Items))
	for _, ret := range req.Items {
		item, ok := itemsByID[ret.ItemID]
		if !ok {
			return nil, fmt.Errorf("%w: bill item %s", apperrors.ErrNotFound, ret.ItemID)
		}
		if !ret.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: return quantity must be positive", apperrors.ErrValidation)
		}
		returnable := item.Quantity.Sub(item.ReturnedQuantity)
		if ret.Quantity.GreaterThan(returnable) {
			return nil, fmt.Errorf("%w: item %s has %s returnable, %s requested",
				apperrors.ErrOverReturn, ret.ItemID, returnable, ret.Quantity)
		}
		subTotal = subTotal.Add(ret.Quantity.Mul(item.Price))
		productIDs = append(productIDs, item.ProductID)
		returns = append(returns, domain.PurchaseBillItem{
			ItemID:    item.ItemID,
			ProductID: item.ProductID,
			Quantity:  ret.Quantity,
			Price:     item.Price,
		})
	}

	vatAmount := decimal.Zero
	if bill.VATAmount.IsPositive() && bill.SubTotal.IsPositive() {
		vatAmount = subTotal.Mul(bill.VATAmount).Div(bill.SubTotal).Round(2)
	}
	total := subTotal.Add(vatAmount)

	products, err := s.productRepo.LockProductsTx(ctx, tx, bill.BranchID, productIDs)
	if err != nil {
		return nil, err
	}
	for _, ret := range returns {
		product, ok := products[ret.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, ret.ProductID)
		}
		if product.StockQuantity.LessThan(ret.Quantity) {
			return nil, fmt.Errorf("%w: product %q has %s in stock, %s to return",
				apperrors.ErrInsufficientStock, product.Name, product.StockQuantity, ret.Quantity)
		}
	}

	number, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.KindDebitNote)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate debit note number: %w", err)
	}

	now := time.Now()
	note := domain.DebitNote{
		DebitNoteID:     uuid.NewString(),
		DebitNoteNumber: number,
		BusinessID:      businessID,
		BranchID:        bill.BranchID,
		VendorID:        bill.VendorID,
		BillID:          bill.BillID,
		NoteDate:        req.NoteDate,
		Reason:          req.Reason,
		TotalAmount:     total,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, ret := range returns {
		note.Items = append(note.Items, domain.DebitNoteItem{
			ItemID:      uuid.NewString(),
			DebitNoteID: note.DebitNoteID,
			ProductID:   ret.ProductID,
			Quantity:    ret.Quantity,
			Price:       ret.Price,
		})
	}

	if err := s.purchaseRepo.SaveDebitNoteTx(ctx, tx, note); err != nil {
		return nil, err
	}
	for _, ret := range returns {
		if err := s.purchaseRepo.AddReturnedQuantityTx(ctx, tx, ret.ItemID, ret.Quantity); err != nil {
			return nil, err
		}
		if err := s.productRepo.AdjustStockTx(ctx, tx, ret.ProductID, ret.Quantity.Neg()); err != nil {
			return nil, err
		}
	}

	newTotal := bill.TotalAmount.Sub(total)
	status := accounting.ResolvePaymentStatus(newTotal, bill.PaidAmount)
	if err := s.purchaseRepo.UpdateBillPaymentTx(ctx, tx, bill.BillID, newTotal, bill.PaidAmount, status); err != nil {
		return nil, err
	}

	source := domain.SourceRef{Kind: domain.SourceDebitNote, DocumentID: note.DebitNoteID}
	description := fmt.Sprintf("Debit note %s for %s", number, bill.BillNumber)
	lines := []domain.DraftLine{
		{AccountID: accounts[domain.AccountAccountsPayable].AccountID, Description: description, Debit: total, Source: source},
		{AccountID: accounts[domain.AccountInventory].AccountID, Description: description, Credit: subTotal, Source: source},
	}
	if vatAmount.IsPositive() {
		lines = append(lines, domain.DraftLine{
			AccountID: accounts[domain.AccountInputVAT].AccountID, Description: description, Credit: vatAmount, Source: source,
		})
	}
	if _, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, bill.BranchID, req.NoteDate, lines); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "debit note created",
		slog.String("debit_note_number", number),
		slog.String("bill_number", bill.BillNumber),
		slog.String("total", total.String()))
	return &note, nil
}

func (s *purchaseService) GetDebitNoteByID(ctx context.Context, businessID, debitNoteID string) (*domain.DebitNote, error) {
	return s.purchaseRepo.FindDebitNoteByID(ctx, businessID, debitNoteID)
}
