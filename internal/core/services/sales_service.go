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

// salesService covers the customer-facing document workflows: invoices,
// payments and credit notes.
type salesService struct {
	BaseService
	salesRepo    portsrepo.SalesRepository
	sequenceRepo portsrepo.SequenceRepository
	productRepo  portsrepo.ProductRepositoryFacade
	partyRepo    portsrepo.PartyRepository
	accountRepo  portsrepo.AccountReader
	businessRepo portsrepo.BusinessReader
	ledgerSvc    portssvc.LedgerSvc
	txManager    portsrepo.TransactionManager
}

// NewSalesService creates a new SalesSvc.
func NewSalesService(
	salesRepo portsrepo.SalesRepository,
	sequenceRepo portsrepo.SequenceRepository,
	productRepo portsrepo.ProductRepositoryFacade,
	partyRepo portsrepo.PartyRepository,
	accountRepo portsrepo.AccountReader,
	businessRepo portsrepo.BusinessReader,
	ledgerSvc portssvc.LedgerSvc,
	txManager portsrepo.TransactionManager,
) portssvc.SalesSvc {
	return &salesService{
		salesRepo:    salesRepo,
		sequenceRepo: sequenceRepo,
		productRepo:  productRepo,
		partyRepo:    partyRepo,
		accountRepo:  accountRepo,
		businessRepo: businessRepo,
		ledgerSvc:    ledgerSvc,
		txManager:    txManager,
	}
}

var _ portssvc.SalesSvc = (*salesService)(nil)

// CreateInvoice numbers the invoice, decrements stock and writes the sale
// posting group in one transaction.
func (s *salesService) CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest) (*domain.SalesInvoice, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	customer, err := s.partyRepo.FindCustomerByID(ctx, businessID, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.BranchID != req.BranchID {
		return nil, fmt.Errorf("%w: customer %s belongs to another branch", apperrors.ErrBranchMismatch, customer.CustomerID)
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

	names := []string{domain.AccountAccountsReceivable, domain.AccountSalesRevenue, domain.AccountCOGS, domain.AccountInventory}
	if vatAmount.IsPositive() {
		names = append(names, domain.AccountOutputVAT)
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
	cost := decimal.Zero
	for _, item := range req.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, item.ProductID)
		}
		if product.StockQuantity.LessThan(item.Quantity) {
			return nil, fmt.Errorf("%w: product %q has %s in stock, %s requested",
				apperrors.ErrInsufficientStock, product.Name, product.StockQuantity, item.Quantity)
		}
		cost = cost.Add(item.Quantity.Mul(product.PurchasePrice))
	}

	number, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.KindSalesInvoice)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	now := time.Now()
	invoice := domain.SalesInvoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: number,
		BusinessID:    businessID,
		BranchID:      req.BranchID,
		CustomerID:    req.CustomerID,
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		SubTotal:      subTotal,
		VATAmount:     vatAmount,
		TotalAmount:   total,
		PaidAmount:    decimal.Zero,
		Status:        domain.StatusUnpaid,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, item := range req.Items {
		invoice.Items = append(invoice.Items, domain.SalesInvoiceItem{
			ItemID:    uuid.NewString(),
			InvoiceID: invoice.InvoiceID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := s.salesRepo.SaveInvoiceTx(ctx, tx, invoice); err != nil {
		s.LogError(ctx, err, "failed to save invoice", slog.String("business_id", businessID))
		return nil, err
	}
	for _, item := range req.Items {
		if err := s.productRepo.AdjustStockTx(ctx, tx, item.ProductID, item.Quantity.Neg()); err != nil {
			return nil, err
		}
	}

	source := domain.SourceRef{Kind: domain.SourceSalesInvoice, DocumentID: invoice.InvoiceID}
	description := fmt.Sprintf("Sales invoice %s", number)
	lines := []domain.DraftLine{
		{AccountID: accounts[domain.AccountAccountsReceivable].AccountID, Description: description, Debit: total, Source: source},
		{AccountID: accounts[domain.AccountSalesRevenue].AccountID, Description: description, Credit: subTotal, Source: source},
	}
	if vatAmount.IsPositive() {
		lines = append(lines, domain.DraftLine{
			AccountID: accounts[domain.AccountOutputVAT].AccountID, Description: description, Credit: vatAmount, Source: source,
		})
	}
	if cost.IsPositive() {
		lines = append(lines,
			domain.DraftLine{AccountID: accounts[domain.AccountCOGS].AccountID, Description: description, Debit: cost, Source: source},
			domain.DraftLine{AccountID: accounts[domain.AccountInventory].AccountID, Description: description, Credit: cost, Source: source},
		)
	}
	if _, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, req.BranchID, req.InvoiceDate, lines); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "invoice created",
		slog.String("business_id", businessID),
		slog.String("invoice_number", number),
		slog.String("total", total.String()))
	return &invoice, nil
}

func (s *salesService) GetInvoiceByID(ctx context.Context, businessID, invoiceID string) (*domain.SalesInvoice, error) {
	return s.salesRepo.FindInvoiceByID(ctx, businessID, invoiceID)
}

func (s *salesService) ListInvoices(ctx context.Context, businessID, branchID string) ([]domain.SalesInvoice, error) {
	return s.salesRepo.ListInvoicesByBranch(ctx, businessID, branchID)
}

// RecordInvoicePayment applies a payment to an invoice, advancing its status
// and posting cash against receivables.
func (s *salesService) RecordInvoicePayment(ctx context.Context, businessID, invoiceID string, req dto.RecordPaymentRequest) (*domain.SalesInvoice, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	paymentAccount, err := s.accountRepo.FindAccountByID(ctx, businessID, req.AccountID)
	if err != nil {
		return nil, err
	}
	arAccounts, err := findSystemAccounts(ctx, s.accountRepo, businessID, domain.AccountAccountsReceivable)
	if err != nil {
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	invoice, err := s.salesRepo.FindInvoiceForUpdateTx(ctx, tx, businessID, invoiceID)
	if err != nil {
		return nil, err
	}
	newPaid := invoice.PaidAmount.Add(req.Amount)
	if newPaid.GreaterThan(invoice.TotalAmount) {
		return nil, fmt.Errorf("%w: payment of %s exceeds outstanding balance %s",
			apperrors.ErrValidation, req.Amount, invoice.TotalAmount.Sub(invoice.PaidAmount))
	}
	status := accounting.ResolvePaymentStatus(invoice.TotalAmount, newPaid)

	if err := s.salesRepo.UpdateInvoicePaymentTx(ctx, tx, invoiceID, invoice.TotalAmount, newPaid, status); err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Payment for %s", invoice.InvoiceNumber)
	}
	source := domain.SourceRef{Kind: domain.SourceSalesInvoice, DocumentID: invoice.InvoiceID}
	lines := []domain.DraftLine{
		{AccountID: paymentAccount.AccountID, Description: description, Debit: req.Amount, Source: source},
		{AccountID: arAccounts[domain.AccountAccountsReceivable].AccountID, Description: description, Credit: req.Amount, Source: source},
	}
	if _, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, invoice.BranchID, req.PaymentDate, lines); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	invoice.PaidAmount = newPaid
	invoice.Status = status
	s.LogInfo(ctx, "invoice payment recorded",
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(status)))
	return invoice, nil
}

// CreateCreditNote processes a customer return against an invoice: restores
// stock, reduces the invoice and reverses the sale postings for the returned
// lines.
func (s *salesService) CreateCreditNote(ctx context.Context, businessID string, req dto.CreateCreditNoteRequest) (*domain.CreditNote, error) {
	names := []string{domain.AccountAccountsReceivable, domain.AccountSalesRevenue, domain.AccountCOGS, domain.AccountInventory, domain.AccountOutputVAT}
	accounts, err := findSystemAccounts(ctx, s.accountRepo, businessID, names...)
	if err != nil {
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	invoice, err := s.salesRepo.FindInvoiceForUpdateTx(ctx, tx, businessID, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	itemsByID := make(map[string]domain.SalesInvoiceItem, len(invoice.Items))
	for _, item := range invoice.Items {
		itemsByID[item.ItemID] = item
	}

	subTotal := decimal.Zero
	productIDs := make([]string, 0, len(req.Items))
	returns := make([]domain.SalesInvoiceItem, 0, len(req.Items))
	for _, ret := range req.Items {
		item, ok := itemsByID[ret.ItemID]
		if !ok {
			return nil, fmt.Errorf("%w: invoice item %s", apperrors.ErrNotFound, ret.ItemID)
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
		returns = append(returns, domain.SalesInvoiceItem{
			ItemID:    item.ItemID,
			ProductID: item.ProductID,
			Quantity:  ret.Quantity,
			Price:     item.Price,
		})
	}

	// VAT credited in the same proportion the invoice carried.
	vatAmount := decimal.Zero
	if invoice.VATAmount.IsPositive() && invoice.SubTotal.IsPositive() {
		vatAmount = subTotal.Mul(invoice.VATAmount).Div(invoice.SubTotal).Round(2)
	}
	total := subTotal.Add(vatAmount)

	products, err := s.productRepo.LockProductsTx(ctx, tx, invoice.BranchID, productIDs)
	if err != nil {
		return nil, err
	}
	cost := decimal.Zero
	for _, ret := range returns {
		product, ok := products[ret.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, ret.ProductID)
		}
		cost = cost.Add(ret.Quantity.Mul(product.PurchasePrice))
	}

	number, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.KindCreditNote)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate credit note number: %w", err)
	}

	now := time.Now()
	note := domain.CreditNote{
		CreditNoteID:     uuid.NewString(),
		CreditNoteNumber: number,
		BusinessID:       businessID,
		BranchID:         invoice.BranchID,
		CustomerID:       invoice.CustomerID,
		InvoiceID:        invoice.InvoiceID,
		NoteDate:         req.NoteDate,
		Reason:           req.Reason,
		TotalAmount:      total,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, ret := range returns {
		note.Items = append(note.Items, domain.CreditNoteItem{
			ItemID:       uuid.NewString(),
			CreditNoteID: note.CreditNoteID,
			ProductID:    ret.ProductID,
			Quantity:     ret.Quantity,
			Price:        ret.Price,
		})
	}

	if err := s.salesRepo.SaveCreditNoteTx(ctx, tx, note); err != nil {
		return nil, err
	}
	for _, ret := range returns {
		if err := s.salesRepo.AddReturnedQuantityTx(ctx, tx, ret.ItemID, ret.Quantity); err != nil {
			return nil, err
		}
		if err := s.productRepo.AdjustStockTx(ctx, tx, ret.ProductID, ret.Quantity); err != nil {
			return nil, err
		}
	}

	newTotal := invoice.TotalAmount.Sub(total)
	status := accounting.ResolvePaymentStatus(newTotal, invoice.PaidAmount)
	if err := s.salesRepo.UpdateInvoicePaymentTx(ctx, tx, invoice.InvoiceID, newTotal, invoice.PaidAmount, status); err != nil {
		return nil, err
	}

	source := domain.SourceRef{Kind: domain.SourceCreditNote, DocumentID: note.CreditNoteID}
	description := fmt.Sprintf("Credit note %s for %s", number, invoice.InvoiceNumber)
	lines := []domain.DraftLine{
		{AccountID: accounts[domain.AccountSalesRevenue].AccountID, Description: description, Debit: subTotal, Source: source},
		{AccountID: accounts[domain.AccountAccountsReceivable].AccountID, Description: description, Credit: total, Source: source},
	}
	if vatAmount.IsPositive() {
		lines = append(lines, domain.DraftLine{
			AccountID: accounts[domain.AccountOutputVAT].AccountID, Description: description, Debit: vatAmount, Source: source,
		})
	}
	if cost.IsPositive() {
		lines = append(lines,
			domain.DraftLine{AccountID: accounts[domain.AccountInventory].AccountID, Description: description, Debit: cost, Source: source},
			domain.DraftLine{AccountID: accounts[domain.AccountCOGS].AccountID, Description: description, Credit: cost, Source: source},
		)
	}
	if _, err := s.ledgerSvc.PostGroupTx(ctx, tx, businessID, invoice.BranchID, req.NoteDate, lines); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "credit note created",
		slog.String("credit_note_number", number),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("total", total.String()))
	return &note, nil
}

func (s *salesService) GetCreditNoteByID(ctx context.Context, businessID, creditNoteID string) (*domain.CreditNote, error) {
	return s.salesRepo.FindCreditNoteByID(ctx, businessID, creditNoteID)
}
