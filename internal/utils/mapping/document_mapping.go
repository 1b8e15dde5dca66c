package mapping

import (
	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/Omerhrr/Booklet/internal/models"
)

// ToModelSalesInvoice converts a domain SalesInvoice to a model SalesInvoice.
// Items are persisted separately.
func ToModelSalesInvoice(d domain.SalesInvoice) models.SalesInvoice {
	return models.SalesInvoice{
		InvoiceID:     d.InvoiceID,
		InvoiceNumber: d.InvoiceNumber,
		BusinessID:    d.BusinessID,
		BranchID:      d.BranchID,
		CustomerID:    d.CustomerID,
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		SubTotal:      d.SubTotal,
		VATAmount:     d.VATAmount,
		TotalAmount:   d.TotalAmount,
		PaidAmount:    d.PaidAmount,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalesInvoice converts a model SalesInvoice plus its items to a domain SalesInvoice
func ToDomainSalesInvoice(m models.SalesInvoice, items []models.SalesInvoiceItem) domain.SalesInvoice {
	d := domain.SalesInvoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		BusinessID:    m.BusinessID,
		BranchID:      m.BranchID,
		CustomerID:    m.CustomerID,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		SubTotal:      m.SubTotal,
		VATAmount:     m.VATAmount,
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		Status:        domain.PaymentStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	d.Items = make([]domain.SalesInvoiceItem, len(items))
	for i, it := range items {
		d.Items[i] = domain.SalesInvoiceItem{
			ItemID:           it.ItemID,
			InvoiceID:        it.InvoiceID,
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			Price:            it.Price,
			ReturnedQuantity: it.ReturnedQuantity,
		}
	}
	return d
}

// ToModelPurchaseBill converts a domain PurchaseBill to a model PurchaseBill
func ToModelPurchaseBill(d domain.PurchaseBill) models.PurchaseBill {
	return models.PurchaseBill{
		BillID:      d.BillID,
		BillNumber:  d.BillNumber,
		BusinessID:  d.BusinessID,
		BranchID:    d.BranchID,
		VendorID:    d.VendorID,
		BillDate:    d.BillDate,
		DueDate:     d.DueDate,
		SubTotal:    d.SubTotal,
		VATAmount:   d.VATAmount,
		TotalAmount: d.TotalAmount,
		PaidAmount:  d.PaidAmount,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseBill converts a model PurchaseBill plus its items to a domain PurchaseBill
func ToDomainPurchaseBill(m models.PurchaseBill, items []models.PurchaseBillItem) domain.PurchaseBill {
	d := domain.PurchaseBill{
		BillID:      m.BillID,
		BillNumber:  m.BillNumber,
		BusinessID:  m.BusinessID,
		BranchID:    m.BranchID,
		VendorID:    m.VendorID,
		BillDate:    m.BillDate,
		DueDate:     m.DueDate,
		SubTotal:    m.SubTotal,
		VATAmount:   m.VATAmount,
		TotalAmount: m.TotalAmount,
		PaidAmount:  m.PaidAmount,
		Status:      domain.PaymentStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	d.Items = make([]domain.PurchaseBillItem, len(items))
	for i, it := range items {
		d.Items[i] = domain.PurchaseBillItem{
			ItemID:           it.ItemID,
			BillID:           it.BillID,
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			Price:            it.Price,
			ReturnedQuantity: it.ReturnedQuantity,
		}
	}
	return d
}

// ToDomainExpense converts a model Expense to a domain ExpenseRecord
func ToDomainExpense(m models.Expense) domain.ExpenseRecord {
	return domain.ExpenseRecord{
		ExpenseID:         m.ExpenseID,
		ExpenseNumber:     m.ExpenseNumber,
		BusinessID:        m.BusinessID,
		BranchID:          m.BranchID,
		ExpenseDate:       m.ExpenseDate,
		Category:          m.Category,
		Description:       m.Description,
		SubTotal:          m.SubTotal,
		VATAmount:         m.VATAmount,
		Amount:            m.Amount,
		ExpenseAccountID:  m.ExpenseAccountID,
		PaidFromAccountID: m.PaidFromAccountID,
		VendorID:          m.VendorID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOtherIncome converts a model OtherIncome to a domain OtherIncome
func ToDomainOtherIncome(m models.OtherIncome) domain.OtherIncome {
	return domain.OtherIncome{
		OtherIncomeID:        m.OtherIncomeID,
		IncomeNumber:         m.IncomeNumber,
		BusinessID:           m.BusinessID,
		BranchID:             m.BranchID,
		IncomeDate:           m.IncomeDate,
		Description:          m.Description,
		Amount:               m.Amount,
		IncomeAccountID:      m.IncomeAccountID,
		DepositedToAccountID: m.DepositedToAccountID,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFundTransfer converts a model FundTransfer to a domain FundTransfer
func ToDomainFundTransfer(m models.FundTransfer) domain.FundTransfer {
	return domain.FundTransfer{
		TransferID:    m.TransferID,
		BusinessID:    m.BusinessID,
		BranchID:      m.BranchID,
		TransferDate:  m.TransferDate,
		Description:   m.Description,
		Amount:        m.Amount,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCreditNote converts a model CreditNote plus items to a domain CreditNote
func ToDomainCreditNote(m models.CreditNote, items []models.CreditNoteItem) domain.CreditNote {
	d := domain.CreditNote{
		CreditNoteID:     m.CreditNoteID,
		CreditNoteNumber: m.CreditNoteNumber,
		BusinessID:       m.BusinessID,
		BranchID:         m.BranchID,
		CustomerID:       m.CustomerID,
		InvoiceID:        m.InvoiceID,
		NoteDate:         m.NoteDate,
		Reason:           m.Reason,
		TotalAmount:      m.TotalAmount,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	d.Items = make([]domain.CreditNoteItem, len(items))
	for i, it := range items {
		d.Items[i] = domain.CreditNoteItem{
			ItemID:       it.ItemID,
			CreditNoteID: it.CreditNoteID,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			Price:        it.Price,
		}
	}
	return d
}

// ToDomainDebitNote converts a model DebitNote plus items to a domain DebitNote
func ToDomainDebitNote(m models.DebitNote, items []models.DebitNoteItem) domain.DebitNote {
	d := domain.DebitNote{
		DebitNoteID:     m.DebitNoteID,
		DebitNoteNumber: m.DebitNoteNumber,
		BusinessID:      m.BusinessID,
		BranchID:        m.BranchID,
		VendorID:        m.VendorID,
		BillID:          m.BillID,
		NoteDate:        m.NoteDate,
		Reason:          m.Reason,
		TotalAmount:     m.TotalAmount,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	d.Items = make([]domain.DebitNoteItem, len(items))
	for i, it := range items {
		d.Items[i] = domain.DebitNoteItem{
			ItemID:      it.ItemID,
			DebitNoteID: it.DebitNoteID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			Price:       it.Price,
		}
	}
	return d
}
