package dto

import (
	"time"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest defines one product line on an invoice or bill.
type InvoiceItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

// CreateInvoiceRequest defines the payload for creating a sales invoice.
// VAT is applied from the business's registered rate.
type CreateInvoiceRequest struct {
	BranchID    string               `json:"branchID" binding:"required"`
	CustomerID  string               `json:"customerID" binding:"required"`
	InvoiceDate time.Time            `json:"invoiceDate" binding:"required"`
	DueDate     time.Time            `json:"dueDate" binding:"required"`
	Items       []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateBillRequest defines the payload for creating a purchase bill.
type CreateBillRequest struct {
	BranchID string               `json:"branchID" binding:"required"`
	VendorID string               `json:"vendorID" binding:"required"`
	BillDate time.Time            `json:"billDate" binding:"required"`
	DueDate  time.Time            `json:"dueDate" binding:"required"`
	Items    []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// RecordPaymentRequest defines the payload for settling part or all of an
// invoice or bill. AccountID is the payment account money moves through.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	AccountID   string          `json:"accountID" binding:"required"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Description string          `json:"description"`
}

// ReturnItemRequest defines one returned line, referencing the original
// document item so the unit price carries over.
type ReturnItemRequest struct {
	ItemID   string          `json:"itemID" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// CreateCreditNoteRequest defines the payload for a customer return.
type CreateCreditNoteRequest struct {
	InvoiceID string              `json:"invoiceID" binding:"required"`
	NoteDate  time.Time           `json:"noteDate" binding:"required"`
	Reason    string              `json:"reason"`
	Items     []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateDebitNoteRequest defines the payload for a return to a vendor.
type CreateDebitNoteRequest struct {
	BillID   string              `json:"billID" binding:"required"`
	NoteDate time.Time           `json:"noteDate" binding:"required"`
	Reason   string              `json:"reason"`
	Items    []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceItemResponse defines the data returned for an invoice or bill line.
type InvoiceItemResponse struct {
	ItemID           string          `json:"itemID"`
	ProductID        string          `json:"productID"`
	Quantity         decimal.Decimal `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	ReturnedQuantity decimal.Decimal `json:"returnedQuantity"`
}

// InvoiceResponse defines the data returned for a sales invoice.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	BranchID      string                `json:"branchID"`
	CustomerID    string                `json:"customerID"`
	InvoiceDate   time.Time             `json:"invoiceDate"`
	DueDate       time.Time             `json:"dueDate"`
	SubTotal      decimal.Decimal       `json:"subTotal"`
	VATAmount     decimal.Decimal       `json:"vatAmount"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	PaidAmount    decimal.Decimal       `json:"paidAmount"`
	Status        string                `json:"status"`
	Items         []InvoiceItemResponse `json:"items"`
}

// BillResponse defines the data returned for a purchase bill.
type BillResponse struct {
	BillID      string                `json:"billID"`
	BillNumber  string                `json:"billNumber"`
	BranchID    string                `json:"branchID"`
	VendorID    string                `json:"vendorID"`
	BillDate    time.Time             `json:"billDate"`
	DueDate     time.Time             `json:"dueDate"`
	SubTotal    decimal.Decimal       `json:"subTotal"`
	VATAmount   decimal.Decimal       `json:"vatAmount"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	PaidAmount  decimal.Decimal       `json:"paidAmount"`
	Status      string                `json:"status"`
	Items       []InvoiceItemResponse `json:"items"`
}

// ToInvoiceResponse converts a domain.SalesInvoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.SalesInvoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			ItemID:           it.ItemID,
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			Price:            it.Price,
			ReturnedQuantity: it.ReturnedQuantity,
		}
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		BranchID:      inv.BranchID,
		CustomerID:    inv.CustomerID,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		SubTotal:      inv.SubTotal,
		VATAmount:     inv.VATAmount,
		TotalAmount:   inv.TotalAmount,
		PaidAmount:    inv.PaidAmount,
		Status:        string(inv.Status),
		Items:         items,
	}
}

// ToBillResponse converts a domain.PurchaseBill to BillResponse DTO.
func ToBillResponse(bill *domain.PurchaseBill) BillResponse {
	items := make([]InvoiceItemResponse, len(bill.Items))
	for i, it := range bill.Items {
		items[i] = InvoiceItemResponse{
			ItemID:           it.ItemID,
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			Price:            it.Price,
			ReturnedQuantity: it.ReturnedQuantity,
		}
	}
	return BillResponse{
		BillID:      bill.BillID,
		BillNumber:  bill.BillNumber,
		BranchID:    bill.BranchID,
		VendorID:    bill.VendorID,
		BillDate:    bill.BillDate,
		DueDate:     bill.DueDate,
		SubTotal:    bill.SubTotal,
		VATAmount:   bill.VATAmount,
		TotalAmount: bill.TotalAmount,
		PaidAmount:  bill.PaidAmount,
		Status:      string(bill.Status),
		Items:       items,
	}
}
