package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/Omerhrr/Booklet/internal/middleware"
)

// salesHandler handles HTTP requests for invoices, payments and credit notes.
type salesHandler struct {
	salesService portssvc.SalesSvc
}

func newSalesHandler(svc portssvc.SalesSvc) *salesHandler {
	return &salesHandler{salesService: svc}
}

// registerSalesRoutes registers routes related to the sales workflow.
func registerSalesRoutes(rg *gin.RouterGroup, svc portssvc.SalesSvc) {
	h := newSalesHandler(svc)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.POST("/:invoiceID/payments", h.recordPayment)
	}

	creditNotes := rg.Group("/credit-notes")
	{
		creditNotes.POST("", h.createCreditNote)
		creditNotes.GET("/:creditNoteID", h.getCreditNote)
	}
}

func (h *salesHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.salesService.CreateInvoice(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

func (h *salesHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	invoiceID := c.Param("invoiceID")

	invoice, err := h.salesService.GetInvoiceByID(c.Request.Context(), businessID, invoiceID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *salesHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	invoices, err := h.salesService.ListInvoices(c.Request.Context(), businessID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list invoices")
		return
	}

	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = dto.ToInvoiceResponse(&invoices[i])
	}
	c.JSON(http.StatusOK, responses)
}

func (h *salesHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	invoiceID := c.Param("invoiceID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordInvoicePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.salesService.RecordInvoicePayment(c.Request.Context(), businessID, invoiceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Invoice payment recorded",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("status", string(invoice.Status)))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *salesHandler) createCreditNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateCreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCreditNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	note, err := h.salesService.CreateCreditNote(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create credit note")
		return
	}

	logger.Info("Credit note created",
		slog.String("credit_note_id", note.CreditNoteID),
		slog.String("credit_note_number", note.CreditNoteNumber))
	c.JSON(http.StatusCreated, note)
}

func (h *salesHandler) getCreditNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	creditNoteID := c.Param("creditNoteID")

	note, err := h.salesService.GetCreditNoteByID(c.Request.Context(), businessID, creditNoteID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve credit note")
		return
	}
	c.JSON(http.StatusOK, note)
}
