package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/Omerhrr/Booklet/internal/middleware"
)

// purchaseHandler handles HTTP requests for bills, payments and debit notes.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvc
}

func newPurchaseHandler(svc portssvc.PurchaseSvc) *purchaseHandler {
	return &purchaseHandler{purchaseService: svc}
}

// registerPurchaseRoutes registers routes related to the purchase workflow.
func registerPurchaseRoutes(rg *gin.RouterGroup, svc portssvc.PurchaseSvc) {
	h := newPurchaseHandler(svc)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:billID", h.getBill)
		bills.POST("/:billID/payments", h.recordPayment)
	}

	debitNotes := rg.Group("/debit-notes")
	{
		debitNotes.POST("", h.createDebitNote)
		debitNotes.GET("/:debitNoteID", h.getDebitNote)
	}
}

func (h *purchaseHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bill, err := h.purchaseService.CreateBill(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create bill")
		return
	}

	logger.Info("Bill created",
		slog.String("bill_id", bill.BillID),
		slog.String("bill_number", bill.BillNumber))
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

func (h *purchaseHandler) getBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	billID := c.Param("billID")

	bill, err := h.purchaseService.GetBillByID(c.Request.Context(), businessID, billID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

func (h *purchaseHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	bills, err := h.purchaseService.ListBills(c.Request.Context(), businessID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list bills")
		return
	}

	responses := make([]dto.BillResponse, len(bills))
	for i := range bills {
		responses[i] = dto.ToBillResponse(&bills[i])
	}
	c.JSON(http.StatusOK, responses)
}

func (h *purchaseHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	billID := c.Param("billID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordBillPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bill, err := h.purchaseService.RecordBillPayment(c.Request.Context(), businessID, billID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Bill payment recorded",
		slog.String("bill_id", bill.BillID),
		slog.String("status", string(bill.Status)))
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

func (h *purchaseHandler) createDebitNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateDebitNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDebitNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	note, err := h.purchaseService.CreateDebitNote(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create debit note")
		return
	}

	logger.Info("Debit note created",
		slog.String("debit_note_id", note.DebitNoteID),
		slog.String("debit_note_number", note.DebitNoteNumber))
	c.JSON(http.StatusCreated, note)
}

func (h *purchaseHandler) getDebitNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	debitNoteID := c.Param("debitNoteID")

	note, err := h.purchaseService.GetDebitNoteByID(c.Request.Context(), businessID, debitNoteID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve debit note")
		return
	}
	c.JSON(http.StatusOK, note)
}
