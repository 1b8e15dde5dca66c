package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/Omerhrr/Booklet/internal/middleware"
)

// bankingHandler handles HTTP requests for bank accounts, fund transfers,
// VAT settlement and bank reconciliation.
type bankingHandler struct {
	bankingService portssvc.BankingSvc
}

func newBankingHandler(svc portssvc.BankingSvc) *bankingHandler {
	return &bankingHandler{bankingService: svc}
}

// registerBankingRoutes registers routes related to banking.
func registerBankingRoutes(rg *gin.RouterGroup, svc portssvc.BankingSvc) {
	h := newBankingHandler(svc)

	bankAccounts := rg.Group("/bank-accounts")
	{
		bankAccounts.POST("", h.createBankAccount)
		bankAccounts.GET("", h.listBankAccounts)
	}

	transfers := rg.Group("/fund-transfers")
	{
		transfers.POST("", h.transferFunds)
		transfers.GET("", h.listFundTransfers)
	}

	rg.POST("/vat-settlements", h.settleVAT)

	reconciliation := rg.Group("/reconciliation")
	{
		reconciliation.GET("/unreconciled", h.listUnreconciledPostings)
		reconciliation.GET("/opening-balance", h.getOpeningBalance)
		reconciliation.POST("", h.reconcile)
		reconciliation.GET("", h.listReconciliations)
		reconciliation.GET("/:reconciliationID/report", h.getReconciliationReport)
	}
}

func (h *bankingHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bankAccount, err := h.bankingService.CreateBankAccount(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create bank account")
		return
	}

	logger.Info("Bank account created",
		slog.String("bank_account_id", bankAccount.BankAccountID),
		slog.String("account_id", bankAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(bankAccount))
}

func (h *bankingHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	bankAccounts, err := h.bankingService.ListBankAccounts(c.Request.Context(), businessID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list bank accounts")
		return
	}

	responses := make([]dto.BankAccountResponse, len(bankAccounts))
	for i := range bankAccounts {
		responses[i] = dto.ToBankAccountResponse(&bankAccounts[i])
	}
	c.JSON(http.StatusOK, responses)
}

func (h *bankingHandler) transferFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.FundTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferFunds", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	transfer, err := h.bankingService.TransferFunds(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to transfer funds")
		return
	}

	logger.Info("Funds transferred",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("amount", transfer.Amount.String()))
	c.JSON(http.StatusCreated, transfer)
}

func (h *bankingHandler) listFundTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	transfers, err := h.bankingService.ListFundTransfers(c.Request.Context(), businessID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list fund transfers")
		return
	}
	c.JSON(http.StatusOK, transfers)
}

func (h *bankingHandler) settleVAT(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.VATSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SettleVAT", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	postings, err := h.bankingService.SettleVAT(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to settle VAT")
		return
	}

	logger.Info("VAT settlement posted", slog.Int("lines", len(postings)))
	c.JSON(http.StatusCreated, dto.ToPostingResponses(postings))
}

func (h *bankingHandler) listUnreconciledPostings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	accountID := c.Query("accountID")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountID query parameter is required"})
		return
	}

	postings, err := h.bankingService.ListUnreconciledPostings(c.Request.Context(), businessID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to list unreconciled postings")
		return
	}
	c.JSON(http.StatusOK, dto.ToPostingResponses(postings))
}

func (h *bankingHandler) getOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	accountID := c.Query("accountID")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountID query parameter is required"})
		return
	}

	balance, err := h.bankingService.GetReconciliationOpeningBalance(c.Request.Context(), businessID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute opening balance")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accountID": accountID, "openingBalance": balance})
}

func (h *bankingHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Reconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.bankingService.Reconcile(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile account")
		return
	}

	logger.Info("Reconciliation recorded",
		slog.String("reconciliation_id", batch.ReconciliationID),
		slog.String("account_id", batch.AccountID),
		slog.Int("postings", len(req.PostingIDs)))
	c.JSON(http.StatusCreated, batch)
}

func (h *bankingHandler) listReconciliations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	accountID := c.Query("accountID")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountID query parameter is required"})
		return
	}

	batches, err := h.bankingService.ListReconciliations(c.Request.Context(), businessID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to list reconciliations")
		return
	}
	c.JSON(http.StatusOK, batches)
}

func (h *bankingHandler) getReconciliationReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	reconciliationID := c.Param("reconciliationID")

	report, err := h.bankingService.GetReconciliationReport(c.Request.Context(), businessID, reconciliationID)
	if err != nil {
		respondError(c, logger, err, "Failed to build reconciliation report")
		return
	}
	c.JSON(http.StatusOK, report)
}
