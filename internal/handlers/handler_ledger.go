package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/Omerhrr/Booklet/internal/middleware"
)

// ledgerHandler handles HTTP requests for manual journal entries and raw
// posting lookups.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newLedgerHandler(svc portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: svc}
}

// registerLedgerRoutes registers routes related to the ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvc) {
	h := newLedgerHandler(svc)

	rg.POST("/journal-vouchers", h.createJournalVoucher)
	rg.GET("/postings", h.getPostingsBySource)
}

func (h *ledgerHandler) createJournalVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateJournalVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournalVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	postings, err := h.ledgerService.CreateJournalVoucher(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create journal voucher")
		return
	}

	logger.Info("Journal voucher posted", slog.Int("lines", len(postings)))
	c.JSON(http.StatusCreated, dto.ToPostingResponses(postings))
}

// getPostingsBySource returns the posting group written for one source
// document, identified by sourceKind and sourceID query parameters.
func (h *ledgerHandler) getPostingsBySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	kind := c.Query("sourceKind")
	documentID := c.Query("sourceID")
	if kind == "" || documentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sourceKind and sourceID query parameters are required"})
		return
	}

	source := domain.SourceRef{Kind: domain.SourceKind(kind), DocumentID: documentID}
	postings, err := h.ledgerService.GetPostingsBySource(c.Request.Context(), businessID, source)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve postings")
		return
	}
	c.JSON(http.StatusOK, dto.ToPostingResponses(postings))
}
