package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/middleware"
)

// reportDateLayout is the format of date query parameters on report routes.
const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests for derived financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func newReportingHandler(svc portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: svc}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, svc portssvc.ReportingSvc) {
	h := newReportingHandler(svc)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/receivables-aging", h.getReceivablesAging)
		reports.GET("/payables-aging", h.getPayablesAging)
		reports.GET("/account-statement/:accountID", h.getAccountStatement)
		reports.GET("/cashbook", h.getCashbook)
		reports.GET("/customer-statement/:customerID", h.getCustomerStatement)
		reports.GET("/vendor-statement/:vendorID", h.getVendorStatement)
	}
}

// parseDateParam reads a date query parameter. Empty values fall back to the
// given default; malformed values return false after writing a 400.
func parseDateParam(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	parsed, err := time.Parse(reportDateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be formatted as " + reportDateLayout})
		return time.Time{}, false
	}
	return parsed, true
}

// branchFilter reads the optional branchID query parameter. Nil means the
// whole business.
func branchFilter(c *gin.Context) *string {
	if branchID := c.Query("branchID"); branchID != "" {
		return &branchID
	}
	return nil
}

// parseRangeParams reads the from and to query parameters of a ranged report,
// defaulting to the current calendar year.
func parseRangeParams(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	from, ok := parseDateParam(c, "from", yearStart)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := parseDateParam(c, "to", now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	asOf, ok := parseDateParam(c, "asOf", time.Now())
	if !ok {
		return
	}

	report, err := h.reportingService.GetTrialBalance(c.Request.Context(), businessID, branchFilter(c), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to build trial balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetProfitAndLoss(c.Request.Context(), businessID, branchFilter(c), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build profit and loss")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	asOf, ok := parseDateParam(c, "asOf", time.Now())
	if !ok {
		return
	}

	report, err := h.reportingService.GetBalanceSheet(c.Request.Context(), businessID, branchFilter(c), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to build balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getReceivablesAging(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	asOf, ok := parseDateParam(c, "asOf", time.Now())
	if !ok {
		return
	}

	report, err := h.reportingService.GetReceivablesAging(c.Request.Context(), businessID, branchFilter(c), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to build receivables aging")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getPayablesAging(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	asOf, ok := parseDateParam(c, "asOf", time.Now())
	if !ok {
		return
	}

	report, err := h.reportingService.GetPayablesAging(c.Request.Context(), businessID, branchFilter(c), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to build payables aging")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getAccountStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	accountID := c.Param("accountID")

	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}

	statement, err := h.reportingService.GetAccountStatement(c.Request.Context(), businessID, accountID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build account statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

func (h *reportingHandler) getCashbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}

	cashbook, err := h.reportingService.GetCashbook(c.Request.Context(), businessID, branchID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build cashbook")
		return
	}
	c.JSON(http.StatusOK, cashbook)
}

func (h *reportingHandler) getCustomerStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	customerID := c.Param("customerID")

	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}

	statement, err := h.reportingService.GetCustomerStatement(c.Request.Context(), businessID, customerID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build customer statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

func (h *reportingHandler) getVendorStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	vendorID := c.Param("vendorID")

	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}

	statement, err := h.reportingService.GetVendorStatement(c.Request.Context(), businessID, vendorID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build vendor statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}
