package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/Omerhrr/Booklet/internal/middleware"
)

// expenseHandler handles HTTP requests for expenses and other income.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvc
}

func newExpenseHandler(svc portssvc.ExpenseSvc) *expenseHandler {
	return &expenseHandler{expenseService: svc}
}

// registerExpenseRoutes registers routes related to direct spend and
// non-sales income.
func registerExpenseRoutes(rg *gin.RouterGroup, svc portssvc.ExpenseSvc) {
	h := newExpenseHandler(svc)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
	}

	otherIncome := rg.Group("/other-income")
	{
		otherIncome.POST("", h.createOtherIncome)
		otherIncome.GET("", h.listOtherIncome)
	}
}

func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create expense")
		return
	}

	logger.Info("Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("expense_number", expense.ExpenseNumber))
	c.JSON(http.StatusCreated, expense)
}

func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), businessID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *expenseHandler) createOtherIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateOtherIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOtherIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	income, err := h.expenseService.CreateOtherIncome(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create other income")
		return
	}

	logger.Info("Other income recorded",
		slog.String("other_income_id", income.OtherIncomeID),
		slog.String("income_number", income.IncomeNumber))
	c.JSON(http.StatusCreated, income)
}

func (h *expenseHandler) listOtherIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	income, err := h.expenseService.ListOtherIncome(c.Request.Context(), businessID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list other income")
		return
	}
	c.JSON(http.StatusOK, income)
}
