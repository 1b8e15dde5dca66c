package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/Omerhrr/Booklet/internal/middleware"
)

// payrollHandler handles HTTP requests for employees and payroll runs.
type payrollHandler struct {
	payrollService portssvc.PayrollSvc
}

func newPayrollHandler(svc portssvc.PayrollSvc) *payrollHandler {
	return &payrollHandler{payrollService: svc}
}

// registerPayrollRoutes registers routes related to payroll.
func registerPayrollRoutes(rg *gin.RouterGroup, svc portssvc.PayrollSvc) {
	h := newPayrollHandler(svc)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.PUT("/:employeeID/payroll-config", h.setPayrollConfig)
	}

	payroll := rg.Group("/payroll")
	{
		payroll.POST("/runs", h.runPayroll)
		payroll.GET("/payslips", h.listPayslips)
		payroll.GET("/payslips/:payslipID", h.getPayslip)
	}
}

func (h *payrollHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.payrollService.CreateEmployee(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, employee)
}

func (h *payrollHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	employees, err := h.payrollService.ListEmployees(c.Request.Context(), businessID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *payrollHandler) setPayrollConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	employeeID := c.Param("employeeID")

	var req dto.PayrollConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetPayrollConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	config, err := h.payrollService.SetPayrollConfig(c.Request.Context(), businessID, employeeID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to set payroll configuration")
		return
	}

	logger.Info("Payroll configuration set", slog.String("employee_id", employeeID))
	c.JSON(http.StatusOK, config)
}

func (h *payrollHandler) runPayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.RunPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RunPayroll", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payslips, err := h.payrollService.RunPayroll(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to run payroll")
		return
	}

	logger.Info("Payroll run completed", slog.Int("payslips", len(payslips)))
	c.JSON(http.StatusCreated, dto.ToPayslipResponses(payslips))
}

func (h *payrollHandler) getPayslip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	payslipID := c.Param("payslipID")

	payslip, err := h.payrollService.GetPayslipByID(c.Request.Context(), businessID, payslipID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve payslip")
		return
	}
	c.JSON(http.StatusOK, payslip)
}

func (h *payrollHandler) listPayslips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	payslips, err := h.payrollService.ListPayslips(c.Request.Context(), businessID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list payslips")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayslipResponses(payslips))
}
