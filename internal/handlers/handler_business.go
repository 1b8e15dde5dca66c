package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/internal/dto"
	"github.com/Omerhrr/Booklet/internal/middleware"
)

// businessHandler handles HTTP requests for tenant onboarding.
type businessHandler struct {
	businessService portssvc.BusinessSvc
}

func newBusinessHandler(svc portssvc.BusinessSvc) *businessHandler {
	return &businessHandler{businessService: svc}
}

// registerBusinessRoutes registers routes for businesses and branches.
func registerBusinessRoutes(rg *gin.RouterGroup, svc portssvc.BusinessSvc) {
	h := newBusinessHandler(svc)

	rg.POST("/businesses", h.createBusiness)
	business := rg.Group("/businesses/:businessID")
	{
		business.GET("", h.getBusiness)
		business.POST("/branches", h.createBranch)
		business.GET("/branches", h.listBranches)
	}
}

func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create business")
		return
	}

	logger.Info("Business created", slog.String("business_id", business.BusinessID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	business, err := h.businessService.GetBusinessByID(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve business")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

func (h *businessHandler) createBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBranch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	branch, err := h.businessService.CreateBranch(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create branch")
		return
	}

	logger.Info("Branch created", slog.String("branch_id", branch.BranchID))
	c.JSON(http.StatusCreated, dto.ToBranchResponse(branch))
}

func (h *businessHandler) listBranches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	branches, err := h.businessService.ListBranches(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Failed to list branches")
		return
	}
	c.JSON(http.StatusOK, dto.ToBranchResponses(branches))
}
