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

// partyHandler handles HTTP requests for customers, vendors and products.
type partyHandler struct {
	partyService   portssvc.PartySvc
	productService portssvc.ProductSvc
}

func newPartyHandler(partySvc portssvc.PartySvc, productSvc portssvc.ProductSvc) *partyHandler {
	return &partyHandler{partyService: partySvc, productService: productSvc}
}

// registerPartyRoutes registers routes for counterparties and products.
func registerPartyRoutes(rg *gin.RouterGroup, partySvc portssvc.PartySvc, productSvc portssvc.ProductSvc) {
	h := newPartyHandler(partySvc, productSvc)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
	}

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
	}

	products := rg.Group("/branches/:branchID/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:productID", h.getProduct)
	}
}

func (h *partyHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.partyService.CreateCustomer(c.Request.Context(), businessID, domain.Customer{
		BranchID: req.BranchID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to create customer")
		return
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, customer)
}

func (h *partyHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	customers, err := h.partyService.ListCustomers(c.Request.Context(), businessID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *partyHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	vendor, err := h.partyService.CreateVendor(c.Request.Context(), businessID, domain.Vendor{
		BranchID: req.BranchID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to create vendor")
		return
	}

	logger.Info("Vendor created", slog.String("vendor_id", vendor.VendorID))
	c.JSON(http.StatusCreated, vendor)
}

func (h *partyHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	vendors, err := h.partyService.ListVendors(c.Request.Context(), businessID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list vendors")
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *partyHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), branchID, domain.Product{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		SKU:           req.SKU,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SalesPrice:    req.SalesPrice,
		OpeningStock:  req.OpeningStock,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to create product")
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, product)
}

func (h *partyHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")
	productID := c.Param("productID")

	product, err := h.productService.GetProductByID(c.Request.Context(), branchID, productID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *partyHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	products, err := h.productService.ListProducts(c.Request.Context(), branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, products)
}
