package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
	"github.com/Omerhrr/Booklet/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Business onboarding lives at the group root; everything else is scoped
	// to one business.
	registerBusinessRoutes(v1, services.Business)

	business := v1.Group("/businesses/:businessID")
	registerAccountRoutes(business, services.Account)
	registerLedgerRoutes(business, services.Ledger)
	registerSalesRoutes(business, services.Sales)
	registerPurchaseRoutes(business, services.Purchase)
	registerExpenseRoutes(business, services.Expense)
	registerPayrollRoutes(business, services.Payroll)
	registerBankingRoutes(business, services.Banking)
	registerPartyRoutes(business, services.Party, services.Product)
	registerReportingRoutes(business, services.Reporting)
}
