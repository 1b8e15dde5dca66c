package services

import (
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger service is initialized first since every workflow service
	// posts through it.
	container.Ledger = NewLedgerService(repos.AccountRepo, repos.PostingRepo, repos.SequenceRepo, repos.TxManager)

	container.Business = NewBusinessService(repos.BusinessRepo, repos.AccountRepo, repos.TxManager)
	container.Account = NewAccountService(repos.AccountRepo, repos.BankAccountRepo)
	container.Sales = NewSalesService(repos.SalesRepo, repos.SequenceRepo, repos.ProductRepo, repos.PartyRepo, repos.AccountRepo, repos.BusinessRepo, container.Ledger, repos.TxManager)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.SequenceRepo, repos.ProductRepo, repos.PartyRepo, repos.AccountRepo, repos.BusinessRepo, container.Ledger, repos.TxManager)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.SequenceRepo, repos.AccountRepo, repos.BusinessRepo, container.Ledger, repos.TxManager)
	container.Payroll = NewPayrollService(repos.PayrollRepo, repos.AccountRepo, container.Ledger, repos.TxManager)
	container.Banking = NewBankingService(repos.AccountRepo, repos.BankAccountRepo, repos.PostingRepo, repos.ExpenseRepo, repos.ReconciliationRepo, container.Ledger, repos.TxManager)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.PostingRepo, repos.AccountRepo, repos.BankAccountRepo, repos.PartyRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Party = NewPartyService(repos.PartyRepo)

	return container
}
