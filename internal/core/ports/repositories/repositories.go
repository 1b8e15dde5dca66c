package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	BusinessRepo       BusinessRepositoryFacade
	AccountRepo        AccountRepositoryFacade
	BankAccountRepo    BankAccountRepository
	PostingRepo        PostingRepositoryFacade
	SequenceRepo       SequenceRepository
	ProductRepo        ProductRepositoryFacade
	PartyRepo          PartyRepository
	SalesRepo          SalesRepository
	PurchaseRepo       PurchaseRepository
	ExpenseRepo        ExpenseRepository
	PayrollRepo        PayrollRepository
	ReconciliationRepo ReconciliationRepository
	ReportingRepo      ReportingRepository
	TxManager          TransactionManager
}
