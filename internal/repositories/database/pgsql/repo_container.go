package pgsql

import (
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	businessRepo := newPgxBusinessRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	bankAccountRepo := newPgxBankAccountRepository(dbPool)
	postingRepo := newPgxPostingRepository(dbPool)
	sequenceRepo := newPgxSequenceRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	partyRepo := newPgxPartyRepository(dbPool)
	salesRepo := newPgxSalesRepository(dbPool)
	purchaseRepo := newPgxPurchaseRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	payrollRepo := newPgxPayrollRepository(dbPool)
	reconciliationRepo := newPgxReconciliationRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		BusinessRepo:       businessRepo,
		AccountRepo:        accountRepo,
		BankAccountRepo:    bankAccountRepo,
		PostingRepo:        postingRepo,
		SequenceRepo:       sequenceRepo,
		ProductRepo:        productRepo,
		PartyRepo:          partyRepo,
		SalesRepo:          salesRepo,
		PurchaseRepo:       purchaseRepo,
		ExpenseRepo:        expenseRepo,
		PayrollRepo:        payrollRepo,
		ReconciliationRepo: reconciliationRepo,
		ReportingRepo:      reportingRepo,
		TxManager:          &BaseRepository{Pool: dbPool},
	}
}
