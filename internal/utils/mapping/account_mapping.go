package mapping

import (
	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/Omerhrr/Booklet/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		BusinessID:      d.BusinessID,
		Name:            d.Name,
		AccountType:     string(d.AccountType),
		Description:     d.Description,
		IsSystemAccount: d.IsSystemAccount,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		BusinessID:      m.BusinessID,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		Description:     m.Description,
		IsSystemAccount: m.IsSystemAccount,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID:             m.BankAccountID,
		AccountID:                 m.AccountID,
		BusinessID:                m.BusinessID,
		BranchID:                  m.BranchID,
		BankName:                  m.BankName,
		AccountNumber:             m.AccountNumber,
		LastReconciliationDate:    m.LastReconciliationDate,
		LastReconciliationBalance: m.LastReconciliationBalance,
		AuditFields:               ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankAccountSlice converts a slice of model BankAccounts to domain BankAccounts
func ToDomainBankAccountSlice(ms []models.BankAccount) []domain.BankAccount {
	ds := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankAccount(m)
	}
	return ds
}
