package dto

import (
	"time"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the payload for adding an account to the chart.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description string             `json:"description"`
}

// UpdateAccountRequest defines the payload for updating an account. Nil
// fields are left unchanged.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// CreateBankAccountRequest defines the payload for opening a bank account.
// AccountName becomes the chart account name.
type CreateBankAccountRequest struct {
	BranchID      string `json:"branchID" binding:"required"`
	AccountName   string `json:"accountName" binding:"required"`
	BankName      string `json:"bankName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	BusinessID      string             `json:"businessID"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	Description     string             `json:"description"`
	IsSystemAccount bool               `json:"isSystemAccount"`
	IsActive        bool               `json:"isActive"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID             string           `json:"bankAccountID"`
	AccountID                 string           `json:"accountID"`
	BranchID                  string           `json:"branchID"`
	BankName                  string           `json:"bankName"`
	AccountNumber             string           `json:"accountNumber"`
	LastReconciliationDate    *time.Time       `json:"lastReconciliationDate,omitempty"`
	LastReconciliationBalance *decimal.Decimal `json:"lastReconciliationBalance,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		BusinessID:      a.BusinessID,
		Name:            a.Name,
		AccountType:     a.AccountType,
		Description:     a.Description,
		IsSystemAccount: a.IsSystemAccount,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(as []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(as))
	for i, a := range as {
		responses[i] = ToAccountResponse(&a)
	}
	return responses
}

// ToBankAccountResponse converts a domain.BankAccount to BankAccountResponse DTO.
func ToBankAccountResponse(b *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID:             b.BankAccountID,
		AccountID:                 b.AccountID,
		BranchID:                  b.BranchID,
		BankName:                  b.BankName,
		AccountNumber:             b.AccountNumber,
		LastReconciliationDate:    b.LastReconciliationDate,
		LastReconciliationBalance: b.LastReconciliationBalance,
	}
}
