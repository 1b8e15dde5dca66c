package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// ValidAccountTypes lists every recognised account type.
var ValidAccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether t is one of the five recognised account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Names of the system accounts workflows post against. Seeded per business at
// onboarding; renaming or deleting them is forbidden.
const (
	AccountCash               = "Cash"
	AccountAccountsReceivable = "Accounts Receivable"
	AccountInventory          = "Inventory"
	AccountInputVAT           = "VAT Receivable (Input VAT)"
	AccountAccountsPayable    = "Accounts Payable"
	AccountPayrollLiabilities = "Payroll Liabilities"
	AccountPAYEPayable        = "PAYE Payable"
	AccountPensionPayable     = "Pension Payable"
	AccountOutputVAT          = "VAT Payable (Output VAT)"
	AccountOwnersEquity       = "Owner's Equity"
	AccountSalesRevenue       = "Sales Revenue"
	AccountOtherIncome        = "Other Income"
	AccountCOGS               = "Cost of Goods Sold"
	AccountSalaryExpense      = "Salary Expense"
)

// Account is an entry in a business's chart of accounts.
type Account struct {
	AccountID       string      `json:"accountID"`  // Primary Key (UUID)
	BusinessID      string      `json:"businessID"` // FK -> businesses.business_id (Not Null)
	Name            string      `json:"name"`       // Unique per business
	AccountType     AccountType `json:"accountType"`
	Description     string      `json:"description"`     // Nullable user description
	IsSystemAccount bool        `json:"isSystemAccount"` // Seeded accounts workflows depend on
	IsActive        bool        `json:"isActive"`
	AuditFields
}

// BankAccount is the detail record behind a payment account: one chart
// account plus the bank metadata and the reconciliation checkpoint.
type BankAccount struct {
	BankAccountID             string     `json:"bankAccountID"` // Primary Key (UUID)
	AccountID                 string     `json:"accountID"`     // FK -> accounts.account_id (Unique)
	BusinessID                string     `json:"businessID"`
	BranchID                  string     `json:"branchID"`
	BankName                  string     `json:"bankName"`
	AccountNumber             string     `json:"accountNumber"`
	LastReconciliationDate    *time.Time       `json:"lastReconciliationDate"`    // Nullable until first reconciliation
	LastReconciliationBalance *decimal.Decimal `json:"lastReconciliationBalance"` // Nil until first reconciliation
	AuditFields
}
