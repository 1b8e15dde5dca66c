package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account maps the accounts table.
type Account struct {
	AccountID       string `db:"account_id"`
	BusinessID      string `db:"business_id"`
	Name            string `db:"name"`
	AccountType     string `db:"account_type"`
	Description     string `db:"description"` // Nullable; scanned via sql.NullString
	IsSystemAccount bool   `db:"is_system_account"`
	IsActive        bool   `db:"is_active"`
	AuditFields
}

// BankAccount maps the bank_accounts table.
type BankAccount struct {
	BankAccountID             string           `db:"bank_account_id"`
	AccountID                 string           `db:"account_id"`
	BusinessID                string           `db:"business_id"`
	BranchID                  string           `db:"branch_id"`
	BankName                  string           `db:"bank_name"`
	AccountNumber             string           `db:"account_number"`
	LastReconciliationDate    *time.Time       `db:"last_reconciliation_date"`
	LastReconciliationBalance *decimal.Decimal `db:"last_reconciliation_balance"`
	AuditFields
}
