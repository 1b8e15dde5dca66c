package domain

import "github.com/shopspring/decimal"

// Business is the tenant root. Every account, party and document hangs off
// exactly one business.
type Business struct {
	BusinessID      string          `json:"businessID"` // Primary Key (UUID)
	Name            string          `json:"name"`       // Unique across the platform
	IsVATRegistered bool            `json:"isVATRegistered"`
	VATRate         decimal.Decimal `json:"vatRate"` // Percentage, e.g. 10 for 10%
	AuditFields
}

// Branch is an operating location of a business. Stock, bank accounts and
// documents are branch-scoped; the chart of accounts is business-scoped.
type Branch struct {
	BranchID   string `json:"branchID"`   // Primary Key (UUID)
	BusinessID string `json:"businessID"` // FK -> businesses.business_id (Not Null)
	Name       string `json:"name"`       // Unique per business
	Currency   string `json:"currency"`   // ISO 4217 code, e.g. "USD"
	IsDefault  bool   `json:"isDefault"`  // First branch created for the business
	AuditFields
}
