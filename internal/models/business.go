package models

import "github.com/shopspring/decimal"

// Business maps the businesses table.
type Business struct {
	BusinessID      string          `db:"business_id"`
	Name            string          `db:"name"`
	IsVATRegistered bool            `db:"is_vat_registered"`
	VATRate         decimal.Decimal `db:"vat_rate"`
	AuditFields
}

// Branch maps the branches table.
type Branch struct {
	BranchID   string `db:"branch_id"`
	BusinessID string `db:"business_id"`
	Name       string `db:"name"`
	Currency   string `db:"currency"`
	IsDefault  bool   `db:"is_default"`
	AuditFields
}
