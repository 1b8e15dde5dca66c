package models

import "github.com/shopspring/decimal"

// Category maps the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	BranchID   string `db:"branch_id"`
	Name       string `db:"name"`
	AuditFields
}

// Product maps the products table.
type Product struct {
	ProductID     string          `db:"product_id"`
	BranchID      string          `db:"branch_id"`
	CategoryID    *string         `db:"category_id"`
	Name          string          `db:"name"`
	SKU           string          `db:"sku"`
	Unit          string          `db:"unit"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	SalesPrice    decimal.Decimal `db:"sales_price"`
	OpeningStock  decimal.Decimal `db:"opening_stock"`
	StockQuantity decimal.Decimal `db:"stock_quantity"`
	AuditFields
}

// Customer maps the customers table.
type Customer struct {
	CustomerID string `db:"customer_id"`
	BusinessID string `db:"business_id"`
	BranchID   string `db:"branch_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	AuditFields
}

// Vendor maps the vendors table.
type Vendor struct {
	VendorID   string `db:"vendor_id"`
	BusinessID string `db:"business_id"`
	BranchID   string `db:"branch_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	AuditFields
}
