package domain

import "github.com/shopspring/decimal"

// Category groups products within a branch.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	BranchID   string `json:"branchID"`
	Name       string `json:"name"`
	AuditFields
}

// Product is a stocked item. StockQuantity is only ever mutated inside a
// workflow transaction holding a row lock on the product.
type Product struct {
	ProductID     string          `json:"productID"` // Primary Key (UUID)
	BranchID      string          `json:"branchID"`
	CategoryID    *string         `json:"categoryID"` // Nullable FK -> categories.category_id
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Unit          string          `json:"unit"` // e.g. "pcs", "kg"
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalesPrice    decimal.Decimal `json:"salesPrice"`
	OpeningStock  decimal.Decimal `json:"openingStock"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
	AuditFields
}

// Customer is a sales counterparty.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	BusinessID string `json:"businessID"`
	BranchID   string `json:"branchID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	AuditFields
}

// Vendor is a purchase counterparty.
type Vendor struct {
	VendorID   string `json:"vendorID"` // Primary Key (UUID)
	BusinessID string `json:"businessID"`
	BranchID   string `json:"branchID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	AuditFields
}
