package dto

import "github.com/shopspring/decimal"

// CreateProductRequest defines the payload for adding a product.
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	SKU           string          `json:"sku"`
	Unit          string          `json:"unit"`
	CategoryID    *string         `json:"categoryID"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalesPrice    decimal.Decimal `json:"salesPrice"`
	OpeningStock  decimal.Decimal `json:"openingStock"`
}

// CreatePartyRequest defines the shared payload for customers and vendors.
type CreatePartyRequest struct {
	BranchID string `json:"branchID" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
