package dto

import (
	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBusinessRequest defines the payload for onboarding a new business.
// The default branch and system chart of accounts are created with it.
type CreateBusinessRequest struct {
	Name            string          `json:"name" binding:"required"`
	IsVATRegistered bool            `json:"isVATRegistered"`
	VATRate         decimal.Decimal `json:"vatRate"`
	BranchName      string          `json:"branchName" binding:"required"`
	Currency        string          `json:"currency" binding:"required,iso4217"`
}

// CreateBranchRequest defines the payload for adding a branch.
type CreateBranchRequest struct {
	Name     string `json:"name" binding:"required"`
	Currency string `json:"currency" binding:"required,iso4217"`
}

// BusinessResponse defines the data returned for a business.
type BusinessResponse struct {
	BusinessID      string          `json:"businessID"`
	Name            string          `json:"name"`
	IsVATRegistered bool            `json:"isVATRegistered"`
	VATRate         decimal.Decimal `json:"vatRate"`
}

// BranchResponse defines the data returned for a branch.
type BranchResponse struct {
	BranchID   string `json:"branchID"`
	BusinessID string `json:"businessID"`
	Name       string `json:"name"`
	Currency   string `json:"currency"`
	IsDefault  bool   `json:"isDefault"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse DTO.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:      b.BusinessID,
		Name:            b.Name,
		IsVATRegistered: b.IsVATRegistered,
		VATRate:         b.VATRate,
	}
}

// ToBranchResponse converts a domain.Branch to BranchResponse DTO.
func ToBranchResponse(b *domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID:   b.BranchID,
		BusinessID: b.BusinessID,
		Name:       b.Name,
		Currency:   b.Currency,
		IsDefault:  b.IsDefault,
	}
}

// ToBranchResponses converts a slice of domain.Branch to []BranchResponse.
func ToBranchResponses(bs []domain.Branch) []BranchResponse {
	responses := make([]BranchResponse, len(bs))
	for i, b := range bs {
		responses[i] = ToBranchResponse(&b)
	}
	return responses
}
