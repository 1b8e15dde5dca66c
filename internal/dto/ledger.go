package dto

import (
	"time"

	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest defines one line of a manual journal voucher. Exactly
// one of debit or credit should be positive.
type JournalLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// CreateJournalVoucherRequest defines the payload for a manual journal entry.
type CreateJournalVoucherRequest struct {
	BranchID    string               `json:"branchID" binding:"required"`
	Date        time.Time            `json:"date" binding:"required"`
	Description string               `json:"description"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// PostingResponse defines the data returned for one ledger posting.
type PostingResponse struct {
	PostingID        string          `json:"postingID"`
	AccountID        string          `json:"accountID"`
	BranchID         string          `json:"branchID"`
	TransactionDate  time.Time       `json:"transactionDate"`
	Description      string          `json:"description"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	SourceKind       string          `json:"sourceKind,omitempty"`
	SourceDocumentID string          `json:"sourceDocumentID,omitempty"`
	IsReconciled     bool            `json:"isReconciled"`
}

// ToPostingResponse converts a domain.Posting to PostingResponse DTO.
func ToPostingResponse(p *domain.Posting) PostingResponse {
	return PostingResponse{
		PostingID:        p.PostingID,
		AccountID:        p.AccountID,
		BranchID:         p.BranchID,
		TransactionDate:  p.TransactionDate,
		Description:      p.Description,
		Debit:            p.Debit,
		Credit:           p.Credit,
		SourceKind:       string(p.Source.Kind),
		SourceDocumentID: p.Source.DocumentID,
		IsReconciled:     p.IsReconciled,
	}
}

// ToPostingResponses converts a slice of domain.Posting to []PostingResponse.
func ToPostingResponses(ps []domain.Posting) []PostingResponse {
	responses := make([]PostingResponse, len(ps))
	for i, p := range ps {
		responses[i] = ToPostingResponse(&p)
	}
	return responses
}
