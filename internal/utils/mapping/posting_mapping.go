package mapping

import (
	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/Omerhrr/Booklet/internal/models"
)

// ToModelPosting converts a domain Posting to a model Posting
func ToModelPosting(d domain.Posting) models.Posting {
	m := models.Posting{
		PostingID:        d.PostingID,
		BusinessID:       d.BusinessID,
		BranchID:         d.BranchID,
		AccountID:        d.AccountID,
		TransactionDate:  d.TransactionDate,
		Description:      d.Description,
		Debit:            d.Debit,
		Credit:           d.Credit,
		IsReconciled:     d.IsReconciled,
		ReconciliationID: d.ReconciliationID,
		CreatedAt:        d.CreatedAt,
	}
	if !d.Source.IsZero() {
		kind := string(d.Source.Kind)
		id := d.Source.DocumentID
		m.SourceKind = &kind
		m.SourceID = &id
	}
	return m
}

// ToDomainPosting converts a model Posting to a domain Posting
func ToDomainPosting(m models.Posting) domain.Posting {
	d := domain.Posting{
		PostingID:        m.PostingID,
		BusinessID:       m.BusinessID,
		BranchID:         m.BranchID,
		AccountID:        m.AccountID,
		TransactionDate:  m.TransactionDate,
		Description:      m.Description,
		Debit:            m.Debit,
		Credit:           m.Credit,
		IsReconciled:     m.IsReconciled,
		ReconciliationID: m.ReconciliationID,
		CreatedAt:        m.CreatedAt,
	}
	if m.SourceKind != nil && m.SourceID != nil {
		d.Source = domain.SourceRef{
			Kind:       domain.SourceKind(*m.SourceKind),
			DocumentID: *m.SourceID,
		}
	}
	return d
}

// ToDomainPostingSlice converts a slice of model Postings to domain Postings
func ToDomainPostingSlice(ms []models.Posting) []domain.Posting {
	ds := make([]domain.Posting, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPosting(m)
	}
	return ds
}
