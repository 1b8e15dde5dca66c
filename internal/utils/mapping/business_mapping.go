package mapping

import (
	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/Omerhrr/Booklet/internal/models"
)

// ToModelBusiness converts a domain Business to a model Business
func ToModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:      d.BusinessID,
		Name:            d.Name,
		IsVATRegistered: d.IsVATRegistered,
		VATRate:         d.VATRate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBusiness converts a model Business to a domain Business
func ToDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:      m.BusinessID,
		Name:            m.Name,
		IsVATRegistered: m.IsVATRegistered,
		VATRate:         m.VATRate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBranch converts a domain Branch to a model Branch
func ToModelBranch(d domain.Branch) models.Branch {
	return models.Branch{
		BranchID:    d.BranchID,
		BusinessID:  d.BusinessID,
		Name:        d.Name,
		Currency:    d.Currency,
		IsDefault:   d.IsDefault,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBranch converts a model Branch to a domain Branch
func ToDomainBranch(m models.Branch) domain.Branch {
	return domain.Branch{
		BranchID:    m.BranchID,
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		Currency:    m.Currency,
		IsDefault:   m.IsDefault,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBranchSlice converts a slice of model Branches to domain Branches
func ToDomainBranchSlice(ms []models.Branch) []domain.Branch {
	ds := make([]domain.Branch, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBranch(m)
	}
	return ds
}
