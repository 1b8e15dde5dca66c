package mapping

import (
	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/Omerhrr/Booklet/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		BranchID:      d.BranchID,
		CategoryID:    d.CategoryID,
		Name:          d.Name,
		SKU:           d.SKU,
		Unit:          d.Unit,
		PurchasePrice: d.PurchasePrice,
		SalesPrice:    d.SalesPrice,
		OpeningStock:  d.OpeningStock,
		StockQuantity: d.StockQuantity,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		BranchID:      m.BranchID,
		CategoryID:    m.CategoryID,
		Name:          m.Name,
		SKU:           m.SKU,
		Unit:          m.Unit,
		PurchasePrice: m.PurchasePrice,
		SalesPrice:    m.SalesPrice,
		OpeningStock:  m.OpeningStock,
		StockQuantity: m.StockQuantity,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		BusinessID:  m.BusinessID,
		BranchID:    m.BranchID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		BusinessID:  d.BusinessID,
		BranchID:    d.BranchID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Address:     d.Address,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVendor converts a model Vendor to a domain Vendor
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:    m.VendorID,
		BusinessID:  m.BusinessID,
		BranchID:    m.BranchID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVendor converts a domain Vendor to a model Vendor
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:    d.VendorID,
		BusinessID:  d.BusinessID,
		BranchID:    d.BranchID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Address:     d.Address,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
