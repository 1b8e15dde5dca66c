package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
	portssvc "github.com/Omerhrr/Booklet/internal/core/ports/services"
)

// productService manages products and stock metadata.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductSvc.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvc {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvc = (*productService)(nil)

// CreateProduct persists a new product. Opening stock becomes the initial
// stock quantity.
func (s *productService) CreateProduct(ctx context.Context, branchID string, product domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if product.OpeningStock.IsNegative() {
		return nil, fmt.Errorf("%w: opening stock must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	product.ProductID = uuid.NewString()
	product.BranchID = branchID
	product.StockQuantity = product.OpeningStock
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "failed to save product", slog.String("branch_id", branchID))
		return nil, err
	}
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, branchID, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, branchID, productID)
}

func (s *productService) ListProducts(ctx context.Context, branchID string) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx, branchID)
}

// partyService manages customers and vendors.
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepository
}

// NewPartyService creates a new PartySvc.
func NewPartyService(partyRepo portsrepo.PartyRepository) portssvc.PartySvc {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvc = (*partyService)(nil)

func (s *partyService) CreateCustomer(ctx context.Context, businessID string, customer domain.Customer) (*domain.Customer, error) {
	if customer.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	customer.CustomerID = uuid.NewString()
	customer.BusinessID = businessID
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if err := s.partyRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "failed to save customer", slog.String("business_id", businessID))
		return nil, err
	}
	return &customer, nil
}

func (s *partyService) ListCustomers(ctx context.Context, businessID, branchID string) ([]domain.Customer, error) {
	return s.partyRepo.ListCustomersByBranch(ctx, businessID, branchID)
}

func (s *partyService) CreateVendor(ctx context.Context, businessID string, vendor domain.Vendor) (*domain.Vendor, error) {
	if vendor.Name == "" {
		return nil, fmt.Errorf("%w: vendor name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	vendor.VendorID = uuid.NewString()
	vendor.BusinessID = businessID
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	if err := s.partyRepo.SaveVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "failed to save vendor", slog.String("business_id", businessID))
		return nil, err
	}
	return &vendor, nil
}

func (s *partyService) ListVendors(ctx context.Context, businessID, branchID string) ([]domain.Vendor, error) {
	return s.partyRepo.ListVendorsByBranch(ctx, businessID, branchID)
}
