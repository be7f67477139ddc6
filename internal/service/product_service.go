package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"glowkart/internal/media"
	"glowkart/internal/model"
	"glowkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	mediaStore  media.Store
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, mediaStore media.Store, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		mediaStore:  mediaStore,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

func clampPagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// List retrieves products with pagination.
func (s *productService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	filter.Limit, filter.Offset = clampPagination(filter.Limit, filter.Offset)

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Bool("active_only", filter.ActiveOnly).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID. Inactive products look absent to
// the storefront unless includeInactive is set.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil || (!product.IsActive && !includeInactive) {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

func validateProductRequest(req *model.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Product name is required")
	}
	if strings.TrimSpace(req.SKU) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Product SKU is required")
	}
	if req.Price < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "Product price cannot be negative")
	}
	if req.Stock < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "Product stock cannot be negative")
	}
	return nil
}

func applyProductRequest(p *model.Product, req *model.ProductRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.Subtitle = req.Subtitle
	p.Description = req.Description
	p.Price = req.Price
	p.ComparePrice = req.ComparePrice
	p.ShippingPrice = req.ShippingPrice
	p.FreeShipping = req.FreeShipping
	p.SKU = strings.TrimSpace(req.SKU)
	p.Category = req.Category
	p.Stock = req.Stock
	p.LowStockThreshold = req.LowStockThreshold
	p.Features = req.Features
	p.Sizes = req.Sizes
	p.Tags = req.Tags
	p.Images = req.Images
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
}

// Create adds a product to the catalogue.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetBySKU(ctx, strings.TrimSpace(req.SKU))
	if err != nil {
		return nil, fmt.Errorf("failed to check SKU: %w", err)
	}
	if existing != nil {
		s.logger.Warn().Str("sku", req.SKU).Msg("duplicate SKU")
		return nil, model.ErrSKUTaken
	}

	now := time.Now()
	product := &model.Product{
		ID:        uuid.New(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProductRequest(product, req)

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("sku", product.SKU).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("sku", product.SKU).
		Msg("product created")

	return product, nil
}

// Update overwrites a product's fields from the request.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	newSKU := strings.TrimSpace(req.SKU)
	if newSKU != product.SKU {
		existing, err := s.productRepo.GetBySKU(ctx, newSKU)
		if err != nil {
			return nil, fmt.Errorf("failed to check SKU: %w", err)
		}
		if existing != nil {
			return nil, model.ErrSKUTaken
		}
	}

	applyProductRequest(product, req)
	product.UpdatedAt = time.Now()

	found, err := s.productRepo.Update(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if !found {
		return nil, model.ErrProductNotFound
	}

	if product.LowStock() {
		s.logger.Warn().
			Str("product_id", product.ID.String()).
			Str("sku", product.SKU).
			Int("stock", product.Stock).
			Int("threshold", product.LowStockThreshold).
			Msg("product stock at or below threshold")
	}

	return product, nil
}

// Delete removes a product from the catalogue.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !found {
		return model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return nil
}

// AttachImage stores an uploaded image and appends its URL to the product.
func (s *productService) AttachImage(ctx context.Context, id uuid.UUID, filename, contentType string, content io.Reader) (string, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return "", model.ErrProductNotFound
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", model.NewDomainErrorf(model.ErrCodeValidation, "Unsupported image type: %s", ext)
	}

	name := uuid.New().String() + ext
	url, err := s.mediaStore.Put(ctx, name, contentType, content)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to store product image")
		return "", fmt.Errorf("failed to store product image: %w", err)
	}

	if _, err := s.productRepo.AppendImage(ctx, id, url); err != nil {
		return "", fmt.Errorf("failed to attach product image: %w", err)
	}

	s.logger.Info().
		Str("product_id", id.String()).
		Str("url", url).
		Msg("product image attached")

	return url, nil
}
