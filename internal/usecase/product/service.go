package product

import (
	"context"

	validatorpkg "github.com/go-playground/validator/v10"

	"github.com/et891/ecommerce-api/internal/domain"
	"github.com/et891/ecommerce-api/internal/pkg/logger"
	"github.com/et891/ecommerce-api/internal/pkg/validator"
)

// Service handles product business logic. Mutations are seller-only and
// scoped to the seller's own products; the aggregate rating is never
// writable through this path.
type Service struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
	validate   *validatorpkg.Validate
	logger     *logger.Logger
}

// NewService creates a new product service
func NewService(products domain.ProductRepository, categories domain.CategoryRepository, log *logger.Logger) *Service {
	return &Service{
		products:   products,
		categories: categories,
		validate:   validator.Get(),
		logger:     log,
	}
}

// Create creates a new product owned by the acting seller. The referenced
// category must exist and be active.
func (s *Service) Create(ctx context.Context, actor domain.Identity, product *domain.Product) error {
	if actor.Role != domain.RoleSeller {
		return domain.ErrForbidden
	}

	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.ErrInvalidInput
	}

	if _, err := s.categories.GetByID(ctx, product.CategoryID); err != nil {
		return err
	}

	product.SellerID = actor.UserID

	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"seller_id":  product.SellerID,
		"name":       product.Name,
	}).Info("Product created successfully")

	return nil
}

// GetByID retrieves an active product whose category is also active
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Product not found: %d", id)
		} else {
			s.logger.Error("Failed to get product", err)
		}
		return nil, err
	}

	if _, err := s.categories.GetByID(ctx, product.CategoryID); err != nil {
		return nil, err
	}

	return product, nil
}

// List retrieves a paginated list of active products
func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.Product, int, error) {
	limit, offset = clampPagination(limit, offset)

	products, err := s.products.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, 0, err
	}

	total, err := s.products.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count products", err)
		return nil, 0, err
	}

	return products, total, nil
}

// ListByCategory retrieves active products in an active category
func (s *Service) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*domain.Product, int, error) {
	limit, offset = clampPagination(limit, offset)

	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, 0, err
	}

	products, err := s.products.ListByCategory(ctx, categoryID, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list products by category", err)
		return nil, 0, err
	}

	total, err := s.products.CountByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error("Failed to count products", err)
		return nil, 0, err
	}

	return products, total, nil
}

// Update updates a product owned by the acting seller
func (s *Service) Update(ctx context.Context, actor domain.Identity, product *domain.Product) error {
	if actor.Role != domain.RoleSeller {
		return domain.ErrForbidden
	}

	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.ErrInvalidInput
	}

	existing, err := s.products.GetByID(ctx, product.ID)
	if err != nil {
		return err
	}
	if existing.SellerID != actor.UserID {
		return domain.ErrForbidden
	}

	if _, err := s.categories.GetByID(ctx, product.CategoryID); err != nil {
		return err
	}

	if err := s.products.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("Product updated successfully")

	return nil
}

// SoftDelete retires a product owned by the acting seller
func (s *Service) SoftDelete(ctx context.Context, actor domain.Identity, id int64) error {
	if actor.Role != domain.RoleSeller {
		return domain.ErrForbidden
	}

	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.SellerID != actor.UserID {
		return domain.ErrForbidden
	}

	if err := s.products.SoftDelete(ctx, id); err != nil {
		s.logger.Error("Failed to delete product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": id,
	}).Info("Product deleted successfully")

	return nil
}

func clampPagination(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
