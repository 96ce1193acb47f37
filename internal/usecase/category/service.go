package category

import (
	"context"

	validatorpkg "github.com/go-playground/validator/v10"

	"github.com/et891/ecommerce-api/internal/domain"
	"github.com/et891/ecommerce-api/internal/pkg/logger"
	"github.com/et891/ecommerce-api/internal/pkg/validator"
)

// Service handles category business logic. Mutations are admin-only. The
// core only ever needs an existence/active check; tree traversal stays out.
type Service struct {
	categories domain.CategoryRepository
	validate   *validatorpkg.Validate
	logger     *logger.Logger
}

// NewService creates a new category service
func NewService(categories domain.CategoryRepository, log *logger.Logger) *Service {
	return &Service{
		categories: categories,
		validate:   validator.Get(),
		logger:     log,
	}
}

// Create creates a new category. When a parent is given it must exist and
// be active.
func (s *Service) Create(ctx context.Context, actor domain.Identity, category *domain.Category) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.validate.Struct(category); err != nil {
		s.logger.Error("Category validation failed", err)
		return domain.ErrInvalidInput
	}

	if category.ParentID != nil {
		if _, err := s.categories.GetByID(ctx, *category.ParentID); err != nil {
			return err
		}
	}

	if err := s.categories.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"category_id": category.ID,
	}).Info("Category created successfully")

	return nil
}

// GetByID retrieves an active category by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Category not found: %d", id)
		} else {
			s.logger.Error("Failed to get category", err)
		}
		return nil, err
	}

	return category, nil
}

// List retrieves all active categories
func (s *Service) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", err)
		return nil, err
	}

	return categories, nil
}

// Update updates an existing category
func (s *Service) Update(ctx context.Context, actor domain.Identity, category *domain.Category) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.validate.Struct(category); err != nil {
		s.logger.Error("Category validation failed", err)
		return domain.ErrInvalidInput
	}

	if category.ParentID != nil {
		if _, err := s.categories.GetByID(ctx, *category.ParentID); err != nil {
			return err
		}
	}

	if err := s.categories.Update(ctx, category); err != nil {
		s.logger.Error("Failed to update category", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"category_id": category.ID,
	}).Info("Category updated successfully")

	return nil
}

// SoftDelete retires a category
func (s *Service) SoftDelete(ctx context.Context, actor domain.Identity, id int64) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.categories.SoftDelete(ctx, id); err != nil {
		s.logger.Error("Failed to delete category", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"category_id": id,
	}).Info("Category deleted successfully")

	return nil
}
