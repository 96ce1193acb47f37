package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/et891/ecommerce-api/internal/domain"
)

// CategoryRepository implements domain.CategoryRepository for PostgreSQL
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new PostgreSQL category repository
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (name, parent_id)
		VALUES ($1, $2)
		RETURNING id, is_active
	`

	err := sessionFrom(ctx, r.db).QueryRowxContext(
		ctx,
		query,
		category.Name,
		category.ParentID,
	).Scan(
		&category.ID,
		&category.IsActive,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an active category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, parent_id, is_active
		FROM categories
		WHERE id = $1 AND ` + activeOnly

	var category domain.Category
	err := sessionFrom(ctx, r.db).GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &category, nil
}

// List retrieves all active categories
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, name, parent_id, is_active
		FROM categories
		WHERE ` + activeOnly + `
		ORDER BY id
	`

	var categories []*domain.Category
	err := sessionFrom(ctx, r.db).SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Update updates an existing active category
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $1, parent_id = $2
		WHERE id = $3 AND ` + activeOnly

	result, err := sessionFrom(ctx, r.db).ExecContext(ctx, query, category.Name, category.ParentID, category.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// SoftDelete flips the active flag of a category
func (r *CategoryRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE categories
		SET is_active = FALSE
		WHERE id = $1 AND ` + activeOnly

	result, err := sessionFrom(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
