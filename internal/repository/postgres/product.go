package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/et891/ecommerce-api/internal/domain"
)

// ProductRepository implements domain.ProductRepository for PostgreSQL
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, description, price, category_id, seller_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, rating, is_active, created_at, updated_at
	`

	err := sessionFrom(ctx, r.db).QueryRowxContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.CategoryID,
		product.SellerID,
	).Scan(
		&product.ID,
		&product.Rating,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an active product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, description, price, category_id, seller_id, rating, is_active, created_at, updated_at
		FROM products
		WHERE id = $1 AND ` + activeOnly

	var product domain.Product
	err := sessionFrom(ctx, r.db).GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &product, nil
}

// List retrieves a paginated list of active products
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*domain.Product, error) {
	query := `
		SELECT id, name, description, price, category_id, seller_id, rating, is_active, created_at, updated_at
		FROM products
		WHERE ` + activeOnly + `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var products []*domain.Product
	err := sessionFrom(ctx, r.db).SelectContext(ctx, &products, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return products, nil
}

// ListByCategory retrieves active products in a category
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*domain.Product, error) {
	query := `
		SELECT id, name, description, price, category_id, seller_id, rating, is_active, created_at, updated_at
		FROM products
		WHERE category_id = $1 AND ` + activeOnly + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var products []*domain.Product
	err := sessionFrom(ctx, r.db).SelectContext(ctx, &products, query, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Count returns the number of active products
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM products WHERE ` + activeOnly

	var count int
	err := sessionFrom(ctx, r.db).GetContext(ctx, &count, query)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByCategory returns the number of active products in a category
func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	query := `SELECT COUNT(*) FROM products WHERE category_id = $1 AND ` + activeOnly

	var count int
	err := sessionFrom(ctx, r.db).GetContext(ctx, &count, query, categoryID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Update updates an existing active product
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, category_id = $4, updated_at = $5
		WHERE id = $6 AND ` + activeOnly + `
		RETURNING updated_at
	`

	product.UpdatedAt = time.Now()

	err := sessionFrom(ctx, r.db).QueryRowxContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.CategoryID,
		product.UpdatedAt,
		product.ID,
	).Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	return nil
}

// SoftDelete flips the active flag of a product
func (r *ProductRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE products
		SET is_active = FALSE, updated_at = $1
		WHERE id = $2 AND ` + activeOnly

	result, err := sessionFrom(ctx, r.db).ExecContext(ctx, query, time.Now(), id)
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

// ApplyRating stores a recomputed aggregate rating. The product is matched by
// ID alone so recomputation stays defined for soft-deleted products whose
// historical reviews still change.
func (r *ProductRepository) ApplyRating(ctx context.Context, id int64, rating float64) error {
	query := `
		UPDATE products
		SET rating = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := sessionFrom(ctx, r.db).ExecContext(ctx, query, rating, time.Now(), id)
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
