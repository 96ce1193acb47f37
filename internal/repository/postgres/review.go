package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/et891/ecommerce-api/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// ReviewRepository implements domain.ReviewRepository for PostgreSQL
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new PostgreSQL review repository
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review. A race with another active review by the same
// user for the same product trips the partial unique index and surfaces as
// ErrConflict.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (product_id, user_id, grade, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at
	`

	err := sessionFrom(ctx, r.db).QueryRowxContext(
		ctx,
		query,
		review.ProductID,
		review.UserID,
		review.Grade,
		review.Comment,
	).Scan(
		&review.ID,
		&review.IsActive,
		&review.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrConflict
		}
		return err
	}

	return nil
}

// GetByID retrieves an active review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	query := `
		SELECT id, product_id, user_id, grade, comment, is_active, created_at
		FROM reviews
		WHERE id = $1 AND ` + activeOnly

	var review domain.Review
	err := sessionFrom(ctx, r.db).GetContext(ctx, &review, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &review, nil
}

// List retrieves a paginated list of active reviews
func (r *ReviewRepository) List(ctx context.Context, limit, offset int) ([]*domain.Review, error) {
	query := `
		SELECT id, product_id, user_id, grade, comment, is_active, created_at
		FROM reviews
		WHERE ` + activeOnly + `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var reviews []*domain.Review
	err := sessionFrom(ctx, r.db).SelectContext(ctx, &reviews, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// ListByProduct retrieves active reviews for a product
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*domain.Review, error) {
	query := `
		SELECT id, product_id, user_id, grade, comment, is_active, created_at
		FROM reviews
		WHERE product_id = $1 AND ` + activeOnly + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var reviews []*domain.Review
	err := sessionFrom(ctx, r.db).SelectContext(ctx, &reviews, query, productID, limit, offset)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// Count returns the number of active reviews
func (r *ReviewRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE ` + activeOnly

	var count int
	err := sessionFrom(ctx, r.db).GetContext(ctx, &count, query)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByProduct returns the number of active reviews for a product
func (r *ReviewRepository) CountByProduct(ctx context.Context, productID int64) (int, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE product_id = $1 AND ` + activeOnly

	var count int
	err := sessionFrom(ctx, r.db).GetContext(ctx, &count, query, productID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// HasActiveByUserAndProduct reports whether the user already has an active
// review for the product
func (r *ReviewRepository) HasActiveByUserAndProduct(ctx context.Context, userID, productID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = $1 AND product_id = $2 AND ` + activeOnly + `)`

	var exists bool
	err := sessionFrom(ctx, r.db).GetContext(ctx, &exists, query, userID, productID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// SoftDelete flips the active flag of a review
func (r *ReviewRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE reviews
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

// AverageActiveGrade computes the mean grade over active reviews for a
// product. Zero active reviews yield 0.0, not NULL. Run inside the mutating
// transaction, the query sees staged review writes before commit.
func (r *ReviewRepository) AverageActiveGrade(ctx context.Context, productID int64) (float64, error) {
	query := `
		SELECT COALESCE(AVG(grade), 0)
		FROM reviews
		WHERE product_id = $1 AND ` + activeOnly

	var avg float64
	err := sessionFrom(ctx, r.db).GetContext(ctx, &avg, query, productID)
	if err != nil {
		return 0, err
	}

	return avg, nil
}
