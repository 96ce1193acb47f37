package domain

import (
	"context"
	"time"
)

// Review represents a buyer's review of a product
type Review struct {
	ID        int64     `json:"id" db:"id"`
	ProductID int64     `json:"product_id" db:"product_id" validate:"required"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Grade     int       `json:"grade" db:"grade" validate:"required,min=1,max=5"`
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReviewRepository defines the interface for review data access.
// All read methods apply the active-record filter.
type ReviewRepository interface {
	// Create inserts a new active review
	Create(ctx context.Context, review *Review) error

	// GetByID retrieves an active review by ID
	GetByID(ctx context.Context, id int64) (*Review, error)

	// List retrieves a paginated list of active reviews
	List(ctx context.Context, limit, offset int) ([]*Review, error)

	// ListByProduct retrieves active reviews for a product
	ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*Review, error)

	// Count returns the number of active reviews
	Count(ctx context.Context) (int, error)

	// CountByProduct returns the number of active reviews for a product
	CountByProduct(ctx context.Context, productID int64) (int, error)

	// HasActiveByUserAndProduct reports whether the user already has an
	// active review for the product
	HasActiveByUserAndProduct(ctx context.Context, userID, productID int64) (bool, error)

	// SoftDelete flips the active flag of a review
	SoftDelete(ctx context.Context, id int64) error

	// AverageActiveGrade computes the mean grade over active reviews for a
	// product, 0.0 when there are none
	AverageActiveGrade(ctx context.Context, productID int64) (float64, error)
}
