package domain

import (
	"context"
	"time"
)

// Product represents a catalog item owned by a seller.
// Rating is derived from active reviews and is never set directly by clients.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" validate:"required,min=1,max=255"`
	Description *string   `json:"description,omitempty" db:"description"`
	Price       float64   `json:"price" db:"price" validate:"gte=0"`
	CategoryID  int64     `json:"category_id" db:"category_id" validate:"required"`
	SellerID    int64     `json:"seller_id" db:"seller_id"`
	Rating      float64   `json:"rating" db:"rating"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProductRepository defines the interface for product data access.
// All read methods apply the active-record filter.
type ProductRepository interface {
	// Create inserts a new active product
	Create(ctx context.Context, product *Product) error

	// GetByID retrieves an active product by ID
	GetByID(ctx context.Context, id int64) (*Product, error)

	// List retrieves a paginated list of active products
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// ListByCategory retrieves active products in a category
	ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*Product, error)

	// Count returns the number of active products
	Count(ctx context.Context) (int, error)

	// CountByCategory returns the number of active products in a category
	CountByCategory(ctx context.Context, categoryID int64) (int, error)

	// Update updates name, description, price and category of an active product
	Update(ctx context.Context, product *Product) error

	// SoftDelete flips the active flag of a product
	SoftDelete(ctx context.Context, id int64) error

	// ApplyRating stores a recomputed aggregate rating. The product is matched
	// by ID alone, active or not; missing rows surface as ErrNotFound.
	ApplyRating(ctx context.Context, id int64, rating float64) error
}
