package domain

import "context"

// Category is a node in the category tree. ParentID is nil for roots.
type Category struct {
	ID       int64   `json:"id" db:"id"`
	Name     *string `json:"name,omitempty" db:"name" validate:"omitempty,max=50"`
	ParentID *int64  `json:"parent_id,omitempty" db:"parent_id"`
	IsActive bool    `json:"is_active" db:"is_active"`
}

// CategoryRepository defines the interface for category data access.
// All read methods apply the active-record filter.
type CategoryRepository interface {
	// Create inserts a new active category
	Create(ctx context.Context, category *Category) error

	// GetByID retrieves an active category by ID
	GetByID(ctx context.Context, id int64) (*Category, error)

	// List retrieves all active categories
	List(ctx context.Context) ([]*Category, error)

	// Update updates name and parent of an active category
	Update(ctx context.Context, category *Category) error

	// SoftDelete flips the active flag of a category
	SoftDelete(ctx context.Context, id int64) error
}
