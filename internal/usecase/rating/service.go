package rating

import (
	"context"

	"github.com/et891/ecommerce-api/internal/domain"
	"github.com/et891/ecommerce-api/internal/pkg/logger"
)

// GradeAverager supplies the aggregate over currently active reviews
type GradeAverager interface {
	AverageActiveGrade(ctx context.Context, productID int64) (float64, error)
}

// RatingWriter persists a recomputed rating on the product row
type RatingWriter interface {
	ApplyRating(ctx context.Context, id int64, rating float64) error
}

// Service recomputes a product's aggregate rating from its currently active
// reviews. It stages one aggregate query and one write in the caller's
// transaction and never commits; the review mutation that triggered the
// recompute owns the transaction boundary.
type Service struct {
	products RatingWriter
	reviews  GradeAverager
	logger   *logger.Logger
}

// NewService creates a new rating recomputation service
func NewService(products RatingWriter, reviews GradeAverager, log *logger.Logger) *Service {
	return &Service{
		products: products,
		reviews:  reviews,
		logger:   log,
	}
}

// Recompute sets the product's rating to the mean grade of its active
// reviews, 0.0 when there are none. Recomputing twice with no intervening
// review change is a no-op, so the operation is safe to retry.
//
// The average over zero rows for a product that does not exist is
// indistinguishable from zero active reviews, so callers must have validated
// the product's existence; here a missing product only surfaces as
// ErrNotFound when the write finds no row.
func (s *Service) Recompute(ctx context.Context, productID int64) error {
	avg, err := s.reviews.AverageActiveGrade(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to compute average grade", err)
		return err
	}

	if err := s.products.ApplyRating(ctx, productID, avg); err != nil {
		if err != domain.ErrNotFound {
			s.logger.Error("Failed to apply product rating", err)
		}
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": productID,
		"rating":     avg,
	}).Debug("Recomputed product rating")

	return nil
}
