package review

import (
	"context"
	"encoding/json"
	"time"

	validatorpkg "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/et891/ecommerce-api/internal/domain"
	"github.com/et891/ecommerce-api/internal/pkg/logger"
	"github.com/et891/ecommerce-api/internal/pkg/validator"
)

// RatingRecomputer recomputes a product's aggregate rating inside the
// caller's transaction
type RatingRecomputer interface {
	Recompute(ctx context.Context, productID int64) error
}

// ReviewCache defines the cache operations the service needs
type ReviewCache interface {
	GetReviewsList(ctx context.Context, productID int64, limit, offset int) ([]*domain.Review, int, error)
	SetReviewsList(ctx context.Context, productID int64, limit, offset int, reviews []*domain.Review, total int) error
	InvalidateProduct(ctx context.Context, productID int64) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// ReviewEvent represents an event related to a review
type ReviewEvent struct {
	EventID   uuid.UUID      `json:"event_id"`
	EventType string         `json:"event_type"`
	Timestamp time.Time      `json:"timestamp"`
	ProductID int64          `json:"product_id"`
	Review    *domain.Review `json:"review"`
}

// Service orchestrates review mutations. Each mutation and the rating
// recomputation it triggers share one transaction, so the stored rating can
// never diverge from the active review set. Cache invalidation and event
// publishing happen after commit and are best-effort.
type Service struct {
	tx        domain.TxManager
	reviews   domain.ReviewRepository
	products  domain.ProductRepository
	rating    RatingRecomputer
	cache     ReviewCache
	publisher EventPublisher
	validate  *validatorpkg.Validate
	logger    *logger.Logger
}

// NewService creates a new review service
func NewService(
	tx domain.TxManager,
	reviews domain.ReviewRepository,
	products domain.ProductRepository,
	rating RatingRecomputer,
	cache ReviewCache,
	publisher EventPublisher,
	log *logger.Logger,
) *Service {
	return &Service{
		tx:        tx,
		reviews:   reviews,
		products:  products,
		rating:    rating,
		cache:     cache,
		publisher: publisher,
		validate:  validator.Get(),
		logger:    log,
	}
}

// Create creates a review on behalf of a buyer and recomputes the product
// rating in the same transaction. Fails with ErrConflict when the buyer
// already has an active review for the product.
func (s *Service) Create(ctx context.Context, actor domain.Identity, review *domain.Review) error {
	if actor.Role != domain.RoleBuyer {
		return domain.ErrForbidden
	}

	if err := s.validate.Struct(review); err != nil {
		s.logger.Error("Review validation failed", err)
		return domain.ErrInvalidInput
	}

	review.UserID = actor.UserID

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		product, err := s.products.GetByID(ctx, review.ProductID)
		if err != nil {
			return err
		}

		exists, err := s.reviews.HasActiveByUserAndProduct(ctx, actor.UserID, product.ID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrConflict
		}

		if err := s.reviews.Create(ctx, review); err != nil {
			return err
		}

		// The insert is staged on this transaction, so the aggregate
		// already sees the new grade.
		return s.rating.Recompute(ctx, product.ID)
	})
	if err != nil {
		if err != domain.ErrNotFound && err != domain.ErrConflict {
			s.logger.Error("Failed to create review", err)
		}
		return err
	}

	if cacheErr := s.cache.InvalidateProduct(ctx, review.ProductID); cacheErr != nil {
		s.logger.Warnf("Failed to invalidate cache for product %d: %v", review.ProductID, cacheErr)
	}

	s.publishEvent("review.created", review)

	s.logger.WithFields(map[string]interface{}{
		"review_id":  review.ID,
		"product_id": review.ProductID,
		"user_id":    review.UserID,
		"grade":      review.Grade,
	}).Info("Review created successfully")

	return nil
}

// SoftDelete retires a review on behalf of an admin and recomputes the
// product rating in the same transaction.
func (s *Service) SoftDelete(ctx context.Context, actor domain.Identity, id int64) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	var deleted *domain.Review

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		review, err := s.reviews.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.reviews.SoftDelete(ctx, id); err != nil {
			return err
		}

		deleted = review
		return s.rating.Recompute(ctx, review.ProductID)
	})
	if err != nil {
		if err != domain.ErrNotFound {
			s.logger.Error("Failed to delete review", err)
		}
		return err
	}

	if cacheErr := s.cache.InvalidateProduct(ctx, deleted.ProductID); cacheErr != nil {
		s.logger.Warnf("Failed to invalidate cache for product %d: %v", deleted.ProductID, cacheErr)
	}

	s.publishEvent("review.deleted", deleted)

	s.logger.WithFields(map[string]interface{}{
		"review_id":  id,
		"product_id": deleted.ProductID,
	}).Info("Review deleted successfully")

	return nil
}

// List retrieves a paginated list of active reviews
func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.Review, int, error) {
	limit, offset = clampPagination(limit, offset)

	reviews, err := s.reviews.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list reviews", err)
		return nil, 0, err
	}

	total, err := s.reviews.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count reviews", err)
		return nil, 0, err
	}

	return reviews, total, nil
}

// ListByProduct retrieves active reviews for a product with caching. The
// product itself must exist and be active.
func (s *Service) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*domain.Review, int, error) {
	limit, offset = clampPagination(limit, offset)

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, 0, err
	}

	reviews, total, err := s.cache.GetReviewsList(ctx, productID, limit, offset)
	if err == nil {
		s.logger.Debugf("Cache hit for product %d reviews (limit=%d, offset=%d)", productID, limit, offset)
		return reviews, total, nil
	}

	reviews, err = s.reviews.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list reviews by product", err)
		return nil, 0, err
	}

	total, err = s.reviews.CountByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to count reviews", err)
		return nil, 0, err
	}

	if cacheErr := s.cache.SetReviewsList(ctx, productID, limit, offset, reviews, total); cacheErr != nil {
		s.logger.Warnf("Failed to cache reviews for product %d: %v", productID, cacheErr)
	}

	return reviews, total, nil
}

// publishEvent publishes a review event in the background
func (s *Service) publishEvent(eventType string, review *domain.Review) {
	event := ReviewEvent{
		EventID:   uuid.New(),
		EventType: eventType,
		Timestamp: time.Now(),
		ProductID: review.ProductID,
		Review:    review,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal event for review %d", review.ID)
		return
	}

	go func() {
		if err := s.publisher.Publish(context.Background(), "reviews.events", data); err != nil {
			s.logger.Errorf(err, "Failed to publish event for review %d", review.ID)
		}
	}()
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
