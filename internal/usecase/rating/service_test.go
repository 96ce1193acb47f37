package rating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/et891/ecommerce-api/internal/domain"
	"github.com/et891/ecommerce-api/internal/pkg/logger"
)

// MockGradeAverager is a mock implementation of GradeAverager
type MockGradeAverager struct {
	mock.Mock
}

func (m *MockGradeAverager) AverageActiveGrade(ctx context.Context, productID int64) (float64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(float64), args.Error(1)
}

// MockRatingWriter is a mock implementation of RatingWriter
type MockRatingWriter struct {
	mock.Mock
}

func (m *MockRatingWriter) ApplyRating(ctx context.Context, id int64, rating float64) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func TestService_Recompute_AveragesActiveGrades(t *testing.T) {
	mockReviews := new(MockGradeAverager)
	mockProducts := new(MockRatingWriter)
	log := logger.New("test")
	service := NewService(mockProducts, mockReviews, log)

	// Grades 4 and 2 active, a 5 soft-deleted: the aggregate sees 3.0
	mockReviews.On("AverageActiveGrade", mock.Anything, int64(1)).Return(3.0, nil)
	mockProducts.On("ApplyRating", mock.Anything, int64(1), 3.0).Return(nil)

	err := service.Recompute(context.Background(), 1)

	assert.NoError(t, err)
	mockReviews.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestService_Recompute_NoActiveReviewsDefaultsToZero(t *testing.T) {
	mockReviews := new(MockGradeAverager)
	mockProducts := new(MockRatingWriter)
	log := logger.New("test")
	service := NewService(mockProducts, mockReviews, log)

	mockReviews.On("AverageActiveGrade", mock.Anything, int64(7)).Return(0.0, nil)
	mockProducts.On("ApplyRating", mock.Anything, int64(7), 0.0).Return(nil)

	err := service.Recompute(context.Background(), 7)

	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
}

func TestService_Recompute_Idempotent(t *testing.T) {
	mockReviews := new(MockGradeAverager)
	mockProducts := new(MockRatingWriter)
	log := logger.New("test")
	service := NewService(mockProducts, mockReviews, log)

	mockReviews.On("AverageActiveGrade", mock.Anything, int64(1)).Return(4.5, nil).Twice()
	mockProducts.On("ApplyRating", mock.Anything, int64(1), 4.5).Return(nil).Twice()

	// Two consecutive recomputations with no review change write the same value
	assert.NoError(t, service.Recompute(context.Background(), 1))
	assert.NoError(t, service.Recompute(context.Background(), 1))

	mockReviews.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestService_Recompute_ProductMissing(t *testing.T) {
	mockReviews := new(MockGradeAverager)
	mockProducts := new(MockRatingWriter)
	log := logger.New("test")
	service := NewService(mockProducts, mockReviews, log)

	mockReviews.On("AverageActiveGrade", mock.Anything, int64(999)).Return(0.0, nil)
	mockProducts.On("ApplyRating", mock.Anything, int64(999), 0.0).Return(domain.ErrNotFound)

	err := service.Recompute(context.Background(), 999)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestService_Recompute_AggregateQueryFailure(t *testing.T) {
	mockReviews := new(MockGradeAverager)
	mockProducts := new(MockRatingWriter)
	log := logger.New("test")
	service := NewService(mockProducts, mockReviews, log)

	mockReviews.On("AverageActiveGrade", mock.Anything, int64(1)).Return(0.0, assert.AnError)

	err := service.Recompute(context.Background(), 1)

	assert.Error(t, err)
	mockProducts.AssertNotCalled(t, "ApplyRating")
}
