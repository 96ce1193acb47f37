package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/et891/ecommerce-api/internal/domain"
	"github.com/et891/ecommerce-api/internal/pkg/logger"
)

// MockReviewRepository is a mock implementation of domain.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context, limit, offset int) ([]*domain.Review, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*domain.Review, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReviewRepository) CountByProduct(ctx context.Context, productID int64) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

func (m *MockReviewRepository) HasActiveByUserAndProduct(ctx context.Context, userID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) AverageActiveGrade(ctx context.Context, productID int64) (float64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(float64), args.Error(1)
}

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int) ([]*domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*domain.Product, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ApplyRating(ctx context.Context, id int64, rating float64) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

// MockRecomputer is a mock implementation of RatingRecomputer
type MockRecomputer struct {
	mock.Mock
}

func (m *MockRecomputer) Recompute(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockReviewCache is a mock implementation of ReviewCache
type MockReviewCache struct {
	mock.Mock
}

func (m *MockReviewCache) GetReviewsList(ctx context.Context, productID int64, limit, offset int) ([]*domain.Review, int, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Review), args.Int(1), args.Error(2)
}

func (m *MockReviewCache) SetReviewsList(ctx context.Context, productID int64, limit, offset int, reviews []*domain.Review, total int) error {
	args := m.Called(ctx, productID, limit, offset, reviews, total)
	return args.Error(0)
}

func (m *MockReviewCache) InvalidateProduct(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	args := m.Called(ctx, subject, data)
	return args.Error(0)
}

// fakeTxManager runs the unit of work inline and records the outcome
type fakeTxManager struct {
	commits   int
	rollbacks int
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

type serviceMocks struct {
	tx        *fakeTxManager
	reviews   *MockReviewRepository
	products  *MockProductRepository
	rating    *MockRecomputer
	cache     *MockReviewCache
	publisher *MockEventPublisher
}

func newTestService() (*Service, *serviceMocks) {
	m := &serviceMocks{
		tx:        &fakeTxManager{},
		reviews:   new(MockReviewRepository),
		products:  new(MockProductRepository),
		rating:    new(MockRecomputer),
		cache:     new(MockReviewCache),
		publisher: new(MockEventPublisher),
	}
	log := logger.New("test")
	return NewService(m.tx, m.reviews, m.products, m.rating, m.cache, m.publisher, log), m
}

var buyer = domain.Identity{UserID: 42, Role: domain.RoleBuyer}
var admin = domain.Identity{UserID: 1, Role: domain.RoleAdmin}

func TestService_Create_Success(t *testing.T) {
	service, m := newTestService()

	rev := &domain.Review{ProductID: 10, Grade: 5}
	product := &domain.Product{ID: 10, Name: "Widget", IsActive: true}

	m.products.On("GetByID", mock.Anything, int64(10)).Return(product, nil)
	m.reviews.On("HasActiveByUserAndProduct", mock.Anything, int64(42), int64(10)).Return(false, nil)
	m.reviews.On("Create", mock.Anything, rev).Return(nil)
	m.rating.On("Recompute", mock.Anything, int64(10)).Return(nil)
	m.cache.On("InvalidateProduct", mock.Anything, int64(10)).Return(nil)
	m.publisher.On("Publish", mock.Anything, "reviews.events", mock.Anything).Return(nil)

	err := service.Create(context.Background(), buyer, rev)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), rev.UserID)
	assert.Equal(t, 1, m.tx.commits)
	m.reviews.AssertExpectations(t)
	m.rating.AssertExpectations(t)
	m.cache.AssertExpectations(t)
}

func TestService_Create_ForbiddenForNonBuyer(t *testing.T) {
	service, m := newTestService()

	rev := &domain.Review{ProductID: 10, Grade: 5}
	err := service.Create(context.Background(), domain.Identity{UserID: 9, Role: domain.RoleSeller}, rev)

	assert.Equal(t, domain.ErrForbidden, err)
	m.reviews.AssertNotCalled(t, "Create")
}

func TestService_Create_GradeOutOfRange(t *testing.T) {
	service, m := newTestService()

	rev := &domain.Review{ProductID: 10, Grade: 6}
	err := service.Create(context.Background(), buyer, rev)

	assert.Equal(t, domain.ErrInvalidInput, err)
	m.reviews.AssertNotCalled(t, "Create")
	assert.Equal(t, 0, m.tx.commits)
}

func TestService_Create_ProductNotFound(t *testing.T) {
	service, m := newTestService()

	rev := &domain.Review{ProductID: 99, Grade: 4}
	m.products.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	err := service.Create(context.Background(), buyer, rev)

	assert.Equal(t, domain.ErrNotFound, err)
	assert.Equal(t, 1, m.tx.rollbacks)
	m.reviews.AssertNotCalled(t, "Create")
	m.cache.AssertNotCalled(t, "InvalidateProduct")
}

func TestService_Create_DuplicateActiveReview(t *testing.T) {
	service, m := newTestService()

	rev := &domain.Review{ProductID: 10, Grade: 4}
	product := &domain.Product{ID: 10, IsActive: true}

	m.products.On("GetByID", mock.Anything, int64(10)).Return(product, nil)
	m.reviews.On("HasActiveByUserAndProduct", mock.Anything, int64(42), int64(10)).Return(true, nil)

	err := service.Create(context.Background(), buyer, rev)

	assert.Equal(t, domain.ErrConflict, err)
	assert.Equal(t, 1, m.tx.rollbacks)
	m.reviews.AssertNotCalled(t, "Create")
}

func TestService_Create_AfterSoftDeleteSucceeds(t *testing.T) {
	service, m := newTestService()

	// The earlier review was soft-deleted, so the uniqueness check passes
	rev := &domain.Review{ProductID: 10, Grade: 3}
	product := &domain.Product{ID: 10, IsActive: true}

	m.products.On("GetByID", mock.Anything, int64(10)).Return(product, nil)
	m.reviews.On("HasActiveByUserAndProduct", mock.Anything, int64(42), int64(10)).Return(false, nil)
	m.reviews.On("Create", mock.Anything, rev).Return(nil)
	m.rating.On("Recompute", mock.Anything, int64(10)).Return(nil)
	m.cache.On("InvalidateProduct", mock.Anything, int64(10)).Return(nil)
	m.publisher.On("Publish", mock.Anything, "reviews.events", mock.Anything).Return(nil)

	err := service.Create(context.Background(), buyer, rev)

	assert.NoError(t, err)
	assert.Equal(t, 1, m.tx.commits)
}

func TestService_Create_RecomputeFailureRollsBack(t *testing.T) {
	service, m := newTestService()

	rev := &domain.Review{ProductID: 10, Grade: 5}
	product := &domain.Product{ID: 10, IsActive: true}

	m.products.On("GetByID", mock.Anything, int64(10)).Return(product, nil)
	m.reviews.On("HasActiveByUserAndProduct", mock.Anything, int64(42), int64(10)).Return(false, nil)
	m.reviews.On("Create", mock.Anything, rev).Return(nil)
	m.rating.On("Recompute", mock.Anything, int64(10)).Return(assert.AnError)

	err := service.Create(context.Background(), buyer, rev)

	// The insert must not outlive the failed recomputation
	assert.Error(t, err)
	assert.Equal(t, 1, m.tx.rollbacks)
	assert.Equal(t, 0, m.tx.commits)
	m.cache.AssertNotCalled(t, "InvalidateProduct")
	m.publisher.AssertNotCalled(t, "Publish")
}

func TestService_SoftDelete_Success(t *testing.T) {
	service, m := newTestService()

	existing := &domain.Review{ID: 5, ProductID: 10, UserID: 42, Grade: 4, IsActive: true}

	m.reviews.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	m.reviews.On("SoftDelete", mock.Anything, int64(5)).Return(nil)
	m.rating.On("Recompute", mock.Anything, int64(10)).Return(nil)
	m.cache.On("InvalidateProduct", mock.Anything, int64(10)).Return(nil)
	m.publisher.On("Publish", mock.Anything, "reviews.events", mock.Anything).Return(nil)

	err := service.SoftDelete(context.Background(), admin, 5)

	assert.NoError(t, err)
	assert.Equal(t, 1, m.tx.commits)
	m.reviews.AssertExpectations(t)
	m.rating.AssertExpectations(t)
}

func TestService_SoftDelete_ForbiddenForNonAdmin(t *testing.T) {
	service, m := newTestService()

	err := service.SoftDelete(context.Background(), buyer, 5)

	assert.Equal(t, domain.ErrForbidden, err)
	m.reviews.AssertNotCalled(t, "SoftDelete")
}

func TestService_SoftDelete_NotFound(t *testing.T) {
	service, m := newTestService()

	m.reviews.On("GetByID", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)

	err := service.SoftDelete(context.Background(), admin, 5)

	assert.Equal(t, domain.ErrNotFound, err)
	assert.Equal(t, 1, m.tx.rollbacks)
	m.reviews.AssertNotCalled(t, "SoftDelete")
}

func TestService_SoftDelete_RecomputeFailureRollsBack(t *testing.T) {
	service, m := newTestService()

	existing := &domain.Review{ID: 5, ProductID: 10, UserID: 42, Grade: 4, IsActive: true}

	m.reviews.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	m.reviews.On("SoftDelete", mock.Anything, int64(5)).Return(nil)
	m.rating.On("Recompute", mock.Anything, int64(10)).Return(assert.AnError)

	err := service.SoftDelete(context.Background(), admin, 5)

	assert.Error(t, err)
	assert.Equal(t, 1, m.tx.rollbacks)
	m.cache.AssertNotCalled(t, "InvalidateProduct")
	m.publisher.AssertNotCalled(t, "Publish")
}

func TestService_ListByProduct_CacheHit(t *testing.T) {
	service, m := newTestService()

	product := &domain.Product{ID: 10, IsActive: true}
	cached := []*domain.Review{
		{ID: 1, ProductID: 10, Grade: 5},
		{ID: 2, ProductID: 10, Grade: 4},
	}

	m.products.On("GetByID", mock.Anything, int64(10)).Return(product, nil)
	m.cache.On("GetReviewsList", mock.Anything, int64(10), 20, 0).Return(cached, 2, nil)

	reviews, total, err := service.ListByProduct(context.Background(), 10, 20, 0)

	assert.NoError(t, err)
	assert.Equal(t, cached, reviews)
	assert.Equal(t, 2, total)
	m.reviews.AssertNotCalled(t, "ListByProduct")
}

func TestService_ListByProduct_CacheMiss(t *testing.T) {
	service, m := newTestService()

	product := &domain.Product{ID: 10, IsActive: true}
	stored := []*domain.Review{
		{ID: 1, ProductID: 10, Grade: 5},
	}

	m.products.On("GetByID", mock.Anything, int64(10)).Return(product, nil)
	m.cache.On("GetReviewsList", mock.Anything, int64(10), 20, 0).Return(nil, 0, domain.ErrNotFound)
	m.reviews.On("ListByProduct", mock.Anything, int64(10), 20, 0).Return(stored, nil)
	m.reviews.On("CountByProduct", mock.Anything, int64(10)).Return(1, nil)
	m.cache.On("SetReviewsList", mock.Anything, int64(10), 20, 0, stored, 1).Return(nil)

	reviews, total, err := service.ListByProduct(context.Background(), 10, 20, 0)

	assert.NoError(t, err)
	assert.Equal(t, stored, reviews)
	assert.Equal(t, 1, total)
	m.cache.AssertExpectations(t)
}

func TestService_ListByProduct_ProductNotFound(t *testing.T) {
	service, m := newTestService()

	m.products.On("GetByID", mock.Anything, int64(10)).Return(nil, domain.ErrNotFound)

	_, _, err := service.ListByProduct(context.Background(), 10, 20, 0)

	assert.Equal(t, domain.ErrNotFound, err)
	m.cache.AssertNotCalled(t, "GetReviewsList")
}

func TestService_List_ClampsPagination(t *testing.T) {
	service, m := newTestService()

	m.reviews.On("List", mock.Anything, 20, 0).Return([]*domain.Review{}, nil)
	m.reviews.On("Count", mock.Anything).Return(0, nil)

	_, _, err := service.List(context.Background(), 500, -3)

	assert.NoError(t, err)
	m.reviews.AssertExpectations(t)
}
