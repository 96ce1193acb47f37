package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/et891/ecommerce-api/internal/domain"
	"github.com/et891/ecommerce-api/internal/pkg/logger"
)

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

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService() (*Service, *MockProductRepository, *MockCategoryRepository) {
	products := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	return NewService(products, categories, logger.New("test")), products, categories
}

var seller = domain.Identity{UserID: 7, Role: domain.RoleSeller}

func activeCategory(id int64) *domain.Category {
	name := "Electronics"
	return &domain.Category{ID: id, Name: &name, IsActive: true}
}

func TestService_Create_Success(t *testing.T) {
	service, products, categories := newTestService()

	p := &domain.Product{Name: "Widget", Price: 9.99, CategoryID: 3}

	categories.On("GetByID", mock.Anything, int64(3)).Return(activeCategory(3), nil)
	products.On("Create", mock.Anything, p).Return(nil)

	err := service.Create(context.Background(), seller, p)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), p.SellerID)
	products.AssertExpectations(t)
}

func TestService_Create_ForbiddenForNonSeller(t *testing.T) {
	service, products, _ := newTestService()

	p := &domain.Product{Name: "Widget", Price: 9.99, CategoryID: 3}
	err := service.Create(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleBuyer}, p)

	assert.Equal(t, domain.ErrForbidden, err)
	products.AssertNotCalled(t, "Create")
}

func TestService_Create_NegativePriceRejected(t *testing.T) {
	service, products, _ := newTestService()

	p := &domain.Product{Name: "Widget", Price: -1, CategoryID: 3}
	err := service.Create(context.Background(), seller, p)

	assert.Equal(t, domain.ErrInvalidInput, err)
	products.AssertNotCalled(t, "Create")
}

func TestService_Create_CategoryMissing(t *testing.T) {
	service, products, categories := newTestService()

	p := &domain.Product{Name: "Widget", Price: 9.99, CategoryID: 3}
	categories.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrNotFound)

	err := service.Create(context.Background(), seller, p)

	assert.Equal(t, domain.ErrNotFound, err)
	products.AssertNotCalled(t, "Create")
}

func TestService_GetByID_Success(t *testing.T) {
	service, products, categories := newTestService()

	p := &domain.Product{ID: 1, Name: "Widget", CategoryID: 3, IsActive: true}
	products.On("GetByID", mock.Anything, int64(1)).Return(p, nil)
	categories.On("GetByID", mock.Anything, int64(3)).Return(activeCategory(3), nil)

	got, err := service.GetByID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestService_GetByID_HiddenWhenCategoryInactive(t *testing.T) {
	service, products, categories := newTestService()

	p := &domain.Product{ID: 1, Name: "Widget", CategoryID: 3, IsActive: true}
	products.On("GetByID", mock.Anything, int64(1)).Return(p, nil)
	categories.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrNotFound)

	_, err := service.GetByID(context.Background(), 1)

	assert.Equal(t, domain.ErrNotFound, err)
}

func TestService_List_Success(t *testing.T) {
	service, products, _ := newTestService()

	expected := []*domain.Product{{ID: 1, Name: "Widget"}}
	products.On("List", mock.Anything, 20, 0).Return(expected, nil)
	products.On("Count", mock.Anything).Return(1, nil)

	got, total, err := service.List(context.Background(), 20, 0)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
	assert.Equal(t, 1, total)
}

func TestService_ListByCategory_CategoryMissing(t *testing.T) {
	service, products, categories := newTestService()

	categories.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrNotFound)

	_, _, err := service.ListByCategory(context.Background(), 3, 20, 0)

	assert.Equal(t, domain.ErrNotFound, err)
	products.AssertNotCalled(t, "ListByCategory")
}

func TestService_Update_OwnershipEnforced(t *testing.T) {
	service, products, _ := newTestService()

	existing := &domain.Product{ID: 1, Name: "Widget", CategoryID: 3, SellerID: 99, IsActive: true}
	products.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)

	p := &domain.Product{ID: 1, Name: "Widget v2", Price: 19.99, CategoryID: 3}
	err := service.Update(context.Background(), seller, p)

	assert.Equal(t, domain.ErrForbidden, err)
	products.AssertNotCalled(t, "Update")
}

func TestService_Update_Success(t *testing.T) {
	service, products, categories := newTestService()

	existing := &domain.Product{ID: 1, Name: "Widget", CategoryID: 3, SellerID: 7, IsActive: true}
	products.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	categories.On("GetByID", mock.Anything, int64(3)).Return(activeCategory(3), nil)

	p := &domain.Product{ID: 1, Name: "Widget v2", Price: 19.99, CategoryID: 3}
	products.On("Update", mock.Anything, p).Return(nil)

	err := service.Update(context.Background(), seller, p)

	assert.NoError(t, err)
	products.AssertExpectations(t)
}

func TestService_SoftDelete_OwnershipEnforced(t *testing.T) {
	service, products, _ := newTestService()

	existing := &domain.Product{ID: 1, SellerID: 99, IsActive: true}
	products.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)

	err := service.SoftDelete(context.Background(), seller, 1)

	assert.Equal(t, domain.ErrForbidden, err)
	products.AssertNotCalled(t, "SoftDelete")
}

func TestService_SoftDelete_Success(t *testing.T) {
	service, products, _ := newTestService()

	existing := &domain.Product{ID: 1, SellerID: 7, IsActive: true}
	products.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	products.On("SoftDelete", mock.Anything, int64(1)).Return(nil)

	err := service.SoftDelete(context.Background(), seller, 1)

	assert.NoError(t, err)
	products.AssertExpectations(t)
}
