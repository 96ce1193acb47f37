package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/et891/ecommerce-api/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestReviewRepository_Create_Success(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReviewRepository(sqlxDB)

	review := &domain.Review{ProductID: 10, UserID: 42, Grade: 5}

	rows := sqlmock.NewRows([]string{"id", "is_active", "created_at"}).
		AddRow(int64(1), true, time.Now())
	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(review.ProductID, review.UserID, review.Grade, review.Comment).
		WillReturnRows(rows)

	err := repo.Create(context.Background(), review)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), review.ID)
	assert.True(t, review.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_DuplicateConflict(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReviewRepository(sqlxDB)

	review := &domain.Review{ProductID: 10, UserID: 42, Grade: 5}

	// Partial unique index on (user_id, product_id) WHERE is_active
	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(review.ProductID, review.UserID, review.Grade, review.Comment).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := repo.Create(context.Background(), review)

	assert.Equal(t, domain.ErrConflict, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetByID_FiltersInactive(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReviewRepository(sqlxDB)

	// Soft-deleted rows fall outside the active filter
	mock.ExpectQuery("SELECT (.+) FROM reviews").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 5)

	assert.Equal(t, domain.ErrNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_HasActiveByUserAndProduct(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReviewRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(42), int64(10)).
		WillReturnRows(rows)

	exists, err := repo.HasActiveByUserAndProduct(context.Background(), 42, 10)

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_SoftDelete_Success(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReviewRepository(sqlxDB)

	mock.ExpectExec("UPDATE reviews").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SoftDelete(context.Background(), 5)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_SoftDelete_AlreadyInactive(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReviewRepository(sqlxDB)

	// A second delete of the same review matches no active row
	mock.ExpectExec("UPDATE reviews").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), 5)

	assert.Equal(t, domain.ErrNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_AverageActiveGrade_Success(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReviewRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"coalesce"}).AddRow(4.5)
	mock.ExpectQuery("SELECT COALESCE\\(AVG\\(grade\\), 0\\)").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	avg, err := repo.AverageActiveGrade(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, 4.5, avg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_AverageActiveGrade_NoActiveReviews(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReviewRepository(sqlxDB)

	// COALESCE turns the NULL aggregate into 0
	rows := sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0)
	mock.ExpectQuery("SELECT COALESCE\\(AVG\\(grade\\), 0\\)").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	avg, err := repo.AverageActiveGrade(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, avg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListByProduct_Success(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReviewRepository(sqlxDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "product_id", "user_id", "grade", "comment", "is_active", "created_at"}).
		AddRow(int64(2), int64(10), int64(42), 5, nil, true, now).
		AddRow(int64(1), int64(10), int64(43), 4, nil, true, now.Add(-time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM reviews").
		WithArgs(int64(10), 20, 0).
		WillReturnRows(rows)

	reviews, err := repo.ListByProduct(context.Background(), 10, 20, 0)

	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, int64(2), reviews[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
