package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/interview-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepository_Get(t *testing.T) {
	t.Run("cached", func(t *testing.T) {
		sqlDB, mock := newMockDB(t)
		repo := NewIdempotencyRepository(sqlDB)

		mock.ExpectQuery(`FROM idempotency_keys\s+WHERE key = \$1 AND request_path = \$2`).
			WithArgs("key-1", "/api/v1/payments/confirm").
			WillReturnRows(sqlmock.NewRows([]string{"key", "request_path", "response_status", "response_body", "created_at"}).
				AddRow("key-1", "/api/v1/payments/confirm", 200, `{"success":true}`, time.Now()))

		cached, err := repo.Get(context.Background(), "key-1", "/api/v1/payments/confirm")

		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.Equal(t, 200, cached.ResponseStatus)
		assert.Equal(t, `{"success":true}`, cached.ResponseBody)
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		sqlDB, mock := newMockDB(t)
		repo := NewIdempotencyRepository(sqlDB)

		mock.ExpectQuery(`FROM idempotency_keys`).
			WillReturnRows(sqlmock.NewRows([]string{"key", "request_path", "response_status", "response_body", "created_at"}))

		cached, err := repo.Get(context.Background(), "unknown", "/api/v1/signups")

		require.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("query failure", func(t *testing.T) {
		sqlDB, mock := newMockDB(t)
		repo := NewIdempotencyRepository(sqlDB)

		mock.ExpectQuery(`FROM idempotency_keys`).WillReturnError(errors.New("timeout"))

		_, err := repo.Get(context.Background(), "k", "/p")
		assert.Error(t, err)
	})
}

func TestIdempotencyRepository_Store_FirstWriteWins(t *testing.T) {
	sqlDB, mock := newMockDB(t)
	repo := NewIdempotencyRepository(sqlDB)

	mock.ExpectExec(`INSERT INTO idempotency_keys .* ON CONFLICT \(key, request_path\) DO NOTHING`).
		WithArgs("key-1", "/api/v1/signups", 201, `{}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Store(context.Background(), &models.IdempotencyKey{
		Key:            "key-1",
		RequestPath:    "/api/v1/signups",
		ResponseStatus: 201,
		ResponseBody:   `{}`,
		CreatedAt:      time.Now(),
	})

	assert.NoError(t, err)
}
