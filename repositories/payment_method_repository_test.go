package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentMethodRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "card_number", "card_holder_name", "expiry_month",
		"expiry_year", "card_type", "is_default", "created_at",
	})
}

func TestPostgresPaymentMethodRepository_ListByUser(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	rows := paymentMethodRows().
		AddRow(1, 42, "**** **** **** 1234", "ARUZHAN SEITOVA", 12, 2028, "visa", true, time.Now()).
		AddRow(2, 42, "**** **** **** 9876", "ARUZHAN SEITOVA", 6, 2027, "mastercard", false, time.Now())

	mock.ExpectQuery(`FROM payment_methods WHERE user_id = \$1 ORDER BY id ASC`).
		WithArgs(42).
		WillReturnRows(rows)

	repo := NewPostgresPaymentMethodRepository(db)

	methods, err := repo.ListByUser(ctx, 42)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.True(t, methods[0].IsDefault)
	assert.Equal(t, "**** **** **** 9876", methods[1].CardNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPaymentMethodRepository_ClearDefaultForUser(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE payment_methods SET is_default = FALSE WHERE user_id = \$1 AND is_default = TRUE`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresPaymentMethodRepository(db)

	require.NoError(t, repo.ClearDefaultForUser(ctx, nil, 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPaymentMethodRepository_SetDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE payment_methods SET is_default = TRUE WHERE id = \$1`).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgresPaymentMethodRepository(db)

		assert.ErrorIs(t, repo.SetDefault(ctx, nil, 99), ErrPaymentMethodNotFound)
	})
}

func TestPostgresPaymentMethodRepository_OldestForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns earliest method", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		rows := paymentMethodRows().
			AddRow(3, 42, "**** **** **** 1234", "ARUZHAN SEITOVA", 12, 2028, "visa", false, time.Now())

		mock.ExpectQuery(`FROM payment_methods WHERE user_id = \$1 ORDER BY id ASC LIMIT 1`).
			WithArgs(42).
			WillReturnRows(rows)

		repo := NewPostgresPaymentMethodRepository(db)

		method, err := repo.OldestForUser(ctx, nil, 42)
		require.NoError(t, err)
		assert.Equal(t, 3, method.ID)
	})

	t.Run("no methods left", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM payment_methods WHERE user_id = \$1 ORDER BY id ASC LIMIT 1`).
			WithArgs(42).
			WillReturnRows(paymentMethodRows())

		repo := NewPostgresPaymentMethodRepository(db)

		_, err = repo.OldestForUser(ctx, nil, 42)
		assert.ErrorIs(t, err, ErrPaymentMethodNotFound)
	})
}
