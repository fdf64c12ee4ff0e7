package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/ramazanbat/venue-booking/models"
)

var ErrPaymentInvalidBooking = errors.New("invalid booking reference")

type PaymentRepository interface {
	Create(ctx context.Context, exec SQLExecutor, txn *models.PaymentTransaction) error
	ListByBooking(ctx context.Context, bookingID int) ([]models.PaymentTransaction, error)
	CountCompleted(ctx context.Context) (int, error)
	SumCompleted(ctx context.Context) (float64, error)
}

type postgresPaymentRepository struct {
	db *sql.DB
}

func NewPostgresPaymentRepository(db *sql.DB) PaymentRepository {
	return &postgresPaymentRepository{db: db}
}

func (r *postgresPaymentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPaymentRepository) Create(ctx context.Context, exec SQLExecutor, t *models.PaymentTransaction) error {
	executor := r.getExecutor(exec)

	details, err := marshalJSONB(t.PaymentDetails)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO payment_transactions (booking_id, user_id, amount, payment_method, payment_status, payment_details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, transaction_date`

	err = executor.QueryRowContext(ctx, query,
		t.BookingID, t.UserID, t.Amount, t.PaymentMethod, t.PaymentStatus, details,
	).Scan(&t.ID, &t.TransactionDate)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			if pqErr.Constraint == "payment_transactions_booking_id_fkey" {
				return ErrPaymentInvalidBooking
			}
		}
		return err
	}
	return nil
}

func (r *postgresPaymentRepository) ListByBooking(ctx context.Context, bookingID int) ([]models.PaymentTransaction, error) {
	query := `
		SELECT id, booking_id, user_id, amount, payment_method, payment_status, payment_details, transaction_date
		FROM payment_transactions
		WHERE booking_id = $1
		ORDER BY transaction_date DESC`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := make([]models.PaymentTransaction, 0)
	for rows.Next() {
		var t models.PaymentTransaction
		var details []byte
		scanErr := rows.Scan(
			&t.ID, &t.BookingID, &t.UserID, &t.Amount,
			&t.PaymentMethod, &t.PaymentStatus, &details, &t.TransactionDate,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		t.PaymentDetails = map[string]string{}
		unmarshalJSONB(details, &t.PaymentDetails)
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *postgresPaymentRepository) CountCompleted(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM payment_transactions WHERE payment_status = 'completed'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}

func (r *postgresPaymentRepository) SumCompleted(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payment_transactions WHERE payment_status = 'completed'`).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	return sum, nil
}
