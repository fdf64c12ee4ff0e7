package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ramazanbat/venue-booking/models"
)

var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentMethodRepository methods take an SQLExecutor so the service can
// hold the single-default invariant inside one transaction.
type PaymentMethodRepository interface {
	Create(ctx context.Context, exec SQLExecutor, method *models.PaymentMethod) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.PaymentMethod, error)
	ListByUser(ctx context.Context, userID int) ([]models.PaymentMethod, error)
	CountByUser(ctx context.Context, exec SQLExecutor, userID int) (int, error)
	ClearDefaultForUser(ctx context.Context, exec SQLExecutor, userID int) error
	SetDefault(ctx context.Context, exec SQLExecutor, id int) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	OldestForUser(ctx context.Context, exec SQLExecutor, userID int) (*models.PaymentMethod, error)
}

type postgresPaymentMethodRepository struct {
	db *sql.DB
}

func NewPostgresPaymentMethodRepository(db *sql.DB) PaymentMethodRepository {
	return &postgresPaymentMethodRepository{db: db}
}

func (r *postgresPaymentMethodRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const paymentMethodColumns = `
	id, user_id, card_number, card_holder_name, expiry_month, expiry_year,
	card_type, is_default, created_at`

func (r *postgresPaymentMethodRepository) Create(ctx context.Context, exec SQLExecutor, m *models.PaymentMethod) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO payment_methods (user_id, card_number, card_holder_name, expiry_month, expiry_year, card_type, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return executor.QueryRowContext(ctx, query,
		m.UserID, m.CardNumber, m.CardHolderName, m.ExpiryMonth, m.ExpiryYear, m.CardType, m.IsDefault,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *postgresPaymentMethodRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.PaymentMethod, error) {
	executor := r.getExecutor(exec)
	query := `SELECT` + paymentMethodColumns + ` FROM payment_methods WHERE id = $1`
	return scanPaymentMethod(executor.QueryRowContext(ctx, query, id))
}

func (r *postgresPaymentMethodRepository) ListByUser(ctx context.Context, userID int) ([]models.PaymentMethod, error) {
	query := `SELECT` + paymentMethodColumns + ` FROM payment_methods WHERE user_id = $1 ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := make([]models.PaymentMethod, 0)
	for rows.Next() {
		var m models.PaymentMethod
		scanErr := rows.Scan(
			&m.ID, &m.UserID, &m.CardNumber, &m.CardHolderName,
			&m.ExpiryMonth, &m.ExpiryYear, &m.CardType, &m.IsDefault, &m.CreatedAt,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (r *postgresPaymentMethodRepository) CountByUser(ctx context.Context, exec SQLExecutor, userID int) (int, error) {
	executor := r.getExecutor(exec)
	var count int
	err := executor.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM payment_methods WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *postgresPaymentMethodRepository) ClearDefaultForUser(ctx context.Context, exec SQLExecutor, userID int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx,
		`UPDATE payment_methods SET is_default = FALSE WHERE user_id = $1 AND is_default = TRUE`, userID)
	return err
}

func (r *postgresPaymentMethodRepository) SetDefault(ctx context.Context, exec SQLExecutor, id int) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx,
		`UPDATE payment_methods SET is_default = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPaymentMethodNotFound)
}

func (r *postgresPaymentMethodRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx, `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPaymentMethodNotFound)
}

// OldestForUser returns the user's earliest-created method, used to pick
// a replacement default after a delete.
func (r *postgresPaymentMethodRepository) OldestForUser(ctx context.Context, exec SQLExecutor, userID int) (*models.PaymentMethod, error) {
	executor := r.getExecutor(exec)
	query := `SELECT` + paymentMethodColumns + ` FROM payment_methods WHERE user_id = $1 ORDER BY id ASC LIMIT 1`
	return scanPaymentMethod(executor.QueryRowContext(ctx, query, userID))
}

func scanPaymentMethod(row *sql.Row) (*models.PaymentMethod, error) {
	m := &models.PaymentMethod{}
	err := row.Scan(
		&m.ID, &m.UserID, &m.CardNumber, &m.CardHolderName,
		&m.ExpiryMonth, &m.ExpiryYear, &m.CardType, &m.IsDefault, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return m, nil
}
