package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/ramazanbat/venue-booking/models"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingInvalidCourt = errors.New("invalid court reference")
	ErrBookingInvalidUser  = errors.New("invalid user reference")
)

type ListBookingsFilter struct {
	UserID int
	Status *models.BookingStatus
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Booking, error)
	ListByUser(ctx context.Context, filter ListBookingsFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.BookingStatus) error
	CountByStatus(ctx context.Context, status *models.BookingStatus) (int, error)
}

type postgresBookingRepository struct {
	db *sql.DB
}

func NewPostgresBookingRepository(db *sql.DB) BookingRepository {
	return &postgresBookingRepository{db: db}
}

func (r *postgresBookingRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresBookingRepository) Create(ctx context.Context, b *models.Booking) error {
	participants, err := marshalJSONB(b.Participants)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (user_id, court_id, start_time, end_time, total_price, status, participants)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		b.UserID, b.CourtID, b.StartTime, b.EndTime, b.TotalPrice, b.Status, participants,
	).Scan(&b.ID, &b.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			switch pqErr.Constraint {
			case "bookings_court_id_fkey":
				return ErrBookingInvalidCourt
			case "bookings_user_id_fkey":
				return ErrBookingInvalidUser
			}
		}
		return err
	}
	return nil
}

func (r *postgresBookingRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Booking, error) {
	executor := r.getExecutor(exec)
	query := `
		SELECT id, user_id, court_id, start_time, end_time, total_price, status, participants, created_at
		FROM bookings
		WHERE id = $1`

	b := &models.Booking{}
	var participants []byte
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.CourtID, &b.StartTime, &b.EndTime,
		&b.TotalPrice, &b.Status, &participants, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	b.Participants = []string{}
	unmarshalJSONB(participants, &b.Participants)
	return b, nil
}

// ListByUser joins court and venue names for display and orders by start
// time, most recent first.
func (r *postgresBookingRepository) ListByUser(ctx context.Context, filter ListBookingsFilter) ([]models.Booking, error) {
	query := `
		SELECT
			b.id, b.user_id, b.court_id, b.start_time, b.end_time,
			b.total_price, b.status, b.participants, b.created_at,
			c.name, v.name, v.id
		FROM bookings b
		JOIN courts c ON b.court_id = c.id
		JOIN venues v ON c.venue_id = v.id
		WHERE b.user_id = $1`

	args := []interface{}{filter.UserID}
	if filter.Status != nil {
		query += " AND b.status = $2"
		args = append(args, *filter.Status)
	}
	query += " ORDER BY b.start_time DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		var participants []byte
		scanErr := rows.Scan(
			&b.ID, &b.UserID, &b.CourtID, &b.StartTime, &b.EndTime,
			&b.TotalPrice, &b.Status, &participants, &b.CreatedAt,
			&b.CourtName, &b.VenueName, &b.VenueID,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		b.Participants = []string{}
		unmarshalJSONB(participants, &b.Participants)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *postgresBookingRepository) UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.BookingStatus) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrBookingNotFound)
}

func (r *postgresBookingRepository) CountByStatus(ctx context.Context, status *models.BookingStatus) (int, error) {
	query := `SELECT COUNT(*) FROM bookings`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
