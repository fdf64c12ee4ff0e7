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
	ErrCourtNotFound     = errors.New("court not found")
	ErrCourtInvalidVenue = errors.New("invalid venue reference")
)

type CourtRepository interface {
	Create(ctx context.Context, court *models.Court) error
	GetByID(ctx context.Context, id int) (*models.Court, error)
	ListByVenue(ctx context.Context, venueID int) ([]models.Court, error)
	Count(ctx context.Context) (int, error)
}

type postgresCourtRepository struct {
	db *sql.DB
}

func NewPostgresCourtRepository(db *sql.DB) CourtRepository {
	return &postgresCourtRepository{db: db}
}

const courtColumns = `
	id, venue_id, name, sport, surface_type, indoor, dimensions,
	features, availability_schedule, hourly_rate, created_at`

func (r *postgresCourtRepository) Create(ctx context.Context, c *models.Court) error {
	dimensions, err := marshalJSONB(c.Dimensions)
	if err != nil {
		return err
	}
	features, err := marshalJSONB(c.Features)
	if err != nil {
		return err
	}
	schedule, err := marshalJSONB(c.AvailabilitySchedule)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO courts (
			venue_id, name, sport, surface_type, indoor, dimensions,
			features, availability_schedule, hourly_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		c.VenueID, c.Name, c.Sport, c.SurfaceType, c.Indoor,
		dimensions, features, schedule, c.HourlyRate,
	).Scan(&c.ID, &c.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			if pqErr.Constraint == "courts_venue_id_fkey" {
				return ErrCourtInvalidVenue
			}
		}
		return err
	}
	return nil
}

func (r *postgresCourtRepository) GetByID(ctx context.Context, id int) (*models.Court, error) {
	query := `SELECT` + courtColumns + ` FROM courts WHERE id = $1`

	court, err := scanCourt(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return court, nil
}

func (r *postgresCourtRepository) ListByVenue(ctx context.Context, venueID int) ([]models.Court, error) {
	query := `SELECT` + courtColumns + ` FROM courts WHERE venue_id = $1 ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courts := make([]models.Court, 0)
	for rows.Next() {
		court, scanErr := scanCourt(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		courts = append(courts, *court)
	}
	return courts, rows.Err()
}

func (r *postgresCourtRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count courts: %w", err)
	}
	return count, nil
}

func scanCourt(row rowScanner) (*models.Court, error) {
	c := &models.Court{}
	var dimensions, features, schedule []byte

	err := row.Scan(
		&c.ID, &c.VenueID, &c.Name, &c.Sport, &c.SurfaceType, &c.Indoor,
		&dimensions, &features, &schedule, &c.HourlyRate, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Features = []string{}
	c.AvailabilitySchedule = models.WeeklySchedule{}
	unmarshalJSONB(dimensions, &c.Dimensions)
	unmarshalJSONB(features, &c.Features)
	unmarshalJSONB(schedule, &c.AvailabilitySchedule)

	return c, nil
}
