package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ramazanbat/venue-booking/models"
)

var ErrVenueNotFound = errors.New("venue not found")

type ListVenuesFilter struct {
	Sport      *string
	ActiveOnly bool
	Limit      int
	Offset     int
}

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	List(ctx context.Context, filter ListVenuesFilter) ([]models.Venue, error)
	UpdatePhotos(ctx context.Context, venueID int, photos []string) error
	Count(ctx context.Context) (int, error)
}

type postgresVenueRepository struct {
	db *sql.DB
}

func NewPostgresVenueRepository(db *sql.DB) VenueRepository {
	return &postgresVenueRepository{db: db}
}

const venueColumns = `
	id, name, address, city, latitude, longitude, amenities, photos,
	opening_hours, sports_offered, contact_phone, contact_email, is_active, created_at`

func (r *postgresVenueRepository) Create(ctx context.Context, v *models.Venue) error {
	amenities, err := marshalJSONB(v.Amenities)
	if err != nil {
		return err
	}
	photos, err := marshalJSONB(v.Photos)
	if err != nil {
		return err
	}
	hours, err := marshalJSONB(v.OpeningHours)
	if err != nil {
		return err
	}
	sports, err := marshalJSONB(v.SportsOffered)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO venues (
			name, address, city, latitude, longitude, amenities, photos,
			opening_hours, sports_offered, contact_phone, contact_email, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		v.Name, v.Address, v.City, v.Latitude, v.Longitude,
		amenities, photos, hours, sports,
		v.ContactPhone, v.ContactEmail, v.IsActive,
	).Scan(&v.ID, &v.CreatedAt)
}

func (r *postgresVenueRepository) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	query := `SELECT` + venueColumns + ` FROM venues WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	venue, err := scanVenue(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (r *postgresVenueRepository) List(ctx context.Context, filter ListVenuesFilter) ([]models.Venue, error) {
	query := `SELECT` + venueColumns + ` FROM venues WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.ActiveOnly {
		query += " AND is_active = TRUE"
	}
	if filter.Sport != nil {
		query += fmt.Sprintf(" AND sports_offered @> $%d", argID)
		sport, err := marshalJSONB([]string{*filter.Sport})
		if err != nil {
			return nil, err
		}
		args = append(args, sport)
		argID++
	}

	query += " ORDER BY name ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]models.Venue, 0)
	for rows.Next() {
		venue, scanErr := scanVenue(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		venues = append(venues, *venue)
	}
	return venues, rows.Err()
}

func (r *postgresVenueRepository) UpdatePhotos(ctx context.Context, venueID int, photos []string) error {
	data, err := marshalJSONB(photos)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, `UPDATE venues SET photos = $1 WHERE id = $2`, data, venueID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrVenueNotFound)
}

func (r *postgresVenueRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVenue(row rowScanner) (*models.Venue, error) {
	v := &models.Venue{}
	var amenities, photos, hours, sports []byte

	err := row.Scan(
		&v.ID, &v.Name, &v.Address, &v.City, &v.Latitude, &v.Longitude,
		&amenities, &photos, &hours, &sports,
		&v.ContactPhone, &v.ContactEmail, &v.IsActive, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.Amenities = []string{}
	v.Photos = []string{}
	v.OpeningHours = map[string]string{}
	v.SportsOffered = []string{}
	unmarshalJSONB(amenities, &v.Amenities)
	unmarshalJSONB(photos, &v.Photos)
	unmarshalJSONB(hours, &v.OpeningHours)
	unmarshalJSONB(sports, &v.SportsOffered)

	return v, nil
}
