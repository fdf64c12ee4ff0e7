package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ramazanbat/venue-booking/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailConflict = errors.New("user email conflict")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	SetOTP(ctx context.Context, userID int, code string, expiresAt time.Time) error
	MarkVerified(ctx context.Context, userID int) error
	SetActive(ctx context.Context, userID int, active bool) error
	Count(ctx context.Context) (int, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

const userColumns = `
	id, full_name, email, phone_number, password_hash, role,
	is_active, is_verified, preferred_sports, skill_levels,
	registration_completed, otp_code, otp_expires_at, created_at`

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	sports, err := marshalJSONB(user.PreferredSports)
	if err != nil {
		return err
	}
	levels, err := marshalJSONB(user.SkillLevels)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (
			full_name, email, phone_number, password_hash, role,
			is_active, is_verified, preferred_sports, skill_levels, registration_completed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		user.FullName,
		user.Email,
		user.PhoneNumber,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.IsVerified,
		sports,
		levels,
		user.RegistrationCompleted,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "users_email_key" {
				return ErrUserEmailConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(ctx, query, email)
}

func (r *postgresUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	sports, err := marshalJSONB(user.PreferredSports)
	if err != nil {
		return err
	}
	levels, err := marshalJSONB(user.SkillLevels)
	if err != nil {
		return err
	}

	query := `
		UPDATE users SET
			full_name = $1,
			phone_number = $2,
			role = $3,
			preferred_sports = $4,
			skill_levels = $5,
			registration_completed = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		user.FullName,
		user.PhoneNumber,
		user.Role,
		sports,
		levels,
		user.RegistrationCompleted,
		user.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) SetOTP(ctx context.Context, userID int, code string, expiresAt time.Time) error {
	query := `UPDATE users SET otp_code = $1, otp_expires_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, code, expiresAt, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) MarkVerified(ctx context.Context, userID int) error {
	query := `
		UPDATE users SET is_verified = TRUE, otp_code = NULL, otp_expires_at = NULL
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) SetActive(ctx context.Context, userID int, active bool) error {
	query := `UPDATE users SET is_active = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, active, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *postgresUserRepository) scanUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	user := &models.User{}
	var sports, levels []byte

	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.IsVerified,
		&sports,
		&levels,
		&user.RegistrationCompleted,
		&user.OTPCode,
		&user.OTPExpiresAt,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.PreferredSports = []string{}
	user.SkillLevels = map[string]string{}
	unmarshalJSONB(sports, &user.PreferredSports)
	unmarshalJSONB(levels, &user.SkillLevels)

	return user, nil
}
