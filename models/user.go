package models

import "time"

// UserRole matches the role ENUM in the database.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
	RoleOwner    UserRole = "owner"
)

type User struct {
	ID                    int               `json:"id"`
	FullName              string            `json:"full_name"`
	Email                 string            `json:"email"`
	PhoneNumber           string            `json:"phone_number"`
	PasswordHash          string            `json:"-"`
	Role                  UserRole          `json:"role"`
	IsActive              bool              `json:"is_active"`
	IsVerified            bool              `json:"is_verified"`
	PreferredSports       []string          `json:"preferred_sports"`
	SkillLevels           map[string]string `json:"skill_levels"`
	RegistrationCompleted bool              `json:"registration_completed"`
	CreatedAt             time.Time         `json:"created_at"`

	// OTP state, never serialized to clients.
	OTPCode      *string    `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
}
