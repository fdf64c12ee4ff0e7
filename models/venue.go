package models

import "time"

type Venue struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	Latitude      *float64          `json:"latitude,omitempty"`
	Longitude     *float64          `json:"longitude,omitempty"`
	Amenities     []string          `json:"amenities"`
	Photos        []string          `json:"photos"`
	OpeningHours  map[string]string `json:"opening_hours"`
	SportsOffered []string          `json:"sports_offered"`
	ContactPhone  string            `json:"contact_phone"`
	ContactEmail  string            `json:"contact_email"`
	IsActive      bool              `json:"is_active"`
	CreatedAt     time.Time         `json:"created_at"`

	// Optional related entities, populated by some queries.
	Courts []Court `json:"courts,omitempty"`
}
