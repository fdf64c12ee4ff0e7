package models

import "time"

// CourtDimensions describes the playing area, stored as jsonb.
type CourtDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Unit   string  `json:"unit"`
}

// TimeRange is a single bookable window within a day, "15:04" clock times.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklySchedule maps a lowercase weekday name to its bookable windows.
type WeeklySchedule map[string][]TimeRange

type Court struct {
	ID                   int              `json:"id"`
	VenueID              int              `json:"venue_id"`
	Name                 string           `json:"name"`
	Sport                string           `json:"sport"`
	SurfaceType          string           `json:"surface_type"`
	Indoor               bool             `json:"indoor"`
	Dimensions           *CourtDimensions `json:"dimensions,omitempty"`
	Features             []string         `json:"features"`
	AvailabilitySchedule WeeklySchedule   `json:"availability_schedule"`
	HourlyRate           float64          `json:"hourly_rate"`
	CreatedAt            time.Time        `json:"created_at"`
}
