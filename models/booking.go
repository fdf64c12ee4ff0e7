package models

import "time"

// BookingStatus matches the booking status ENUM in the database.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	ID           int           `json:"id"`
	UserID       int           `json:"user_id"`
	CourtID      int           `json:"court_id"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	TotalPrice   float64       `json:"total_price"`
	Status       BookingStatus `json:"status"`
	Participants []string      `json:"participants"`
	CreatedAt    time.Time     `json:"created_at"`

	// Filled by the joined listing query, absent elsewhere.
	CourtName *string `json:"court_name,omitempty"`
	VenueName *string `json:"venue_name,omitempty"`
	VenueID   *int    `json:"venue_id,omitempty"`
}

// CanTransitionTo reports whether moving to the requested status is a
// legal lifecycle step. The payment path drives pending→confirmed;
// cancellation is allowed until the booking has completed.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCompleted || next == BookingCancelled
	default:
		return false
	}
}
