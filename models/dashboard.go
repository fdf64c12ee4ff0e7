package models

type DashboardStats struct {
	UsersTotal        int     `json:"users_total"`
	VenuesTotal       int     `json:"venues_total"`
	CourtsTotal       int     `json:"courts_total"`
	BookingsTotal     int     `json:"bookings_total"`
	PendingBookings   int     `json:"pending_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CompletedPayments int     `json:"completed_payments"`
	Revenue           float64 `json:"revenue"`
}
