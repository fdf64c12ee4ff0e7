package models

import "time"

// PaymentStatus matches the payment status ENUM in the database.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type PaymentTransaction struct {
	ID              int               `json:"id"`
	BookingID       int               `json:"booking_id"`
	UserID          int               `json:"user_id"`
	Amount          float64           `json:"amount"`
	PaymentMethod   string            `json:"payment_method"`
	PaymentStatus   PaymentStatus     `json:"payment_status"`
	PaymentDetails  map[string]string `json:"payment_details"`
	TransactionDate time.Time         `json:"transaction_date"`
}
