package models

import "time"

// PaymentMethod is a stored card. CardNumber holds only the masked form
// ("**** **** **** 1234"); the full number is never persisted.
type PaymentMethod struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	CardNumber     string    `json:"card_number"`
	CardHolderName string    `json:"card_holder_name"`
	ExpiryMonth    int       `json:"expiry_month"`
	ExpiryYear     int       `json:"expiry_year"`
	CardType       string    `json:"card_type"`
	IsDefault      bool      `json:"is_default"`
	CreatedAt      time.Time `json:"created_at"`
}
