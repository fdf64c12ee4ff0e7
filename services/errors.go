package services

import "errors"

// Shared service errors, mapped to HTTP responses in the handlers layer.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed         = errors.New("validation failed")
	ErrPasswordTooShort         = errors.New("password is too short")
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrUserInactive             = errors.New("user account is deactivated")
	ErrOTPInvalid               = errors.New("invalid verification code")
	ErrOTPExpired               = errors.New("verification code has expired")
	ErrOTPNotRequested          = errors.New("no verification code was requested")
	ErrVenueNameRequired        = errors.New("venue name is required")
	ErrCourtNameRequired        = errors.New("court name is required")
	ErrCourtInvalidRate         = errors.New("court hourly rate must not be negative")
	ErrBookingInvalidTimeRange  = errors.New("booking end time must be after start time")
	ErrBookingInvalidStatus     = errors.New("invalid booking status provided")
	ErrBookingInvalidTransition = errors.New("invalid booking status transition")
	ErrPaymentInvalidAmount     = errors.New("payment amount must be positive")
	ErrPaymentInvalidStatus     = errors.New("invalid payment status provided")
	ErrCardNumberInvalid        = errors.New("card number must have at least four digits")

	// Conflicts
	ErrUserEmailConflict = errors.New("email address is already in use")

	// Authentication and access
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// Entity-specific not-found errors
	ErrUserNotFound          = errors.New("user not found")
	ErrVenueNotFound         = errors.New("venue not found")
	ErrCourtNotFound         = errors.New("court not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
)
