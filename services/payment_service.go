package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/realtime"
	"github.com/ramazanbat/venue-booking/repositories"
)

// BookingMailer sends the confirmation mail after a successful payment.
type BookingMailer interface {
	SendBookingConfirmedEmail(userEmail, venueName, courtName string, startTime, endTime time.Time) error
}

type PaymentService interface {
	Record(ctx context.Context, input RecordPaymentInput) (*models.PaymentTransaction, error)
	ListByBooking(ctx context.Context, bookingID int) ([]models.PaymentTransaction, error)
}

type RecordPaymentInput struct {
	BookingID      int                  `json:"booking_id"`
	UserID         int                  `json:"user_id"`
	Amount         float64              `json:"amount"`
	PaymentMethod  string               `json:"payment_method"`
	PaymentStatus  models.PaymentStatus `json:"payment_status"`
	PaymentDetails map[string]string    `json:"payment_details"`
}

type paymentService struct {
	db          *sql.DB
	paymentRepo repositories.PaymentRepository
	bookingRepo repositories.BookingRepository
	courtRepo   repositories.CourtRepository
	venueRepo   repositories.VenueRepository
	userRepo    repositories.UserRepository
	hub         *realtime.Hub
	mailer      BookingMailer
	logger      *slog.Logger
}

func NewPaymentService(
	db *sql.DB,
	paymentRepo repositories.PaymentRepository,
	bookingRepo repositories.BookingRepository,
	courtRepo repositories.CourtRepository,
	venueRepo repositories.VenueRepository,
	userRepo repositories.UserRepository,
	hub *realtime.Hub,
	mailer BookingMailer,
	logger *slog.Logger,
) PaymentService {
	return &paymentService{
		db:          db,
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		venueRepo:   venueRepo,
		userRepo:    userRepo,
		hub:         hub,
		mailer:      mailer,
		logger:      logger,
	}
}

// Record inserts the transaction and, for a completed payment, promotes
// the booking to confirmed. Both statements run in one DB transaction so
// a recorded payment can never leave its booking unconfirmed.
func (s *paymentService) Record(ctx context.Context, input RecordPaymentInput) (*models.PaymentTransaction, error) {
	if input.Amount <= 0 {
		return nil, ErrPaymentInvalidAmount
	}
	if !isValidPaymentStatus(input.PaymentStatus) {
		return nil, ErrPaymentInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := s.bookingRepo.GetByID(ctx, tx, input.BookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking %d: %w", input.BookingID, err)
	}

	txn := &models.PaymentTransaction{
		BookingID:      input.BookingID,
		UserID:         input.UserID,
		Amount:         input.Amount,
		PaymentMethod:  input.PaymentMethod,
		PaymentStatus:  input.PaymentStatus,
		PaymentDetails: input.PaymentDetails,
	}
	if txn.PaymentDetails == nil {
		txn.PaymentDetails = map[string]string{}
	}

	if err := s.paymentRepo.Create(ctx, tx, txn); err != nil {
		if errors.Is(err, repositories.ErrPaymentInvalidBooking) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	confirmed := false
	if input.PaymentStatus == models.PaymentCompleted && booking.Status == models.BookingPending {
		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, models.BookingConfirmed); err != nil {
			return nil, fmt.Errorf("failed to confirm booking %d: %w", booking.ID, err)
		}
		booking.Status = models.BookingConfirmed
		confirmed = true
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit payment transaction: %w", err)
	}

	if confirmed {
		s.notifyConfirmed(ctx, booking)
	}
	return txn, nil
}

func (s *paymentService) ListByBooking(ctx context.Context, bookingID int) ([]models.PaymentTransaction, error) {
	txns, err := s.paymentRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for booking %d: %w", bookingID, err)
	}
	return txns, nil
}

// notifyConfirmed fans out the confirmation after commit. Failures here
// are logged and dropped; the payment itself already succeeded.
func (s *paymentService) notifyConfirmed(ctx context.Context, booking *models.Booking) {
	court, err := s.courtRepo.GetByID(ctx, booking.CourtID)
	if err != nil {
		s.logger.Error("payment: failed to load court for notification",
			slog.Int("booking_id", booking.ID), slog.Any("error", err))
		return
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(realtime.VenueRoom(court.VenueID), realtime.Event{
			Type:      "BOOKING_CONFIRMED",
			Payload:   booking,
			Timestamp: time.Now().UTC(),
		})
	}

	if s.mailer == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("payment: failed to load user for confirmation mail",
			slog.Int("booking_id", booking.ID), slog.Any("error", err))
		return
	}
	venue, err := s.venueRepo.GetByID(ctx, court.VenueID)
	if err != nil {
		s.logger.Error("payment: failed to load venue for confirmation mail",
			slog.Int("booking_id", booking.ID), slog.Any("error", err))
		return
	}
	if err := s.mailer.SendBookingConfirmedEmail(user.Email, venue.Name, court.Name, booking.StartTime, booking.EndTime); err != nil {
		s.logger.Error("payment: failed to send confirmation mail",
			slog.Int("booking_id", booking.ID), slog.Any("error", err))
	}
}

func isValidPaymentStatus(status models.PaymentStatus) bool {
	switch status {
	case models.PaymentPending, models.PaymentCompleted, models.PaymentFailed, models.PaymentRefunded:
		return true
	}
	return false
}
