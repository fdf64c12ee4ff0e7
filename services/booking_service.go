package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/realtime"
	"github.com/ramazanbat/venue-booking/repositories"
)

type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID int, status *models.BookingStatus) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int, status models.BookingStatus) (*models.Booking, error)
}

type CreateBookingInput struct {
	UserID       int       `json:"user_id"`
	CourtID      int       `json:"court_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	TotalPrice   float64   `json:"total_price"`
	Participants []string  `json:"participants"`
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	courtRepo   repositories.CourtRepository
	hub         *realtime.Hub
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	courtRepo repositories.CourtRepository,
	hub *realtime.Hub,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		hub:         hub,
	}
}

// Create persists a booking in the pending state. Overlapping bookings
// for the same court are allowed at this layer.
func (s *bookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, ErrBookingInvalidTimeRange
	}

	court, err := s.courtRepo.GetByID(ctx, input.CourtID)
	if err != nil {
		if errors.Is(err, repositories.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to check court %d: %w", input.CourtID, err)
	}

	booking := &models.Booking{
		UserID:       input.UserID,
		CourtID:      input.CourtID,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		TotalPrice:   input.TotalPrice,
		Status:       models.BookingPending,
		Participants: input.Participants,
	}
	if booking.Participants == nil {
		booking.Participants = []string{}
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, repositories.ErrBookingInvalidCourt) {
			return nil, ErrCourtNotFound
		}
		if errors.Is(err, repositories.ErrBookingInvalidUser) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.broadcast(court.VenueID, "BOOKING_CREATED", booking)
	return booking, nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID int, status *models.BookingStatus) ([]models.Booking, error) {
	if status != nil && !isValidBookingStatus(*status) {
		return nil, ErrBookingInvalidStatus
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, repositories.ListBookingsFilter{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %d: %w", userID, err)
	}
	return bookings, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID int, status models.BookingStatus) (*models.Booking, error) {
	if !isValidBookingStatus(status) {
		return nil, ErrBookingInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, nil, bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking %d: %w", bookingID, err)
	}

	if !booking.CanTransitionTo(status) {
		return nil, ErrBookingInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, nil, bookingID, status); err != nil {
		return nil, fmt.Errorf("failed to update booking %d status: %w", bookingID, err)
	}
	booking.Status = status

	if court, courtErr := s.courtRepo.GetByID(ctx, booking.CourtID); courtErr == nil {
		s.broadcast(court.VenueID, bookingEventType(status), booking)
	}
	return booking, nil
}

func (s *bookingService) broadcast(venueID int, eventType string, booking *models.Booking) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToRoom(realtime.VenueRoom(venueID), realtime.Event{
		Type:      eventType,
		Payload:   booking,
		Timestamp: time.Now().UTC(),
	})
}

func bookingEventType(status models.BookingStatus) string {
	switch status {
	case models.BookingConfirmed:
		return "BOOKING_CONFIRMED"
	case models.BookingCancelled:
		return "BOOKING_CANCELLED"
	case models.BookingCompleted:
		return "BOOKING_COMPLETED"
	default:
		return "BOOKING_UPDATED"
	}
}

func isValidBookingStatus(status models.BookingStatus) bool {
	switch status {
	case models.BookingPending, models.BookingConfirmed, models.BookingCancelled, models.BookingCompleted:
		return true
	}
	return false
}
