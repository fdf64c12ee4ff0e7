package services

import (
	"context"
	"time"

	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/repositories"
)

type stubUserRepo struct {
	createFn       func(ctx context.Context, user *models.User) error
	getByIDFn      func(ctx context.Context, id int) (*models.User, error)
	getByEmailFn   func(ctx context.Context, email string) (*models.User, error)
	updateFn       func(ctx context.Context, user *models.User) error
	setOTPFn       func(ctx context.Context, userID int, code string, expiresAt time.Time) error
	markVerifiedFn func(ctx context.Context, userID int) error
	setActiveFn    func(ctx context.Context, userID int, active bool) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func (s *stubUserRepo) SetOTP(ctx context.Context, userID int, code string, expiresAt time.Time) error {
	return s.setOTPFn(ctx, userID, code, expiresAt)
}

func (s *stubUserRepo) MarkVerified(ctx context.Context, userID int) error {
	return s.markVerifiedFn(ctx, userID)
}

func (s *stubUserRepo) SetActive(ctx context.Context, userID int, active bool) error {
	return s.setActiveFn(ctx, userID, active)
}

func (s *stubUserRepo) Count(ctx context.Context) (int, error) { return 0, nil }

type stubVenueRepo struct {
	createFn       func(ctx context.Context, venue *models.Venue) error
	getByIDFn      func(ctx context.Context, id int) (*models.Venue, error)
	listFn         func(ctx context.Context, filter repositories.ListVenuesFilter) ([]models.Venue, error)
	updatePhotosFn func(ctx context.Context, venueID int, photos []string) error
}

func (s *stubVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	return s.createFn(ctx, venue)
}

func (s *stubVenueRepo) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubVenueRepo) List(ctx context.Context, filter repositories.ListVenuesFilter) ([]models.Venue, error) {
	return s.listFn(ctx, filter)
}

func (s *stubVenueRepo) UpdatePhotos(ctx context.Context, venueID int, photos []string) error {
	return s.updatePhotosFn(ctx, venueID, photos)
}

func (s *stubVenueRepo) Count(ctx context.Context) (int, error) { return 0, nil }

type stubCourtRepo struct {
	createFn      func(ctx context.Context, court *models.Court) error
	getByIDFn     func(ctx context.Context, id int) (*models.Court, error)
	listByVenueFn func(ctx context.Context, venueID int) ([]models.Court, error)
}

func (s *stubCourtRepo) Create(ctx context.Context, court *models.Court) error {
	return s.createFn(ctx, court)
}

func (s *stubCourtRepo) GetByID(ctx context.Context, id int) (*models.Court, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCourtRepo) ListByVenue(ctx context.Context, venueID int) ([]models.Court, error) {
	return s.listByVenueFn(ctx, venueID)
}

func (s *stubCourtRepo) Count(ctx context.Context) (int, error) { return 0, nil }

type stubBookingRepo struct {
	createFn       func(ctx context.Context, booking *models.Booking) error
	getByIDFn      func(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Booking, error)
	listByUserFn   func(ctx context.Context, filter repositories.ListBookingsFilter) ([]models.Booking, error)
	updateStatusFn func(ctx context.Context, exec repositories.SQLExecutor, id int, status models.BookingStatus) error
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return s.createFn(ctx, booking)
}

func (s *stubBookingRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Booking, error) {
	return s.getByIDFn(ctx, exec, id)
}

func (s *stubBookingRepo) ListByUser(ctx context.Context, filter repositories.ListBookingsFilter) ([]models.Booking, error) {
	return s.listByUserFn(ctx, filter)
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, exec repositories.SQLExecutor, id int, status models.BookingStatus) error {
	return s.updateStatusFn(ctx, exec, id, status)
}

func (s *stubBookingRepo) CountByStatus(ctx context.Context, status *models.BookingStatus) (int, error) {
	return 0, nil
}

type stubPaymentRepo struct {
	createFn        func(ctx context.Context, exec repositories.SQLExecutor, txn *models.PaymentTransaction) error
	listByBookingFn func(ctx context.Context, bookingID int) ([]models.PaymentTransaction, error)
}

func (s *stubPaymentRepo) Create(ctx context.Context, exec repositories.SQLExecutor, txn *models.PaymentTransaction) error {
	return s.createFn(ctx, exec, txn)
}

func (s *stubPaymentRepo) ListByBooking(ctx context.Context, bookingID int) ([]models.PaymentTransaction, error) {
	return s.listByBookingFn(ctx, bookingID)
}

func (s *stubPaymentRepo) CountCompleted(ctx context.Context) (int, error) { return 0, nil }

func (s *stubPaymentRepo) SumCompleted(ctx context.Context) (float64, error) { return 0, nil }

type stubPaymentMethodRepo struct {
	createFn        func(ctx context.Context, exec repositories.SQLExecutor, m *models.PaymentMethod) error
	getByIDFn       func(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.PaymentMethod, error)
	listByUserFn    func(ctx context.Context, userID int) ([]models.PaymentMethod, error)
	countByUserFn   func(ctx context.Context, exec repositories.SQLExecutor, userID int) (int, error)
	clearDefaultFn  func(ctx context.Context, exec repositories.SQLExecutor, userID int) error
	setDefaultFn    func(ctx context.Context, exec repositories.SQLExecutor, id int) error
	deleteFn        func(ctx context.Context, exec repositories.SQLExecutor, id int) error
	oldestForUserFn func(ctx context.Context, exec repositories.SQLExecutor, userID int) (*models.PaymentMethod, error)
}

func (s *stubPaymentMethodRepo) Create(ctx context.Context, exec repositories.SQLExecutor, m *models.PaymentMethod) error {
	return s.createFn(ctx, exec, m)
}

func (s *stubPaymentMethodRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.PaymentMethod, error) {
	return s.getByIDFn(ctx, exec, id)
}

func (s *stubPaymentMethodRepo) ListByUser(ctx context.Context, userID int) ([]models.PaymentMethod, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubPaymentMethodRepo) CountByUser(ctx context.Context, exec repositories.SQLExecutor, userID int) (int, error) {
	return s.countByUserFn(ctx, exec, userID)
}

func (s *stubPaymentMethodRepo) ClearDefaultForUser(ctx context.Context, exec repositories.SQLExecutor, userID int) error {
	return s.clearDefaultFn(ctx, exec, userID)
}

func (s *stubPaymentMethodRepo) SetDefault(ctx context.Context, exec repositories.SQLExecutor, id int) error {
	return s.setDefaultFn(ctx, exec, id)
}

func (s *stubPaymentMethodRepo) Delete(ctx context.Context, exec repositories.SQLExecutor, id int) error {
	return s.deleteFn(ctx, exec, id)
}

func (s *stubPaymentMethodRepo) OldestForUser(ctx context.Context, exec repositories.SQLExecutor, userID int) (*models.PaymentMethod, error) {
	return s.oldestForUserFn(ctx, exec, userID)
}

type stubOTPSender struct {
	sentTo   []string
	sentCode []string
	err      error
}

func (s *stubOTPSender) SendOTPEmail(email, code string) error {
	if s.err != nil {
		return s.err
	}
	s.sentTo = append(s.sentTo, email)
	s.sentCode = append(s.sentCode, code)
	return nil
}

type stubBookingMailer struct {
	sent int
	err  error
}

func (s *stubBookingMailer) SendBookingConfirmedEmail(userEmail, venueName, courtName string, startTime, endTime time.Time) error {
	s.sent++
	return s.err
}
