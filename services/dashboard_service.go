package services

import (
	"context"

	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/repositories"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	userRepo    repositories.UserRepository
	venueRepo   repositories.VenueRepository
	courtRepo   repositories.CourtRepository
	bookingRepo repositories.BookingRepository
	paymentRepo repositories.PaymentRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	venueRepo repositories.VenueRepository,
	courtRepo repositories.CourtRepository,
	bookingRepo repositories.BookingRepository,
	paymentRepo repositories.PaymentRepository,
) DashboardService {
	return &dashboardService{
		userRepo:    userRepo,
		venueRepo:   venueRepo,
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
	}
}

// GetStats runs the count queries concurrently; the pool bounds the
// actual parallelism.
func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	pending := models.BookingPending
	confirmed := models.BookingConfirmed

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.UsersTotal, err = s.userRepo.Count(gCtx)
		return err
	})
	g.Go(func() (err error) {
		stats.VenuesTotal, err = s.venueRepo.Count(gCtx)
		return err
	})
	g.Go(func() (err error) {
		stats.CourtsTotal, err = s.courtRepo.Count(gCtx)
		return err
	})
	g.Go(func() (err error) {
		stats.BookingsTotal, err = s.bookingRepo.CountByStatus(gCtx, nil)
		return err
	})
	g.Go(func() (err error) {
		stats.PendingBookings, err = s.bookingRepo.CountByStatus(gCtx, &pending)
		return err
	})
	g.Go(func() (err error) {
		stats.ConfirmedBookings, err = s.bookingRepo.CountByStatus(gCtx, &confirmed)
		return err
	})
	g.Go(func() (err error) {
		stats.CompletedPayments, err = s.paymentRepo.CountCompleted(gCtx)
		return err
	})
	g.Go(func() (err error) {
		stats.Revenue, err = s.paymentRepo.SumCompleted(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
