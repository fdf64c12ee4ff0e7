package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/repositories"
)

type CourtService interface {
	Create(ctx context.Context, venueID int, input CreateCourtInput) (*models.Court, error)
	GetByID(ctx context.Context, id int) (*models.Court, error)
	ListByVenue(ctx context.Context, venueID int) ([]models.Court, error)
}

type CreateCourtInput struct {
	Name                 string                  `json:"name"`
	Sport                string                  `json:"sport"`
	SurfaceType          string                  `json:"surface_type"`
	Indoor               bool                    `json:"indoor"`
	Dimensions           *models.CourtDimensions `json:"dimensions"`
	Features             []string                `json:"features"`
	AvailabilitySchedule models.WeeklySchedule   `json:"availability_schedule"`
	HourlyRate           float64                 `json:"hourly_rate"`
}

type courtService struct {
	courtRepo repositories.CourtRepository
	venueRepo repositories.VenueRepository
}

func NewCourtService(courtRepo repositories.CourtRepository, venueRepo repositories.VenueRepository) CourtService {
	return &courtService{
		courtRepo: courtRepo,
		venueRepo: venueRepo,
	}
}

func (s *courtService) Create(ctx context.Context, venueID int, input CreateCourtInput) (*models.Court, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrCourtNameRequired
	}
	if input.HourlyRate < 0 {
		return nil, ErrCourtInvalidRate
	}

	// The FK would catch a missing venue too; checking first turns it
	// into a clean 404 instead of a constraint error.
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to check venue %d: %w", venueID, err)
	}

	court := &models.Court{
		VenueID:              venueID,
		Name:                 input.Name,
		Sport:                input.Sport,
		SurfaceType:          input.SurfaceType,
		Indoor:               input.Indoor,
		Dimensions:           input.Dimensions,
		Features:             input.Features,
		AvailabilitySchedule: input.AvailabilitySchedule,
		HourlyRate:           input.HourlyRate,
	}
	if court.Features == nil {
		court.Features = []string{}
	}
	if court.AvailabilitySchedule == nil {
		court.AvailabilitySchedule = models.WeeklySchedule{}
	}

	if err := s.courtRepo.Create(ctx, court); err != nil {
		if errors.Is(err, repositories.ErrCourtInvalidVenue) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to create court: %w", err)
	}
	return court, nil
}

func (s *courtService) GetByID(ctx context.Context, id int) (*models.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to get court %d: %w", id, err)
	}
	return court, nil
}

func (s *courtService) ListByVenue(ctx context.Context, venueID int) ([]models.Court, error) {
	courts, err := s.courtRepo.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courts for venue %d: %w", venueID, err)
	}
	return courts, nil
}
