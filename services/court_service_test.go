package services

import (
	"context"
	"testing"

	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourtService_Create(t *testing.T) {
	ctx := context.Background()

	venueRepo := &stubVenueRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Venue, error) {
			return &models.Venue{ID: id, Name: "Almaty Arena"}, nil
		},
	}

	validInput := CreateCourtInput{
		Name:       "Court A",
		Sport:      "tennis",
		Indoor:     true,
		HourlyRate: 7500,
	}

	t.Run("success fills empty collections", func(t *testing.T) {
		var created *models.Court
		courtRepo := &stubCourtRepo{
			createFn: func(ctx context.Context, court *models.Court) error {
				court.ID = 1
				created = court
				return nil
			},
		}
		svc := NewCourtService(courtRepo, venueRepo)

		court, err := svc.Create(ctx, 3, validInput)

		require.NoError(t, err)
		assert.Equal(t, 3, court.VenueID)
		assert.Equal(t, []string{}, created.Features)
		assert.Equal(t, models.WeeklySchedule{}, created.AvailabilitySchedule)
	})

	t.Run("name required", func(t *testing.T) {
		svc := NewCourtService(&stubCourtRepo{}, venueRepo)

		input := validInput
		input.Name = ""
		_, err := svc.Create(ctx, 3, input)

		assert.ErrorIs(t, err, ErrCourtNameRequired)
	})

	t.Run("negative rate", func(t *testing.T) {
		svc := NewCourtService(&stubCourtRepo{}, venueRepo)

		input := validInput
		input.HourlyRate = -1
		_, err := svc.Create(ctx, 3, input)

		assert.ErrorIs(t, err, ErrCourtInvalidRate)
	})

	t.Run("unknown venue", func(t *testing.T) {
		missingVenueRepo := &stubVenueRepo{
			getByIDFn: func(ctx context.Context, id int) (*models.Venue, error) {
				return nil, repositories.ErrVenueNotFound
			},
		}
		svc := NewCourtService(&stubCourtRepo{}, missingVenueRepo)

		_, err := svc.Create(ctx, 99, validInput)

		assert.ErrorIs(t, err, ErrVenueNotFound)
	})
}

func TestCourtService_ListByVenue(t *testing.T) {
	ctx := context.Background()

	courtRepo := &stubCourtRepo{
		listByVenueFn: func(ctx context.Context, venueID int) ([]models.Court, error) {
			return []models.Court{
				{ID: 1, VenueID: venueID, Name: "Court A", Indoor: true},
				{ID: 2, VenueID: venueID, Name: "Court B"},
			}, nil
		},
	}
	svc := NewCourtService(courtRepo, &stubVenueRepo{})

	courts, err := svc.ListByVenue(ctx, 3)

	require.NoError(t, err)
	require.Len(t, courts, 2)
	assert.True(t, courts[0].Indoor)
	assert.False(t, courts[1].Indoor)
}
