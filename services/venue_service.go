package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/repositories"
	"github.com/ramazanbat/venue-booking/storage"
)

type VenueService interface {
	Create(ctx context.Context, input CreateVenueInput) (*models.Venue, error)
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	List(ctx context.Context, sport *string) ([]models.Venue, error)
	UploadPhoto(ctx context.Context, venueID int, file io.Reader, contentType string) (*models.Venue, error)
}

type CreateVenueInput struct {
	Name          string            `json:"name"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	Latitude      *float64          `json:"latitude"`
	Longitude     *float64          `json:"longitude"`
	Amenities     []string          `json:"amenities"`
	Photos        []string          `json:"photos"`
	OpeningHours  map[string]string `json:"opening_hours"`
	SportsOffered []string          `json:"sports_offered"`
	ContactPhone  string            `json:"contact_phone"`
	ContactEmail  string            `json:"contact_email"`
}

type venueService struct {
	venueRepo repositories.VenueRepository
	uploader  storage.FileUploader
}

func NewVenueService(venueRepo repositories.VenueRepository, uploader storage.FileUploader) VenueService {
	return &venueService{
		venueRepo: venueRepo,
		uploader:  uploader,
	}
}

func (s *venueService) Create(ctx context.Context, input CreateVenueInput) (*models.Venue, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrVenueNameRequired
	}

	venue := &models.Venue{
		Name:          input.Name,
		Address:       input.Address,
		City:          input.City,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Amenities:     input.Amenities,
		Photos:        input.Photos,
		OpeningHours:  input.OpeningHours,
		SportsOffered: input.SportsOffered,
		ContactPhone:  input.ContactPhone,
		ContactEmail:  input.ContactEmail,
		IsActive:      true,
	}
	if venue.Amenities == nil {
		venue.Amenities = []string{}
	}
	if venue.Photos == nil {
		venue.Photos = []string{}
	}
	if venue.OpeningHours == nil {
		venue.OpeningHours = map[string]string{}
	}
	if venue.SportsOffered == nil {
		venue.SportsOffered = []string{}
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue %d: %w", id, err)
	}
	return venue, nil
}

func (s *venueService) List(ctx context.Context, sport *string) ([]models.Venue, error) {
	venues, err := s.venueRepo.List(ctx, repositories.ListVenuesFilter{
		Sport:      sport,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}

// UploadPhoto stores the image in object storage and appends its public
// URL to the venue's photo list.
func (s *venueService) UploadPhoto(ctx context.Context, venueID int, file io.Reader, contentType string) (*models.Venue, error) {
	venue, err := s.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	ext := extensionForContentType(contentType)
	if ext == "" {
		return nil, ErrValidationFailed
	}

	key := fmt.Sprintf("venues/%d/photos/%d%s", venueID, time.Now().UnixNano(), ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload venue photo: %w", err)
	}

	venue.Photos = append(venue.Photos, result.Location)
	if err := s.venueRepo.UpdatePhotos(ctx, venueID, venue.Photos); err != nil {
		return nil, fmt.Errorf("failed to save venue photos: %w", err)
	}
	return venue, nil
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
