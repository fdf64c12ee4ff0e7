package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/ramazanbat/venue-booking/middleware"
	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingService struct {
	createFn       func(ctx context.Context, input services.CreateBookingInput) (*models.Booking, error)
	listFn         func(ctx context.Context, userID int, status *models.BookingStatus) ([]models.Booking, error)
	updateStatusFn func(ctx context.Context, bookingID int, status models.BookingStatus) (*models.Booking, error)
}

func (s *stubBookingService) Create(ctx context.Context, input services.CreateBookingInput) (*models.Booking, error) {
	return s.createFn(ctx, input)
}

func (s *stubBookingService) ListUserBookings(ctx context.Context, userID int, status *models.BookingStatus) ([]models.Booking, error) {
	return s.listFn(ctx, userID, status)
}

func (s *stubBookingService) UpdateStatus(ctx context.Context, bookingID int, status models.BookingStatus) (*models.Booking, error) {
	return s.updateStatusFn(ctx, bookingID, status)
}

// requestWithClaims attaches URL params and token claims the way the
// router and auth middleware would.
func requestWithClaims(r *http.Request, params map[string]string, userID int, role models.UserRole) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.WithClaims(ctx, jwt.MapClaims{
		"user_id": float64(userID),
		"role":    string(role),
	})
	return r.WithContext(ctx)
}

func TestBookingHandler_Create(t *testing.T) {
	t.Run("uses caller identity, not body user_id", func(t *testing.T) {
		var gotInput services.CreateBookingInput
		svc := &stubBookingService{
			createFn: func(ctx context.Context, input services.CreateBookingInput) (*models.Booking, error) {
				gotInput = input
				return &models.Booking{ID: 1, UserID: input.UserID, Status: models.BookingPending}, nil
			},
		}
		h := NewBookingHandler(svc)

		body := `{"user_id":999,"court_id":2,"start_time":"2026-09-01T18:00:00Z","end_time":"2026-09-01T19:00:00Z","total_price":7500}`
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(body))
		req = requestWithClaims(req, nil, 42, models.RoleCustomer)
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 42, gotInput.UserID)
		assert.Equal(t, 2, gotInput.CourtID)
	})

	t.Run("invalid time range", func(t *testing.T) {
		svc := &stubBookingService{
			createFn: func(ctx context.Context, input services.CreateBookingInput) (*models.Booking, error) {
				return nil, services.ErrBookingInvalidTimeRange
			},
		}
		h := NewBookingHandler(svc)

		body := `{"court_id":2,"start_time":"2026-09-01T19:00:00Z","end_time":"2026-09-01T18:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(body))
		req = requestWithClaims(req, nil, 42, models.RoleCustomer)
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		h := NewBookingHandler(&stubBookingService{})

		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(`{}`))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBookingHandler_ListUserBookings(t *testing.T) {
	sampleBookings := []models.Booking{
		{ID: 2, UserID: 42, Status: models.BookingConfirmed, StartTime: time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC)},
		{ID: 1, UserID: 42, Status: models.BookingConfirmed, StartTime: time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)},
	}

	t.Run("owner lists own bookings with status filter", func(t *testing.T) {
		var gotStatus *models.BookingStatus
		svc := &stubBookingService{
			listFn: func(ctx context.Context, userID int, status *models.BookingStatus) ([]models.Booking, error) {
				gotStatus = status
				return sampleBookings, nil
			},
		}
		h := NewBookingHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/users/42/bookings?status=confirmed", nil)
		req = requestWithClaims(req, map[string]string{"id": "42"}, 42, models.RoleCustomer)
		rec := httptest.NewRecorder()

		h.ListUserBookings(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotStatus)
		assert.Equal(t, models.BookingConfirmed, *gotStatus)

		var resp struct {
			Bookings []models.Booking `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("admin can list another user's bookings", func(t *testing.T) {
		svc := &stubBookingService{
			listFn: func(ctx context.Context, userID int, status *models.BookingStatus) ([]models.Booking, error) {
				assert.Equal(t, 42, userID)
				return sampleBookings, nil
			},
		}
		h := NewBookingHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/users/42/bookings", nil)
		req = requestWithClaims(req, map[string]string{"id": "42"}, 1, models.RoleAdmin)
		rec := httptest.NewRecorder()

		h.ListUserBookings(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other customer is forbidden", func(t *testing.T) {
		h := NewBookingHandler(&stubBookingService{})

		req := httptest.NewRequest(http.MethodGet, "/users/42/bookings", nil)
		req = requestWithClaims(req, map[string]string{"id": "42"}, 7, models.RoleCustomer)
		rec := httptest.NewRecorder()

		h.ListUserBookings(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := &stubBookingService{
			listFn: func(ctx context.Context, userID int, status *models.BookingStatus) ([]models.Booking, error) {
				return nil, services.ErrBookingInvalidStatus
			},
		}
		h := NewBookingHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/users/42/bookings?status=archived", nil)
		req = requestWithClaims(req, map[string]string{"id": "42"}, 42, models.RoleCustomer)
		rec := httptest.NewRecorder()

		h.ListUserBookings(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandler_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubBookingService{
			updateStatusFn: func(ctx context.Context, bookingID int, status models.BookingStatus) (*models.Booking, error) {
				return &models.Booking{ID: bookingID, Status: status}, nil
			},
		}
		h := NewBookingHandler(svc)

		req := httptest.NewRequest(http.MethodPatch, "/bookings/1/status", bytes.NewBufferString(`{"status":"cancelled"}`))
		req = requestWithClaims(req, map[string]string{"id": "1"}, 1, models.RoleAdmin)
		rec := httptest.NewRecorder()

		h.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		svc := &stubBookingService{
			updateStatusFn: func(ctx context.Context, bookingID int, status models.BookingStatus) (*models.Booking, error) {
				return nil, services.ErrBookingInvalidTransition
			},
		}
		h := NewBookingHandler(svc)

		req := httptest.NewRequest(http.MethodPatch, "/bookings/1/status", bytes.NewBufferString(`{"status":"completed"}`))
		req = requestWithClaims(req, map[string]string{"id": "1"}, 1, models.RoleAdmin)
		rec := httptest.NewRecorder()

		h.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
