package handlers

import (
	"errors"
	"net/http"

	"github.com/ramazanbat/venue-booking/middleware"
	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/services"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bs services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.CreateBookingInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	// Bookings are always created on behalf of the caller.
	input.UserID = currentUserID

	booking, err := h.bookingService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"booking": booking}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BookingHandler) ListUserBookings(w http.ResponseWriter, r *http.Request) {
	requestedUserID, err := intURLParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if !allowSelfOrAdmin(r, requestedUserID) {
		forbiddenResponse(w, r, "operation not allowed for the current user")
		return
	}

	var status *models.BookingStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := models.BookingStatus(v)
		status = &s
	}

	bookings, err := h.bookingService.ListUserBookings(r.Context(), requestedUserID, status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bookings": bookings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, err := intURLParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Status == "" {
		badRequestResponse(w, r, errors.New("status is required"))
		return
	}

	booking, err := h.bookingService.UpdateStatus(r.Context(), bookingID, input.Status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"booking": booking}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
