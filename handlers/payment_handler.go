package handlers

import (
	"net/http"

	"github.com/ramazanbat/venue-booking/middleware"
	"github.com/ramazanbat/venue-booking/services"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(ps services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.RecordPaymentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.UserID = currentUserID

	txn, err := h.paymentService.Record(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"payment": txn}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PaymentHandler) ListByBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := intURLParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	txns, err := h.paymentService.ListByBooking(r.Context(), bookingID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"payments": txns}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
