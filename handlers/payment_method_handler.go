package handlers

import (
	"net/http"

	"github.com/ramazanbat/venue-booking/services"
)

type PaymentMethodHandler struct {
	methodService services.PaymentMethodService
}

func NewPaymentMethodHandler(ms services.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodService: ms}
}

func (h *PaymentMethodHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, err := intURLParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if !allowSelfOrAdmin(r, userID) {
		forbiddenResponse(w, r, "operation not allowed for the current user")
		return
	}

	var input services.AddPaymentMethodInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	method, err := h.methodService.Add(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"payment_method": method}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PaymentMethodHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := intURLParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if !allowSelfOrAdmin(r, userID) {
		forbiddenResponse(w, r, "operation not allowed for the current user")
		return
	}

	methods, err := h.methodService.ListByUser(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"payment_methods": methods}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PaymentMethodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := intURLParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	methodID, err := intURLParam(r, "methodID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if !allowSelfOrAdmin(r, userID) {
		forbiddenResponse(w, r, "operation not allowed for the current user")
		return
	}

	if err := h.methodService.Delete(r.Context(), userID, methodID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "payment method deleted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PaymentMethodHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	userID, err := intURLParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	methodID, err := intURLParam(r, "methodID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if !allowSelfOrAdmin(r, userID) {
		forbiddenResponse(w, r, "operation not allowed for the current user")
		return
	}

	if err := h.methodService.SetDefault(r.Context(), userID, methodID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "default payment method updated"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
