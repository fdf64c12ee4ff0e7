package handlers

import (
	"errors"
	"net/http"

	"github.com/ramazanbat/venue-booking/middleware"
	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	requestedUserID, err := intURLParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if !allowSelfOrAdmin(r, requestedUserID) {
		forbiddenResponse(w, r, "operation not allowed for the current user")
		return
	}

	user, err := h.userService.GetProfileByID(r.Context(), requestedUserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestedUserID, err := intURLParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if !allowSelfOrAdmin(r, requestedUserID) {
		forbiddenResponse(w, r, "operation not allowed for the current user")
		return
	}

	var input services.UpdateProfileInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.FullName == nil && input.PhoneNumber == nil && input.PreferredSports == nil && input.SkillLevels == nil {
		badRequestResponse(w, r, errors.New("no fields provided for update"))
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), requestedUserID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetActive is the moderation toggle; the route is admin-guarded.
func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	requestedUserID, err := intURLParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		IsActive *bool `json:"is_active"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.IsActive == nil {
		badRequestResponse(w, r, errors.New("is_active is required"))
		return
	}

	if err := h.userService.SetActive(r.Context(), requestedUserID, *input.IsActive); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "user updated"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// allowSelfOrAdmin is the access rule for user-scoped resources.
func allowSelfOrAdmin(r *http.Request, requestedUserID int) bool {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		return false
	}
	if currentUserID == requestedUserID {
		return true
	}
	role, err := middleware.GetUserRoleFromContext(r.Context())
	return err == nil && role == models.RoleAdmin
}
