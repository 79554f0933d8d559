package handlers

import (
	"net/http"

	"QUORA_BACK-END/internal/dto"
	"QUORA_BACK-END/internal/logging"
	"QUORA_BACK-END/internal/middleware"
	"QUORA_BACK-END/internal/services"
	"QUORA_BACK-END/internal/utils"
)

// ProfileHandler serves user profiles
type ProfileHandler struct {
	users  *services.UserService
	logger logging.Logger
}

func NewProfileHandler(users *services.UserService, logger logging.Logger) *ProfileHandler {
	return &ProfileHandler{users: users, logger: logger}
}

// UserProfile returns the profile of any user to a signed-in caller
// @Summary Get user profile
// @Tags userprofile
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param userId path string true "User uuid"
// @Success 200 {object} dto.UserDetailsResponse "User profile"
// @Failure 403 {object} dto.ErrorResponse "Not signed in or signed out"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /userprofile/{userId} [get]
func (h *ProfileHandler) UserProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Profile(r.Context(), middleware.AccessToken(r.Context()), r.PathValue("userId"))
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UserDetailsResponse{
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		UserName:      user.UserName,
		EmailAddress:  user.Email,
		Country:       user.Country,
		AboutMe:       user.AboutMe,
		DOB:           user.DOB,
		ContactNumber: user.ContactNumber,
	})
}
