package handlers

import (
	"net/http"

	"QUORA_BACK-END/internal/dto"
	"QUORA_BACK-END/internal/logging"
	"QUORA_BACK-END/internal/middleware"
	"QUORA_BACK-END/internal/services"
	"QUORA_BACK-END/internal/utils"
)

// AdminHandler handles admin-only endpoints
type AdminHandler struct {
	admin  *services.AdminService
	logger logging.Logger
}

func NewAdminHandler(admin *services.AdminService, logger logging.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

// DeleteUser removes a user with all their content
// @Summary Delete a user
// @Description Admin only. Removes the user with their sessions, questions and answers.
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param userId path string true "User uuid"
// @Success 200 {object} dto.UserDeleteResponse "User deleted"
// @Failure 403 {object} dto.ErrorResponse "Not signed in, signed out or not an admin"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/user/{userId} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.admin.DeleteUser(r.Context(), middleware.AccessToken(r.Context()), r.PathValue("userId"))
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.UserDeleteResponse{ID: user.UUID, Status: dto.StatusUserDeleted})
}
