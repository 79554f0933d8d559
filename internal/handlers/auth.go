package handlers

import (
	"net/http"

	"QUORA_BACK-END/internal/apperrors"
	"QUORA_BACK-END/internal/auth"
	"QUORA_BACK-END/internal/dto"
	"QUORA_BACK-END/internal/logging"
	"QUORA_BACK-END/internal/middleware"
	"QUORA_BACK-END/internal/models"
	"QUORA_BACK-END/internal/services"
	"QUORA_BACK-END/internal/utils"
)

// AccessTokenHeader carries the session token on sign-in responses
const AccessTokenHeader = "access_token"

// AuthHandler handles registration, sign-in and sign-out
type AuthHandler struct {
	users  *services.UserService
	logger logging.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users *services.UserService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create a nonadmin account. Username uniqueness is checked before e-mail uniqueness.
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.SignupUserRequest true "User registration data"
// @Success 201 {object} dto.SignupUserResponse "User registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Username or e-mail already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupUserRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}

	user, err := h.users.Signup(r.Context(), services.SignupInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		UserName:      req.UserName,
		Email:         req.EmailAddress,
		Password:      req.Password,
		Country:       req.Country,
		AboutMe:       req.AboutMe,
		DOB:           req.DOB,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.SignupUserResponse{
		ID:     user.UUID,
		Status: dto.StatusUserRegistered,
	})
}

// Signin handles credential sign-in
// @Summary Sign in
// @Description Authenticate with HTTP Basic credentials. The session token is returned in the access_token header.
// @Tags user
// @Produce json
// @Param Authorization header string true "Basic base64(username:password)"
// @Success 200 {object} dto.SigninResponse "Signed in"
// @Header 200 {string} access_token "Session token"
// @Failure 400 {object} dto.ErrorResponse "Malformed Authorization header"
// @Failure 401 {object} dto.ErrorResponse "Unknown username or wrong password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/signin [post]
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	username, password, err := auth.BasicCredentials(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteAppError(w, r, h.logger, apperrors.Validation(err.Error()))
		return
	}

	user, token, err := h.users.Signin(r.Context(), username, password)
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}

	writeSignedIn(w, user, token)
}

func writeSignedIn(w http.ResponseWriter, user *models.User, token *models.UserAuthToken) {
	w.Header().Set(AccessTokenHeader, token.AccessToken)
	utils.WriteJSONResponse(w, http.StatusOK, dto.SigninResponse{
		ID:      user.UUID,
		Message: dto.MessageSignedIn,
	})
}

// Signout handles sign-out
// @Summary Sign out
// @Description End the session identified by the bearer token
// @Tags user
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Success 200 {object} dto.SignoutResponse "Signed out"
// @Failure 401 {object} dto.ErrorResponse "User is not signed in"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/signout [post]
func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	token, err := h.users.Signout(r.Context(), middleware.AccessToken(r.Context()))
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.SignoutResponse{
		ID:      token.UUID,
		Message: dto.MessageSignedOut,
	})
}
