package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"QUORA_BACK-END/internal/apperrors"
	"QUORA_BACK-END/internal/config"
	"QUORA_BACK-END/internal/dto"
	"QUORA_BACK-END/internal/logging"
	"QUORA_BACK-END/internal/services"
	"QUORA_BACK-END/internal/utils"
)

const oauthStateCookie = "oauth_state"

// GoogleAuthHandler handles Google OAuth sign-in
type GoogleAuthHandler struct {
	users        *services.UserService
	oauth2Config *oauth2.Config
	logger       logging.Logger

	exchange      func(ctx context.Context, code string) (*oauth2.Token, error)
	fetchUserInfo func(ctx context.Context, token *oauth2.Token) (*dto.GoogleUserInfo, error)
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(users *services.UserService, cfg config.GoogleOAuthConfig, logger logging.Logger) *GoogleAuthHandler {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	h := &GoogleAuthHandler{
		users:        users,
		oauth2Config: oauth2Config,
		logger:       logger,
	}
	h.exchange = func(ctx context.Context, code string) (*oauth2.Token, error) {
		return h.oauth2Config.Exchange(ctx, code)
	}
	h.fetchUserInfo = h.getGoogleUserInfo
	return h
}

// GoogleLogin initiates Google OAuth login
// @Summary Google OAuth login
// @Description Returns the Google consent URL. The state is also set as a cookie and checked on callback.
// @Tags user
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse "Google OAuth URL"
// @Router /user/signin/google [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	// state parameter for CSRF protection
	state := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/user/signin/google",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSONResponse(w, http.StatusOK, dto.GoogleLoginResponse{
		AuthURL: h.oauth2Config.AuthCodeURL(state),
		State:   state,
	})
}

// GoogleCallback handles Google OAuth callback
// @Summary Google OAuth callback
// @Description Signs in the account registered under the verified Google e-mail, creating it on first use
// @Tags user
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State returned by /user/signin/google"
// @Success 200 {object} dto.SigninResponse "Signed in"
// @Header 200 {string} access_token "Session token"
// @Failure 400 {object} dto.ErrorResponse "Missing code or state mismatch"
// @Failure 401 {object} dto.ErrorResponse "Google rejected the authorization"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/signin/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != query.Get("state") {
		utils.WriteAppError(w, r, h.logger, apperrors.Validation("invalid oauth state"))
		return
	}

	code := query.Get("code")
	if code == "" {
		utils.WriteAppError(w, r, h.logger, apperrors.Validation("authorization code is required"))
		return
	}

	token, err := h.exchange(r.Context(), code)
	if err != nil {
		h.logger.Warn(r.Context(), "google code exchange failed", "error", err)
		utils.WriteAppError(w, r, h.logger, apperrors.ErrExternalAuthFailed)
		return
	}

	info, err := h.fetchUserInfo(r.Context(), token)
	if err != nil {
		h.logger.Warn(r.Context(), "google userinfo failed", "error", err)
		utils.WriteAppError(w, r, h.logger, apperrors.ErrExternalAuthFailed)
		return
	}
	if !info.Verified {
		utils.WriteAppError(w, r, h.logger, apperrors.ErrExternalAuthFailed)
		return
	}

	user, session, err := h.users.SigninExternal(r.Context(), services.ExternalIdentity{
		Email:     info.Email,
		FirstName: info.GivenName,
		LastName:  info.FamilyName,
	})
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}

	// state is single use
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Path: "/user/signin/google", MaxAge: -1})
	writeSignedIn(w, user, session)
}

// getGoogleUserInfo fetches user information from Google
func (h *GoogleAuthHandler) getGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*dto.GoogleUserInfo, error) {
	service, err := googleOAuth2.NewService(ctx, option.WithTokenSource(h.oauth2Config.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}

	userInfo, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}

	return &dto.GoogleUserInfo{
		ID:         userInfo.Id,
		Email:      userInfo.Email,
		GivenName:  userInfo.GivenName,
		FamilyName: userInfo.FamilyName,
		Verified:   verified,
	}, nil
}
