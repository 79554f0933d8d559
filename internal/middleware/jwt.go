package middleware

import (
	"context"
	"net/http"

	"QUORA_BACK-END/internal/auth"
)

type contextKey string

const accessTokenKey contextKey = "access_token"

// BearerToken extracts the access token from the Authorization header and
// stores it in the request context. A missing header yields an empty token;
// rejecting it is left to the session check so that every endpoint reports
// its own error.
func BearerToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := auth.BearerToken(r.Header.Get("Authorization"))
		ctx := context.WithValue(r.Context(), accessTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// AccessToken returns the token stored by BearerToken.
func AccessToken(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey).(string)
	return token
}
