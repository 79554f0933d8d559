package auth

import (
	"encoding/base64"
	"errors"
	"strings"
)

const bearerPrefix = "Bearer "

var ErrMalformedBasic = errors.New("authorization header must carry Basic credentials")

// BearerToken extracts the token from an Authorization header value. A
// literal "Bearer " prefix is stripped when present; otherwise the whole
// value is the token.
func BearerToken(header string) string {
	if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
		return token
	}
	return header
}

// BasicCredentials decodes "Basic base64(username:password)". The password
// may itself contain ':'.
func BasicCredentials(header string) (string, string, error) {
	encoded, ok := strings.CutPrefix(header, "Basic ")
	if !ok {
		return "", "", ErrMalformedBasic
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", ErrMalformedBasic
	}
	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok || username == "" {
		return "", "", ErrMalformedBasic
	}
	return username, password, nil
}
