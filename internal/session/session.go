// Package session issues, validates and invalidates bearer access tokens.
//
// A session is live until it is signed out. ExpiresAt is recorded at issue
// time and reported to clients but is not enforced on validation.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"QUORA_BACK-END/internal/auth"
	"QUORA_BACK-END/internal/models"
	"QUORA_BACK-END/internal/repository"
)

var (
	ErrNotSignedIn = errors.New("session: no such token")
	ErrSignedOut   = errors.New("session: token signed out")
)

// DefaultTTL is used when a Manager is built with a non-positive TTL.
const DefaultTTL = 8 * time.Hour

type Manager struct {
	tokens    repository.AuthTokens
	generator *auth.TokenGenerator
	ttl       time.Duration
}

func NewManager(tokens repository.AuthTokens, generator *auth.TokenGenerator, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{tokens: tokens, generator: generator, ttl: ttl}
}

// WithTokens returns a copy of m bound to another token repository,
// typically one that belongs to an open transaction.
func (m *Manager) WithTokens(tokens repository.AuthTokens) *Manager {
	cp := *m
	cp.tokens = tokens
	return &cp
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue creates and persists a live session for user.
func (m *Manager) Issue(ctx context.Context, user *models.User, now time.Time) (*models.UserAuthToken, error) {
	expiresAt := now.Add(m.ttl)
	value, err := m.generator.Generate(user.UUID, now, expiresAt)
	if err != nil {
		return nil, err
	}

	token := &models.UserAuthToken{
		UUID:        user.UUID,
		UserID:      user.ID,
		AccessToken: value,
		LoginAt:     now,
		ExpiresAt:   expiresAt,
	}
	if err := m.tokens.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (m *Manager) lookup(ctx context.Context, accessToken string) (*models.UserAuthToken, error) {
	if accessToken == "" {
		return nil, ErrNotSignedIn
	}
	token, err := m.tokens.GetByAccessToken(ctx, accessToken)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return token, nil
}

// Validate returns the live session for accessToken.
func (m *Manager) Validate(ctx context.Context, accessToken string) (*models.UserAuthToken, error) {
	token, err := m.lookup(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if token.SignedOut() {
		return token, ErrSignedOut
	}
	return token, nil
}

// Invalidate records now as the logout time of accessToken. A session that
// is already signed out gets its logout time overwritten.
func (m *Manager) Invalidate(ctx context.Context, accessToken string, now time.Time) (*models.UserAuthToken, error) {
	token, err := m.lookup(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if err := m.tokens.SetLogoutAt(ctx, token.ID, now); err != nil {
		return nil, fmt.Errorf("sign out session: %w", err)
	}
	token.LogoutAt = &now
	return token, nil
}
