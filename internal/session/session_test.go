package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"QUORA_BACK-END/internal/auth"
	"QUORA_BACK-END/internal/models"
	"QUORA_BACK-END/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T) (*Manager, *repository.MemoryStore, *models.User) {
	t.Helper()
	store := repository.NewMemoryStore()
	user := &models.User{UUID: "user-1", UserName: "alice", Email: "alice@x.com", Role: models.RoleNonAdmin}
	require.NoError(t, store.Users().Create(context.Background(), user))
	m := NewManager(store.AuthTokens(), auth.NewTokenGenerator("test-secret"), time.Hour)
	return m, store, user
}

func TestManager_IssueAndValidate(t *testing.T) {
	ctx := context.Background()
	m, _, user := newFixture(t)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tok, err := m.Issue(ctx, user, now)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.AccessToken)
	assert.Equal(t, user.ID, tok.UserID)
	assert.Equal(t, user.UUID, tok.UUID)
	assert.True(t, tok.LoginAt.Equal(now))
	assert.True(t, tok.ExpiresAt.Equal(now.Add(time.Hour)))
	assert.Nil(t, tok.LogoutAt)

	got, err := m.Validate(ctx, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tok.ID, got.ID)
}

func TestManager_IssueTwiceGivesDistinctTokens(t *testing.T) {
	ctx := context.Background()
	m, _, user := newFixture(t)
	now := time.Now()

	a, err := m.Issue(ctx, user, now)
	require.NoError(t, err)
	b, err := m.Issue(ctx, user, now)
	require.NoError(t, err)
	assert.NotEqual(t, a.AccessToken, b.AccessToken)
}

func TestManager_ValidateUnknown(t *testing.T) {
	m, _, _ := newFixture(t)

	_, err := m.Validate(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotSignedIn)

	_, err = m.Validate(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestManager_ValidateIgnoresExpiry(t *testing.T) {
	ctx := context.Background()
	m, _, user := newFixture(t)

	tok, err := m.Issue(ctx, user, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	_, err = m.Validate(ctx, tok.AccessToken)
	assert.NoError(t, err)
}

func TestManager_Invalidate(t *testing.T) {
	ctx := context.Background()
	m, _, user := newFixture(t)
	now := time.Now()

	tok, err := m.Issue(ctx, user, now)
	require.NoError(t, err)

	out, err := m.Invalidate(ctx, tok.AccessToken, now.Add(time.Minute))
	require.NoError(t, err)
	require.NotNil(t, out.LogoutAt)
	assert.Equal(t, user.UUID, out.UUID)

	got, err := m.Validate(ctx, tok.AccessToken)
	assert.ErrorIs(t, err, ErrSignedOut)
	require.NotNil(t, got)
	assert.True(t, got.SignedOut())

	// second sign-out overwrites the logout time
	later := now.Add(time.Hour)
	out, err = m.Invalidate(ctx, tok.AccessToken, later)
	require.NoError(t, err)
	assert.True(t, out.LogoutAt.Equal(later))

	_, err = m.Invalidate(ctx, "missing", now)
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestManager_WithTokensUsesTransaction(t *testing.T) {
	ctx := context.Background()
	m, store, user := newFixture(t)
	boom := errors.New("boom")

	var issued string
	err := store.WithTx(ctx, func(tx repository.Store) error {
		tok, err := m.WithTokens(tx.AuthTokens()).Issue(ctx, user, time.Now())
		require.NoError(t, err)
		issued = tok.AccessToken
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = m.Validate(ctx, issued)
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestNewManager_DefaultTTL(t *testing.T) {
	m := NewManager(repository.NewMemoryStore().AuthTokens(), auth.NewTokenGenerator("s"), 0)
	assert.Equal(t, DefaultTTL, m.TTL())
}
