package services

import (
	"context"
	"testing"

	"QUORA_BACK-END/internal/apperrors"
	"QUORA_BACK-END/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_DeleteUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, aliceToken := f.member(t, "alice")
	_, bobToken := f.member(t, "bob")
	_, adminToken := f.admin(t, "root")

	q, err := f.svc.Questions.Create(ctx, aliceToken, text("mine"))
	require.NoError(t, err)
	_, err = f.svc.Answers.Create(ctx, bobToken, q.UUID, text("reply"))
	require.NoError(t, err)

	_, err = f.svc.Admin.DeleteUser(ctx, bobToken, alice.UUID)
	assertAppError(t, err, "ATHR-003", "Unauthorized Access, Entered user is not an admin")
	assert.ErrorIs(t, err, apperrors.ErrNotAdmin)

	deleted, err := f.svc.Admin.DeleteUser(ctx, adminToken, alice.UUID)
	require.NoError(t, err)
	assert.Equal(t, alice.UUID, deleted.UUID)

	_, err = f.store.Users().GetByUUID(ctx, alice.UUID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = f.store.Questions().GetByUUID(ctx, q.UUID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// the deleted user's session is gone with them
	_, err = f.svc.Questions.List(ctx, aliceToken)
	assert.ErrorIs(t, err, apperrors.ErrNotSignedIn)

	_, err = f.svc.Admin.DeleteUser(ctx, adminToken, alice.UUID)
	assertAppError(t, err, "USR-001", "User with entered uuid to be deleted does not exist")
}

func TestAdmin_DeleteUserRequiresSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.signup(t, "alice")

	_, err := f.svc.Admin.DeleteUser(ctx, "", alice.UUID)
	assertAppError(t, err, "ATHR-001", "User has not signed in")

	_, adminToken := f.admin(t, "root")
	_, err = f.svc.Users.Signout(ctx, adminToken)
	require.NoError(t, err)

	_, err = f.svc.Admin.DeleteUser(ctx, adminToken, alice.UUID)
	assertAppError(t, err, "ATHR-002", "User is signed out")
}
