package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"QUORA_BACK-END/internal/apperrors"
	"QUORA_BACK-END/internal/models"
	"QUORA_BACK-END/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_AliceScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice, err := f.svc.Users.Signup(ctx, SignupInput{UserName: "alice", Email: "alice@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, alice.UUID)
	assert.Equal(t, models.RoleNonAdmin, alice.Role)

	_, err = f.svc.Users.Signup(ctx, SignupInput{UserName: "alice", Email: "other@x.com", Password: "pw"})
	assertAppError(t, err, "SGR-001", "Try any other Username, this Username has already been taken")
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	_, err = f.svc.Users.Signup(ctx, SignupInput{UserName: "alice2", Email: "alice@x.com", Password: "pw"})
	assertAppError(t, err, "SGR-002", "This user has already been registered, try with any other emailId")
}

func TestSignup_UsernameCheckedBeforeEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.signup(t, "alice")

	_, err := f.svc.Users.Signup(ctx, SignupInput{UserName: "alice", Email: "alice@x.com", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestSignup_UniqueUUIDsAndHashedPassword(t *testing.T) {
	f := newFixture(t)
	a := f.signup(t, "alice")
	b := f.signup(t, "bob")

	assert.NotEqual(t, a.UUID, b.UUID)
	assert.NotEqual(t, "alice-pw", a.Password)
	assert.NotEmpty(t, a.Salt)
	assert.Equal(t, a.Password, f.svc.Users.Passwords.EncryptWithSalt("alice-pw", a.Salt))
}

func TestSignup_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		in   SignupInput
	}{
		{"missing username", SignupInput{Email: "a@x.com", Password: "pw"}},
		{"missing email", SignupInput{UserName: "a", Password: "pw"}},
		{"missing password", SignupInput{UserName: "a", Email: "a@x.com"}},
		{"long first name", SignupInput{UserName: "a", Email: "a@x.com", Password: "pw", FirstName: strings.Repeat("x", 31)}},
		{"long password", SignupInput{UserName: "a", Email: "a@x.com", Password: strings.Repeat("x", 257)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Users.Signup(context.Background(), tt.in)
			assertAppError(t, err, "REQ-001", "")
		})
	}
}

func TestSignin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.signup(t, "alice")

	user, tok, err := f.svc.Users.Signin(ctx, "alice", "alice-pw")
	require.NoError(t, err)
	assert.Equal(t, alice.UUID, user.UUID)
	assert.Equal(t, alice.ID, tok.UserID)
	assert.Equal(t, alice.UUID, tok.UUID)
	assert.True(t, tok.LoginAt.Equal(testNow))
	assert.True(t, tok.ExpiresAt.After(tok.LoginAt))

	stored, err := f.store.AuthTokens().GetByAccessToken(ctx, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, stored.UserID)
}

func TestSignin_Failures(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.signup(t, "alice")

	_, _, err := f.svc.Users.Signin(ctx, "nobody", "pw")
	assertAppError(t, err, "ATH-001", "This username does not exist")

	for _, pw := range []string{"wrong", "", "alice-pw "} {
		user, tok, err := f.svc.Users.Signin(ctx, "alice", pw)
		assertAppError(t, err, "ATH-002", "Password failed")
		assert.Nil(t, user)
		assert.Nil(t, tok)
	}
}

func TestSignout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, token := f.member(t, "alice")

	out, err := f.svc.Users.Signout(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, alice.UUID, out.UUID)
	require.NotNil(t, out.LogoutAt)

	_, err = f.svc.Users.Signout(ctx, "unknown")
	assertAppError(t, err, "SGR-001", "User is not Signed in")
	assert.ErrorIs(t, err, apperrors.ErrSignOutNotSignedIn)

	// signing out twice is allowed
	_, err = f.svc.Users.Signout(ctx, token)
	assert.NoError(t, err)
}

func TestSignedOutTokenIsRejectedEverywhere(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, token := f.member(t, "alice")
	q, err := f.svc.Questions.Create(ctx, token, text("what?"))
	require.NoError(t, err)
	a, err := f.svc.Answers.Create(ctx, token, q.UUID, text("this"))
	require.NoError(t, err)

	_, err = f.svc.Users.Signout(ctx, token)
	require.NoError(t, err)

	checks := map[string]error{}
	_, checks["profile"] = f.svc.Users.Profile(ctx, token, alice.UUID)
	_, checks["question create"] = f.svc.Questions.Create(ctx, token, text("again"))
	_, checks["question list"] = f.svc.Questions.List(ctx, token)
	_, checks["question by user"] = f.svc.Questions.ListByUser(ctx, token, alice.UUID)
	_, checks["question edit"] = f.svc.Questions.Edit(ctx, token, q.UUID, text("x"))
	_, checks["question delete"] = f.svc.Questions.Delete(ctx, token, q.UUID)
	_, checks["answer create"] = f.svc.Answers.Create(ctx, token, q.UUID, text("x"))
	_, checks["answer edit"] = f.svc.Answers.Edit(ctx, token, a.UUID, text("x"))
	_, checks["answer delete"] = f.svc.Answers.Delete(ctx, token, a.UUID)
	_, _, checks["answer list"] = f.svc.Answers.ListByQuestion(ctx, token, q.UUID)
	_, checks["admin delete"] = f.svc.Admin.DeleteUser(ctx, token, alice.UUID)

	for name, err := range checks {
		t.Run(name, func(t *testing.T) {
			assertAppError(t, err, "ATHR-002", "")
			appErr, _ := apperrors.As(err)
			assert.True(t, strings.HasPrefix(appErr.Message, "User is signed out"))
		})
	}
}

func TestUnknownTokenIsNotSignedIn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.signup(t, "alice")

	_, err := f.svc.Users.Profile(ctx, "bogus", alice.UUID)
	assertAppError(t, err, "ATHR-001", "User has not signed in")
	_, err = f.svc.Questions.List(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrNotSignedIn)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, token := f.member(t, "alice")

	bob, err := f.svc.Users.Signup(ctx, SignupInput{
		FirstName: "Bob", LastName: "B", UserName: "bob", Email: "bob@x.com", Password: "pw",
		Country: "NZ", AboutMe: "hi", DOB: "1990-01-01", ContactNumber: "123",
	})
	require.NoError(t, err)

	got, err := f.svc.Users.Profile(ctx, token, bob.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.FirstName)
	assert.Equal(t, "NZ", got.Country)
	assert.Equal(t, "123", got.ContactNumber)

	_, err = f.svc.Users.Profile(ctx, token, "missing")
	assertAppError(t, err, "USR-001", "User with entered uuid does not exist")
}

func TestSigninExternal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.signup(t, "carol")

	user, tok, err := f.svc.Users.SigninExternal(ctx, ExternalIdentity{Email: "carol@elsewhere.com", FirstName: "Carol"})
	require.NoError(t, err)
	assert.Equal(t, "carol1", user.UserName, "username derived from e-mail avoids collisions")
	assert.Equal(t, models.RoleNonAdmin, user.Role)
	assert.Equal(t, user.ID, tok.UserID)

	again, _, err := f.svc.Users.SigninExternal(ctx, ExternalIdentity{Email: "carol@elsewhere.com"})
	require.NoError(t, err)
	assert.Equal(t, user.UUID, again.UUID)

	// accounts without a password cannot use Basic sign-in
	_, _, err = f.svc.Users.Signin(ctx, "carol1", "")
	assert.ErrorIs(t, err, apperrors.ErrBadPassword)

	existing, _, err := f.svc.Users.SigninExternal(ctx, ExternalIdentity{Email: "carol@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "carol", existing.UserName)

	_, _, err = f.svc.Users.SigninExternal(ctx, ExternalIdentity{})
	assertAppError(t, err, "REQ-001", "")
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	admin, created, err := f.svc.Users.EnsureAdmin(ctx, "root", "root@x.com", "secret")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, admin.IsAdmin())

	again, created, err := f.svc.Users.EnsureAdmin(ctx, "root", "root@x.com", "secret")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, admin.UUID, again.UUID)

	_, _, err = f.svc.Users.Signin(ctx, "root", "secret")
	assert.NoError(t, err)

	_, _, err = f.svc.Users.EnsureAdmin(ctx, "root2", "root@x.com", "secret")
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestSigninExternal_FitsUserColumns(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	local := strings.Repeat("l", 40)
	user, _, err := f.svc.Users.SigninExternal(ctx, ExternalIdentity{
		Email:     local + "@x.io",
		FirstName: strings.Repeat("f", 40),
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, utf8.RuneCountInString(user.UserName), 30)
	assert.Equal(t, local[:24], user.UserName)
	assert.Len(t, user.FirstName, 30)

	_, _, err = f.svc.Users.SigninExternal(ctx, ExternalIdentity{Email: strings.Repeat("e", 51) + "@x.io"})
	assertAppError(t, err, "REQ-001", "")
}

func TestEnsureAdmin_ValidatesInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"username too long", strings.Repeat("r", 31), "root@x.com", "secret"},
		{"email too long", "root", strings.Repeat("r", 45) + "@x.com", "secret"},
		{"missing password", "root", "root@x.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, created, err := f.svc.Users.EnsureAdmin(ctx, tt.username, tt.email, tt.password)
			assertAppError(t, err, "REQ-001", "")
			assert.False(t, created)
		})
	}

	_, err := f.store.Users().GetByUsername(ctx, "root")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
