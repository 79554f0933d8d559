package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"QUORA_BACK-END/internal/apperrors"
	"QUORA_BACK-END/internal/auth"
	"QUORA_BACK-END/internal/models"
	"QUORA_BACK-END/internal/policy"
	"QUORA_BACK-END/internal/repository"
	"QUORA_BACK-END/internal/session"

	"github.com/google/uuid"
)

// SignupInput is the profile submitted at registration.
type SignupInput struct {
	FirstName     string
	LastName      string
	UserName      string
	Email         string
	Password      string
	Country       string
	AboutMe       string
	DOB           string
	ContactNumber string
}

// ExternalIdentity is a user asserted by a third-party identity provider.
type ExternalIdentity struct {
	Email     string
	FirstName string
	LastName  string
}

// UserService covers registration, sign-in, sign-out and profiles.
type UserService struct {
	*core
}

// column widths of the users table
const (
	maxNameLength  = 30
	maxEmailLength = 50
)

var userFieldLimits = []struct {
	name  string
	value func(SignupInput) string
	max   int
}{
	{"firstName", func(in SignupInput) string { return in.FirstName }, 30},
	{"lastName", func(in SignupInput) string { return in.LastName }, 30},
	{"userName", func(in SignupInput) string { return in.UserName }, maxNameLength},
	{"emailAddress", func(in SignupInput) string { return in.Email }, maxEmailLength},
	{"country", func(in SignupInput) string { return in.Country }, 30},
	{"aboutMe", func(in SignupInput) string { return in.AboutMe }, 50},
	{"dob", func(in SignupInput) string { return in.DOB }, 30},
	{"contactNumber", func(in SignupInput) string { return in.ContactNumber }, 30},
}

func validateSignup(in SignupInput) error {
	switch {
	case strings.TrimSpace(in.UserName) == "":
		return apperrors.Validation("userName is required")
	case strings.TrimSpace(in.Email) == "":
		return apperrors.Validation("emailAddress is required")
	case in.Password == "":
		return apperrors.Validation("password is required")
	case len(in.Password) > auth.MaxPasswordLen:
		return apperrors.Validation("password is too long")
	}
	for _, f := range userFieldLimits {
		if utf8.RuneCountInString(f.value(in)) > f.max {
			return apperrors.Validation(fmt.Sprintf("%s must be at most %d characters", f.name, f.max))
		}
	}
	return nil
}

// Signup registers a nonadmin user. Username uniqueness is checked before
// e-mail uniqueness.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := validateSignup(in); err != nil {
		return nil, err
	}

	var created *models.User
	err := s.write(ctx, func(tx repository.Store) error {
		u, err := s.createUser(ctx, tx, in, models.RoleNonAdmin)
		created = u
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info(ctx, "user registered", "user_uuid", created.UUID, "username", created.UserName)
	return created, nil
}

func (s *UserService) createUser(ctx context.Context, tx repository.Store, in SignupInput, role models.Role) (*models.User, error) {
	users := tx.Users()

	if _, err := users.GetByUsername(ctx, in.UserName); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if _, err := users.GetByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	salt, hash, err := s.Passwords.Encrypt(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, apperrors.Validation("password length is out of range")
		}
		return nil, err
	}

	u := &models.User{
		UUID:          uuid.NewString(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		UserName:      in.UserName,
		Email:         in.Email,
		Password:      hash,
		Salt:          salt,
		Country:       in.Country,
		AboutMe:       in.AboutMe,
		DOB:           in.DOB,
		Role:          role,
		ContactNumber: in.ContactNumber,
	}
	if err := users.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUser):
			return nil, apperrors.ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateMail):
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Signin verifies the credentials and issues a new session.
func (s *UserService) Signin(ctx context.Context, username, password string) (*models.User, *models.UserAuthToken, error) {
	var (
		user  *models.User
		token *models.UserAuthToken
	)
	err := s.write(ctx, func(tx repository.Store) error {
		u, err := tx.Users().GetByUsername(ctx, username)
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrUnknownUser
		}
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if !s.Passwords.Matches(password, u.Salt, u.Password) {
			return apperrors.ErrBadPassword
		}

		t, err := s.Sessions.WithTokens(tx.AuthTokens()).Issue(ctx, u, s.Now())
		if err != nil {
			return err
		}
		user, token = u, t
		return nil
	})
	if err != nil {
		if appErr, ok := apperrors.As(err); ok {
			s.Logger.Info(ctx, "sign in rejected", "username", username, "code", appErr.Code)
		}
		return nil, nil, err
	}

	s.Logger.Info(ctx, "user signed in", "user_uuid", user.UUID)
	return user, token, nil
}

// SigninExternal signs in the account registered under the identity's
// e-mail, creating a nonadmin account on first use. Such accounts have no
// password and cannot use Basic sign-in.
func (s *UserService) SigninExternal(ctx context.Context, id ExternalIdentity) (*models.User, *models.UserAuthToken, error) {
	if strings.TrimSpace(id.Email) == "" {
		return nil, nil, apperrors.Validation("identity provider returned no e-mail address")
	}
	if utf8.RuneCountInString(id.Email) > maxEmailLength {
		return nil, nil, apperrors.Validation(fmt.Sprintf("e-mail address must be at most %d characters", maxEmailLength))
	}

	var (
		user  *models.User
		token *models.UserAuthToken
	)
	err := s.write(ctx, func(tx repository.Store) error {
		u, err := tx.Users().GetByEmail(ctx, id.Email)
		if errors.Is(err, repository.ErrNotFound) {
			u, err = s.createExternalUser(ctx, tx, id)
		}
		if err != nil {
			return err
		}

		t, err := s.Sessions.WithTokens(tx.AuthTokens()).Issue(ctx, u, s.Now())
		if err != nil {
			return err
		}
		user, token = u, t
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.Logger.Info(ctx, "user signed in with external identity", "user_uuid", user.UUID)
	return user, token, nil
}

func (s *UserService) createExternalUser(ctx context.Context, tx repository.Store, id ExternalIdentity) (*models.User, error) {
	base, _, _ := strings.Cut(id.Email, "@")
	if base == "" {
		base = "user"
	}
	base = truncate(base, 24)

	username := base
	for i := 1; ; i++ {
		_, err := tx.Users().GetByUsername(ctx, username)
		if errors.Is(err, repository.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		username = fmt.Sprintf("%s%d", base, i)
	}

	u := &models.User{
		UUID:      uuid.NewString(),
		FirstName: truncate(id.FirstName, maxNameLength),
		LastName:  truncate(id.LastName, maxNameLength),
		UserName:  username,
		Email:     id.Email,
		Role:      models.RoleNonAdmin,
	}
	if err := tx.Users().Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.Logger.Info(ctx, "user registered from external identity", "user_uuid", u.UUID, "username", u.UserName)
	return u, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Signout ends the session identified by accessToken and returns it.
func (s *UserService) Signout(ctx context.Context, accessToken string) (*models.UserAuthToken, error) {
	var token *models.UserAuthToken
	err := s.write(ctx, func(tx repository.Store) error {
		t, err := s.Sessions.WithTokens(tx.AuthTokens()).Invalidate(ctx, accessToken, s.Now())
		if errors.Is(err, session.ErrNotSignedIn) {
			return apperrors.ErrSignOutNotSignedIn
		}
		token = t
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info(ctx, "user signed out", "user_uuid", token.UUID)
	return token, nil
}

// Profile returns the user with userUUID to any signed-in caller.
func (s *UserService) Profile(ctx context.Context, accessToken, userUUID string) (*models.User, error) {
	msgs := denyMessages{signedOut: "User is signed out.Sign in first to get user details"}
	if _, err := s.gate(ctx, s.Store, accessToken, policy.OpRead, msgs); err != nil {
		return nil, err
	}

	u, err := s.Store.Users().GetByUUID(ctx, userUUID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.UserNotFound("User with entered uuid does not exist")
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

// EnsureAdmin creates an admin account unless the username is already taken.
// An existing account is returned unchanged.
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) (*models.User, bool, error) {
	in := SignupInput{UserName: username, Email: email, Password: password}
	if err := validateSignup(in); err != nil {
		return nil, false, err
	}

	var (
		user    *models.User
		created bool
	)
	err := s.write(ctx, func(tx repository.Store) error {
		existing, err := tx.Users().GetByUsername(ctx, username)
		if err == nil {
			user = existing
			return nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("load admin: %w", err)
		}

		u, err := s.createUser(ctx, tx, in, models.RoleAdmin)
		if err != nil {
			return err
		}
		user, created = u, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		s.Logger.Info(ctx, "admin account created", "user_uuid", user.UUID, "username", user.UserName)
	} else if !user.IsAdmin() {
		s.Logger.Warn(ctx, "configured admin username belongs to a nonadmin account", "username", username)
	}
	return user, created, nil
}
