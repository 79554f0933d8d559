// Package services holds the business operations of the Q&A API. Each
// operation validates the caller's session, applies the access policy and
// runs its store work inside one transaction when it mutates data.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"QUORA_BACK-END/internal/apperrors"
	"QUORA_BACK-END/internal/auth"
	"QUORA_BACK-END/internal/logging"
	"QUORA_BACK-END/internal/models"
	"QUORA_BACK-END/internal/policy"
	"QUORA_BACK-END/internal/repository"
	"QUORA_BACK-END/internal/session"
)

// Deps are the collaborators shared by all services.
type Deps struct {
	Store     repository.Store
	Sessions  *session.Manager
	Passwords *auth.PasswordProvider
	Logger    logging.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Services groups the per-resource services.
type Services struct {
	Users     *UserService
	Questions *QuestionService
	Answers   *AnswerService
	Admin     *AdminService
}

func New(d Deps) *Services {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = logging.Nop()
	}
	if d.Passwords == nil {
		d.Passwords = auth.NewPasswordProvider()
	}
	c := &core{Deps: d}
	return &Services{
		Users:     &UserService{core: c},
		Questions: &QuestionService{core: c},
		Answers:   &AnswerService{core: c},
		Admin:     &AdminService{core: c},
	}
}

type core struct {
	Deps
}

// caller is the authenticated party of a request. Session is nil when the
// presented token is unknown.
type caller struct {
	Session *models.UserAuthToken
	User    *models.User
}

// denyMessages carries the per-endpoint texts of ATHR-002 and ATHR-003.
type denyMessages struct {
	signedOut string
	forbidden string
}

// resolve looks up the session for accessToken and its owner within store.
func (c *core) resolve(ctx context.Context, store repository.Store, accessToken string) (caller, error) {
	sess, err := c.Sessions.WithTokens(store.AuthTokens()).Validate(ctx, accessToken)
	switch {
	case errors.Is(err, session.ErrNotSignedIn):
		return caller{}, nil
	case errors.Is(err, session.ErrSignedOut):
		return caller{Session: sess}, nil
	case err != nil:
		return caller{}, err
	}

	user, err := store.Users().GetByID(ctx, sess.UserID)
	if err != nil {
		return caller{}, fmt.Errorf("load session owner: %w", err)
	}
	return caller{Session: sess, User: user}, nil
}

// authorize runs the policy and converts a denial into its API error.
func authorize(req policy.Request, msgs denyMessages) error {
	err := policy.Decide(req)
	if err == nil {
		return nil
	}

	var denial policy.Denial
	if !errors.As(err, &denial) {
		return err
	}
	switch denial {
	case policy.NotSignedIn:
		return apperrors.ErrNotSignedIn
	case policy.SignedOut:
		return apperrors.SignedOut(msgs.signedOut)
	case policy.NotAdmin:
		return apperrors.ErrNotAdmin
	default:
		return apperrors.Forbidden(msgs.forbidden)
	}
}

// gate resolves the caller and checks that they hold a live session.
func (c *core) gate(ctx context.Context, store repository.Store, accessToken string, op policy.Operation, msgs denyMessages) (caller, error) {
	who, err := c.resolve(ctx, store, accessToken)
	if err != nil {
		return caller{}, err
	}
	if err := authorize(policy.Request{Session: who.Session, User: who.User, Operation: op}, msgs); err != nil {
		return caller{}, err
	}
	return who, nil
}

// checkOwner applies the ownership rule for op on a resource owned by ownerID.
func checkOwner(who caller, ownerID int64, op policy.Operation, msgs denyMessages) error {
	return authorize(policy.Request{
		Session:   who.Session,
		User:      who.User,
		OwnerID:   &ownerID,
		Operation: op,
	}, msgs)
}

// write runs fn inside one transaction.
func (c *core) write(ctx context.Context, fn func(tx repository.Store) error) error {
	return c.Store.WithTx(ctx, fn)
}
