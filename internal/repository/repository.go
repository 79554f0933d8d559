// Package repository persists users, sessions, questions and answers.
// Lookups of absent records return ErrNotFound.
package repository

import (
	"context"
	"errors"
	"time"

	"QUORA_BACK-END/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateUser = errors.New("duplicate username")
	ErrDuplicateMail = errors.New("duplicate email")
)

// Users is the credential store.
type Users interface {
	// Create inserts u and sets u.ID.
	Create(ctx context.Context, u *models.User) error
	GetByUUID(ctx context.Context, uuid string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Delete removes the user together with their sessions, questions and answers.
	Delete(ctx context.Context, id int64) error
}

// AuthTokens stores sessions. Tokens are never deleted directly.
type AuthTokens interface {
	Create(ctx context.Context, t *models.UserAuthToken) error
	GetByAccessToken(ctx context.Context, accessToken string) (*models.UserAuthToken, error)
	SetLogoutAt(ctx context.Context, id int64, at time.Time) error
}

type Questions interface {
	Create(ctx context.Context, q *models.Question) error
	GetByUUID(ctx context.Context, uuid string) (*models.Question, error)
	List(ctx context.Context) ([]models.Question, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Question, error)
	UpdateContent(ctx context.Context, id int64, content string, at time.Time) error
	// Delete removes the question and its answers.
	Delete(ctx context.Context, id int64) error
}

type Answers interface {
	Create(ctx context.Context, a *models.Answer) error
	GetByUUID(ctx context.Context, uuid string) (*models.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error)
	UpdateContent(ctx context.Context, id int64, content string, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

// Store bundles the repositories over one backing store.
type Store interface {
	Users() Users
	AuthTokens() AuthTokens
	Questions() Questions
	Answers() Answers

	// WithTx runs fn inside a single transaction. Repositories obtained from
	// the Store passed to fn share that transaction.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	Ping(ctx context.Context) error
	Close()
}
