package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"QUORA_BACK-END/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// DBTX is the subset of pgxpool.Pool and pgx.Tx used by the repositories.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore is a Store backed by PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
	db   DBTX
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool, db: pool}
}

func (s *PostgresStore) Users() Users           { return pgUsers{s.db} }
func (s *PostgresStore) AuthTokens() AuthTokens { return pgTokens{s.db} }
func (s *PostgresStore) Questions() Questions   { return pgQuestions{s.db} }
func (s *PostgresStore) Answers() Answers       { return pgAnswers{s.db} }

func (s *PostgresStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	if _, ok := s.db.(pgx.Tx); ok {
		return fn(s)
	}
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(&PostgresStore{pool: s.pool, db: tx})
	})
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func affected(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- users ---

type pgUsers struct{ db DBTX }

const userColumns = `id, uuid, firstname, lastname, username, email, password, salt,
	country, aboutme, dob, role, contactnumber`

func scanUser(row pgx.Row) (*models.User, error) {
	var (
		u    models.User
		role string
	)
	err := row.Scan(&u.ID, &u.UUID, &u.FirstName, &u.LastName, &u.UserName, &u.Email,
		&u.Password, &u.Salt, &u.Country, &u.AboutMe, &u.DOB, &role, &u.ContactNumber)
	if err != nil {
		return nil, notFound(err)
	}
	u.Role = models.Role(role)
	return &u, nil
}

func (r pgUsers) Create(ctx context.Context, u *models.User) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (uuid, firstname, lastname, username, email, password, salt,
			country, aboutme, dob, role, contactnumber)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		u.UUID, u.FirstName, u.LastName, u.UserName, u.Email, u.Password, u.Salt,
		u.Country, u.AboutMe, u.DOB, string(u.Role), u.ContactNumber).Scan(&u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return ErrDuplicateUser
			case "users_email_key":
				return ErrDuplicateMail
			}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r pgUsers) GetByUUID(ctx context.Context, uuid string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE uuid = $1`, uuid))
}

func (r pgUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r pgUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (r pgUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// Delete relies on ON DELETE CASCADE for sessions, questions and answers.
func (r pgUsers) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return affected(tag)
}

// --- auth tokens ---

type pgTokens struct{ db DBTX }

func (r pgTokens) Create(ctx context.Context, t *models.UserAuthToken) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO user_auth (uuid, user_id, access_token, expires_at, login_at, logout_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		t.UUID, t.UserID, t.AccessToken, t.ExpiresAt, t.LoginAt, t.LogoutAt).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r pgTokens) GetByAccessToken(ctx context.Context, accessToken string) (*models.UserAuthToken, error) {
	var t models.UserAuthToken
	err := r.db.QueryRow(ctx,
		`SELECT id, uuid, user_id, access_token, expires_at, login_at, logout_at
		 FROM user_auth WHERE access_token = $1`,
		accessToken).Scan(&t.ID, &t.UUID, &t.UserID, &t.AccessToken, &t.ExpiresAt, &t.LoginAt, &t.LogoutAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r pgTokens) SetLogoutAt(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE user_auth SET logout_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return affected(tag)
}

// --- questions ---

type pgQuestions struct{ db DBTX }

func (r pgQuestions) Create(ctx context.Context, q *models.Question) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO question (uuid, content, date, user_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		q.UUID, q.Content, q.Date, q.UserID).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

func (r pgQuestions) GetByUUID(ctx context.Context, uuid string) (*models.Question, error) {
	var q models.Question
	err := r.db.QueryRow(ctx,
		`SELECT id, uuid, content, date, user_id FROM question WHERE uuid = $1`,
		uuid).Scan(&q.ID, &q.UUID, &q.Content, &q.Date, &q.UserID)
	if err != nil {
		return nil, notFound(err)
	}
	return &q, nil
}

func (r pgQuestions) list(ctx context.Context, sql string, args ...any) ([]models.Question, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.UUID, &q.Content, &q.Date, &q.UserID); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r pgQuestions) List(ctx context.Context) ([]models.Question, error) {
	return r.list(ctx, `SELECT id, uuid, content, date, user_id FROM question ORDER BY id`)
}

func (r pgQuestions) ListByUser(ctx context.Context, userID int64) ([]models.Question, error) {
	return r.list(ctx,
		`SELECT id, uuid, content, date, user_id FROM question WHERE user_id = $1 ORDER BY id`, userID)
}

func (r pgQuestions) UpdateContent(ctx context.Context, id int64, content string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE question SET content = $2, date = $3 WHERE id = $1`, id, content, at)
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	return affected(tag)
}

func (r pgQuestions) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	return affected(tag)
}

// --- answers ---

type pgAnswers struct{ db DBTX }

func (r pgAnswers) Create(ctx context.Context, a *models.Answer) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO answer (uuid, ans, date, user_id, question_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		a.UUID, a.Content, a.Date, a.UserID, a.QuestionID).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

func (r pgAnswers) GetByUUID(ctx context.Context, uuid string) (*models.Answer, error) {
	var a models.Answer
	err := r.db.QueryRow(ctx,
		`SELECT id, uuid, ans, date, user_id, question_id FROM answer WHERE uuid = $1`,
		uuid).Scan(&a.ID, &a.UUID, &a.Content, &a.Date, &a.UserID, &a.QuestionID)
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r pgAnswers) ListByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, uuid, ans, date, user_id, question_id FROM answer WHERE question_id = $1 ORDER BY id`,
		questionID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	answers := make([]models.Answer, 0)
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.UUID, &a.Content, &a.Date, &a.UserID, &a.QuestionID); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (r pgAnswers) UpdateContent(ctx context.Context, id int64, content string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE answer SET ans = $2, date = $3 WHERE id = $1`, id, content, at)
	if err != nil {
		return fmt.Errorf("update answer: %w", err)
	}
	return affected(tag)
}

func (r pgAnswers) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM answer WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}
	return affected(tag)
}
