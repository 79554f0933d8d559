package repository

import (
	"context"
	"errors"
	"testing"

	"QUORA_BACK-END/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

// fakeDB answers every statement with the configured row or command result.
type fakeDB struct {
	row     rowFunc
	tag     pgconn.CommandTag
	execErr error
	sql     []string
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.sql = append(db.sql, sql)
	return db.tag, db.execErr
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.sql = append(db.sql, sql)
	return nil, errors.New("query not supported")
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.sql = append(db.sql, sql)
	return db.row
}

func failingRow(err error) rowFunc {
	return func(dest ...any) error { return err }
}

func TestPgUsers_CreateMapsUniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		want       error
		wantPgCode string
	}{
		{
			name: "username taken",
			err:  &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_username_key"},
			want: ErrDuplicateUser,
		},
		{
			name: "email taken",
			err:  &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"},
			want: ErrDuplicateMail,
		},
		{
			name:       "other unique constraint",
			err:        &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_uuid_key"},
			wantPgCode: uniqueViolation,
		},
		{
			name:       "not a unique violation",
			err:        &pgconn.PgError{Code: "22001", ConstraintName: "users_username_key"},
			wantPgCode: "22001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := pgUsers{db: &fakeDB{row: failingRow(tt.err)}}
			err := users.Create(context.Background(), &models.User{UserName: "alice"})
			require.Error(t, err)

			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			assert.NotErrorIs(t, err, ErrDuplicateUser)
			assert.NotErrorIs(t, err, ErrDuplicateMail)
			var pgErr *pgconn.PgError
			require.ErrorAs(t, err, &pgErr)
			assert.Equal(t, tt.wantPgCode, pgErr.Code)
		})
	}
}

func TestPgUsers_CreateStoresID(t *testing.T) {
	db := &fakeDB{row: func(dest ...any) error {
		*dest[0].(*int64) = 42
		return nil
	}}
	u := &models.User{UserName: "alice"}

	require.NoError(t, pgUsers{db: db}.Create(context.Background(), u))
	assert.Equal(t, int64(42), u.ID)
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, notFound(joined(pgx.ErrNoRows)), ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, notFound(other))
}

func joined(err error) error { return errors.Join(errors.New("scan"), err) }

func TestLookupsReportNotFound(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{row: failingRow(pgx.ErrNoRows)}

	_, err := pgUsers{db: db}.GetByUUID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = pgTokens{db: db}.GetByAccessToken(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = pgQuestions{db: db}.GetByUUID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = pgAnswers{db: db}.GetByUUID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScanUser_ConvertsRole(t *testing.T) {
	row := rowFunc(func(dest ...any) error {
		require.Len(t, dest, 13)
		*dest[0].(*int64) = 7
		*dest[4].(*string) = "root"
		*dest[11].(*string) = "admin"
		return nil
	})

	u, err := scanUser(row)
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "root", u.UserName)
	assert.Equal(t, models.RoleAdmin, u.Role)
	assert.True(t, u.IsAdmin())
}

func TestMutationsReportMissingRows(t *testing.T) {
	ctx := context.Background()
	none := &fakeDB{tag: pgconn.NewCommandTag("DELETE 0")}
	one := &fakeDB{tag: pgconn.NewCommandTag("DELETE 1")}

	assert.ErrorIs(t, pgUsers{db: none}.Delete(ctx, 1), ErrNotFound)
	assert.ErrorIs(t, pgQuestions{db: none}.Delete(ctx, 1), ErrNotFound)
	assert.ErrorIs(t, pgAnswers{db: none}.Delete(ctx, 1), ErrNotFound)
	assert.NoError(t, pgUsers{db: one}.Delete(ctx, 1))
	assert.NoError(t, pgAnswers{db: one}.Delete(ctx, 1))

	failing := &fakeDB{execErr: errors.New("deadlock detected")}
	err := pgQuestions{db: failing}.Delete(ctx, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "delete question")
}

// fakeTx satisfies pgx.Tx; only its identity matters to WithTx.
type fakeTx struct {
	pgx.Tx
	fakeDB
}

func (tx *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return tx.fakeDB.Exec(ctx, sql, args...)
}

func (tx *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return tx.fakeDB.Query(ctx, sql, args...)
}

func (tx *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return tx.fakeDB.QueryRow(ctx, sql, args...)
}

func TestPostgresStore_WithTxNestsInOpenTransaction(t *testing.T) {
	tx := &fakeTx{fakeDB: fakeDB{tag: pgconn.NewCommandTag("DELETE 1")}}
	store := &PostgresStore{db: tx}

	var inner Store
	err := store.WithTx(context.Background(), func(s Store) error {
		inner = s
		return s.Answers().Delete(context.Background(), 3)
	})
	require.NoError(t, err)
	assert.Same(t, store, inner)
	assert.Len(t, tx.sql, 1)

	sentinel := errors.New("rollback please")
	err = store.WithTx(context.Background(), func(Store) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}
